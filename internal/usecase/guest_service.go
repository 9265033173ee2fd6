package usecase

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/staybook/internal/domain"
	"github.com/aalvaropc/staybook/internal/ports"
)

type GuestService struct {
	guests ports.GuestRepository
}

func NewGuestService(guests ports.GuestRepository) *GuestService {
	return &GuestService{guests: guests}
}

func (s *GuestService) FindAll() ([]domain.Guest, error) {
	return s.guests.FindAll()
}

func (s *GuestService) FindByEmail(email string) (domain.Result[domain.Guest], error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Failure[domain.Guest]("Guest email is required."), nil
	}

	g, err := s.guests.FindByEmail(email)
	if err != nil {
		return domain.Result[domain.Guest]{}, err
	}
	if g == nil {
		return domain.Failure[domain.Guest](fmt.Sprintf("No guest found with email %s.", email)), nil
	}
	return domain.Success(*g), nil
}

func (s *GuestService) Add(g domain.Guest) (domain.Result[domain.Guest], error) {
	if msgs := g.Validate(); len(msgs) > 0 {
		return domain.Failure[domain.Guest](msgs...), nil
	}

	taken, err := s.emailTaken(g.Email, 0)
	if err != nil {
		return domain.Result[domain.Guest]{}, err
	}
	if taken {
		return domain.Failure[domain.Guest](fmt.Sprintf("A guest with email %s already exists.", g.Email)), nil
	}

	saved, err := s.guests.Add(g)
	if err != nil {
		return domain.Result[domain.Guest]{}, err
	}
	if saved == nil {
		return domain.Failure[domain.Guest]("Guest could not be created."), nil
	}
	return domain.Success(*saved), nil
}

func (s *GuestService) Edit(g domain.Guest) (domain.Result[domain.Guest], error) {
	msgs := g.Validate()
	if g.ID <= 0 {
		msgs = append([]string{"Guest id is required."}, msgs...)
	}
	if len(msgs) > 0 {
		return domain.Failure[domain.Guest](msgs...), nil
	}

	taken, err := s.emailTaken(g.Email, g.ID)
	if err != nil {
		return domain.Result[domain.Guest]{}, err
	}
	if taken {
		return domain.Failure[domain.Guest](fmt.Sprintf("A guest with email %s already exists.", g.Email)), nil
	}

	ok, err := s.guests.Update(g)
	if err != nil {
		return domain.Result[domain.Guest]{}, err
	}
	if !ok {
		return domain.Failure[domain.Guest](fmt.Sprintf("Guest %d was not found.", g.ID)), nil
	}
	return domain.Success(g), nil
}

func (s *GuestService) Delete(g domain.Guest) (domain.Result[domain.Guest], error) {
	ok, err := s.guests.DeleteByID(g.ID)
	if err != nil {
		return domain.Result[domain.Guest]{}, err
	}
	if !ok {
		return domain.Failure[domain.Guest](fmt.Sprintf("Guest %d was not found.", g.ID)), nil
	}
	return domain.Success(g), nil
}

// emailTaken reports whether another guest (id != self) already uses email.
func (s *GuestService) emailTaken(email string, self int) (bool, error) {
	existing, err := s.guests.FindByEmail(email)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.ID != self, nil
}
