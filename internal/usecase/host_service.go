package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aalvaropc/staybook/internal/domain"
	"github.com/aalvaropc/staybook/internal/ports"
)

type HostService struct {
	hosts ports.HostRepository
	newID func() string
}

type HostOption func(*HostService)

// WithHostIDs overrides the UUID generator for new hosts.
func WithHostIDs(next func() string) HostOption {
	return func(s *HostService) {
		if next != nil {
			s.newID = next
		}
	}
}

func NewHostService(hosts ports.HostRepository, opts ...HostOption) *HostService {
	s := &HostService{hosts: hosts, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HostService) FindAll() ([]domain.Host, error) {
	return s.hosts.FindAll()
}

func (s *HostService) FindByEmail(email string) (domain.Result[domain.Host], error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Failure[domain.Host]("Host email is required."), nil
	}

	h, err := s.hosts.FindByEmail(email)
	if err != nil {
		return domain.Result[domain.Host]{}, err
	}
	if h == nil {
		return domain.Failure[domain.Host](fmt.Sprintf("No host found with email %s.", email)), nil
	}
	return domain.Success(*h), nil
}

// Add validates the host, rejects duplicate emails and assigns a fresh id.
func (s *HostService) Add(h domain.Host) (domain.Result[domain.Host], error) {
	h = h.WithRates(h.StandardRate, h.WeekendRate)
	if msgs := h.Validate(); len(msgs) > 0 {
		return domain.Failure[domain.Host](msgs...), nil
	}

	dup, err := s.hosts.FindByEmail(h.Email)
	if err != nil {
		return domain.Result[domain.Host]{}, err
	}
	if dup != nil {
		return domain.Failure[domain.Host](fmt.Sprintf("A host with email %s already exists.", h.Email)), nil
	}

	h.ID = s.newID()
	saved, err := s.hosts.Add(h)
	if err != nil {
		return domain.Result[domain.Host]{}, err
	}
	if saved == nil {
		return domain.Failure[domain.Host]("Host could not be created."), nil
	}
	return domain.Success(*saved), nil
}
