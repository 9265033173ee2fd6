package usecase

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/exp/slices"

	"github.com/aalvaropc/staybook/internal/domain"
	"github.com/aalvaropc/staybook/internal/ports"
)

// ReservationService applies the booking rules; repositories only store.
//
// Business failures come back as non-success Results. The error return is
// reserved for data-access faults, which are passed through unchanged.
type ReservationService struct {
	reservations ports.ReservationRepository
	hosts        ports.HostRepository
	guests       ports.GuestRepository
	now          func() time.Time
	log          *slog.Logger
}

type ReservationOption func(*ReservationService)

// WithClock is useful for tests.
func WithClock(now func() time.Time) ReservationOption {
	return func(s *ReservationService) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(l *slog.Logger) ReservationOption {
	return func(s *ReservationService) {
		if l != nil {
			s.log = l
		}
	}
}

// NewReservationService wires the service. hosts and guests may be nil, in
// which case reads return bare id references.
func NewReservationService(rr ports.ReservationRepository, hr ports.HostRepository, gr ports.GuestRepository, opts ...ReservationOption) *ReservationService {
	s := &ReservationService{
		reservations: rr,
		hosts:        hr,
		guests:       gr,
		now:          time.Now,
		log:          slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindByHost returns the host's reservations ordered by start date.
func (s *ReservationService) FindByHost(hostID string) ([]domain.Reservation, error) {
	all, err := s.reservations.FindByHost(hostID)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(all)
}

func (s *ReservationService) FindByHostAndGuest(hostID string, guestID int) ([]domain.Reservation, error) {
	all, err := s.reservations.FindByHostAndGuest(hostID, guestID)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(all)
}

// FindByReservationID returns nil when the host has no such reservation.
func (s *ReservationService) FindByReservationID(hostID string, reservationID int) (*domain.Reservation, error) {
	res, err := s.reservations.FindByReservationID(hostID, reservationID)
	if err != nil || res == nil {
		return nil, err
	}
	out, err := s.hydrateAll([]domain.Reservation{*res})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// IsReservationAvailable validates a new reservation and prices it. On
// success the payload carries the computed total.
func (s *ReservationService) IsReservationAvailable(r domain.Reservation) (domain.Result[domain.Reservation], error) {
	return s.checkAvailability(r, false, false)
}

// IsUpdateAvailable is IsReservationAvailable for an existing reservation:
// the reservation's own record is not treated as a conflict.
func (s *ReservationService) IsUpdateAvailable(r domain.Reservation) (domain.Result[domain.Reservation], error) {
	if r.ID <= 0 {
		return domain.Failure[domain.Reservation]("Reservation id is required."), nil
	}

	// A stay that has already started may still be edited as long as its
	// start date is left alone.
	startedStay := false
	if r.Host != nil && !r.StartDate.IsZero() && r.StartDate.Before(domain.DateOf(s.now())) {
		stored, err := s.reservations.FindByReservationID(r.HostID(), r.ID)
		if err != nil {
			return domain.Result[domain.Reservation]{}, err
		}
		startedStay = stored != nil && stored.StartDate.Equal(r.StartDate)
	}
	return s.checkAvailability(r, true, startedStay)
}

func (s *ReservationService) AddReservation(r domain.Reservation) (domain.Result[domain.Reservation], error) {
	checked, err := s.IsReservationAvailable(r)
	if err != nil || !checked.IsSuccess() {
		return checked, err
	}

	priced := checked.Payload()
	saved, err := s.reservations.Add(&priced)
	if err != nil {
		return domain.Result[domain.Reservation]{}, err
	}
	if saved == nil {
		return domain.Failure[domain.Reservation]("Reservation could not be created."), nil
	}

	s.log.Info("reservation.created",
		"host", saved.HostID(),
		"guest", saved.GuestID(),
		"id", saved.ID,
		"start", domain.FormatDate(saved.StartDate),
		"end", domain.FormatDate(saved.EndDate),
		"total", domain.FormatMoney(saved.Total),
	)
	return domain.Success(*saved), nil
}

func (s *ReservationService) UpdateReservation(r domain.Reservation) (domain.Result[domain.Reservation], error) {
	checked, err := s.IsUpdateAvailable(r)
	if err != nil || !checked.IsSuccess() {
		return checked, err
	}

	priced := checked.Payload()
	ok, err := s.reservations.Update(priced)
	if err != nil {
		return domain.Result[domain.Reservation]{}, err
	}
	if !ok {
		return domain.Failure[domain.Reservation](fmt.Sprintf("Reservation %d was not found.", r.ID)), nil
	}

	s.log.Info("reservation.updated", "host", priced.HostID(), "id", priced.ID, "total", domain.FormatMoney(priced.Total))
	return domain.Success(priced), nil
}

func (s *ReservationService) DeleteReservationByID(r domain.Reservation) (domain.Result[domain.Reservation], error) {
	if r.Host == nil {
		return domain.Failure[domain.Reservation]("Host is required."), nil
	}

	ok, err := s.reservations.DeleteByID(r.HostID(), r.ID)
	if err != nil {
		return domain.Result[domain.Reservation]{}, err
	}
	if !ok {
		return domain.Failure[domain.Reservation](fmt.Sprintf("Reservation %d was not found.", r.ID)), nil
	}

	s.log.Info("reservation.deleted", "host", r.HostID(), "id", r.ID)
	return domain.Success(r), nil
}

// checkAvailability collects every problem with r before answering. Pricing
// and the overlap scan only run once all fields are present and the dates are
// in order. With startedStay the past-start rule becomes a past-end rule.
func (s *ReservationService) checkAvailability(r domain.Reservation, excludeSelf, startedStay bool) (domain.Result[domain.Reservation], error) {
	missing := r.MissingFields()
	msgs := slices.Clone(missing)
	hasStart, hasEnd := !r.StartDate.IsZero(), !r.EndDate.IsZero()

	datesOrdered := hasStart && hasEnd && r.StartDate.Before(r.EndDate)
	if hasStart && hasEnd && !datesOrdered {
		msgs = append(msgs, "Start date must come before end date.")
	}

	today := domain.DateOf(s.now())
	switch {
	case startedStay:
		if hasEnd && r.EndDate.Before(today) {
			msgs = append(msgs, "End date must not be in the past.")
		}
	case hasStart && r.StartDate.Before(today):
		msgs = append(msgs, "Start date must not be in the past.")
	}

	if len(missing) > 0 || !datesOrdered {
		return domain.Failure[domain.Reservation](msgs...), nil
	}

	r = r.WithTotal(domain.CalculateTotal(*r.Host, r.StartDate, r.EndDate))

	existing, err := s.reservations.FindByHost(r.HostID())
	if err != nil {
		return domain.Result[domain.Reservation]{}, err
	}
	for _, e := range existing {
		if excludeSelf && e.ID == r.ID {
			continue
		}
		if r.Overlaps(e) {
			msgs = append(msgs, fmt.Sprintf("Dates conflict with an existing reservation from %s to %s.",
				domain.FormatDate(e.StartDate), domain.FormatDate(e.EndDate)))
		}
	}

	if len(msgs) > 0 {
		return domain.Failure[domain.Reservation](msgs...), nil
	}
	return domain.Success(r), nil
}

// hydrateAll swaps id-only host and guest references for full records and
// sorts by start date. Unknown ids keep their bare reference.
func (s *ReservationService) hydrateAll(in []domain.Reservation) ([]domain.Reservation, error) {
	out := slices.Clone(in)

	hosts := map[string]*domain.Host{}
	guests := map[int]*domain.Guest{}
	for i, r := range out {
		if s.hosts != nil && r.Host != nil {
			h, seen := hosts[r.HostID()]
			if !seen {
				found, err := s.hosts.FindByID(r.HostID())
				if err != nil {
					return nil, err
				}
				h = found
				hosts[r.HostID()] = h
			}
			if h != nil {
				out[i] = out[i].WithHost(h)
			}
		}
		if s.guests != nil && r.Guest != nil {
			g, seen := guests[r.GuestID()]
			if !seen {
				found, err := s.guests.FindByID(r.GuestID())
				if err != nil {
					return nil, err
				}
				g = found
				guests[r.GuestID()] = g
			}
			if g != nil {
				out[i] = out[i].WithGuest(g)
			}
		}
	}

	slices.SortStableFunc(out, func(a, b domain.Reservation) int {
		return a.StartDate.Compare(b.StartDate)
	})
	return out, nil
}
