package usecase

import (
	"golang.org/x/exp/slices"

	"github.com/aalvaropc/staybook/internal/domain"
)

// --- in-memory repositories shared by the service tests ---

type memReservations struct {
	byHost map[string][]domain.Reservation
}

func newMemReservations() *memReservations {
	return &memReservations{byHost: map[string][]domain.Reservation{}}
}

func (m *memReservations) FindByHost(hostID string) ([]domain.Reservation, error) {
	return slices.Clone(m.byHost[hostID]), nil
}

func (m *memReservations) FindByHostAndGuest(hostID string, guestID int) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range m.byHost[hostID] {
		if r.GuestID() == guestID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReservations) FindByReservationID(hostID string, id int) (*domain.Reservation, error) {
	for _, r := range m.byHost[hostID] {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memReservations) Add(r *domain.Reservation) (*domain.Reservation, error) {
	if r == nil || len(r.MissingFields()) > 0 {
		return nil, nil
	}
	next := 1
	for _, e := range m.byHost[r.HostID()] {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	saved := r.WithID(next)
	m.byHost[r.HostID()] = append(m.byHost[r.HostID()], saved)
	return &saved, nil
}

func (m *memReservations) Update(r domain.Reservation) (bool, error) {
	all := m.byHost[r.HostID()]
	for i := range all {
		if all[i].ID == r.ID {
			all[i] = r
			return true, nil
		}
	}
	return false, nil
}

func (m *memReservations) DeleteByID(hostID string, id int) (bool, error) {
	all := m.byHost[hostID]
	for i := range all {
		if all[i].ID == id {
			m.byHost[hostID] = append(all[:i:i], all[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// nilAddReservations accepts nothing.
type nilAddReservations struct{ *memReservations }

func (nilAddReservations) Add(*domain.Reservation) (*domain.Reservation, error) { return nil, nil }

// errReservations fails every call with a data-access fault.
type errReservations struct{ err error }

func (e errReservations) FindByHost(string) ([]domain.Reservation, error) { return nil, e.err }
func (e errReservations) FindByHostAndGuest(string, int) ([]domain.Reservation, error) {
	return nil, e.err
}
func (e errReservations) FindByReservationID(string, int) (*domain.Reservation, error) {
	return nil, e.err
}
func (e errReservations) Add(*domain.Reservation) (*domain.Reservation, error) { return nil, e.err }
func (e errReservations) Update(domain.Reservation) (bool, error)              { return false, e.err }
func (e errReservations) DeleteByID(string, int) (bool, error)                 { return false, e.err }

type memHosts struct{ hosts []domain.Host }

func (m *memHosts) FindAll() ([]domain.Host, error) { return slices.Clone(m.hosts), nil }

func (m *memHosts) FindByID(id string) (*domain.Host, error) {
	for _, h := range m.hosts {
		if h.ID == id {
			found := h
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memHosts) FindByEmail(email string) (*domain.Host, error) {
	for _, h := range m.hosts {
		if h.Email == email {
			found := h
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memHosts) Add(h domain.Host) (*domain.Host, error) {
	m.hosts = append(m.hosts, h)
	return &h, nil
}

type memGuests struct{ guests []domain.Guest }

func (m *memGuests) FindAll() ([]domain.Guest, error) { return slices.Clone(m.guests), nil }

func (m *memGuests) FindByID(id int) (*domain.Guest, error) {
	for _, g := range m.guests {
		if g.ID == id {
			found := g
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memGuests) FindByEmail(email string) (*domain.Guest, error) {
	for _, g := range m.guests {
		if g.Email == email {
			found := g
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memGuests) Add(g domain.Guest) (*domain.Guest, error) {
	g.ID = len(m.guests) + 1
	m.guests = append(m.guests, g)
	return &g, nil
}

func (m *memGuests) Update(g domain.Guest) (bool, error) {
	for i := range m.guests {
		if m.guests[i].ID == g.ID {
			m.guests[i] = g
			return true, nil
		}
	}
	return false, nil
}

func (m *memGuests) DeleteByID(id int) (bool, error) {
	for i := range m.guests {
		if m.guests[i].ID == id {
			m.guests = append(m.guests[:i:i], m.guests[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
