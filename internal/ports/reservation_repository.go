package ports

import "github.com/aalvaropc/staybook/internal/domain"

// ReservationRepository stores reservations grouped by host.
//
// "Not found" is never an error: lookups return empty slices or nil, and
// mutations return false. Errors are data-access faults only.
type ReservationRepository interface {
	FindByHost(hostID string) ([]domain.Reservation, error)
	FindByHostAndGuest(hostID string, guestID int) ([]domain.Reservation, error)
	FindByReservationID(hostID string, reservationID int) (*domain.Reservation, error)
	// Add returns nil without side effects when the reservation or a required field is missing.
	Add(r *domain.Reservation) (*domain.Reservation, error)
	Update(r domain.Reservation) (bool, error)
	DeleteByID(hostID string, reservationID int) (bool, error)
}
