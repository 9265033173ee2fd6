package ports

import "github.com/aalvaropc/staybook/internal/domain"

type GuestRepository interface {
	FindAll() ([]domain.Guest, error)
	FindByID(id int) (*domain.Guest, error)
	FindByEmail(email string) (*domain.Guest, error)
	// Add assigns the next free id.
	Add(g domain.Guest) (*domain.Guest, error)
	Update(g domain.Guest) (bool, error)
	DeleteByID(id int) (bool, error)
}
