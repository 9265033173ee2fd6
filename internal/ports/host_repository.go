package ports

import "github.com/aalvaropc/staybook/internal/domain"

type HostRepository interface {
	FindAll() ([]domain.Host, error)
	FindByID(id string) (*domain.Host, error)
	FindByEmail(email string) (*domain.Host, error)
	Add(h domain.Host) (*domain.Host, error)
}
