package csvstore

import (
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/aalvaropc/staybook/internal/domain"
	"github.com/aalvaropc/staybook/internal/ports"
)

var hostHeader = []string{"id", "last_name", "email", "phone", "address", "city", "state", "postal_code", "standard_rate", "weekend_rate"}

type HostRepository struct {
	path     string
	cacheTTL time.Duration
	cache    *fileCache[domain.Host]
}

type HostOption func(*HostRepository)

// WithHostCacheTTL overrides DefaultCacheTTL; zero disables caching.
func WithHostCacheTTL(ttl time.Duration) HostOption {
	return func(r *HostRepository) { r.cacheTTL = ttl }
}

func NewHostRepository(path string, opts ...HostOption) *HostRepository {
	r := &HostRepository{path: path, cacheTTL: DefaultCacheTTL}
	for _, opt := range opts {
		opt(r)
	}
	r.cache = newFileCache[domain.Host](path, r.cacheTTL)
	return r
}

var _ ports.HostRepository = (*HostRepository)(nil)

func (r *HostRepository) FindAll() ([]domain.Host, error) {
	return r.load()
}

func (r *HostRepository) FindByID(id string) (*domain.Host, error) {
	return r.findFirst(func(h domain.Host) bool { return h.ID == strings.TrimSpace(id) })
}

func (r *HostRepository) FindByEmail(email string) (*domain.Host, error) {
	want := strings.TrimSpace(email)
	return r.findFirst(func(h domain.Host) bool { return strings.EqualFold(h.Email, want) })
}

// Add appends a host. Hosts without an id are rejected with a nil result.
func (r *HostRepository) Add(h domain.Host) (*domain.Host, error) {
	if strings.TrimSpace(h.ID) == "" {
		return nil, nil
	}
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	all = append(all, h)
	if err := r.write(all); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HostRepository) findFirst(match func(domain.Host) bool) (*domain.Host, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(all, match)
	if i < 0 {
		return nil, nil
	}
	found := all[i]
	return &found, nil
}

func (r *HostRepository) load() ([]domain.Host, error) {
	if cached, ok := r.cache.get(); ok {
		return cached, nil
	}

	rows, err := readRecords("csvstore.hosts.read", r.path, len(hostHeader))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Host, 0, len(rows))
	for i, row := range rows {
		h, err := decodeHost(row)
		if err != nil {
			return nil, malformed("csvstore.hosts.decode", r.path, i, err)
		}
		out = append(out, h)
	}

	r.cache.set(out)
	return out, nil
}

func (r *HostRepository) write(all []domain.Host) error {
	r.cache.invalidate()

	rows := make([][]string, 0, len(all))
	for _, h := range all {
		rows = append(rows, []string{
			h.ID, h.LastName, h.Email, h.Phone, h.Address, h.City, h.State, h.PostalCode,
			domain.FormatMoney(h.StandardRate),
			domain.FormatMoney(h.WeekendRate),
		})
	}
	return writeRecords("csvstore.hosts", r.path, hostHeader, rows)
}

func decodeHost(row []string) (domain.Host, error) {
	standard, err := domain.ParseMoney(row[8])
	if err != nil {
		return domain.Host{}, err
	}
	weekend, err := domain.ParseMoney(row[9])
	if err != nil {
		return domain.Host{}, err
	}
	return domain.Host{
		ID:         row[0],
		LastName:   row[1],
		Email:      row[2],
		Phone:      row[3],
		Address:    row[4],
		City:       row[5],
		State:      row[6],
		PostalCode: row[7],
	}.WithRates(standard, weekend), nil
}
