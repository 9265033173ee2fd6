package csvstore

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/aalvaropc/staybook/internal/domain"
	"github.com/aalvaropc/staybook/internal/ports"
)

var guestHeader = []string{"guest_id", "first_name", "last_name", "email", "phone", "state"}

type GuestRepository struct {
	path     string
	cacheTTL time.Duration
	cache    *fileCache[domain.Guest]
}

type GuestOption func(*GuestRepository)

// WithGuestCacheTTL overrides DefaultCacheTTL; zero disables caching.
func WithGuestCacheTTL(ttl time.Duration) GuestOption {
	return func(r *GuestRepository) { r.cacheTTL = ttl }
}

func NewGuestRepository(path string, opts ...GuestOption) *GuestRepository {
	r := &GuestRepository{path: path, cacheTTL: DefaultCacheTTL}
	for _, opt := range opts {
		opt(r)
	}
	r.cache = newFileCache[domain.Guest](path, r.cacheTTL)
	return r
}

var _ ports.GuestRepository = (*GuestRepository)(nil)

func (r *GuestRepository) FindAll() ([]domain.Guest, error) {
	return r.load()
}

func (r *GuestRepository) FindByID(id int) (*domain.Guest, error) {
	return r.findFirst(func(g domain.Guest) bool { return g.ID == id })
}

func (r *GuestRepository) FindByEmail(email string) (*domain.Guest, error) {
	want := strings.TrimSpace(email)
	return r.findFirst(func(g domain.Guest) bool { return strings.EqualFold(g.Email, want) })
}

func (r *GuestRepository) Add(g domain.Guest) (*domain.Guest, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}

	next := 1
	for _, existing := range all {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	g.ID = next

	if err := r.write(append(all, g)); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GuestRepository) Update(g domain.Guest) (bool, error) {
	all, err := r.load()
	if err != nil {
		return false, err
	}
	i := slices.IndexFunc(all, func(existing domain.Guest) bool { return existing.ID == g.ID })
	if i < 0 {
		return false, nil
	}
	all[i] = g
	return true, r.write(all)
}

func (r *GuestRepository) DeleteByID(id int) (bool, error) {
	all, err := r.load()
	if err != nil {
		return false, err
	}
	kept := slices.DeleteFunc(slices.Clone(all), func(existing domain.Guest) bool { return existing.ID == id })
	if len(kept) == len(all) {
		return false, nil
	}
	return true, r.write(kept)
}

func (r *GuestRepository) findFirst(match func(domain.Guest) bool) (*domain.Guest, error) {
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

func (r *GuestRepository) load() ([]domain.Guest, error) {
	if cached, ok := r.cache.get(); ok {
		return cached, nil
	}

	rows, err := readRecords("csvstore.guests.read", r.path, len(guestHeader))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Guest, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, malformed("csvstore.guests.decode", r.path, i, err)
		}
		out = append(out, domain.Guest{
			ID:        id,
			FirstName: row[1],
			LastName:  row[2],
			Email:     row[3],
			Phone:     row[4],
			State:     row[5],
		})
	}

	r.cache.set(out)
	return out, nil
}

func (r *GuestRepository) write(all []domain.Guest) error {
	r.cache.invalidate()

	rows := make([][]string, 0, len(all))
	for _, g := range all {
		rows = append(rows, []string{strconv.Itoa(g.ID), g.FirstName, g.LastName, g.Email, g.Phone, g.State})
	}
	return writeRecords("csvstore.guests", r.path, guestHeader, rows)
}
