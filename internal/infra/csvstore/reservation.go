package csvstore

import (
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/aalvaropc/staybook/internal/domain"
	"github.com/aalvaropc/staybook/internal/ports"
)

var reservationHeader = []string{"id", "start_date", "end_date", "guest_id", "total"}

// ReservationRepository keeps one file per host: <dir>/<hostID>.csv.
type ReservationRepository struct {
	dir string
	log *slog.Logger
}

type ReservationOption func(*ReservationRepository)

func WithReservationLogger(l *slog.Logger) ReservationOption {
	return func(r *ReservationRepository) {
		if l != nil {
			r.log = l
		}
	}
}

func NewReservationRepository(dir string, opts ...ReservationOption) *ReservationRepository {
	r := &ReservationRepository{
		dir: dir,
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ReservationRepository = (*ReservationRepository)(nil)

func (r *ReservationRepository) FindByHost(hostID string) ([]domain.Reservation, error) {
	path, ok := r.hostPath(hostID)
	if !ok {
		return []domain.Reservation{}, nil
	}
	return r.load(strings.TrimSpace(hostID), path)
}

func (r *ReservationRepository) FindByHostAndGuest(hostID string, guestID int) ([]domain.Reservation, error) {
	all, err := r.FindByHost(hostID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Reservation, 0, len(all))
	for _, res := range all {
		if res.GuestID() == guestID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *ReservationRepository) FindByReservationID(hostID string, reservationID int) (*domain.Reservation, error) {
	all, err := r.FindByHost(hostID)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(all, func(res domain.Reservation) bool { return res.ID == reservationID })
	if i < 0 {
		return nil, nil
	}
	found := all[i]
	return &found, nil
}

func (r *ReservationRepository) Add(res *domain.Reservation) (*domain.Reservation, error) {
	if res == nil || len(res.MissingFields()) > 0 {
		return nil, nil
	}
	path, ok := r.hostPath(res.HostID())
	if !ok {
		return nil, nil
	}

	trimmed := trimHostRef(*res)
	all, err := r.load(trimmed.HostID(), path)
	if err != nil {
		return nil, err
	}

	next := 1
	for _, existing := range all {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}

	saved := trimmed.WithID(next)
	all = append(all, saved)
	if err := r.write(path, all); err != nil {
		return nil, err
	}

	r.log.Debug("reservation.added", "host", saved.HostID(), "id", next, "path", path)
	return &saved, nil
}

func (r *ReservationRepository) Update(res domain.Reservation) (bool, error) {
	path, ok := r.hostPath(res.HostID())
	if !ok {
		return false, nil
	}

	res = trimHostRef(res)
	all, err := r.load(res.HostID(), path)
	if err != nil {
		return false, err
	}

	i := slices.IndexFunc(all, func(existing domain.Reservation) bool { return existing.ID == res.ID })
	if i < 0 {
		return false, nil
	}
	all[i] = res

	if err := r.write(path, all); err != nil {
		return false, err
	}
	r.log.Debug("reservation.updated", "host", res.HostID(), "id", res.ID)
	return true, nil
}

// trimHostRef returns res pointing at a copy of its host with the id trimmed,
// so the returned and reloaded records agree on the host id.
func trimHostRef(res domain.Reservation) domain.Reservation {
	if res.Host == nil {
		return res
	}
	h := *res.Host
	h.ID = strings.TrimSpace(h.ID)
	return res.WithHost(&h)
}

func (r *ReservationRepository) DeleteByID(hostID string, reservationID int) (bool, error) {
	path, ok := r.hostPath(hostID)
	if !ok {
		return false, nil
	}

	all, err := r.load(strings.TrimSpace(hostID), path)
	if err != nil {
		return false, err
	}
	if len(all) == 0 {
		return false, nil
	}

	kept := slices.DeleteFunc(slices.Clone(all), func(existing domain.Reservation) bool {
		return existing.ID == reservationID
	})
	if len(kept) == len(all) {
		return false, nil
	}

	if err := r.write(path, kept); err != nil {
		return false, err
	}
	r.log.Debug("reservation.deleted", "host", hostID, "id", reservationID)
	return true, nil
}

// hostPath maps a host id to its file. Blank ids and ids that are not a plain
// file name (separators, "..") have no file.
func (r *ReservationRepository) hostPath(hostID string) (string, bool) {
	id := strings.TrimSpace(hostID)
	if id == "" || id == "." || id == ".." {
		return "", false
	}
	if strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return "", false
	}
	return filepath.Join(r.dir, id+".csv"), true
}

func (r *ReservationRepository) load(hostID, path string) ([]domain.Reservation, error) {
	rows, err := readRecords("csvstore.reservations.read", path, len(reservationHeader))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Reservation, 0, len(rows))
	for i, row := range rows {
		res, err := decodeReservation(hostID, row)
		if err != nil {
			return nil, malformed("csvstore.reservations.decode", path, i, err)
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReservationRepository) write(path string, all []domain.Reservation) error {
	rows := make([][]string, 0, len(all))
	for _, res := range all {
		rows = append(rows, encodeReservation(res))
	}
	return writeRecords("csvstore.reservations", path, reservationHeader, rows)
}

func decodeReservation(hostID string, row []string) (domain.Reservation, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return domain.Reservation{}, err
	}
	start, err := domain.ParseDate(row[1])
	if err != nil {
		return domain.Reservation{}, err
	}
	end, err := domain.ParseDate(row[2])
	if err != nil {
		return domain.Reservation{}, err
	}
	guestID, err := strconv.Atoi(row[3])
	if err != nil {
		return domain.Reservation{}, err
	}
	total, err := domain.ParseMoney(row[4])
	if err != nil {
		return domain.Reservation{}, err
	}

	return domain.NewReservation(&domain.Host{ID: hostID}, &domain.Guest{ID: guestID}, start, end).
		WithID(id).
		WithTotal(total), nil
}

func encodeReservation(res domain.Reservation) []string {
	return []string{
		strconv.Itoa(res.ID),
		domain.FormatDate(res.StartDate),
		domain.FormatDate(res.EndDate),
		strconv.Itoa(res.GuestID()),
		domain.FormatMoney(res.Total),
	}
}
