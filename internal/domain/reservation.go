package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Reservation books a guest into a host's property for the nights in
// [StartDate, EndDate). ID is zero until the repository assigns one.
//
// Reservations are values: the With* methods return modified copies.
type Reservation struct {
	ID        int
	StartDate time.Time
	EndDate   time.Time
	Host      *Host
	Guest     *Guest
	Total     decimal.Decimal
}

func NewReservation(host *Host, guest *Guest, start, end time.Time) Reservation {
	return Reservation{
		StartDate: DateOf(start),
		EndDate:   DateOf(end),
		Host:      host,
		Guest:     guest,
		Total:     decimal.Zero,
	}
}

func (r Reservation) WithID(id int) Reservation {
	r.ID = id
	return r
}

func (r Reservation) WithDates(start, end time.Time) Reservation {
	r.StartDate = DateOf(start)
	r.EndDate = DateOf(end)
	return r
}

func (r Reservation) WithTotal(total decimal.Decimal) Reservation {
	r.Total = RoundMoney(total)
	return r
}

func (r Reservation) WithHost(h *Host) Reservation {
	r.Host = h
	return r
}

func (r Reservation) WithGuest(g *Guest) Reservation {
	r.Guest = g
	return r
}

// HostID is empty when the host reference is missing.
func (r Reservation) HostID() string {
	if r.Host == nil {
		return ""
	}
	return r.Host.ID
}

// GuestID is zero when the guest reference is missing.
func (r Reservation) GuestID() int {
	if r.Guest == nil {
		return 0
	}
	return r.Guest.ID
}

// Nights is the number of nights booked; zero for an empty or inverted range.
func (r Reservation) Nights() int {
	if r.StartDate.IsZero() || r.EndDate.IsZero() || !r.StartDate.Before(r.EndDate) {
		return 0
	}
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// Overlaps uses half-open ranges: stays that only share a boundary date do not overlap.
func (r Reservation) Overlaps(other Reservation) bool {
	return r.StartDate.Before(other.EndDate) && r.EndDate.After(other.StartDate)
}

// MissingFields lists the required references and dates that are absent.
func (r Reservation) MissingFields() []string {
	var msgs []string
	if r.Host == nil {
		msgs = append(msgs, "Host is required.")
	}
	if r.Guest == nil {
		msgs = append(msgs, "Guest is required.")
	}
	if r.StartDate.IsZero() {
		msgs = append(msgs, "Start date is required.")
	}
	if r.EndDate.IsZero() {
		msgs = append(msgs, "End date is required.")
	}
	return msgs
}

func (r Reservation) String() string {
	return fmt.Sprintf("#%d %s - %s %s", r.ID, FormatDate(r.StartDate), FormatDate(r.EndDate), FormatMoney(r.Total))
}

// IsWeekendNight reports whether the night starting on day is billed at the weekend rate.
func IsWeekendNight(day time.Time) bool {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// CalculateTotal sums the host's nightly rate for each night in [start, end).
func CalculateTotal(host Host, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for day := DateOf(start); day.Before(DateOf(end)); day = day.AddDate(0, 0, 1) {
		total = total.Add(host.RateFor(day))
	}
	return RoundMoney(total)
}
