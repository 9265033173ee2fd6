package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testHost() Host {
	return Host{
		ID:       "2e72f86c-b8fe-4265-b4f1-304dea8762db",
		LastName: "Yearnes",
		Email:    "eyearnes0@sfgate.com",
	}.WithRates(decimal.NewFromInt(100), decimal.NewFromInt(150))
}

func TestCalculateTotalWeekdayAndSaturday(t *testing.T) {
	// 2021-10-15 is a Friday, 2021-10-16 a Saturday.
	total := CalculateTotal(testHost(), Date(2021, 10, 15), Date(2021, 10, 17))
	if FormatMoney(total) != "250.00" {
		t.Fatalf("expected 250.00, got %s", FormatMoney(total))
	}
}

func TestCalculateTotalEmptyRange(t *testing.T) {
	total := CalculateTotal(testHost(), Date(2021, 10, 15), Date(2021, 10, 15))
	if !total.IsZero() {
		t.Fatalf("expected zero total, got %s", total)
	}
}

func TestCalculateTotalFullWeek(t *testing.T) {
	// Mon 2021-10-11 .. Mon 2021-10-18: five weekday nights, Saturday and Sunday nights.
	total := CalculateTotal(testHost(), Date(2021, 10, 11), Date(2021, 10, 18))
	if FormatMoney(total) != "800.00" {
		t.Fatalf("expected 800.00, got %s", FormatMoney(total))
	}
}

func TestIsWeekendNight(t *testing.T) {
	cases := []struct {
		day  time.Time
		want bool
	}{
		{Date(2021, 10, 15), false}, // Friday
		{Date(2021, 10, 16), true},  // Saturday
		{Date(2021, 10, 17), true},  // Sunday
		{Date(2021, 10, 18), false}, // Monday
	}
	for _, c := range cases {
		if got := IsWeekendNight(c.day); got != c.want {
			t.Errorf("IsWeekendNight(%s) = %v, want %v", FormatDate(c.day), got, c.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	existing := Reservation{StartDate: Date(2021, 10, 12), EndDate: Date(2021, 10, 14)}

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"adjacent after", Date(2021, 10, 14), Date(2021, 10, 16), false},
		{"adjacent before", Date(2021, 10, 10), Date(2021, 10, 12), false},
		{"inside", Date(2021, 10, 12), Date(2021, 10, 13), true},
		{"covering", Date(2021, 10, 11), Date(2021, 10, 20), true},
		{"tail overlap", Date(2021, 10, 13), Date(2021, 10, 15), true},
		{"disjoint", Date(2021, 11, 1), Date(2021, 11, 3), false},
	}
	for _, c := range cases {
		req := Reservation{StartDate: c.start, EndDate: c.end}
		if got := req.Overlaps(existing); got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
		if got := existing.Overlaps(req); got != c.want {
			t.Errorf("%s: reverse Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestWithMethodsReturnCopies(t *testing.T) {
	h := testHost()
	orig := NewReservation(&h, &Guest{ID: 1}, Date(2021, 10, 12), Date(2021, 10, 14))

	moved := orig.WithID(7).WithDates(Date(2021, 11, 1), Date(2021, 11, 4))

	if orig.ID != 0 || !orig.StartDate.Equal(Date(2021, 10, 12)) {
		t.Fatalf("expected original to stay unchanged, got %+v", orig)
	}
	if moved.ID != 7 || moved.Nights() != 3 {
		t.Fatalf("expected id 7 and 3 nights, got id=%d nights=%d", moved.ID, moved.Nights())
	}
	if moved.HostID() != h.ID || moved.GuestID() != 1 {
		t.Fatalf("expected references to carry over")
	}
}

func TestMissingFields(t *testing.T) {
	msgs := Reservation{}.MissingFields()
	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %v", msgs)
	}
	if (Reservation{}).HostID() != "" || (Reservation{}).GuestID() != 0 {
		t.Fatalf("expected empty references")
	}
}
