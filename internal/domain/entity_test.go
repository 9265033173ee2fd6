package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"slomas0@mediafire.com", true},
		{"a@b.c", true},
		{"no-at-sign.com", false},
		{"two@@signs.com", false},
		{"a@b@c.com", false},
		{"nodot@domain", false},
		{"dot.before@domain", false},
	}
	for _, c := range cases {
		if got := IsValidEmail(c.in); got != c.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"(743) 2272429", true},
		{"743 2272429", false},
		{"(743)2272429 ", false},
		{"(74a) 2272429", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidPhone(c.in); got != c.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestGuestValidateCollectsAllMessages(t *testing.T) {
	msgs := Guest{Email: "broken", Phone: "123"}.Validate()

	joined := strings.Join(msgs, "\n")
	for _, want := range []string{"First name is required.", "Last name is required.", "Email must be a valid email address.", "Phone must be formatted"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in %v", want, msgs)
		}
	}
}

func TestGuestValidateOK(t *testing.T) {
	g := Guest{FirstName: "Sullivan", LastName: "Lomas", Email: "slomas0@mediafire.com", Phone: "(702) 7768761", State: "NV"}
	if msgs := g.Validate(); len(msgs) != 0 {
		t.Fatalf("expected valid guest, got %v", msgs)
	}
	if g.DisplayName() != "Sullivan Lomas" {
		t.Fatalf("unexpected display name %q", g.DisplayName())
	}
}

func TestHostValidateRates(t *testing.T) {
	h := Host{
		LastName:   "Yearnes",
		Email:      "eyearnes0@sfgate.com",
		Phone:      "(806) 1783815",
		Address:    "3 Nova Trail",
		City:       "Amarillo",
		State:      "TX",
		PostalCode: "79182",
	}.WithRates(decimal.NewFromInt(-1), decimal.RequireFromString("425.005"))

	msgs := h.Validate()
	if len(msgs) != 1 || msgs[0] != "Standard rate must not be negative." {
		t.Fatalf("expected only the rate message, got %v", msgs)
	}
	if FormatMoney(h.WeekendRate) != "425.00" {
		t.Fatalf("expected half-even rounding to 425.00, got %s", FormatMoney(h.WeekendRate))
	}
}

func TestResultInvariant(t *testing.T) {
	ok := Success(42)
	if !ok.IsSuccess() || ok.Payload() != 42 || len(ok.Messages()) != 0 {
		t.Fatalf("unexpected success result %+v", ok)
	}

	bad := Failure[int]("first", "second")
	if bad.IsSuccess() {
		t.Fatalf("expected failure")
	}
	msgs := bad.Messages()
	msgs[0] = "mutated"
	if bad.Messages()[0] != "first" {
		t.Fatalf("expected Messages to return a copy")
	}

	if Failure[int]().IsSuccess() {
		t.Fatalf("failure without messages must still fail")
	}
}
