package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Host owns a property and the reservations file for it.
type Host struct {
	ID         string `validate:"-"`
	LastName   string `validate:"required" label:"Last name"`
	Email      string `validate:"required,mailbox" label:"Email"`
	Phone      string `validate:"omitempty,phone" label:"Phone"`
	Address    string `validate:"required" label:"Address"`
	City       string `validate:"required" label:"City"`
	State      string `validate:"required,len=2" label:"State"`
	PostalCode string `validate:"required" label:"Postal code"`

	StandardRate decimal.Decimal `validate:"-"`
	WeekendRate  decimal.Decimal `validate:"-"`
}

func (h Host) ContactEmail() string { return h.Email }

func (h Host) DisplayName() string {
	if h.City == "" {
		return h.LastName
	}
	return fmt.Sprintf("%s: %s, %s", h.LastName, h.City, h.State)
}

// RateFor returns the rate charged for the night that starts on the given date.
func (h Host) RateFor(night time.Time) decimal.Decimal {
	if IsWeekendNight(night) {
		return h.WeekendRate
	}
	return h.StandardRate
}

// WithRates returns a copy with both rates rounded half-even to two places.
func (h Host) WithRates(standard, weekend decimal.Decimal) Host {
	h.StandardRate = RoundMoney(standard)
	h.WeekendRate = RoundMoney(weekend)
	return h
}

// Validate returns every field problem; an empty slice means the host is valid.
func (h Host) Validate() []string {
	msgs := validationMessages(h)
	if h.StandardRate.IsNegative() {
		msgs = append(msgs, "Standard rate must not be negative.")
	}
	if h.WeekendRate.IsNegative() {
		msgs = append(msgs, "Weekend rate must not be negative.")
	}
	return msgs
}
