package domain

import "strings"

type Guest struct {
	ID        int    `validate:"-"`
	FirstName string `validate:"required" label:"First name"`
	LastName  string `validate:"required" label:"Last name"`
	Email     string `validate:"required,mailbox" label:"Email"`
	Phone     string `validate:"omitempty,phone" label:"Phone"`
	State     string `validate:"omitempty,len=2" label:"State"`
}

func (g Guest) ContactEmail() string { return g.Email }

func (g Guest) DisplayName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// Validate returns every field problem; an empty slice means the guest is valid.
func (g Guest) Validate() []string {
	return validationMessages(g)
}
