package domain

// User is the contact surface shared by hosts and guests.
type User interface {
	ContactEmail() string
	DisplayName() string
}

var (
	_ User = Host{}
	_ User = Guest{}
)
