package models

import "time"

// User is a principal: identity plus credential record.
//
// BookingReferences is the ordered list of booking ids the user holds. The
// ids may point at bookings that no longer exist.
type User struct {
	ID                string
	UserName          string
	Email             string
	PasswordHash      string
	IsAdmin           bool
	PhoneNumber       string
	CreatedAt         time.Time
	BookingReferences []string
}

// Public returns a copy of u without the password hash.
func (u *User) Public() *User {
	c := *u
	c.PasswordHash = ""
	c.BookingReferences = append([]string(nil), u.BookingReferences...)
	return &c
}
