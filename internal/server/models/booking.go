package models

import "time"

// Booking is an appointment booking referenced from User.BookingReferences.
type Booking struct {
	ID          string
	Service     string
	ScheduledAt time.Time
	CreatedAt   time.Time
}
