package models

import "time"

// Booking is a demo-request lead.
type Booking struct {
	ID           int64     `json:"id"`
	StudentName  string    `json:"studentName"`
	PhoneNumber  string    `json:"phoneNumber"`
	StudentClass string    `json:"studentClass"`
	City         string    `json:"city"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewBooking holds already validated booking fields. PhoneNumber is expected
// in its normalized 10-digit form.
type NewBooking struct {
	StudentName  string
	PhoneNumber  string
	StudentClass string
	City         string
}
