package domain

import "time"

// EventRef is the slim event projection embedded in a booking record.
type EventRef struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// Booking is a read-only projection of a past stall booking. The portal never
// mutates bookings; conflict resolution lives upstream.
type Booking struct {
	Event       EventRef  `json:"event"`
	BoothID     string    `json:"booth_id"`
	BoothNumber string    `json:"booth_number"`
	Status      string    `json:"status"`
	BookedAt    time.Time `json:"booked_at"`
}
