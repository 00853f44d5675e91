package domain

import "time"

// StallStatus is the lifecycle state of a stall as reported by the backend.
type StallStatus string

const (
	StallPending   StallStatus = "pending"
	StallReserved  StallStatus = "reserved"
	StallConfirmed StallStatus = "confirmed"
	StallCancelled StallStatus = "cancelled"
)

// ApplicationStatus tracks a single exhibitor's request for a stall.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Venue is the optional location block attached to an event.
type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Event is a fair edition exhibitors can book stalls at.
type Event struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Date  time.Time `json:"date"`
	Venue *Venue    `json:"venue,omitempty"`
}

// Active reports whether the event has not yet ended relative to now.
func (e Event) Active(now time.Time) bool {
	return !e.Date.Before(now.Truncate(24 * time.Hour))
}

// Application is one exhibitor's request to occupy a stall.
type Application struct {
	ExhibitorID string            `json:"exhibitor_id"`
	Status      ApplicationStatus `json:"status"`
}

// Stall is an individually bookable unit within a booth.
type Stall struct {
	ID           string        `json:"id"`
	StallNumber  string        `json:"stall_number"`
	BoothID      string        `json:"booth_id"`
	EventID      string        `json:"event_id"`
	Location     string        `json:"location,omitempty"`
	Description  string        `json:"description,omitempty"`
	Price        float64       `json:"price"`
	Status       StallStatus   `json:"status"`
	Features     []string      `json:"features,omitempty"`
	Applications []Application `json:"applications,omitempty"`
}

// CanApply reports whether the given exhibitor may apply for the stall:
// the stall must still be pending and the exhibitor must not already have a
// pending application on it. All other booking rules are enforced upstream.
func (s Stall) CanApply(exhibitorID string) bool {
	if s.Status != StallPending {
		return false
	}
	for _, a := range s.Applications {
		if a.ExhibitorID == exhibitorID && a.Status == ApplicationPending {
			return false
		}
	}
	return true
}

// Booth is a physical exhibition unit grouping an ordered sequence of stalls.
type Booth struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Hall        string  `json:"hall,omitempty"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location,omitempty"`
	Stalls      []Stall `json:"stalls"`
}
