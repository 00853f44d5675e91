package domain

import "time"

// LeadModel says which directory the captured contact came from.
type LeadModel string

const (
	LeadModelExhibitor LeadModel = "Exhibitor"
	LeadModelVisitor   LeadModel = "Visitor"
)

// Lead is a captured contact linking one principal's interest to another.
type Lead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name,omitempty"`
	Mobile      string    `json:"mobile,omitempty"`
	Status      string    `json:"status"`
	LeadModel   LeadModel `json:"lead_model"`
	CapturedAt  time.Time `json:"captured_at"`
	Message     string    `json:"message,omitempty"`
}
