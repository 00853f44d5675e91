package gateway

import (
	"time"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
)

// Wire shapes mirror the upstream contract exactly (camelCase field names,
// data envelopes). Mapping into domain types happens at this boundary only.

type principalDTO struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	CompanyName  string `json:"companyName"`
	Designation  string `json:"designation"`
	About        string `json:"about"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	ProfileImage string `json:"profileImage"`
	CoverImage   string `json:"coverImage"`
	CompanyLogo  string `json:"companyLogo"`
	QRCode       string `json:"qrCode"`
}

func (d principalDTO) toDomain() domain.Principal {
	return domain.Principal{
		ID:           d.ID,
		Email:        d.Email,
		Name:         d.Name,
		Mobile:       d.Mobile,
		CompanyName:  d.CompanyName,
		Designation:  d.Designation,
		About:        d.About,
		Role:         domain.Role(d.Role),
		ProfileImage: d.ProfileImage,
		CoverImage:   d.CoverImage,
		CompanyLogo:  d.CompanyLogo,
		QRCode:       d.QRCode,
	}
}

type venueDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type eventDTO struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Date  time.Time `json:"date"`
	Venue *venueDTO `json:"venue"`
}

func (d eventDTO) toDomain() domain.Event {
	e := domain.Event{ID: d.ID, Name: d.Name, Date: d.Date}
	if d.Venue != nil {
		e.Venue = &domain.Venue{Name: d.Venue.Name, Address: d.Venue.Address}
	}
	return e
}

type applicationDTO struct {
	ExhibitorID string `json:"exhibitorId"`
	Status      string `json:"status"`
}

type stallDTO struct {
	ID           string           `json:"id"`
	StallNumber  string           `json:"stallNumber"`
	BoothID      string           `json:"boothId"`
	EventID      string           `json:"eventId"`
	Location     string           `json:"location"`
	Description  string           `json:"description"`
	Price        float64          `json:"price"`
	Status       string           `json:"status"`
	Features     []string         `json:"features"`
	Applications []applicationDTO `json:"applications"`
}

func (d stallDTO) toDomain() domain.Stall {
	s := domain.Stall{
		ID:          d.ID,
		StallNumber: d.StallNumber,
		BoothID:     d.BoothID,
		EventID:     d.EventID,
		Location:    d.Location,
		Description: d.Description,
		Price:       d.Price,
		Status:      domain.StallStatus(d.Status),
		Features:    d.Features,
	}
	for _, a := range d.Applications {
		s.Applications = append(s.Applications, domain.Application{
			ExhibitorID: a.ExhibitorID,
			Status:      domain.ApplicationStatus(a.Status),
		})
	}
	return s
}

type boothDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Hall        string     `json:"hall"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Stalls      []stallDTO `json:"stalls"`
}

func (d boothDTO) toDomain() domain.Booth {
	b := domain.Booth{
		ID:          d.ID,
		Name:        d.Name,
		Hall:        d.Hall,
		Category:    d.Category,
		Description: d.Description,
		Location:    d.Location,
		Stalls:      make([]domain.Stall, 0, len(d.Stalls)),
	}
	for _, s := range d.Stalls {
		b.Stalls = append(b.Stalls, s.toDomain())
	}
	return b
}

type bookingDTO struct {
	Event       eventDTO  `json:"event"`
	BoothID     string    `json:"boothId"`
	BoothNumber string    `json:"boothNumber"`
	Status      string    `json:"status"`
	BookedAt    time.Time `json:"bookedAt"`
}

func (d bookingDTO) toDomain() domain.Booking {
	return domain.Booking{
		Event:       domain.EventRef{ID: d.Event.ID, Name: d.Event.Name, Date: d.Event.Date},
		BoothID:     d.BoothID,
		BoothNumber: d.BoothNumber,
		Status:      d.Status,
		BookedAt:    d.BookedAt,
	}
}

type leadDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"companyName"`
	Mobile      string    `json:"mobile"`
	Status      string    `json:"status"`
	LeadModel   string    `json:"leadModel"`
	CapturedAt  time.Time `json:"capturedAt"`
	Message     string    `json:"message"`
}

func (d leadDTO) toDomain() domain.Lead {
	return domain.Lead{
		ID:          d.ID,
		Name:        d.Name,
		Email:       d.Email,
		CompanyName: d.CompanyName,
		Mobile:      d.Mobile,
		Status:      d.Status,
		LeadModel:   domain.LeadModel(d.LeadModel),
		CapturedAt:  d.CapturedAt,
		Message:     d.Message,
	}
}

type contentDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

type galleryImageDTO struct {
	ID          string    `json:"id"`
	FileURL     string    `json:"fileUrl"`
	Description string    `json:"description"`
	UploadDate  time.Time `json:"uploadDate"`
}
