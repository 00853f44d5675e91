package ports

import (
	"context"
	"time"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
)

// FileUpload is one part of a multipart submission. Content is held in
// memory; uploads in this system are small images and QR codes.
type FileUpload struct {
	Field    string
	Filename string
	Content  []byte
}

// PageQuery carries the shared pagination + free-text search parameters.
type PageQuery struct {
	Search string
	Page   int
	Limit  int
}

// EventPage is one page of events plus the backend's aggregate counts.
type EventPage struct {
	Events     []domain.Event
	Total      int
	TotalPages int
}

// BookingPage is one page of booking history.
type BookingPage struct {
	Bookings   []domain.Booking
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// PrincipalPage is one page of an exhibitor or visitor directory.
type PrincipalPage struct {
	Docs       []domain.Principal
	TotalDocs  int
	TotalPages int
}

// LeadPage is one page of captured leads.
type LeadPage struct {
	Docs       []domain.Lead
	TotalDocs  int
	TotalPages int
}

// StallApplication is the multipart payload submitted when an exhibitor
// applies for a stall.
type StallApplication struct {
	StallID         string
	Name            string
	Designation     string
	Email           string
	Mobile          string
	Representatives string
	Brochure        *FileUpload // optional
}

// HistoryQuery filters the booking history listing. FromDate/ToDate are
// zero when unset.
type HistoryQuery struct {
	Search   string
	FromDate time.Time
	ToDate   time.Time
	Page     int
	Limit    int
}

// ContentUpsert is the multipart create-or-update payload for products and
// services. When ID is set and Files is empty, ExistingImages must carry the
// URLs already stored so the backend does not treat omission as deletion.
type ContentUpsert struct {
	ID             string
	Name           string
	Description    string
	Files          []FileUpload
	ExistingImages []string
}

// GalleryUpload is the multipart payload for a new gallery image.
type GalleryUpload struct {
	Image       FileUpload
	Description string
}

// ProfileUpdate is the multipart payload for the profile screen. Each image
// slot carries either a new file or the existing stored URL; for exhibitors
// all three slots must be filled one way or the other.
type ProfileUpdate struct {
	ID          string
	Name        string
	Email       string
	Mobile      string
	CompanyName string
	Designation string
	About       string

	ProfileImage *FileUpload
	CoverImage   *FileUpload
	CompanyLogo  *FileUpload

	ExistingProfileImage string
	ExistingCoverImage   string
	ExistingCompanyLogo  string
}

// AuthGateway covers credential exchange and identity lookup.
type AuthGateway interface {
	Login(ctx context.Context, role domain.Role, email, password string) (token string, principal *domain.Principal, err error)
	WhoAmI(ctx context.Context, token string) (*domain.Principal, error)
	ChangePassword(ctx context.Context, token string, role domain.Role, currentPassword, newPassword string) error
}

// CatalogGateway covers event/stall discovery and stall applications.
type CatalogGateway interface {
	ListEvents(ctx context.Context, token string, q PageQuery) (*EventPage, error)
	ListStalls(ctx context.Context, token, eventID, search, category string) ([]domain.Booth, error)
	Categories(ctx context.Context, token, eventID string) ([]string, error)
	ApplyForStall(ctx context.Context, token string, app StallApplication) error
}

// BookingGateway covers the read-only booking history.
type BookingGateway interface {
	BookingHistory(ctx context.Context, token string, q HistoryQuery) (*BookingPage, error)
}

// DirectoryGateway covers the exhibitor/visitor/lead listings and capture.
type DirectoryGateway interface {
	ListExhibitors(ctx context.Context, token string, q PageQuery) (*PrincipalPage, error)
	ListVisitors(ctx context.Context, token string, q PageQuery) (*PrincipalPage, error)
	ListLeads(ctx context.Context, token string, q PageQuery) (*LeadPage, error)
	AddLead(ctx context.Context, token, leadID, message string) error
}

// ContentGateway covers product, service, and gallery management.
type ContentGateway interface {
	ListProducts(ctx context.Context, token string, page, limit int) ([]domain.Product, error)
	ListServices(ctx context.Context, token string, page, limit int) ([]domain.Service, error)
	ListGallery(ctx context.Context, token string, page, limit int) ([]domain.GalleryImage, error)
	UpsertProduct(ctx context.Context, token string, in ContentUpsert) error
	UpsertService(ctx context.Context, token string, in ContentUpsert) error
	UploadGalleryImage(ctx context.Context, token string, in GalleryUpload) error
	DeleteProduct(ctx context.Context, token, id string) error
	DeleteService(ctx context.Context, token, id string) error
	DeleteGalleryImage(ctx context.Context, token, id string) error
}

// ProfileGateway covers the principal's own record.
type ProfileGateway interface {
	UpdateProfile(ctx context.Context, token string, in ProfileUpdate) (*domain.Principal, error)
	UpdateQR(ctx context.Context, token string, qr FileUpload) (string, error)
}
