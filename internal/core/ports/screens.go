package ports

import (
	"context"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
)

// CatalogCounters are the fold-derived numbers shown above the catalog:
// they are computed over the currently loaded collections, not fetched.
type CatalogCounters struct {
	ActiveEvents       int `json:"active_events"`
	TotalStalls        int `json:"total_stalls"`
	DistinctCategories int `json:"distinct_categories"`
}

// StallListing is the booths-with-stalls view for one event, with its
// deduplicated category list and derived counters.
type StallListing struct {
	Booths     []domain.Booth  `json:"booths"`
	Categories []string        `json:"categories"`
	Counters   CatalogCounters `json:"counters"`
}

// CatalogService is the discovery and application flow over events, booths,
// and stalls.
type CatalogService interface {
	ListEvents(ctx context.Context, token string, q PageQuery) (*EventPage, error)
	ListStalls(ctx context.Context, token, eventID, search, category string) (*StallListing, error)
	// ApplyForStall enforces eligibility before submitting: the stall must be
	// pending and the exhibitor must not already hold a pending application.
	// On success the event's stalls are re-fetched and returned.
	ApplyForStall(ctx context.Context, token, exhibitorID, eventID string, app StallApplication) (*StallListing, error)
}

// HistoryPage is a booking page plus the pagination gating flags the screen
// renders: HasPrev is false exactly on page 1, HasNext exactly on the last.
type HistoryPage struct {
	Bookings   []domain.Booking `json:"bookings"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	HasPrev    bool             `json:"has_prev"`
	HasNext    bool             `json:"has_next"`
}

// BookingService is the read-only booking history screen.
type BookingService interface {
	History(ctx context.Context, token string, q HistoryQuery) (*HistoryPage, error)
}

// DirectoryStats are page-local summary numbers. ActiveOnPage deliberately
// counts only the loaded page; the backend supplies no global aggregate.
type DirectoryStats struct {
	TotalDocs    int `json:"total_docs"`
	ActiveOnPage int `json:"active_on_page"`
}

// DirectoryPage is a page of exhibitors or visitors plus its stats.
type DirectoryPage struct {
	Docs       []domain.Principal `json:"docs"`
	Stats      DirectoryStats     `json:"stats"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	HasPrev    bool               `json:"has_prev"`
	HasNext    bool               `json:"has_next"`
}

// LeadListing is a page of captured leads plus its stats.
type LeadListing struct {
	Docs       []domain.Lead  `json:"docs"`
	Stats      DirectoryStats `json:"stats"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	HasPrev    bool           `json:"has_prev"`
	HasNext    bool           `json:"has_next"`
}

// DirectoryService is the exhibitor/visitor/lead browsing and capture flow.
type DirectoryService interface {
	Exhibitors(ctx context.Context, token string, q PageQuery) (*DirectoryPage, error)
	Visitors(ctx context.Context, token string, q PageQuery) (*DirectoryPage, error)
	Leads(ctx context.Context, token string, q PageQuery) (*LeadListing, error)
	CaptureLead(ctx context.Context, token, leadID, message string) error
}

// ContentKind selects which content collection an operation targets.
type ContentKind string

const (
	KindProduct ContentKind = "product"
	KindService ContentKind = "service"
	KindGallery ContentKind = "gallery"
)

// ContentService is the uniform list/upsert/delete flow over products,
// services, and gallery images.
type ContentService interface {
	Products(ctx context.Context, token string, page, limit int) ([]domain.Product, error)
	Services(ctx context.Context, token string, page, limit int) ([]domain.Service, error)
	Gallery(ctx context.Context, token string, page, limit int) ([]domain.GalleryImage, error)
	Upsert(ctx context.Context, token string, kind ContentKind, in ContentUpsert) error
	UploadGalleryImage(ctx context.Context, token string, in GalleryUpload) error
	Delete(ctx context.Context, token string, kind ContentKind, id string) error
}

// ProfileResult reports the outcome of the two-phase profile update. The
// profile mutation commits upstream first; QRUpdated is false when the
// follow-up QR upload could not be completed.
type ProfileResult struct {
	Principal *domain.Principal `json:"principal"`
	QRUpdated bool              `json:"qr_updated"`
}

// ProfileService is the principal's own record: edits and password changes.
type ProfileService interface {
	Update(ctx context.Context, token string, role domain.Role, in ProfileUpdate) (*ProfileResult, error)
	ChangePassword(ctx context.Context, token string, role domain.Role, current, newPassword, confirm string) error
}
