package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/api/metrics"
	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

const defaultDirectoryLimit = 10

// DirectoryService is the exhibitor/visitor/lead browsing and capture flow.
// Summary statistics are computed over the loaded page only; the upstream
// contract exposes no global aggregates, so the fields say so in their names.
type DirectoryService struct {
	gw  ports.DirectoryGateway
	log zerolog.Logger
}

func NewDirectoryService(gw ports.DirectoryGateway, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{gw: gw, log: log}
}

// Exhibitors fetches one page of the exhibitor directory.
func (s *DirectoryService) Exhibitors(ctx context.Context, token string, q ports.PageQuery) (*ports.DirectoryPage, error) {
	metrics.ScreenFetchesTotal.WithLabelValues("exhibitors").Inc()
	return s.directoryPage(ctx, token, q, s.gw.ListExhibitors)
}

// Visitors fetches one page of the visitor directory.
func (s *DirectoryService) Visitors(ctx context.Context, token string, q ports.PageQuery) (*ports.DirectoryPage, error) {
	metrics.ScreenFetchesTotal.WithLabelValues("visitors").Inc()
	return s.directoryPage(ctx, token, q, s.gw.ListVisitors)
}

func (s *DirectoryService) directoryPage(
	ctx context.Context,
	token string,
	q ports.PageQuery,
	list func(context.Context, string, ports.PageQuery) (*ports.PrincipalPage, error),
) (*ports.DirectoryPage, error) {
	q = normalizePage(q)

	page, err := list(ctx, token, q)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, p := range page.Docs {
		// A directory entry is counted active when it carries a usable
		// contact email; the upstream record has no status field here.
		if strings.TrimSpace(p.Email) != "" {
			active++
		}
	}

	return &ports.DirectoryPage{
		Docs: page.Docs,
		Stats: ports.DirectoryStats{
			TotalDocs:    page.TotalDocs,
			ActiveOnPage: active,
		},
		Page:       q.Page,
		TotalPages: page.TotalPages,
		HasPrev:    q.Page > 1,
		HasNext:    page.TotalPages > 0 && q.Page < page.TotalPages,
	}, nil
}

// Leads fetches one page of the principal's captured leads.
func (s *DirectoryService) Leads(ctx context.Context, token string, q ports.PageQuery) (*ports.LeadListing, error) {
	metrics.ScreenFetchesTotal.WithLabelValues("leads").Inc()
	q = normalizePage(q)

	page, err := s.gw.ListLeads(ctx, token, q)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, l := range page.Docs {
		if l.Status == "active" {
			active++
		}
	}

	return &ports.LeadListing{
		Docs: page.Docs,
		Stats: ports.DirectoryStats{
			TotalDocs:    page.TotalDocs,
			ActiveOnPage: active,
		},
		Page:       q.Page,
		TotalPages: page.TotalPages,
		HasPrev:    q.Page > 1,
		HasNext:    page.TotalPages > 0 && q.Page < page.TotalPages,
	}, nil
}

// CaptureLead records another principal as a lead, with an optional note.
func (s *DirectoryService) CaptureLead(ctx context.Context, token, leadID, message string) error {
	if leadID == "" {
		return domain.NewValidationError("leadId", "is required")
	}
	if err := s.gw.AddLead(ctx, token, leadID, message); err != nil {
		return err
	}
	s.log.Info().Str("lead_id", leadID).Msg("lead captured")
	return nil
}

func normalizePage(q ports.PageQuery) ports.PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultDirectoryLimit
	}
	return q
}
