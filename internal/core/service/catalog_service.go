package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/api/metrics"
	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// CatalogService implements event/stall discovery and the application flow.
type CatalogService struct {
	gw  ports.CatalogGateway
	log zerolog.Logger
}

func NewCatalogService(gw ports.CatalogGateway, log zerolog.Logger) *CatalogService {
	return &CatalogService{gw: gw, log: log}
}

// ListEvents fetches one page of events.
func (s *CatalogService) ListEvents(ctx context.Context, token string, q ports.PageQuery) (*ports.EventPage, error) {
	metrics.ScreenFetchesTotal.WithLabelValues("catalog").Inc()
	return s.gw.ListEvents(ctx, token, q)
}

// ListStalls fetches booths with nested stalls for one event, alongside the
// event's category list and the counters derived from the loaded data.
func (s *CatalogService) ListStalls(ctx context.Context, token, eventID, search, category string) (*ports.StallListing, error) {
	if eventID == "" {
		return nil, domain.ErrEventNotSelected
	}
	metrics.ScreenFetchesTotal.WithLabelValues("catalog").Inc()

	booths, err := s.gw.ListStalls(ctx, token, eventID, search, category)
	if err != nil {
		return nil, err
	}
	categories, err := s.gw.Categories(ctx, token, eventID)
	if err != nil {
		return nil, err
	}

	return &ports.StallListing{
		Booths:     booths,
		Categories: categories,
		Counters:   s.counters(booths, categories),
	}, nil
}

// ApplyForStall enforces the client-side eligibility rule before any network
// submission: the stall must still be pending and the exhibitor must not
// already hold a pending application on it. On success the event's stalls
// are re-fetched so the caller sees the new application.
func (s *CatalogService) ApplyForStall(ctx context.Context, token, exhibitorID, eventID string, app ports.StallApplication) (*ports.StallListing, error) {
	booths, err := s.gw.ListStalls(ctx, token, eventID, "", "")
	if err != nil {
		return nil, fmt.Errorf("verify stall: %w", err)
	}

	stall, ok := findStall(booths, app.StallID)
	if !ok {
		return nil, domain.ErrStallNotFound
	}
	if !stall.CanApply(exhibitorID) {
		return nil, domain.ErrStallUnavailable
	}

	if err := s.gw.ApplyForStall(ctx, token, app); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("stall_id", app.StallID).
		Str("event_id", eventID).
		Str("exhibitor_id", exhibitorID).
		Msg("stall application submitted")

	return s.ListStalls(ctx, token, eventID, "", "")
}

// counters folds over the loaded collections; none of these numbers come
// from the backend.
func (s *CatalogService) counters(booths []domain.Booth, categories []string) ports.CatalogCounters {
	total := 0
	for _, b := range booths {
		total += len(b.Stalls)
	}
	return ports.CatalogCounters{
		TotalStalls:        total,
		DistinctCategories: len(categories),
	}
}

func findStall(booths []domain.Booth, stallID string) (domain.Stall, bool) {
	for _, b := range booths {
		for _, st := range b.Stalls {
			if st.ID == stallID {
				return st, true
			}
		}
	}
	return domain.Stall{}, false
}
