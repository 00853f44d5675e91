package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/api/metrics"
	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// Browser is the stateful catalog view-model: the loaded event list, the
// selected event with its booths and categories, and the active filters.
// Every input change triggers a refresh; refreshes carry a monotonically
// increasing generation, and a completion that lost the race to a newer one
// is discarded rather than allowed to overwrite newer state.
type Browser struct {
	mu sync.Mutex

	svc   ports.CatalogService
	token string
	log   zerolog.Logger
	now   func() time.Time

	gen uint64

	events          []domain.Event
	selectedEventID string
	search          string
	category        string
	booths          []domain.Booth
	categories      []string
	loading         bool
}

// BrowserState is a point-in-time copy of the browser's view data.
type BrowserState struct {
	Events          []domain.Event        `json:"events"`
	SelectedEventID string                `json:"selected_event_id"`
	Search          string                `json:"search"`
	Category        string                `json:"category"`
	Booths          []domain.Booth        `json:"booths"`
	Categories      []string              `json:"categories"`
	Counters        ports.CatalogCounters `json:"counters"`
	Loading         bool                  `json:"loading"`
}

// NewBrowser creates a Browser bound to one session's token.
func NewBrowser(svc ports.CatalogService, token string, log zerolog.Logger) *Browser {
	return &Browser{svc: svc, token: token, log: log, now: time.Now}
}

// LoadEvents fetches the event list page into the browser.
func (b *Browser) LoadEvents(ctx context.Context, q ports.PageQuery) error {
	page, err := b.svc.ListEvents(ctx, b.token, q)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.events = page.Events
	b.mu.Unlock()
	return nil
}

// SelectEvent selects an event, or collapses it when it is already the
// selected one. Collapsing clears booths, categories, and both filters back
// to their initial values.
func (b *Browser) SelectEvent(ctx context.Context, eventID string) error {
	b.mu.Lock()
	if b.selectedEventID == eventID {
		b.selectedEventID = ""
		b.search = ""
		b.category = ""
		b.booths = nil
		b.categories = nil
		b.loading = false
		b.gen++ // invalidate any in-flight refresh
		b.mu.Unlock()
		return nil
	}
	b.selectedEventID = eventID
	b.search = ""
	b.category = ""
	b.mu.Unlock()

	return b.refresh(ctx)
}

// SetSearch updates the free-text filter and refreshes.
func (b *Browser) SetSearch(ctx context.Context, search string) error {
	b.mu.Lock()
	b.search = search
	selected := b.selectedEventID
	b.mu.Unlock()
	if selected == "" {
		return nil
	}
	return b.refresh(ctx)
}

// SetCategory updates the category filter and refreshes.
func (b *Browser) SetCategory(ctx context.Context, category string) error {
	b.mu.Lock()
	b.category = category
	selected := b.selectedEventID
	b.mu.Unlock()
	if selected == "" {
		return nil
	}
	return b.refresh(ctx)
}

// Apply submits a stall application for the selected event and, on success,
// replaces the loaded booths with the re-fetched listing. On failure the
// browser state is left untouched so entered values stay meaningful.
func (b *Browser) Apply(ctx context.Context, exhibitorID string, app ports.StallApplication) error {
	b.mu.Lock()
	eventID := b.selectedEventID
	b.mu.Unlock()
	if eventID == "" {
		return domain.ErrEventNotSelected
	}

	listing, err := b.svc.ApplyForStall(ctx, b.token, exhibitorID, eventID, app)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.booths = listing.Booths
	b.categories = listing.Categories
	b.mu.Unlock()
	return nil
}

// State returns a copy of the current view data with derived counters.
func (b *Browser) State() BrowserState {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	counters := ports.CatalogCounters{DistinctCategories: len(b.categories)}
	for _, e := range b.events {
		if e.Active(now) {
			counters.ActiveEvents++
		}
	}
	for _, booth := range b.booths {
		counters.TotalStalls += len(booth.Stalls)
	}

	return BrowserState{
		Events:          append([]domain.Event(nil), b.events...),
		SelectedEventID: b.selectedEventID,
		Search:          b.search,
		Category:        b.category,
		Booths:          append([]domain.Booth(nil), b.booths...),
		Categories:      append([]string(nil), b.categories...),
		Counters:        counters,
		Loading:         b.loading,
	}
}

// refresh fetches the stall listing for the current selection. The
// generation captured before the fetch must still be current when it
// completes, otherwise the result belongs to a superseded input state and is
// dropped.
func (b *Browser) refresh(ctx context.Context) error {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	eventID, search, category := b.selectedEventID, b.search, b.category
	b.loading = true
	b.mu.Unlock()

	listing, err := b.svc.ListStalls(ctx, b.token, eventID, search, category)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.gen != gen {
		metrics.StaleRefreshesTotal.Inc()
		b.log.Debug().Str("event_id", eventID).Msg("stale catalog refresh discarded")
		return nil
	}
	b.loading = false
	if err != nil {
		return err
	}
	b.booths = listing.Booths
	b.categories = listing.Categories
	return nil
}
