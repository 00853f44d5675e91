package gateway

import (
	"context"
	"net/url"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

// ListEvents fetches one page of events with optional free-text search.
func (c *Client) ListEvents(ctx context.Context, token string, q ports.PageQuery) (*ports.EventPage, error) {
	body := map[string]any{
		"search": q.Search,
		"page":   q.Page,
		"limit":  q.Limit,
	}
	var resp struct {
		Data struct {
			Docs       []eventDTO `json:"docs"`
			Total      int        `json:"total"`
			TotalPages int        `json:"totalPages"`
		} `json:"data"`
	}
	if err := c.postJSON(ctx, token, "/user/get-event-details", body, &resp, "failed to load events"); err != nil {
		return nil, err
	}

	page := &ports.EventPage{
		Events:     make([]domain.Event, 0, len(resp.Data.Docs)),
		Total:      resp.Data.Total,
		TotalPages: resp.Data.TotalPages,
	}
	for _, d := range resp.Data.Docs {
		page.Events = append(page.Events, d.toDomain())
	}
	return page, nil
}

// ListStalls fetches booths with nested stalls for one event, filtered
// server-side by search text and booth category.
func (c *Client) ListStalls(ctx context.Context, token, eventID, search, category string) ([]domain.Booth, error) {
	body := map[string]any{
		"eventId":  eventID,
		"search":   search,
		"category": category,
		"page":     1,
		"limit":    100,
	}
	var resp struct {
		Data struct {
			Booths []boothDTO `json:"booths"`
		} `json:"data"`
	}
	if err := c.postJSON(ctx, token, "/user/get-stall-details", body, &resp, "failed to load stalls"); err != nil {
		return nil, err
	}

	booths := make([]domain.Booth, 0, len(resp.Data.Booths))
	for _, d := range resp.Data.Booths {
		booths = append(booths, d.toDomain())
	}
	return booths, nil
}

// Categories fetches the distinct booth categories for one event. Blank
// values are dropped and duplicates collapsed here; the upstream list is not
// guaranteed clean.
func (c *Client) Categories(ctx context.Context, token, eventID string) ([]string, error) {
	body := map[string]string{"eventId": eventID}
	var resp struct {
		Data []struct {
			Category string `json:"category"`
		} `json:"data"`
	}
	if err := c.postJSON(ctx, token, "/user/get-category", body, &resp, "failed to load categories"); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(resp.Data))
	categories := make([]string, 0, len(resp.Data))
	for _, d := range resp.Data {
		if d.Category == "" {
			continue
		}
		if _, dup := seen[d.Category]; dup {
			continue
		}
		seen[d.Category] = struct{}{}
		categories = append(categories, d.Category)
	}
	return categories, nil
}

// ApplyForStall submits a stall application as multipart form data, with the
// optional brochure attached when present.
func (c *Client) ApplyForStall(ctx context.Context, token string, app ports.StallApplication) error {
	fields := url.Values{}
	fields.Set("stallId", app.StallID)
	fields.Set("name", app.Name)
	fields.Set("designation", app.Designation)
	fields.Set("email", app.Email)
	fields.Set("mobile", app.Mobile)
	if app.Representatives != "" {
		fields.Set("representatives", app.Representatives)
	}
	var files []ports.FileUpload
	if app.Brochure != nil {
		files = append(files, *app.Brochure)
	}
	return c.postMultipart(ctx, token, "/user/apply-stall", fields, files, nil, "failed to submit application")
}
