package gateway

import (
	"context"

	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

type directoryEnvelope struct {
	Data struct {
		Docs       []principalDTO `json:"docs"`
		TotalDocs  int            `json:"totalDocs"`
		TotalPages int            `json:"totalPages"`
	} `json:"data"`
}

func (c *Client) listDirectory(ctx context.Context, token, path string, q ports.PageQuery, fallback string) (*ports.PrincipalPage, error) {
	body := map[string]any{
		"search": q.Search,
		"page":   q.Page,
		"limit":  q.Limit,
	}
	var resp directoryEnvelope
	if err := c.postJSON(ctx, token, path, body, &resp, fallback); err != nil {
		return nil, err
	}

	page := &ports.PrincipalPage{
		Docs:       make([]domain.Principal, 0, len(resp.Data.Docs)),
		TotalDocs:  resp.Data.TotalDocs,
		TotalPages: resp.Data.TotalPages,
	}
	for _, d := range resp.Data.Docs {
		page.Docs = append(page.Docs, d.toDomain())
	}
	return page, nil
}

// ListExhibitors fetches one page of the exhibitor directory.
func (c *Client) ListExhibitors(ctx context.Context, token string, q ports.PageQuery) (*ports.PrincipalPage, error) {
	return c.listDirectory(ctx, token, "/user/get-exhibitors", q, "failed to load exhibitors")
}

// ListVisitors fetches one page of the visitor directory.
func (c *Client) ListVisitors(ctx context.Context, token string, q ports.PageQuery) (*ports.PrincipalPage, error) {
	return c.listDirectory(ctx, token, "/user/get-visitors", q, "failed to load visitors")
}

// ListLeads fetches one page of the principal's captured leads.
func (c *Client) ListLeads(ctx context.Context, token string, q ports.PageQuery) (*ports.LeadPage, error) {
	body := map[string]any{
		"search": q.Search,
		"page":   q.Page,
		"limit":  q.Limit,
	}
	var resp struct {
		Data struct {
			Docs       []leadDTO `json:"docs"`
			TotalDocs  int       `json:"totalDocs"`
			TotalPages int       `json:"totalPages"`
		} `json:"data"`
	}
	if err := c.postJSON(ctx, token, "/user/get-lead", body, &resp, "failed to load leads"); err != nil {
		return nil, err
	}

	page := &ports.LeadPage{
		Docs:       make([]domain.Lead, 0, len(resp.Data.Docs)),
		TotalDocs:  resp.Data.TotalDocs,
		TotalPages: resp.Data.TotalPages,
	}
	for _, d := range resp.Data.Docs {
		page.Docs = append(page.Docs, d.toDomain())
	}
	return page, nil
}

// AddLead captures a contact as a lead, with an optional note.
func (c *Client) AddLead(ctx context.Context, token, leadID, message string) error {
	body := map[string]string{"leadId": leadID}
	if message != "" {
		body["message"] = message
	}
	return c.postJSON(ctx, token, "/user/add-lead", body, nil, "failed to capture lead")
}
