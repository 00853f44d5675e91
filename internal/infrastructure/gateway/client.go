// Package gateway is the typed client for the upstream event-management
// backend. Every call is a JSON or multipart POST (the upstream uses POST
// even for reads) carrying the session's bearer token; non-2xx responses are
// surfaced as domain.UpstreamError with the backend's own {message} body.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/expofair/exhibitor-portal/internal/api/metrics"
	"github.com/expofair/exhibitor-portal/internal/core/domain"
	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// maxResponseBytes bounds upstream response bodies; listings are small and
// images travel as URLs, never inline.
const maxResponseBytes = 4 << 20

// Client talks to the upstream backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New builds a Client for the given base URL. A default timeout is applied
// when none is provided; a hung upstream request must not hang the portal.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// errorEnvelope is the upstream's error body shape.
type errorEnvelope struct {
	Message string `json:"message"`
}

// postJSON issues a JSON POST and decodes the response into out (when out is
// non-nil). fallback is the per-action generic message used when the error
// body carries none.
func (c *Client) postJSON(ctx context.Context, token, path string, body, out any, fallback string) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("gateway: encode %s: %w", path, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("gateway: build %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, token, path, out, fallback)
}

// postMultipart issues a multipart/form-data POST with the given form fields
// and file parts. Fields travel as url.Values so a repeated field name emits
// one part per value.
func (c *Client) postMultipart(ctx context.Context, token, path string, fields url.Values, files []ports.FileUpload, out any, fallback string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			if err := w.WriteField(k, v); err != nil {
				return fmt.Errorf("gateway: form field %s: %w", k, err)
			}
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return fmt.Errorf("gateway: form file %s: %w", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return fmt.Errorf("gateway: form file %s: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gateway: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("gateway: build %s: %w", path, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, token, path, out, fallback)
}

func (c *Client) do(req *http.Request, token, path string, out any, fallback string) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues(path, "network_error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("gateway: %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues(path, "read_error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("gateway: read %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestDuration.WithLabelValues(path, "upstream_error").Observe(time.Since(start).Seconds())
		var env errorEnvelope
		_ = json.Unmarshal(raw, &env)
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		c.log.Debug().Str("path", path).Int("status", resp.StatusCode).Str("message", msg).Msg("upstream rejected request")
		return &domain.UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	metrics.UpstreamRequestDuration.WithLabelValues(path, "ok").Observe(time.Since(start).Seconds())

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("gateway: decode %s: %w", path, err)
	}
	return nil
}
