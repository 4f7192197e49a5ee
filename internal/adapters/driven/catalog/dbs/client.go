package dbs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Catalog = (*Client)(nil)

const (
	// DefaultUserAgent identifies the tool to the DBS frontend.
	DefaultUserAgent = "samplelist"

	// HeaderErrorDetail carries the DBS server's error description.
	HeaderErrorDetail = "X-Error-Detail"

	filesPath = "/files"

	// maxErrorBody bounds how much of an error body ends up in messages.
	maxErrorBody = 512
)

// Config configures a Client.
type Config struct {
	// URL is the reader base URL. Defaults to domain.DefaultCatalogURL.
	URL string

	// RatePerSecond paces requests. Zero disables pacing.
	RatePerSecond float64

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// UserAgent overrides DefaultUserAgent.
	UserAgent string
}

// fileRecord is one element of the /files response.
type fileRecord struct {
	LogicalFileName string `json:"logical_file_name"`
}

// Client is a DBS reader client.
type Client struct {
	client  *resty.Client
	baseURL string
	pacer   *Pacer
}

// NewClient creates a DBS reader client.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.URL, "/")
	if baseURL == "" {
		baseURL = domain.DefaultCatalogURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Client{
		client:  client,
		baseURL: baseURL,
		pacer:   NewPacer(cfg.RatePerSecond),
	}
}

// Endpoint returns the reader base URL.
func (c *Client) Endpoint() string {
	return c.baseURL
}

// ListFiles returns the logical file names of a dataset in response order.
func (c *Client) ListFiles(ctx context.Context, dataset string) ([]domain.FileRecord, error) {
	if dataset == "" {
		return nil, fmt.Errorf("list files: %w: empty dataset", domain.ErrInvalidInput)
	}

	if err := c.pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var rows []fileRecord
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"dataset": dataset,
			"detail":  "0",
		}).
		ForceContentType("application/json").
		SetResult(&rows).
		Get(filesPath)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	if err := classifyResponse(resp); err != nil {
		return nil, err
	}

	records := make([]domain.FileRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.FileRecord{LogicalFileName: row.LogicalFileName})
	}
	return records, nil
}

// classifyResponse converts a non-2xx response into an APIError.
func classifyResponse(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= 200 && code < 300 {
		return nil
	}

	message := resp.Header().Get(HeaderErrorDetail)
	if message == "" {
		message = strings.TrimSpace(resp.String())
	}
	if len(message) > maxErrorBody {
		message = message[:maxErrorBody] + "..."
	}
	if message == "" {
		message = resp.Status()
	}

	return &APIError{
		StatusCode: code,
		Message:    message,
		URL:        resp.Request.URL,
	}
}
