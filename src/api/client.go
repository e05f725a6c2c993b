// Package api implements the HTTP contract with the AutoViz service:
// file upload with column inference, chart specification generation and
// data export encoding. The client holds no state between calls.
package api

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
)

const defaultTimeout = 120 * time.Second

// Client talks to one AutoViz service instance.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient returns a client for the service at baseURL (e.g.
// "http://localhost:5000"). A trailing slash is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
}

// BaseURL reports the configured service address.
func (c *Client) BaseURL() string { return c.baseURL }

// Upload posts the named file as multipart field "file" and returns the
// decoded response. A transport-level failure or a non-JSON body yields an
// error; a service-level failure comes back as Success=false with Error set.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (*UploadResponse, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	var out UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode upload response (status %s): %w", resp.Status, err)
	}
	return &out, nil
}

// GenerateChart posts the chart configuration and returns the decoded
// response carrying the JSON-encoded chart specification.
func (c *Client) GenerateChart(ctx context.Context, cfg ChartConfig) (*ChartResponse, error) {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate_chart", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generate_chart request: %w", err)
	}
	defer resp.Body.Close()

	var out ChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode generate_chart response (status %s): %w", resp.Status, err)
	}
	return &out, nil
}

// ExportData fetches the current dataset encoded in the given format
// ("csv" or "json") and returns the raw payload. Any non-2xx status is an
// export failure.
func (c *Client) ExportData(ctx context.Context, format string) ([]byte, error) {
	u := c.baseURL + "/export_data/" + url.PathEscape(format)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("export_data request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("export_data/%s failed: %s", format, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// DataStats fetches summary statistics for the currently uploaded dataset.
func (c *Client) DataStats(ctx context.Context) (*DataStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get_data_stats", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get_data_stats request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get_data_stats failed: %s", resp.Status)
	}
	var out DataStats
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode get_data_stats response: %w", err)
	}
	return &out, nil
}
