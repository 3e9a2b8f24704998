package tickspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"pytick/internal/config"
	"pytick/internal/errors"
	"pytick/internal/logging"
)

// Client is an authenticated Tickspot API client. All calls are synchronous
// and blocking; the caller controls cancellation through the context.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	getHeaders   http.Header
	writeHeaders http.Header
}

// New creates a Tickspot client for the subscription named in the credentials.
func New(creds *config.Credentials) *Client {
	base := fmt.Sprintf("https://%s/%s/api/v2/", config.DefaultServiceHost, creds.SubscriptionID)
	return NewWithBaseURL(creds, base)
}

// NewWithBaseURL creates a client against an explicit base URL. Used by tests
// to point the client at a local server; base must end with a slash.
func NewWithBaseURL(creds *config.Credentials, base string) *Client {
	getHeaders := http.Header{}
	getHeaders.Set("Authorization", fmt.Sprintf("Token token=%s", creds.Token))
	getHeaders.Set("User-Agent", creds.UserAgent)

	writeHeaders := getHeaders.Clone()
	writeHeaders.Set("Content-Type", "application/json")

	return &Client{
		httpClient:   http.DefaultClient,
		baseURL:      base,
		getHeaders:   getHeaders,
		writeHeaders: writeHeaders,
	}
}

// GetProjects fetches all projects visible to the token's user
func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.getJSON(ctx, "projects.json", "projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetTasks fetches all tasks visible to the token's user
func (c *Client) GetTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.getJSON(ctx, "tasks.json", "tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetClients fetches all client records visible to the token's user
func (c *Client) GetClients(ctx context.Context) ([]ClientRecord, error) {
	var clients []ClientRecord
	if err := c.getJSON(ctx, "clients.json", "clients", &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetEntries fetches entries matching the given filters
func (c *Client) GetEntries(ctx context.Context, filters EntryFilters) ([]Entry, error) {
	path := "entries.json"
	if q := filters.Values().Encode(); q != "" {
		path += "?" + q
	}
	var entries []Entry
	if err := c.getJSON(ctx, path, "entries", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateEntry submits one entry. The returned Entry carries the identifier
// assigned by the service; a create response without an identifier is a
// response-shape error.
func (c *Client) CreateEntry(ctx context.Context, req CreateEntryRequest) (Entry, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Entry{}, errors.NewWriteError(-1, 0, fmt.Errorf("encoding request body: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"entries.json", bytes.NewReader(body))
	if err != nil {
		return Entry{}, errors.NewWriteError(-1, 0, err)
	}
	httpReq.Header = c.writeHeaders.Clone()

	logging.Debugf("POST %sentries.json %s\n", c.baseURL, string(body))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Entry{}, errors.NewWriteError(-1, 0, err)
	}
	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return Entry{}, errors.NewWriteError(-1, resp.StatusCode, fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Entry{}, errors.NewWriteError(-1, resp.StatusCode, fmt.Errorf("%s", string(respBody)))
	}

	var created Entry
	if err := json.Unmarshal(respBody, &created); err != nil {
		return Entry{}, errors.NewWriteError(-1, resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}
	if created.ID == 0 {
		return Entry{}, errors.NewResponseShapeError("id", "entries")
	}
	return created, nil
}

// getJSON issues a GET against path and decodes the JSON array response.
// resource names the collection for error reporting.
func (c *Client) getJSON(ctx context.Context, path string, resource string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.NewFetchError(resource, 0, err)
	}
	req.Header = c.getHeaders.Clone()

	logging.Debugf("GET %s%s\n", c.baseURL, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewFetchError(resource, 0, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return errors.NewFetchError(resource, resp.StatusCode, fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewFetchError(resource, resp.StatusCode, fmt.Errorf("%s", string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewFetchError(resource, resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}
