package tickspot

import (
	"context"
)

// Service is the surface of the Tickspot API the application consumes.
// *Client implements it; tests substitute fakes.
type Service interface {
	GetProjects(ctx context.Context) ([]Project, error)
	GetTasks(ctx context.Context) ([]Task, error)
	GetClients(ctx context.Context) ([]ClientRecord, error)
	GetEntries(ctx context.Context, filters EntryFilters) ([]Entry, error)
	CreateEntry(ctx context.Context, req CreateEntryRequest) (Entry, error)
}

var _ Service = (*Client)(nil)
