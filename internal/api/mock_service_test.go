package api

import (
	"context"

	"pytick/internal/errors"
	"pytick/internal/tickspot"
)

// mockService implements the tickspot.Service interface for testing
type mockService struct {
	projects []tickspot.Project
	tasks    []tickspot.Task
	clients  []tickspot.ClientRecord
	entries  []tickspot.Entry

	// fetchErr, when set, makes the named resource's fetch fail
	fetchErr map[string]error

	// created collects every CreateEntry request in call order
	created []tickspot.CreateEntryRequest
	// createIDs are handed out positionally to successful creates
	createIDs []int64
	// createFailAt makes the create at that call index fail (-1 = never)
	createFailAt int
}

// newMockService creates a mock with no failure configured
func newMockService() *mockService {
	return &mockService{
		fetchErr:     make(map[string]error),
		createFailAt: -1,
	}
}

func (m *mockService) GetProjects(ctx context.Context) ([]tickspot.Project, error) {
	if err := m.fetchErr["projects"]; err != nil {
		return nil, err
	}
	return m.projects, nil
}

func (m *mockService) GetTasks(ctx context.Context) ([]tickspot.Task, error) {
	if err := m.fetchErr["tasks"]; err != nil {
		return nil, err
	}
	return m.tasks, nil
}

func (m *mockService) GetClients(ctx context.Context) ([]tickspot.ClientRecord, error) {
	if err := m.fetchErr["clients"]; err != nil {
		return nil, err
	}
	return m.clients, nil
}

func (m *mockService) GetEntries(ctx context.Context, filters tickspot.EntryFilters) ([]tickspot.Entry, error) {
	if err := m.fetchErr["entries"]; err != nil {
		return nil, err
	}
	return m.entries, nil
}

func (m *mockService) CreateEntry(ctx context.Context, req tickspot.CreateEntryRequest) (tickspot.Entry, error) {
	call := len(m.created)
	if m.createFailAt >= 0 && call == m.createFailAt {
		return tickspot.Entry{}, errors.NewWriteError(-1, 422, nil)
	}
	m.created = append(m.created, req)

	id := int64(call + 1)
	if call < len(m.createIDs) {
		id = m.createIDs[call]
	}
	return tickspot.Entry{
		ID:     id,
		Date:   req.Date,
		Hours:  req.Hours,
		Notes:  req.Notes,
		TaskID: req.TaskID,
	}, nil
}

var _ tickspot.Service = (*mockService)(nil)
