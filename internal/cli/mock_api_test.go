package cli

import (
	"context"
	"fmt"

	"pytick/internal/domain"
)

// mockAPI implements the api.API interface for testing. Canned results go
// in the value fields; err makes every service-backed call fail. Calls are
// recorded so tests can assert what the handlers asked for.
type mockAPI struct {
	reference []domain.ReferenceRow
	tasks     []domain.TaskListing
	projects  []domain.ProjectListing
	entries   []domain.Entry
	err       error

	nextEntryID int64

	submittedDate   string
	submittedHours  float64
	submittedNotes  string
	submittedTaskID int64
	submitCalls     int

	batches [][]domain.BatchRow

	queriedOpts  domain.QueryOptions
	reportTarget float64
}

func newMockAPI() *mockAPI {
	return &mockAPI{nextEntryID: 9000}
}

func (m *mockAPI) BuildReferenceTable(ctx context.Context) ([]domain.ReferenceRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.reference, nil
}

func (m *mockAPI) ListTasks(ctx context.Context) ([]domain.TaskListing, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tasks, nil
}

func (m *mockAPI) ListProjects(ctx context.Context) ([]domain.ProjectListing, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.projects, nil
}

func (m *mockAPI) SubmitEntry(ctx context.Context, date string, hours float64, notes string, taskID int64) (int64, error) {
	m.submitCalls++
	if m.err != nil {
		return 0, m.err
	}
	m.submittedDate = date
	m.submittedHours = hours
	m.submittedNotes = notes
	m.submittedTaskID = taskID
	m.nextEntryID++
	return m.nextEntryID, nil
}

func (m *mockAPI) SubmitBatch(ctx context.Context, rows []domain.BatchRow) ([]domain.LoggedRow, string, error) {
	m.batches = append(m.batches, rows)
	if m.err != nil {
		return nil, "", m.err
	}
	logged := make([]domain.LoggedRow, len(rows))
	for i, row := range rows {
		m.nextEntryID++
		logged[i] = domain.LoggedRow{BatchRow: row, EntryID: m.nextEntryID}
	}
	return logged, fmt.Sprintf("logs/batch-%d.csv", len(m.batches)), nil
}

func (m *mockAPI) QueryEntries(ctx context.Context, opts domain.QueryOptions) ([]domain.Entry, error) {
	m.queriedOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockAPI) DailyReport(entries []domain.Entry, targetHours float64) []domain.DailyReportRow {
	m.reportTarget = targetHours
	byDate := make(map[string]float64)
	var order []string
	for _, e := range entries {
		if _, seen := byDate[e.Date]; !seen {
			order = append(order, e.Date)
		}
		byDate[e.Date] += e.Hours
	}
	report := make([]domain.DailyReportRow, 0, len(order))
	for _, date := range order {
		report = append(report, domain.DailyReportRow{
			Date:           date,
			Hours:          byDate[date],
			RemainingHours: targetHours - byDate[date],
		})
	}
	return report
}
