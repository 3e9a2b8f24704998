package api

import (
	"context"
	"strconv"
	"time"

	"pytick/internal/domain"
	"pytick/internal/tickspot"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// DefaultLogDir is where batch submission logs are written.
const DefaultLogDir = "logs"

// API defines the interface for all operations against the service.
type API interface {
	// Reference data operations
	BuildReferenceTable(ctx context.Context) ([]domain.ReferenceRow, error)
	ListTasks(ctx context.Context) ([]domain.TaskListing, error)
	ListProjects(ctx context.Context) ([]domain.ProjectListing, error)

	// Entry submission operations
	SubmitEntry(ctx context.Context, date string, hours float64, notes string, taskID int64) (int64, error)
	SubmitBatch(ctx context.Context, rows []domain.BatchRow) ([]domain.LoggedRow, string, error)

	// Entry query operations
	QueryEntries(ctx context.Context, opts domain.QueryOptions) ([]domain.Entry, error)
	DailyReport(entries []domain.Entry, targetHours float64) []domain.DailyReportRow
}

type apiImpl struct {
	service tickspot.Service
	mapper  *domain.Mapper
	userID  *int64
	logDir  string
}

// New creates a new API instance over the given service client. userID is
// the optional numeric user identifier sent with created entries; pass ""
// to let the service infer the token's user.
func New(service tickspot.Service, userID string) API {
	return &apiImpl{
		service: service,
		mapper:  domain.NewMapper(),
		userID:  parseUserID(userID),
		logDir:  DefaultLogDir,
	}
}

// NewWithLogDir creates an API instance that writes batch logs under logDir.
func NewWithLogDir(service tickspot.Service, userID string, logDir string) API {
	return &apiImpl{
		service: service,
		mapper:  domain.NewMapper(),
		userID:  parseUserID(userID),
		logDir:  logDir,
	}
}

func parseUserID(s string) *int64 {
	if s == "" {
		return nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
