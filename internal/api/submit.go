package api

import (
	"context"
	"path/filepath"

	"pytick/internal/csvio"
	"pytick/internal/domain"
	"pytick/internal/errors"
	"pytick/internal/tickspot"
	"pytick/internal/validation"
)

// SubmitEntry posts one entry and returns the identifier the service
// assigned. date defaults to today's local calendar date when empty; notes
// may be empty. The POST is issued once and never retried.
func (a *apiImpl) SubmitEntry(ctx context.Context, date string, hours float64, notes string, taskID int64) (int64, error) {
	if date == "" {
		date = timeNow().Format(validation.DateFormat)
	}
	created, err := a.service.CreateEntry(ctx, tickspot.CreateEntryRequest{
		Date:   date,
		Hours:  hours,
		Notes:  notes,
		TaskID: taskID,
		UserID: a.userID,
	})
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

// SubmitBatch submits rows strictly sequentially in source order and records
// each assigned identifier positionally. After the batch a reconciliation
// log of the submitted rows augmented with entry_id is written to
// logs/<timestamp>.csv; the returned string is its path.
//
// On a row failure the batch aborts, but the rows submitted before the
// failure are still logged. Those entries already exist at the service and
// the log is the only record of their identifiers. The error names the
// failing row.
func (a *apiImpl) SubmitBatch(ctx context.Context, rows []domain.BatchRow) ([]domain.LoggedRow, string, error) {
	validator := validation.NewEntryValidator()
	logged := make([]domain.LoggedRow, 0, len(rows))

	var rowErr error
	for i, row := range rows {
		req, err := a.buildRowRequest(validator, row)
		if err != nil {
			rowErr = errors.NewWriteError(i, 0, err)
			break
		}
		created, err := a.service.CreateEntry(ctx, req)
		if err != nil {
			rowErr = errors.NewWriteError(i, 0, err)
			break
		}
		logged = append(logged, domain.LoggedRow{BatchRow: row, EntryID: created.ID})
	}

	if len(logged) == 0 {
		return nil, "", rowErr
	}

	logPath := filepath.Join(a.logDir, timeNow().Format("2006-01-02_150405")+".csv")
	if err := csvio.WriteFile(logPath, csvio.LogTable(logged)); err != nil {
		if rowErr != nil {
			return logged, "", rowErr
		}
		return logged, "", err
	}
	return logged, logPath, rowErr
}

// buildRowRequest parses a raw batch row into a create request. Hours and
// task_id must parse; date and notes pass through as the source had them.
func (a *apiImpl) buildRowRequest(v *validation.EntryValidator, row domain.BatchRow) (tickspot.CreateEntryRequest, error) {
	hours, err := v.ParseHours(row.Hours)
	if err != nil {
		return tickspot.CreateEntryRequest{}, err
	}
	taskID, err := v.ParseID("task_id", row.TaskID)
	if err != nil {
		return tickspot.CreateEntryRequest{}, err
	}
	date := row.Date
	if date == "" {
		date = timeNow().Format(validation.DateFormat)
	}
	return tickspot.CreateEntryRequest{
		Date:   date,
		Hours:  hours,
		Notes:  row.Notes,
		TaskID: taskID,
		UserID: a.userID,
	}, nil
}
