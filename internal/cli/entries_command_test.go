package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pytick/internal/domain"
	"pytick/internal/errors"
)

func newTestEntriesCommand(mock *mockAPI) (*EntriesCommand, *bytes.Buffer) {
	handler := NewEntriesCommand(mock)
	buf := &bytes.Buffer{}
	handler.out = buf
	return handler, buf
}

func TestEntriesCommandExecute(t *testing.T) {
	t.Run("prints queried entries as CSV", func(t *testing.T) {
		mock := newMockAPI()
		mock.entries = []domain.Entry{
			{EntryID: 9001, Date: "2024-01-02", Hours: 3.5, Notes: "standup", TaskID: 204, UserID: 7},
			{EntryID: 9002, Date: "2024-01-03", Hours: 2, TaskID: 205, UserID: 7},
		}
		handler, buf := newTestEntriesCommand(mock)

		err := handler.Execute(context.Background(), "2024-01-01", "2024-01-31", entriesFlags{})

		require.NoError(t, err)
		records, readErr := csv.NewReader(buf).ReadAll()
		require.NoError(t, readErr)
		require.Len(t, records, 3)
		assert.Equal(t, []string{
			"entry_id", "date", "hours", "notes", "locked",
			"created_at", "updated_at", "task_id", "user_id",
		}, records[0])
		assert.Equal(t, "9001", records[1][0])
		assert.Equal(t, "3.5", records[1][2])
		assert.Equal(t, "9002", records[2][0])
	})

	t.Run("passes the date range and filters through", func(t *testing.T) {
		mock := newMockAPI()
		handler, _ := newTestEntriesCommand(mock)

		flags := entriesFlags{projectID: "16", taskID: "204", userID: "7", billed: "true", billable: "false"}
		err := handler.Execute(context.Background(), "2024-01-01", "2024-01-31", flags)

		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", mock.queriedOpts.StartDate)
		assert.Equal(t, "2024-01-31", mock.queriedOpts.EndDate)
		require.NotNil(t, mock.queriedOpts.ProjectID)
		assert.Equal(t, int64(16), *mock.queriedOpts.ProjectID)
		require.NotNil(t, mock.queriedOpts.TaskID)
		assert.Equal(t, int64(204), *mock.queriedOpts.TaskID)
		require.NotNil(t, mock.queriedOpts.UserID)
		assert.Equal(t, int64(7), *mock.queriedOpts.UserID)
		require.NotNil(t, mock.queriedOpts.Billed)
		assert.True(t, *mock.queriedOpts.Billed)
		require.NotNil(t, mock.queriedOpts.Billable)
		assert.False(t, *mock.queriedOpts.Billable)
	})

	t.Run("absent filters stay nil", func(t *testing.T) {
		mock := newMockAPI()
		handler, _ := newTestEntriesCommand(mock)

		err := handler.Execute(context.Background(), "2024-01-01", "2024-01-31", entriesFlags{})

		require.NoError(t, err)
		assert.Nil(t, mock.queriedOpts.ProjectID)
		assert.Nil(t, mock.queriedOpts.TaskID)
		assert.Nil(t, mock.queriedOpts.UserID)
		assert.Nil(t, mock.queriedOpts.Billed)
		assert.Nil(t, mock.queriedOpts.Billable)
	})

	t.Run("invalid start date fails before any query", func(t *testing.T) {
		mock := newMockAPI()
		handler, buf := newTestEntriesCommand(mock)

		err := handler.Execute(context.Background(), "01/02/2024", "2024-01-31", entriesFlags{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "start_date")
		assert.Empty(t, mock.queriedOpts.StartDate)
		assert.Empty(t, buf.String())
	})

	t.Run("invalid billed filter is rejected", func(t *testing.T) {
		mock := newMockAPI()
		handler, _ := newTestEntriesCommand(mock)

		err := handler.Execute(context.Background(), "2024-01-01", "2024-01-31", entriesFlags{billed: "yes"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "billed")
	})

	t.Run("query failures surface as user messages", func(t *testing.T) {
		mock := newMockAPI()
		mock.err = errors.NewFetchError("entries", 503, nil)
		handler, _ := newTestEntriesCommand(mock)

		err := handler.Execute(context.Background(), "2024-01-01", "2024-01-31", entriesFlags{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query entries")
	})
}

func TestEntriesCommandFlagParsing(t *testing.T) {
	t.Run("-r consumes a space-separated target", func(t *testing.T) {
		mock := newMockAPI()
		root := NewRootCommand(mock)
		root.cmd.SetArgs([]string{"entries", "2024-01-01", "2024-01-31", "-r", "7.5"})

		err := root.Execute()

		require.NoError(t, err)
		assert.Equal(t, 7.5, mock.reportTarget)
		assert.Equal(t, "2024-01-01", mock.queriedOpts.StartDate)
		assert.Equal(t, "2024-01-31", mock.queriedOpts.EndDate)
	})

	t.Run("without -r no report is produced", func(t *testing.T) {
		mock := newMockAPI()
		root := NewRootCommand(mock)
		root.cmd.SetArgs([]string{"entries", "2024-01-01", "2024-01-31"})

		err := root.Execute()

		require.NoError(t, err)
		assert.Zero(t, mock.reportTarget)
	})

	t.Run("a bare -r demands a value", func(t *testing.T) {
		mock := newMockAPI()
		root := NewRootCommand(mock)
		root.cmd.SetArgs([]string{"entries", "2024-01-01", "2024-01-31", "-r"})

		err := root.Execute()

		require.Error(t, err)
	})

	t.Run("filter shorthands consume their values", func(t *testing.T) {
		mock := newMockAPI()
		root := NewRootCommand(mock)
		root.cmd.SetArgs([]string{"entries", "2024-01-01", "2024-01-31", "-p", "16", "-b", "true"})

		err := root.Execute()

		require.NoError(t, err)
		require.NotNil(t, mock.queriedOpts.ProjectID)
		assert.Equal(t, int64(16), *mock.queriedOpts.ProjectID)
		require.NotNil(t, mock.queriedOpts.Billed)
		assert.True(t, *mock.queriedOpts.Billed)
	})
}

func TestEntriesCommandExecuteReport(t *testing.T) {
	t.Run("prints the daily report instead of raw entries", func(t *testing.T) {
		mock := newMockAPI()
		mock.entries = []domain.Entry{
			{Date: "2024-01-02", Hours: 3},
			{Date: "2024-01-02", Hours: 2},
		}
		handler, buf := newTestEntriesCommand(mock)

		err := handler.Execute(context.Background(), "2024-01-01", "2024-01-31",
			entriesFlags{reportDaily: true, target: "8"})

		require.NoError(t, err)
		records, readErr := csv.NewReader(buf).ReadAll()
		require.NoError(t, readErr)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"date", "user_id", "hours", "remaining_hours"}, records[0])
		assert.Equal(t, []string{"2024-01-02", "0", "5.00", "3.00"}, records[1])
	})

	t.Run("fractional targets are honored", func(t *testing.T) {
		mock := newMockAPI()
		handler, _ := newTestEntriesCommand(mock)

		err := handler.Execute(context.Background(), "2024-01-01", "2024-01-31",
			entriesFlags{reportDaily: true, target: "7.5"})

		require.NoError(t, err)
		assert.Equal(t, 7.5, mock.reportTarget)
	})

	t.Run("an unparsable target is rejected", func(t *testing.T) {
		mock := newMockAPI()
		handler, _ := newTestEntriesCommand(mock)

		err := handler.Execute(context.Background(), "2024-01-01", "2024-01-31",
			entriesFlags{reportDaily: true, target: "all"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "target_hours")
	})
}
