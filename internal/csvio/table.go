package csvio

import (
	"strconv"

	"pytick/internal/domain"
)

// Table is a column-ordered tabular result ready for CSV serialization.
// Row values are already formatted; no index column is ever added.
type Table struct {
	Header []string
	Rows   [][]string
}

// EntriesHeader is the fixed projection for queried entries, in order.
var EntriesHeader = []string{
	"entry_id", "date", "hours", "notes", "locked",
	"created_at", "updated_at", "task_id", "user_id",
}

// EntriesTable converts queried entries into a table with the fixed
// projection column order.
func EntriesTable(entries []domain.Entry) Table {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			formatInt(e.EntryID),
			e.Date,
			formatFloat(e.Hours),
			e.Notes,
			strconv.FormatBool(e.Locked),
			e.CreatedAt,
			e.UpdatedAt,
			formatInt(e.TaskID),
			formatInt(e.UserID),
		}
	}
	return Table{Header: EntriesHeader, Rows: rows}
}

// TasksTable converts the task listing into a table.
func TasksTable(tasks []domain.TaskListing) Table {
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{
			formatInt(t.TaskID),
			t.TaskName,
			t.ProjectName,
			t.ClientName,
		}
	}
	return Table{
		Header: []string{"task_id", "task_name", "project_name", "client_name"},
		Rows:   rows,
	}
}

// ProjectsTable converts the project listing into a table.
func ProjectsTable(projects []domain.ProjectListing) Table {
	rows := make([][]string, len(projects))
	for i, p := range projects {
		rows[i] = []string{
			formatInt(p.ProjectID),
			p.ProjectName,
		}
	}
	return Table{
		Header: []string{"project_id", "project_name"},
		Rows:   rows,
	}
}

// ReportTable converts daily report rows into a table. Hours are printed
// with two decimals, matching the report's rounding rule.
func ReportTable(report []domain.DailyReportRow) Table {
	rows := make([][]string, len(report))
	for i, r := range report {
		rows[i] = []string{
			r.Date,
			formatInt(r.UserID),
			strconv.FormatFloat(r.Hours, 'f', 2, 64),
			strconv.FormatFloat(r.RemainingHours, 'f', 2, 64),
		}
	}
	return Table{
		Header: []string{"date", "user_id", "hours", "remaining_hours"},
		Rows:   rows,
	}
}

// LogTable converts reconciled batch rows into the submission log table:
// the source columns augmented with the assigned entry identifier.
func LogTable(rows []domain.LoggedRow) Table {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			r.Date,
			r.Hours,
			r.Notes,
			r.TaskID,
			formatInt(r.EntryID),
		}
	}
	return Table{
		Header: []string{"date", "hours", "notes", "task_id", "entry_id"},
		Rows:   out,
	}
}

// ReferenceTable converts the denormalized reference rows into a table.
// Column order follows the join: project columns, task columns, client
// columns.
func ReferenceTable(rows []domain.ReferenceRow) Table {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			formatInt(r.ProjectID),
			r.ProjectName,
			formatFloatPtr(r.ProjectBudget),
			formatStringPtr(r.ProjectDateClosed),
			strconv.FormatBool(r.ProjectNotifications),
			strconv.FormatBool(r.ProjectBillable),
			strconv.FormatBool(r.ProjectRecurring),
			formatInt(r.ClientID),
			formatInt(r.OwnerID),
			r.ProjectURL,
			r.ProjectCreatedAt,
			r.ProjectUpdatedAt,
			formatInt(r.TaskID),
			r.TaskName,
			formatFloatPtr(r.TaskBudget),
			formatInt(r.TaskPosition),
			formatStringPtr(r.TaskDateClosed),
			strconv.FormatBool(r.TaskBillable),
			r.TaskURL,
			r.TaskCreatedAt,
			r.TaskUpdatedAt,
			r.ClientName,
			strconv.FormatBool(r.ClientArchive),
			r.ClientURL,
			r.ClientUpdatedAt,
		}
	}
	return Table{
		Header: []string{
			"project_id", "project_name", "project_budget", "project_date_closed",
			"project_notifications", "project_billable", "project_recurring",
			"client_id", "owner_id", "project_url", "project_created_at",
			"project_updated_at",
			"task_id", "task_name", "task_budget", "task_position",
			"task_date_closed", "task_billable", "task_url", "task_created_at",
			"task_updated_at",
			"client_name", "client_archive", "client_url", "client_updated_at",
		},
		Rows: out,
	}
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

func formatStringPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
