package domain

// Entry is a time entry in the reporting shape: the service's primary
// identifier is renamed to EntryID and only the fixed projection below is
// retained.
type Entry struct {
	EntryID   int64
	Date      string
	Hours     float64
	Notes     string
	Locked    bool
	CreatedAt string
	UpdatedAt string
	TaskID    int64
	UserID    int64
}

// BatchRow is one row of a bulk-submission CSV source. Values stay as the
// raw strings read from the source so the reconciliation log reproduces the
// input byte for byte; parsing happens at submission time.
type BatchRow struct {
	Date   string
	Hours  string
	Notes  string
	TaskID string
}

// LoggedRow is a BatchRow augmented with the identifier the service assigned
// to it.
type LoggedRow struct {
	BatchRow
	EntryID int64
}

// DailyReportRow is one row of the daily aggregation report: summed hours
// for a (date, user) pair and the remainder against the target.
type DailyReportRow struct {
	Date           string
	UserID         int64
	Hours          float64
	RemainingHours float64
}
