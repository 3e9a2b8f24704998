package domain

// QueryOptions describes an entries query: the required date range plus
// optional filters. A nil filter is absent and sends nothing to the service.
type QueryOptions struct {
	StartDate string
	EndDate   string
	ProjectID *int64
	TaskID    *int64
	UserID    *int64
	Billed    *bool
	Billable  *bool
}
