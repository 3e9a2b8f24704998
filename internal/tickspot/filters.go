package tickspot

import (
	"net/url"
	"strconv"
)

// EntryFilters describes the query parameters for GET /entries.json.
// StartDate and EndDate are required by the service; the optional filters
// contribute nothing to the query string when unset.
type EntryFilters struct {
	StartDate string
	EndDate   string
	ProjectID *int64
	TaskID    *int64
	UserID    *int64
	Billed    *bool
	Billable  *bool
}

// Values assembles the filters into url.Values. Building the query string
// structurally rules out stray separators and literal-null fragments for
// absent filters.
func (f EntryFilters) Values() url.Values {
	v := url.Values{}
	if f.StartDate != "" {
		v.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("end_date", f.EndDate)
	}
	if f.ProjectID != nil {
		v.Set("project_id", strconv.FormatInt(*f.ProjectID, 10))
	}
	if f.TaskID != nil {
		v.Set("task_id", strconv.FormatInt(*f.TaskID, 10))
	}
	if f.UserID != nil {
		v.Set("user_id", strconv.FormatInt(*f.UserID, 10))
	}
	if f.Billed != nil {
		v.Set("billed", strconv.FormatBool(*f.Billed))
	}
	if f.Billable != nil {
		v.Set("billable", strconv.FormatBool(*f.Billable))
	}
	return v
}
