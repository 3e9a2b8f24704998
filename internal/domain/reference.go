package domain

// ReferenceRow is one row of the denormalized reference table: projects
// inner-joined to tasks on project_id, then to clients on client_id. One row
// per task; every row has resolved project, task, and client fields.
type ReferenceRow struct {
	ProjectID            int64
	ProjectName          string
	ProjectBudget        *float64
	ProjectDateClosed    *string
	ProjectNotifications bool
	ProjectBillable      bool
	ProjectRecurring     bool
	ClientID             int64
	OwnerID              int64
	ProjectURL           string
	ProjectCreatedAt     string
	ProjectUpdatedAt     string

	TaskID         int64
	TaskName       string
	TaskBudget     *float64
	TaskPosition   int64
	TaskDateClosed *string
	TaskBillable   bool
	TaskURL        string
	TaskCreatedAt  string
	TaskUpdatedAt  string

	ClientName      string
	ClientArchive   bool
	ClientURL       string
	ClientUpdatedAt string
}

// TaskListing is the deduplicated task projection of the reference table
type TaskListing struct {
	TaskID      int64
	TaskName    string
	ProjectName string
	ClientName  string
}

// ProjectListing is the deduplicated project projection
type ProjectListing struct {
	ProjectID   int64
	ProjectName string
}
