package tickspot

// Wire types for the Tickspot API v2. Field names follow the service's JSON
// exactly; renaming to the namespaced reporting schema happens in the domain
// mapper, not here.

// Project is a Tickspot project as returned by GET /projects.json
type Project struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Budget        *float64 `json:"budget"`
	DateClosed    *string  `json:"date_closed"`
	Notifications bool     `json:"notifications"`
	Billable      bool     `json:"billable"`
	Recurring     bool     `json:"recurring"`
	ClientID      int64    `json:"client_id"`
	OwnerID       int64    `json:"owner_id"`
	URL           string   `json:"url"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// Task is a Tickspot task as returned by GET /tasks.json
type Task struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Budget     *float64 `json:"budget"`
	Position   int64    `json:"position"`
	ProjectID  int64    `json:"project_id"`
	DateClosed *string  `json:"date_closed"`
	Billable   bool     `json:"billable"`
	URL        string   `json:"url"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// ClientRecord is a Tickspot client as returned by GET /clients.json. Named
// to avoid colliding with the HTTP Client type in this package.
type ClientRecord struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Archive   bool   `json:"archive"`
	URL       string `json:"url"`
	UpdatedAt string `json:"updated_at"`
}

// Entry is a Tickspot time entry as returned by GET /entries.json and
// POST /entries.json
type Entry struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Hours     float64 `json:"hours"`
	Notes     string  `json:"notes"`
	TaskID    int64   `json:"task_id"`
	UserID    int64   `json:"user_id"`
	Locked    bool    `json:"locked"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// CreateEntryRequest is the body for POST /entries.json
type CreateEntryRequest struct {
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
	Notes  string  `json:"notes"`
	TaskID int64   `json:"task_id"`
	UserID *int64  `json:"user_id,omitempty"`
}
