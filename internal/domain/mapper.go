package domain

import (
	"pytick/internal/tickspot"
)

// EntryMapper handles conversion between service and domain Entry models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// FromService converts a service Entry to a domain Entry, renaming the
// service identifier to EntryID.
func (m *EntryMapper) FromService(e tickspot.Entry) Entry {
	return Entry{
		EntryID:   e.ID,
		Date:      e.Date,
		Hours:     e.Hours,
		Notes:     e.Notes,
		Locked:    e.Locked,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		TaskID:    e.TaskID,
		UserID:    e.UserID,
	}
}

// FromServiceSlice converts a slice of service Entries to domain Entries.
func (m *EntryMapper) FromServiceSlice(entries []tickspot.Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = m.FromService(e)
	}
	return out
}

// ReferenceMapper builds denormalized reference rows from service records.
type ReferenceMapper struct{}

// NewReferenceMapper creates a new ReferenceMapper instance.
func NewReferenceMapper() *ReferenceMapper {
	return &ReferenceMapper{}
}

// FromService combines a project, one of its tasks, and the project's client
// into one reference row with namespaced field names.
func (m *ReferenceMapper) FromService(p tickspot.Project, t tickspot.Task, c tickspot.ClientRecord) ReferenceRow {
	return ReferenceRow{
		ProjectID:            p.ID,
		ProjectName:          p.Name,
		ProjectBudget:        p.Budget,
		ProjectDateClosed:    p.DateClosed,
		ProjectNotifications: p.Notifications,
		ProjectBillable:      p.Billable,
		ProjectRecurring:     p.Recurring,
		ClientID:             p.ClientID,
		OwnerID:              p.OwnerID,
		ProjectURL:           p.URL,
		ProjectCreatedAt:     p.CreatedAt,
		ProjectUpdatedAt:     p.UpdatedAt,

		TaskID:         t.ID,
		TaskName:       t.Name,
		TaskBudget:     t.Budget,
		TaskPosition:   t.Position,
		TaskDateClosed: t.DateClosed,
		TaskBillable:   t.Billable,
		TaskURL:        t.URL,
		TaskCreatedAt:  t.CreatedAt,
		TaskUpdatedAt:  t.UpdatedAt,

		ClientName:      c.Name,
		ClientArchive:   c.Archive,
		ClientURL:       c.URL,
		ClientUpdatedAt: c.UpdatedAt,
	}
}

// ProjectListingFromService converts a service Project to the two-column
// project listing.
func (m *ReferenceMapper) ProjectListingFromService(p tickspot.Project) ProjectListing {
	return ProjectListing{
		ProjectID:   p.ID,
		ProjectName: p.Name,
	}
}

// TaskListingFromReference projects a reference row down to the task listing
// columns.
func (m *ReferenceMapper) TaskListingFromReference(r ReferenceRow) TaskListing {
	return TaskListing{
		TaskID:      r.TaskID,
		TaskName:    r.TaskName,
		ProjectName: r.ProjectName,
		ClientName:  r.ClientName,
	}
}

// QueryOptionsMapper handles conversion between domain and service query
// options.
type QueryOptionsMapper struct{}

// NewQueryOptionsMapper creates a new QueryOptionsMapper instance.
func NewQueryOptionsMapper() *QueryOptionsMapper {
	return &QueryOptionsMapper{}
}

// ToService converts domain QueryOptions to service entry filters.
func (m *QueryOptionsMapper) ToService(opts QueryOptions) tickspot.EntryFilters {
	return tickspot.EntryFilters{
		StartDate: opts.StartDate,
		EndDate:   opts.EndDate,
		ProjectID: opts.ProjectID,
		TaskID:    opts.TaskID,
		UserID:    opts.UserID,
		Billed:    opts.Billed,
		Billable:  opts.Billable,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Entry        *EntryMapper
	Reference    *ReferenceMapper
	QueryOptions *QueryOptionsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Entry:        NewEntryMapper(),
		Reference:    NewReferenceMapper(),
		QueryOptions: NewQueryOptionsMapper(),
	}
}
