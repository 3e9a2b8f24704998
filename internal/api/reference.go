package api

import (
	"context"

	"pytick/internal/domain"
	"pytick/internal/tickspot"
)

// BuildReferenceTable fetches projects, tasks, and clients and inner-joins
// them into the denormalized reference table: projects to tasks on
// project_id, then to clients on client_id. The three fetches are issued
// sequentially and any failure aborts the whole build; no partial join is
// returned.
//
// Row order is deterministic: the service's project listing order, then the
// service's task order within each project. A task whose project or client
// record is missing is dropped.
func (a *apiImpl) BuildReferenceTable(ctx context.Context) ([]domain.ReferenceRow, error) {
	projects, err := a.service.GetProjects(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := a.service.GetTasks(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := a.service.GetClients(ctx)
	if err != nil {
		return nil, err
	}

	clientByID := make(map[int64]tickspot.ClientRecord, len(clients))
	for _, c := range clients {
		clientByID[c.ID] = c
	}

	tasksByProject := make(map[int64][]tickspot.Task, len(projects))
	for _, t := range tasks {
		tasksByProject[t.ProjectID] = append(tasksByProject[t.ProjectID], t)
	}

	var rows []domain.ReferenceRow
	for _, p := range projects {
		client, ok := clientByID[p.ClientID]
		if !ok {
			continue
		}
		for _, t := range tasksByProject[p.ID] {
			rows = append(rows, a.mapper.Reference.FromService(p, t, client))
		}
	}
	return rows, nil
}

// ListTasks returns the deduplicated task listing projected from the
// reference table. Deduplication is by full-row equality, keeping the first
// occurrence so the join order is preserved.
func (a *apiImpl) ListTasks(ctx context.Context) ([]domain.TaskListing, error) {
	rows, err := a.BuildReferenceTable(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[domain.TaskListing]bool, len(rows))
	var tasks []domain.TaskListing
	for _, r := range rows {
		listing := a.mapper.Reference.TaskListingFromReference(r)
		if seen[listing] {
			continue
		}
		seen[listing] = true
		tasks = append(tasks, listing)
	}
	return tasks, nil
}

// ListProjects returns the deduplicated two-column project listing. Only the
// projects collection is fetched; no join is needed.
func (a *apiImpl) ListProjects(ctx context.Context) ([]domain.ProjectListing, error) {
	projects, err := a.service.GetProjects(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[domain.ProjectListing]bool, len(projects))
	var listings []domain.ProjectListing
	for _, p := range projects {
		listing := a.mapper.Reference.ProjectListingFromService(p)
		if seen[listing] {
			continue
		}
		seen[listing] = true
		listings = append(listings, listing)
	}
	return listings, nil
}
