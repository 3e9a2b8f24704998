package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pytick/internal/api"
	"pytick/internal/csvio"
	"pytick/internal/domain"
	"pytick/internal/validation"
)

// EntriesCommand handles the entries command: querying entries in a date
// range, optionally aggregated into the daily report.
type EntriesCommand struct {
	api          api.API
	out          io.Writer
	validator    *validation.EntryValidator
	errorHandler *ErrorHandler
}

// entriesFlags carries the raw flag values for one invocation.
type entriesFlags struct {
	projectID   string
	taskID      string
	userID      string
	billed      string
	billable    string
	reportDaily bool
	target      string
}

// NewEntriesCommand creates a new entries query command handler
func NewEntriesCommand(apiInstance api.API) *EntriesCommand {
	return &EntriesCommand{
		api:          apiInstance,
		out:          os.Stdout,
		validator:    validation.NewEntryValidator(),
		errorHandler: NewErrorHandler(),
	}
}

func newEntriesCobraCommand(apiInstance api.API) *cobra.Command {
	var flags entriesFlags

	cmd := &cobra.Command{
		Use:   "entries <start_date> <end_date>",
		Short: "Get entries in a date range",
		Long: `Get all entries between start_date and end_date as CSV on stdout.

Optional filters narrow the query; billed and billable accept the literal
values true or false. With --report-daily the output is instead a report of
hours per (date, user), with the remainder against the target hours.

Examples:
  pytick entries 2024-01-01 2024-01-31
  pytick entries 2024-01-01 2024-01-31 -p 16 -B true
  pytick entries 2024-01-01 2024-01-31 -r 7.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.reportDaily = cmd.Flags().Changed("report-daily")
			handler := NewEntriesCommand(apiInstance)
			return handler.Execute(cmd.Context(), args[0], args[1], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.projectID, "project-id", "p", "", "Id of the project to filter by")
	cmd.Flags().StringVarP(&flags.taskID, "task-id", "t", "", "Id of the task to filter by")
	cmd.Flags().StringVarP(&flags.userID, "user-id", "u", "", "Id of the user to filter by")
	cmd.Flags().StringVarP(&flags.billed, "billed", "b", "", "Filter entries by their billed status (true or false)")
	cmd.Flags().StringVarP(&flags.billable, "billable", "B", "", "Filter entries by their billable status (true or false)")
	cmd.Flags().StringVarP(&flags.target, "report-daily", "r", "8", "Produce a report of hours per date per user against the target hours")

	return cmd
}

// Execute queries entries for the range and prints CSV, or the daily report
// when requested.
func (c *EntriesCommand) Execute(ctx context.Context, startDate, endDate string, flags entriesFlags) error {
	opts, err := c.buildOptions(startDate, endDate, flags)
	if err != nil {
		return c.errorHandler.Handle("query entries", err)
	}

	entries, err := c.api.QueryEntries(ctx, opts)
	if err != nil {
		return c.errorHandler.Handle("query entries", err)
	}

	if flags.reportDaily {
		target, err := c.validator.ParseTargetHours(flags.target, api.DefaultTargetHours)
		if err != nil {
			return c.errorHandler.Handle("build daily report", err)
		}
		report := c.api.DailyReport(entries, target)
		if err := csvio.Write(c.out, csvio.ReportTable(report)); err != nil {
			return c.errorHandler.Handle("write daily report", err)
		}
		return nil
	}

	if err := csvio.Write(c.out, csvio.EntriesTable(entries)); err != nil {
		return c.errorHandler.Handle("write entries", err)
	}
	return nil
}

// buildOptions validates the raw arguments and assembles the query options.
// Absent filters stay nil and contribute nothing to the request.
func (c *EntriesCommand) buildOptions(startDate, endDate string, flags entriesFlags) (domain.QueryOptions, error) {
	if err := c.validator.ValidateDate("start_date", startDate); err != nil {
		return domain.QueryOptions{}, err
	}
	if err := c.validator.ValidateDate("end_date", endDate); err != nil {
		return domain.QueryOptions{}, err
	}

	opts := domain.QueryOptions{
		StartDate: startDate,
		EndDate:   endDate,
	}

	ids := []struct {
		field string
		value string
		dest  **int64
	}{
		{"project_id", flags.projectID, &opts.ProjectID},
		{"task_id", flags.taskID, &opts.TaskID},
		{"user_id", flags.userID, &opts.UserID},
	}
	for _, f := range ids {
		if f.value == "" {
			continue
		}
		id, err := c.validator.ParseID(f.field, f.value)
		if err != nil {
			return domain.QueryOptions{}, err
		}
		*f.dest = &id
	}

	billed, err := c.validator.ParseBoolFilter("billed", flags.billed)
	if err != nil {
		return domain.QueryOptions{}, err
	}
	opts.Billed = billed

	billable, err := c.validator.ParseBoolFilter("billable", flags.billable)
	if err != nil {
		return domain.QueryOptions{}, err
	}
	opts.Billable = billable

	return opts, nil
}
