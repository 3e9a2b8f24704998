package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pytick/internal/api"
	"pytick/internal/validation"
)

// NewCommand handles the new command: submitting a single entry.
type NewCommand struct {
	api          api.API
	validator    *validation.EntryValidator
	errorHandler *ErrorHandler
}

// NewNewCommand creates a new entry-submission command handler
func NewNewCommand(apiInstance api.API) *NewCommand {
	return &NewCommand{
		api:          apiInstance,
		validator:    validation.NewEntryValidator(),
		errorHandler: NewErrorHandler(),
	}
}

func newNewCobraCommand(apiInstance api.API) *cobra.Command {
	var date, note string

	cmd := &cobra.Command{
		Use:   "new <task_id> <hours>",
		Short: "Create a new entry",
		Long: `Create a single time entry for the given task.

The date defaults to today and the note defaults to empty.

Examples:
  pytick new 123456 2.5
  pytick new 123456 8 --date 2024-01-15 --note "sprint planning"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewNewCommand(apiInstance)
			return handler.Execute(cmd.Context(), args[0], args[1], date, note)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Entry date in the format YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "A note on the entry")

	return cmd
}

// Execute submits one entry from the raw command arguments
func (c *NewCommand) Execute(ctx context.Context, taskIDArg, hoursArg, date, note string) error {
	taskID, err := c.validator.ParseID("task_id", taskIDArg)
	if err != nil {
		return c.errorHandler.Handle("create entry", err)
	}
	hours, err := c.validator.ParseHours(hoursArg)
	if err != nil {
		return c.errorHandler.Handle("create entry", err)
	}
	if date != "" {
		if err := c.validator.ValidateDate("date", date); err != nil {
			return c.errorHandler.Handle("create entry", err)
		}
	}

	entryID, err := c.api.SubmitEntry(ctx, date, hours, note, taskID)
	if err != nil {
		return c.errorHandler.Handle("create entry", err)
	}

	fmt.Printf("Created entry %d\n", entryID)
	return nil
}
