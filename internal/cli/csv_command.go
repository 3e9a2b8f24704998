package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pytick/internal/api"
	"pytick/internal/csvio"
	"pytick/internal/domain"
	"pytick/internal/errors"
)

// CSVCommand handles the csv command: bulk entry submission from tabular
// sources.
type CSVCommand struct {
	api          api.API
	stdin        io.Reader
	errorHandler *ErrorHandler
}

// NewCSVCommand creates a new bulk-submission command handler
func NewCSVCommand(apiInstance api.API) *CSVCommand {
	return &CSVCommand{
		api:          apiInstance,
		stdin:        os.Stdin,
		errorHandler: NewErrorHandler(),
	}
}

func newCSVCobraCommand(apiInstance api.API) *cobra.Command {
	return &cobra.Command{
		Use:   "csv [-] [<filename>...]",
		Short: "Upload entries from CSV files or stdin",
		Long: `Upload entries from one or more CSV files, or from stdin when - is given.

The source must have the header columns: date, hours, notes, task_id.
Extra columns are ignored. Rows are submitted in order, one request per
row, and each batch writes a reconciliation log to logs/<timestamp>.csv
containing the submitted rows with their assigned entry ids.

Examples:
  pytick csv hours.csv
  pytick csv january.csv february.csv
  pytick csv - < hours.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewCSVCommand(apiInstance)
			return handler.Execute(cmd.Context(), args)
		},
	}
}

// Execute submits each named source as its own batch, in argument order.
// "-" reads stdin.
func (c *CSVCommand) Execute(ctx context.Context, args []string) error {
	for _, arg := range args {
		if err := c.submitSource(ctx, arg); err != nil {
			return err
		}
	}
	return nil
}

func (c *CSVCommand) submitSource(ctx context.Context, source string) error {
	rows, err := c.readRows(source)
	if err != nil {
		return c.errorHandler.Handle("read "+sourceName(source), err)
	}

	logged, logPath, err := c.api.SubmitBatch(ctx, rows)
	if len(logged) > 0 && logPath != "" {
		fmt.Printf("Submitted %d of %d entries from %s, log written to %s\n",
			len(logged), len(rows), sourceName(source), logPath)
	}
	if err != nil {
		return c.errorHandler.Handle("upload "+sourceName(source), err)
	}
	return nil
}

func (c *CSVCommand) readRows(source string) ([]domain.BatchRow, error) {
	if source == "-" {
		return csvio.ReadBatchRows(c.stdin)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, errors.NewIOError("opening "+source, err)
	}
	defer f.Close()
	return csvio.ReadBatchRows(f)
}

func sourceName(source string) string {
	if source == "-" {
		return "stdin"
	}
	return source
}
