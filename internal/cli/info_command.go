package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pytick/internal/api"
	"pytick/internal/csvio"
	"pytick/internal/errors"
)

// Fixed file names used by info --save.
const (
	tasksFile    = "tasks.csv"
	projectsFile = "projects.csv"
)

// InfoCommand handles the info command: listing the service's reference
// data.
type InfoCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewInfoCommand creates a new reference-data listing command handler
func NewInfoCommand(apiInstance api.API) *InfoCommand {
	return &InfoCommand{
		api:          apiInstance,
		out:          os.Stdout,
		errorHandler: NewErrorHandler(),
	}
}

func newInfoCobraCommand(apiInstance api.API) *cobra.Command {
	var showTasks, showProjects, save bool

	cmd := &cobra.Command{
		Use:   "info (--tasks | --projects)",
		Short: "List available tasks or projects",
		Long: `List the tasks or projects known to your subscription as CSV on stdout.

The task listing joins projects, tasks, and clients into rows of
task_id, task_name, project_name, client_name. The project listing has
project_id and project_name. With --save the listing is also written to
tasks.csv or projects.csv in the working directory.

Examples:
  pytick info --tasks
  pytick info --projects --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewInfoCommand(apiInstance)
			return handler.Execute(cmd.Context(), showTasks, showProjects, save)
		},
	}

	cmd.Flags().BoolVar(&showTasks, "tasks", false, "Show task ids and names with their project and client")
	cmd.Flags().BoolVar(&showProjects, "projects", false, "Show project ids and names")
	cmd.Flags().BoolVar(&save, "save", false, "Also save the listing to tasks.csv / projects.csv")
	cmd.MarkFlagsOneRequired("tasks", "projects")
	cmd.MarkFlagsMutuallyExclusive("tasks", "projects")

	return cmd
}

// Execute prints the requested listing, optionally persisting it to its
// fixed file name.
func (c *InfoCommand) Execute(ctx context.Context, showTasks, showProjects, save bool) error {
	switch {
	case showTasks:
		tasks, err := c.api.ListTasks(ctx)
		if err != nil {
			return c.errorHandler.Handle("list tasks", err)
		}
		return c.emit("list tasks", csvio.TasksTable(tasks), save, tasksFile)
	case showProjects:
		projects, err := c.api.ListProjects(ctx)
		if err != nil {
			return c.errorHandler.Handle("list projects", err)
		}
		return c.emit("list projects", csvio.ProjectsTable(projects), save, projectsFile)
	default:
		return c.errorHandler.Handle("list info",
			errors.NewInvalidInputError("info", "", "one of --tasks or --projects is required"))
	}
}

// emit writes the table to stdout and, when requested, to its fixed file.
func (c *InfoCommand) emit(operation string, table csvio.Table, save bool, path string) error {
	if err := csvio.Write(c.out, table); err != nil {
		return c.errorHandler.Handle(operation, err)
	}
	if save {
		if err := csvio.WriteFile(path, table); err != nil {
			return c.errorHandler.Handle(operation, err)
		}
	}
	return nil
}
