package cli

import (
	"github.com/spf13/cobra"

	"pytick/internal/api"
	"pytick/internal/logging"
)

// Version is the CLI version reported by --version.
const Version = "0.1.0"

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	api api.API
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API) *RootCommand {
	root := &RootCommand{
		api: apiInstance,
	}

	root.cmd = &cobra.Command{
		Use:   "pytick",
		Short: "A command-line Tickspot API client",
		Long: `pytick is a command-line client for the Tickspot time-tracking API.

It can create single entries, bulk-upload entries from CSV files or stdin,
query entries in a date range with optional filters and a daily report, and
list the tasks, projects, and clients known to your subscription.

Dates use the format YYYY-MM-DD.

CREDENTIALS:
  Credentials are read from a creds.env file in the working directory (or
  one directory up), overridable through the process environment:

    subscriptionID    Tickspot subscription identifier       (required)
    token             API token for the Authorization header (required)
    userAgent         User-Agent string sent to the service  (required)
    userID            Numeric user id attached to new entries
    email             Account email
    accessword        Account password

EXAMPLES:
  pytick new 123456 2.5 --note "code review"   # Log 2.5 hours today
  pytick csv hours.csv                         # Bulk-upload from a file
  pytick csv - < hours.csv                     # Bulk-upload from stdin
  pytick entries 2024-01-01 2024-01-31         # Entries for January
  pytick entries 2024-01-01 2024-01-31 -r 8    # Daily report against 8h
  pytick info --tasks                          # Task reference listing`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logging.SetVerbose(verbose)
			if verbose {
				logging.Debugf("arguments: %v\n", args)
			}
		},
	}

	root.cmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug output, including requests made")

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		newNewCobraCommand(r.api),
		newCSVCobraCommand(r.api),
		newEntriesCobraCommand(r.api),
		newInfoCobraCommand(r.api),
	)
}
