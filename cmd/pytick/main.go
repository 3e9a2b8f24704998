package main

import (
	"fmt"
	"os"

	"pytick/internal/api"
	"pytick/internal/cli"
	"pytick/internal/config"
	"pytick/internal/tickspot"
)

func main() {
	// Load credentials once at startup; a missing required credential
	// aborts here rather than producing an unusable client.
	creds, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Build the service client and the API over it.
	client := tickspot.New(creds)
	apiInstance := api.New(client, creds.UserID)

	// Create the CLI with the injected API.
	root := cli.NewRootCommand(apiInstance)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
