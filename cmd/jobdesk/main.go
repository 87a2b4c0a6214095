package main

import (
	"os"

	"github.com/spf13/cobra"

	"jobdesk/internal/interfaces/cli/migrate"
	"jobdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jobdesk",
		Short: "jobdesk - repair shop job card tracking",
		Long:  `jobdesk tracks repair shop job cards from intake to return, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
