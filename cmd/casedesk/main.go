package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/casedesk/internal/interfaces/cli/migrate"
	"github.com/orris-inc/casedesk/internal/interfaces/cli/seed"
	"github.com/orris-inc/casedesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "casedesk",
		Short: "Casedesk - utility support desk case tracker",
		Long:  `Casedesk tracks customer cases, their numbered correspondence and an audit trail of every change.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
