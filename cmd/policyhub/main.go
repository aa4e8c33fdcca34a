package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agewithcare/policyhub/internal/interfaces/cli/migrate"
	"github.com/agewithcare/policyhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "policyhub",
		Short: "PolicyHub - policy and procedure document management",
		Long:  `PolicyHub is the staff-facing wiki for policy and procedure documents, with versioned file storage and role-based access.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
