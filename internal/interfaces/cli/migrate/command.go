// Package migrate implements the policyhub migrate command.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agewithcare/policyhub/internal/infrastructure/auth"
	"github.com/agewithcare/policyhub/internal/infrastructure/config"
	"github.com/agewithcare/policyhub/internal/infrastructure/database"
	"github.com/agewithcare/policyhub/internal/infrastructure/migration"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply the database schema and seed data, or inspect the current state.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply schema and seed data",
		Long:  `Create or update all tables and insert the seeded roles, categories and bootstrap admin. Safe to run repeatedly.`,
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show database connectivity and table row counts",
		RunE:  runStatus,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	if err := migration.Run(database.Get(), cfg.Auth.Bootstrap, hasher, logger.NewLogger()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println("migration completed")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer database.Close()

	counts, err := migration.Status(database.Get())
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	for _, tc := range counts {
		fmt.Printf("%-20s %d\n", tc.Table, tc.Rows)
	}
	return nil
}

func setup() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, nil
}
