package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply or roll back the versioned SQL migrations.

Subcommands:
  up       - Apply pending migrations
  down     - Roll back the last migration
  to       - Migrate up or down to a specific version
  version  - Show the applied version`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, _, err := connect()
		if err != nil {
			return err
		}
		defer db.Close()
		return db.RunMigrations(cfg.Server.MigrationsPath)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the last migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, _, err := connect()
		if err != nil {
			return err
		}
		defer db.Close()
		return db.MigrateDown(cfg.Server.MigrationsPath)
	},
}

var migrateToCmd = &cobra.Command{
	Use:   "to VERSION",
	Short: "Migrate to a specific version",
	Long: `Migrate up or down to the given version.

Examples:
  newsctl migrate to 2    # articles table present, comments table not`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[0], err)
		}

		cfg, db, _, err := connect()
		if err != nil {
			return err
		}
		defer db.Close()
		return db.MigrateToVersion(cfg.Server.MigrationsPath, uint(version))
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the applied migration version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, _, err := connect()
		if err != nil {
			return err
		}
		defer db.Close()

		version, dirty, err := db.MigrationVersion(cfg.Server.MigrationsPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version: %d\ndirty: %t\n", version, dirty)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateToCmd, migrateVersionCmd)
}
