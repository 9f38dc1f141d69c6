package commands

import (
	"fmt"
	"os"

	"github.com/news-api/internal/config"
	"github.com/news-api/internal/database"
	"github.com/news-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	migrationsDir string
	verbose       bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "newsctl",
	Short: "Administration tool for the News API database",
	Long: `newsctl manages the News API PostgreSQL database.

Connection settings come from the same environment variables (or .env file)
as the server: DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "migrations-dir", "", "Directory of migration files (default MIGRATIONS_PATH or ./migrations)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// connect loads configuration and opens the database
func connect() (*config.Config, *database.DB, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}
	if migrationsDir != "" {
		cfg.Server.MigrationsPath = migrationsDir
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	cfg.Log.Format = "pretty"

	log := logger.New(cfg.Log)
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return nil, nil, log, err
	}
	return cfg, db, log, nil
}
