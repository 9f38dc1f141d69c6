package commands

import (
	"context"
	"encoding/json"
	"os"

	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/seed"
	"github.com/spf13/cobra"
)

var (
	// Seed flags
	dataset     string
	fixturesDir string
	skipMigrate bool
	jsonOutput  bool
)

// seedCmd replaces the database contents with a fixture dataset
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a fixture dataset",
	Long: `Empty every table and load a fixture dataset.

Pending migrations are applied first unless --skip-migrate is set.

Examples:
  newsctl seed                          # dataset from SEED_DATASET (development)
  newsctl seed --dataset test
  newsctl seed --fixtures ./data --dataset staging`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, log, err := connect()
		if err != nil {
			return err
		}
		defer db.Close()

		if !skipMigrate {
			if err := db.RunMigrations(cfg.Server.MigrationsPath); err != nil {
				return err
			}
		}

		name := cfg.Seed.Dataset
		if dataset != "" {
			name = dataset
		}
		fsys := seed.Fixtures()
		if fixturesDir != "" {
			fsys = os.DirFS(fixturesDir)
		}

		ds, err := seed.LoadDataset(fsys, name)
		if err != nil {
			return err
		}

		log.Info().Str("dataset", name).Msg("Seeding database")
		res, err := seed.New(repository.New(db), cfg.Seed.BatchSize, log).Run(context.Background(), ds)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVarP(&dataset, "dataset", "d", "", "Dataset name (development or test for the bundled fixtures)")
	seedCmd.Flags().StringVar(&fixturesDir, "fixtures", "", "Read datasets from this directory instead of the bundled fixtures")
	seedCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply pending migrations first")
	seedCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the row counts as JSON")
}
