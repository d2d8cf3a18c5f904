package main

import (
	"context"
	"fmt"
	"os"

	"doc-quiz/internal/config"
	"doc-quiz/internal/database"
	"doc-quiz/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, dbPath string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the SQLite schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./config.yaml)")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite file (default: store.sqlite_path)")

	withDB := func(run func(cfg *config.Config, path string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfigFrom(configPath)
			if err != nil {
				return err
			}
			if err := logger.Initialize(cfg.Logger); err != nil {
				return err
			}
			defer logger.Sync()

			path := dbPath
			if path == "" {
				path = cfg.Store.SQLitePath
			}
			return run(cfg, path)
		}
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: withDB(func(cfg *config.Config, path string) error {
			db, err := database.NewSQLiteDB(context.Background(), path)
			if err != nil {
				return err
			}
			defer db.Close()
			return database.RunMigrations(db.DB)
		}),
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migrations",
		RunE: withDB(func(cfg *config.Config, path string) error {
			db, err := database.NewSQLiteDB(context.Background(), path)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.RollbackMigrations(db.DB, steps); err != nil {
				return err
			}
			logger.Get().Info("Rolled back migrations", zap.Int("steps", steps), zap.String("db", path))
			return nil
		}),
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	root.AddCommand(up, down)
	return root
}
