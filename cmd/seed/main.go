// Command seed fills the shared demo collections.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"doc-quiz/internal/adapter/quizgen"
	"doc-quiz/internal/catalog"
	"doc-quiz/internal/config"
	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/logger"
	"doc-quiz/internal/repository"
	"doc-quiz/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	batch service.BatchService
	close func() error
}

func setup(ctx context.Context, configPath string, mock bool) (*app, error) {
	cfg, err := config.LoadConfigFrom(configPath)
	if err != nil {
		return nil, err
	}
	// The report goes to stdout.
	cfg.Logger.Output = "stderr"
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, err
	}
	if mock {
		cfg.LLM.ForceMock = true
	}

	repos, err := repository.NewRepositories(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	generator, err := quizgen.NewGenerator(cfg.LLM, nil)
	if err != nil {
		repos.Close()
		return nil, err
	}

	generation := service.NewGenerationService(
		catalog.NewScanner(cfg.Docs.Root),
		catalog.NewResolver(cfg.Docs.Root),
		generator,
		repos.Collections,
		nil,
	)
	return &app{
		batch: service.NewBatchService(generation, service.NewCollectionService(repos.Collections), repos.Collections, repos.Tx),
		close: repos.Close,
	}, nil
}

// loadSeeds reads a JSON or YAML list of collections.
func loadSeeds(path string) ([]dto.CreateCollectionRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []dto.CreateCollectionRequest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		// YAML is decoded generically and re-encoded so the JSON field tags apply.
		var generic interface{}
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("decode seed file: %w", err)
		}
		if data, err = json.Marshal(generic); err != nil {
			return nil, fmt.Errorf("decode seed file: %w", err)
		}
	}
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return seeds, nil
}

func newRootCmd() *cobra.Command {
	var configPath string
	var mock bool

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Fill the shared demo collections",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./config.yaml)")
	root.PersistentFlags().BoolVar(&mock, "mock", false, "use the deterministic mock generator")

	report := func(cmd *cobra.Command, r *service.BatchReport) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Save the collections listed in a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := loadSeeds(args[0])
			if err != nil {
				return err
			}
			a, err := setup(cmd.Context(), configPath, mock)
			if err != nil {
				return err
			}
			defer a.close()
			defer logger.Sync()

			r, err := a.batch.ImportDemoCollections(cmd.Context(), seeds)
			if err != nil {
				return err
			}
			logger.Get().Info("Seed import finished", zap.String("file", args[0]), zap.Int("created", r.Created))
			return report(cmd, r)
		},
	}

	var opts service.BatchOptions
	var difficulty string
	generateCmd := &cobra.Command{
		Use:   "generate [DOMAIN...]",
		Short: "Generate one demo collection per documentation topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Difficulty = domain.Difficulty(difficulty)
			if !opts.Difficulty.IsValid() {
				return fmt.Errorf("invalid difficulty %q", difficulty)
			}
			opts.DomainIDs = args

			a, err := setup(cmd.Context(), configPath, mock)
			if err != nil {
				return err
			}
			defer a.close()
			defer logger.Sync()

			r, err := a.batch.GenerateDemoCollections(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return report(cmd, r)
		},
	}
	generateCmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(domain.DifficultyBeginner), "beginner, intermediate or advanced")
	generateCmd.Flags().IntVarP(&opts.Count, "count", "n", dto.DefaultQuestionCount, "questions per collection")
	generateCmd.Flags().IntVar(&opts.Concurrency, "concurrency", 4, "topics generated in parallel")

	root.AddCommand(importCmd, generateCmd)
	return root
}
