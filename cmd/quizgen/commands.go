package main

import (
	"encoding/json"
	"fmt"
	"io"

	"doc-quiz/internal/adapter/quizgen"
	"doc-quiz/internal/catalog"
	"doc-quiz/internal/config"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/logger"
	"doc-quiz/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type rootOptions struct {
	configPath string
	docsRoot   string
	output     string
	mock       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "quizgen",
		Short:         "Generate quiz questions from documentation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ./config.yaml)")
	root.PersistentFlags().StringVar(&opts.docsRoot, "docs", "", "documentation root (overrides docs.root)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "json", "output format: json or yaml")
	root.PersistentFlags().BoolVar(&opts.mock, "mock", false, "use the deterministic mock generator")

	root.AddCommand(newCatalogCmd(opts), newGenerateCmd(opts))
	return root
}

// pipeline builds a generation service without persistence or caching.
func (o *rootOptions) pipeline() (service.GenerationService, error) {
	cfg, err := config.LoadConfigFrom(o.configPath)
	if err != nil {
		return nil, err
	}
	// Keep stdout for the command's own output.
	cfg.Logger.Output = "stderr"
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, err
	}
	if o.docsRoot != "" {
		cfg.Docs.Root = o.docsRoot
	}
	if o.mock {
		cfg.LLM.ForceMock = true
	}

	generator, err := quizgen.NewGenerator(cfg.LLM, nil)
	if err != nil {
		return nil, err
	}
	return service.NewGenerationService(
		catalog.NewScanner(cfg.Docs.Root),
		catalog.NewResolver(cfg.Docs.Root),
		generator,
		nil,
		nil,
	), nil
}

func (o *rootOptions) write(w io.Writer, v interface{}) error {
	switch o.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		// Round-trip through JSON so YAML keys match the API field names.
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic interface{}
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(generic)
	default:
		return fmt.Errorf("unsupported output format %q", o.output)
	}
}

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List documentation domains and topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()
			svc, err := opts.pipeline()
			if err != nil {
				return err
			}
			entries, err := svc.Catalog(cmd.Context())
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), entries)
		},
	}
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var req dto.GenerateRequest

	cmd := &cobra.Command{
		Use:   "generate DOMAIN [TOPIC]",
		Short: "Generate questions for a topic, or a random topic of DOMAIN",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()
			req.DomainID = args[0]
			if len(args) == 2 {
				req.TopicID = args[1]
			}

			svc, err := opts.pipeline()
			if err != nil {
				return err
			}
			result, err := svc.Generate(cmd.Context(), nil, &req)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), result.Questions)
		},
	}
	cmd.Flags().StringVarP(&req.Difficulty, "difficulty", "d", "", "beginner, intermediate or advanced")
	cmd.Flags().IntVarP(&req.Count, "count", "n", 0, "number of questions (1-10)")
	cmd.Flags().StringVar(&req.CollectionName, "collection", "", "collection name stamped on each question")
	return cmd
}
