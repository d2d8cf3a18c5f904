package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchOptions controls demo collection generation.
type BatchOptions struct {
	Difficulty  domain.Difficulty
	Count       int
	Concurrency int
	// DomainIDs restricts generation to these domains; empty means all.
	DomainIDs []string
}

// BatchReport counts the outcome of a batch run.
type BatchReport struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// BatchService fills the shared demo collections.
type BatchService interface {
	// GenerateDemoCollections creates one demo collection per catalog topic.
	// Topics whose collection already exists are skipped.
	GenerateDemoCollections(ctx context.Context, opts BatchOptions) (*BatchReport, error)
	// ImportDemoCollections saves prepared collections for the demo user.
	ImportDemoCollections(ctx context.Context, seeds []dto.CreateCollectionRequest) (*BatchReport, error)
}

type batchService struct {
	generation  GenerationService
	collections CollectionService
	repo        domain.CollectionRepository
	tx          domain.TransactionManager
}

// NewBatchService wires the batch jobs. A nil tx imports without a transaction.
func NewBatchService(generation GenerationService, collections CollectionService, repo domain.CollectionRepository, tx domain.TransactionManager) BatchService {
	if tx == nil {
		tx = domain.NoopTransactionManager{}
	}
	return &batchService{generation: generation, collections: collections, repo: repo, tx: tx}
}

// DemoCollectionName names the demo collection for a topic.
func DemoCollectionName(entry domain.CatalogEntry, topic domain.Topic) string {
	return fmt.Sprintf("%s: %s", entry.Name, topic.Name)
}

func (s *batchService) demoNames(ctx context.Context) (map[string]bool, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("failed to list collections", err)
	}
	names := make(map[string]bool)
	for _, c := range all {
		if c.UserID == domain.DemoUserID {
			names[c.Name] = true
		}
	}
	return names, nil
}

func (s *batchService) GenerateDemoCollections(ctx context.Context, opts BatchOptions) (*BatchReport, error) {
	l := logger.Get()
	start := time.Now()
	l.Info("Starting demo collection generation",
		zap.String("difficulty", string(opts.Difficulty)),
		zap.Int("count", opts.Count))

	entries, err := s.generation.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.demoNames(ctx)
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(opts.DomainIDs))
	for _, id := range opts.DomainIDs {
		wanted[id] = true
	}

	var (
		mu     sync.Mutex
		report BatchReport
	)
	demoUser := domain.NewDemoUser()

	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for _, entry := range entries {
		if len(wanted) > 0 && !wanted[entry.ID] {
			continue
		}
		for _, topic := range entry.Topics {
			name := DemoCollectionName(entry, topic)
			if existing[name] {
				report.Skipped++
				continue
			}
			domainID, topicID := entry.ID, topic.ID
			g.Go(func() error {
				result, err := s.generation.Generate(gctx, demoUser, &dto.GenerateRequest{
					DomainID:       domainID,
					TopicID:        topicID,
					Difficulty:     string(opts.Difficulty),
					Count:          opts.Count,
					CollectionName: name,
				})

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err != nil:
					l.Warn("Demo collection generation failed",
						zap.String("domain_id", domainID),
						zap.String("topic_id", topicID),
						zap.Error(err))
					report.Failed++
				case result.CollectionID == "":
					report.Failed++
				default:
					report.Created++
				}
				// Per-topic failures never cancel the batch.
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.Info("Demo collection generation finished",
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
		zap.Duration("elapsed", time.Since(start)))
	return &report, nil
}

func (s *batchService) ImportDemoCollections(ctx context.Context, seeds []dto.CreateCollectionRequest) (*BatchReport, error) {
	existing, err := s.demoNames(ctx)
	if err != nil {
		return nil, err
	}

	demoUser := domain.NewDemoUser()
	var report BatchReport
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		report = BatchReport{}
		for i := range seeds {
			if existing[seeds[i].Name] {
				report.Skipped++
				continue
			}
			if _, err := s.collections.Create(ctx, demoUser, &seeds[i]); err != nil {
				var domainErr *domain.DomainError
				if errors.As(err, &domainErr) && domainErr.Code == domain.CodePersistence {
					return err
				}
				logger.Get().Warn("Skipping invalid seed collection", zap.String("name", seeds[i].Name), zap.Error(err))
				report.Failed++
				continue
			}
			existing[seeds[i].Name] = true
			report.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}
