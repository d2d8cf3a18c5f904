package service

import (
	"context"
	"errors"
	"testing"

	"doc-quiz/internal/adapter/quizgen"
	"doc-quiz/internal/catalog"
	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBatchFixture(t *testing.T) (BatchService, domain.CollectionRepository) {
	t.Helper()
	root := docsRoot(t)
	repo, err := repository.NewFileCollectionRepository(t.TempDir())
	require.NoError(t, err)

	generation := NewGenerationService(
		catalog.NewScanner(root),
		catalog.NewResolver(root),
		quizgen.NewMockGenerator(),
		repo,
		nil,
	)
	return NewBatchService(generation, NewCollectionService(repo), repo, nil), repo
}

func TestBatchService_GenerateDemoCollections(t *testing.T) {
	svc, repo := newBatchFixture(t)
	ctx := context.Background()
	opts := BatchOptions{Difficulty: domain.DifficultyIntermediate, Count: 2, Concurrency: 2}

	report, err := svc.GenerateDemoCollections(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, BatchReport{Created: 2}, *report)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	names := []string{all[0].Name, all[1].Name}
	assert.ElementsMatch(t, []string{"React 19: Suspense", "React 19: useState"}, names)
	for _, c := range all {
		assert.Equal(t, domain.DemoUserID, c.UserID)
		assert.Len(t, c.Questions, 2)
	}

	// A second run skips what exists.
	report, err = svc.GenerateDemoCollections(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, BatchReport{Skipped: 2}, *report)
}

func TestBatchService_GenerateDemoCollections_DomainFilter(t *testing.T) {
	svc, _ := newBatchFixture(t)

	report, err := svc.GenerateDemoCollections(context.Background(), BatchOptions{Count: 1, DomainIDs: []string{"postgres"}})
	require.NoError(t, err)
	assert.Equal(t, BatchReport{}, *report)
}

func TestBatchService_ImportDemoCollections(t *testing.T) {
	svc, repo := newBatchFixture(t)
	ctx := context.Background()

	seeds := []dto.CreateCollectionRequest{
		{Name: "Starter", Questions: []domain.GeneratedQuestion{question("s1", 0)}},
		{Name: "Starter", Questions: []domain.GeneratedQuestion{question("s2", 0)}},
		{Name: "Broken"},
	}
	report, err := svc.ImportDemoCollections(ctx, seeds)
	require.NoError(t, err)
	assert.Equal(t, BatchReport{Created: 1, Skipped: 1, Failed: 1}, *report)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.DemoUserID, all[0].UserID)
}

type recordingTx struct {
	calls int
	err   error
}

func (r *recordingTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return r.err
}

func TestBatchService_ImportDemoCollections_Transaction(t *testing.T) {
	repo := new(MockCollectionRepository)
	repo.On("GetAll", mock.Anything).Return([]*domain.Collection{}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk I/O error")).Once()

	tx := &recordingTx{}
	svc := NewBatchService(nil, NewCollectionService(repo), repo, tx)

	report, err := svc.ImportDemoCollections(context.Background(), []dto.CreateCollectionRequest{
		{Name: "Starter", Questions: []domain.GeneratedQuestion{question("s1", 0)}},
		{Name: "Second", Questions: []domain.GeneratedQuestion{question("s2", 0)}},
	})
	assert.Nil(t, report)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodePersistence, domainErr.Code)
	assert.Equal(t, 1, tx.calls)
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestBatchService_ImportDemoCollections_CommitError(t *testing.T) {
	repo := new(MockCollectionRepository)
	repo.On("GetAll", mock.Anything).Return([]*domain.Collection{}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	commitErr := errors.New("failed to commit transaction")
	svc := NewBatchService(nil, NewCollectionService(repo), repo, &recordingTx{err: commitErr})

	_, err := svc.ImportDemoCollections(context.Background(), []dto.CreateCollectionRequest{
		{Name: "Starter", Questions: []domain.GeneratedQuestion{question("s1", 0)}},
	})
	assert.ErrorIs(t, err, commitErr)
}
