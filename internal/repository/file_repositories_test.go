package repository

import (
	"context"
	"testing"
	"time"

	"doc-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollection(id, userID string) *domain.Collection {
	return &domain.Collection{
		ID:     id,
		Name:   "React Hooks",
		UserID: userID,
		Questions: []domain.GeneratedQuestion{{
			ID:   "q1",
			Type: domain.QuestionTypeMultipleChoice,
			Content: domain.QuestionContent{
				QuestionText:       "What does useState return?",
				Options:            []string{"A pair", "A promise"},
				CorrectAnswerIndex: 0,
			},
			Explanation:    "It returns a pair.",
			Tags:           []string{"react19", "hooks", "useState"},
			CollectionName: "React Hooks",
		}},
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Tags:      []string{"react19", "hooks", "useState"},
	}
}

func TestFileCollectionRepository(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileCollectionRepository(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, sampleCollection("c1", "u1")))
	require.NoError(t, repo.Save(ctx, sampleCollection("c2", domain.DemoUserID)))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c1", all[0].ID)
	assert.Equal(t, "c2", all[1].ID)

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, sampleCollection("c1", "u1"), got)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Error(t, repo.Save(ctx, nil))
}

func TestFilePerformanceRepository(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFilePerformanceRepository(t.TempDir())
	require.NoError(t, err)

	for _, p := range []*domain.Performance{
		{ID: "p1", UserID: "u1", CollectionID: "c1", Score: 1, TotalQuestions: 2},
		{ID: "p2", UserID: "u2", CollectionID: "c1", Score: 2, TotalQuestions: 2},
		{ID: "p3", UserID: "u1", CollectionID: "c2", Score: 0, TotalQuestions: 1},
	} {
		require.NoError(t, repo.Save(ctx, p))
	}

	mine, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "p1", mine[0].ID)
	assert.Equal(t, "p3", mine[1].ID)

	none, err := repo.GetByUserID(ctx, "u9")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFileUserRepository(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo, err := NewFileUserRepository(dir)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, domain.NewDemoUser()))

	// A second instance on the same directory sees the same data.
	other, err := NewFileUserRepository(dir)
	require.NoError(t, err)

	byID, err := other.GetByID(ctx, domain.DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.NewDemoUser(), byID)

	byGoogle, err := other.GetByGoogleID(ctx, "demo-google-id")
	require.NoError(t, err)
	assert.Equal(t, domain.DemoUserID, byGoogle.ID)

	missing, err := other.GetByGoogleID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
