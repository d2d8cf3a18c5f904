package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/repository/models"
)

// sqlxCollectionRepository implements domain.CollectionRepository using sqlx.
type sqlxCollectionRepository struct {
	db DBTX
}

// NewSQLXCollectionRepository creates a collection repository over db.
func NewSQLXCollectionRepository(db DBTX) domain.CollectionRepository {
	return &sqlxCollectionRepository{db: db}
}

func (r *sqlxCollectionRepository) Save(ctx context.Context, collection *domain.Collection) error {
	if collection == nil {
		return fmt.Errorf("collection is nil")
	}
	query := `INSERT INTO collections (id, name, user_id, questions, tags, created_at)
	          VALUES (:id, :name, :user_id, :questions, :tags, :created_at)`
	if _, err := executor(ctx, r.db).NamedExecContext(ctx, query, fromDomainCollection(collection)); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}

func (r *sqlxCollectionRepository) GetAll(ctx context.Context) ([]*domain.Collection, error) {
	var rows []models.Collection
	query := `SELECT id, name, user_id, questions, tags, created_at FROM collections ORDER BY created_at, id`
	if err := executor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	out := make([]*domain.Collection, len(rows))
	for i := range rows {
		out[i] = toDomainCollection(&rows[i])
	}
	return out, nil
}

func (r *sqlxCollectionRepository) GetByID(ctx context.Context, id string) (*domain.Collection, error) {
	var row models.Collection
	query := `SELECT id, name, user_id, questions, tags, created_at FROM collections WHERE id = ?`
	if err := executor(ctx, r.db).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection by id: %w", err)
	}
	return toDomainCollection(&row), nil
}

// sqlxPerformanceRepository implements domain.PerformanceRepository using sqlx.
type sqlxPerformanceRepository struct {
	db DBTX
}

// NewSQLXPerformanceRepository creates a performance repository over db.
func NewSQLXPerformanceRepository(db DBTX) domain.PerformanceRepository {
	return &sqlxPerformanceRepository{db: db}
}

func (r *sqlxPerformanceRepository) Save(ctx context.Context, performance *domain.Performance) error {
	if performance == nil {
		return fmt.Errorf("performance is nil")
	}
	query := `INSERT INTO performances (id, user_id, collection_id, score, total_questions, answers, date)
	          VALUES (:id, :user_id, :collection_id, :score, :total_questions, :answers, :date)`
	if _, err := executor(ctx, r.db).NamedExecContext(ctx, query, fromDomainPerformance(performance)); err != nil {
		return fmt.Errorf("failed to save performance: %w", err)
	}
	return nil
}

func (r *sqlxPerformanceRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.Performance, error) {
	var rows []models.Performance
	query := `SELECT id, user_id, collection_id, score, total_questions, answers, date
	          FROM performances WHERE user_id = ? ORDER BY date, id`
	if err := executor(ctx, r.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list performance: %w", err)
	}
	out := make([]*domain.Performance, len(rows))
	for i := range rows {
		out[i] = toDomainPerformance(&rows[i])
	}
	return out, nil
}

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db DBTX
}

// NewSQLXUserRepository creates a user repository over db.
func NewSQLXUserRepository(db DBTX) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func (r *sqlxUserRepository) Save(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("user is nil")
	}
	row := fromDomainUser(user)
	row.CreatedAt = time.Now().UTC()
	query := `INSERT INTO users (id, google_id, email, name, picture, created_at)
	          VALUES (:id, :google_id, :email, :name, :picture, :created_at)`
	if _, err := executor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqlxUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, google_id, email, name, picture, created_at FROM users WHERE id = ?`, id)
}

func (r *sqlxUserRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, google_id, email, name, picture, created_at FROM users WHERE google_id = ?`, googleID)
}

func (r *sqlxUserRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var row models.User
	if err := executor(ctx, r.db).GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found is not an error for callers
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(&row), nil
}
