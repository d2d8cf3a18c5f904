package repository

import (
	"context"
	"fmt"
	"path/filepath"

	"doc-quiz/internal/domain"
)

const (
	collectionsFile = "collections.json"
	performanceFile = "performance.json"
	usersFile       = "users.json"
)

// fileCollectionRepository implements domain.CollectionRepository on a JSON file.
type fileCollectionRepository struct {
	store *JSONFileStore[domain.Collection]
}

// NewFileCollectionRepository stores collections in <dataDir>/collections.json.
func NewFileCollectionRepository(dataDir string) (domain.CollectionRepository, error) {
	store, err := NewJSONFileStore[domain.Collection](filepath.Join(dataDir, collectionsFile))
	if err != nil {
		return nil, err
	}
	return &fileCollectionRepository{store: store}, nil
}

func (r *fileCollectionRepository) Save(ctx context.Context, collection *domain.Collection) error {
	if collection == nil {
		return fmt.Errorf("collection is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.store.Append(*collection); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}

func (r *fileCollectionRepository) GetAll(ctx context.Context) ([]*domain.Collection, error) {
	items, err := r.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	out := make([]*domain.Collection, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

func (r *fileCollectionRepository) GetByID(ctx context.Context, id string) (*domain.Collection, error) {
	items, err := r.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// filePerformanceRepository implements domain.PerformanceRepository on a JSON file.
type filePerformanceRepository struct {
	store *JSONFileStore[domain.Performance]
}

// NewFilePerformanceRepository stores quiz attempts in <dataDir>/performance.json.
func NewFilePerformanceRepository(dataDir string) (domain.PerformanceRepository, error) {
	store, err := NewJSONFileStore[domain.Performance](filepath.Join(dataDir, performanceFile))
	if err != nil {
		return nil, err
	}
	return &filePerformanceRepository{store: store}, nil
}

func (r *filePerformanceRepository) Save(ctx context.Context, performance *domain.Performance) error {
	if performance == nil {
		return fmt.Errorf("performance is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.store.Append(*performance); err != nil {
		return fmt.Errorf("failed to save performance: %w", err)
	}
	return nil
}

func (r *filePerformanceRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.Performance, error) {
	items, err := r.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list performance: %w", err)
	}
	out := []*domain.Performance{}
	for i := range items {
		if items[i].UserID == userID {
			out = append(out, &items[i])
		}
	}
	return out, nil
}

// fileUserRepository implements domain.UserRepository on a JSON file.
type fileUserRepository struct {
	store *JSONFileStore[domain.User]
}

// NewFileUserRepository stores users in <dataDir>/users.json.
func NewFileUserRepository(dataDir string) (domain.UserRepository, error) {
	store, err := NewJSONFileStore[domain.User](filepath.Join(dataDir, usersFile))
	if err != nil {
		return nil, err
	}
	return &fileUserRepository{store: store}, nil
}

func (r *fileUserRepository) Save(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("user is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.store.Append(*user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *fileUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.ID == id })
}

func (r *fileUserRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.GoogleID == googleID })
}

func (r *fileUserRepository) find(match func(*domain.User) bool) (*domain.User, error) {
	items, err := r.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	for i := range items {
		if match(&items[i]) {
			return &items[i], nil
		}
	}
	return nil, nil
}
