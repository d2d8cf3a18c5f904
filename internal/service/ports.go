package service

import (
	"context"

	"doc-quiz/internal/domain"
)

// CatalogScanner lists the documentation domains and their topics.
type CatalogScanner interface {
	Scan(ctx context.Context) ([]domain.CatalogEntry, error)
}

// TopicResolver loads the documentation record for a domain and optional topic.
type TopicResolver interface {
	Resolve(ctx context.Context, domainID, topicID string) (*domain.DocumentationRecord, error)
}
