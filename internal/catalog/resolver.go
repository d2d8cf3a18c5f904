package catalog

import (
	"context"
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/logger"

	"go.uber.org/zap"
)

// Picker returns a uniformly distributed index in [0, n).
type Picker func(n int) int

// Resolver maps a domain id and optional topic id to a documentation record.
type Resolver struct {
	root string
	pick Picker
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithPicker replaces the random index source used when no topic is given.
func WithPicker(p Picker) ResolverOption {
	return func(r *Resolver) {
		r.pick = p
	}
}

// NewResolver creates a Resolver over the documentation root.
func NewResolver(root string, opts ...ResolverOption) *Resolver {
	r := &Resolver{root: root, pick: rand.IntN}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve loads the record for (domainID, topicID). An empty topicID selects a
// topic uniformly at random from the domain; the chosen id is set on the record.
func (r *Resolver) Resolve(ctx context.Context, domainID, topicID string) (*domain.DocumentationRecord, error) {
	if err := validateDomainID(domainID); err != nil {
		return nil, err
	}
	domainPath := filepath.Join(r.root, domainID)

	var path string
	if topicID == "" {
		candidates, err := r.candidateFiles(ctx, domainID)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			return nil, domain.NewPathNotFoundError("no documentation files found in domain", domainPath)
		}
		picked := candidates[r.pick(len(candidates))]
		topicID, path = picked.ID, picked.Path
		logger.Get().Info("No topicId provided, selected random topic",
			zap.String("domain_id", domainID),
			zap.String("topic_id", topicID),
			zap.Int("candidates", len(candidates)),
		)
	} else {
		if err := validateTopicID(topicID); err != nil {
			return nil, err
		}
		var err error
		if path, err = r.locate(domainPath, topicID); err != nil {
			return nil, err
		}
	}

	logger.Get().Debug("Reading documentation record", zap.String("path", path))
	record, err := LoadRecord(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewPathNotFoundError("documentation file not found", path)
		}
		return nil, domain.NewInternalError("failed to load documentation record", err).WithContext("path", path)
	}
	record.DomainID = domainID
	record.TopicID = topicID
	record.Path = path
	return record, nil
}

// Candidates lists the topic ids of a domain using the same walk as the catalog scan.
func (r *Resolver) Candidates(ctx context.Context, domainID string) ([]string, error) {
	files, err := r.candidateFiles(ctx, domainID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(files))
	for i, f := range files {
		ids[i] = f.ID
	}
	return ids, nil
}

func (r *Resolver) candidateFiles(ctx context.Context, domainID string) ([]TopicFile, error) {
	if err := validateDomainID(domainID); err != nil {
		return nil, err
	}
	domainPath := filepath.Join(r.root, domainID)
	info, err := os.Stat(domainPath)
	if err != nil || !info.IsDir() {
		return nil, domain.NewPathNotFoundError("domain folder not found", domainPath)
	}

	var files []TopicFile
	for file, err := range Walk(domainPath) {
		if err != nil {
			return nil, domain.NewInternalError("failed to list documentation files", err).WithContext("path", domainPath)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		files = append(files, file)
	}
	return files, nil
}

// locate finds the file for topicID with the same per-directory choice the
// walk makes, so every listed topic resolves to the file it was listed from.
func (r *Resolver) locate(domainPath, topicID string) (string, error) {
	base := filepath.Join(domainPath, filepath.FromSlash(topicID))
	notFound := domain.NewPathNotFoundError("documentation file not found", base+Extensions[0])

	dir := filepath.Dir(base)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", notFound
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", domain.NewInternalError("failed to list documentation files", err).WithContext("path", dir)
	}
	name, ok := topicFiles(entries)[filepath.Base(base)]
	if !ok {
		return "", notFound
	}
	return filepath.Join(dir, name), nil
}

func validateDomainID(domainID string) error {
	if domainID == "" {
		return domain.NewInvalidInputError("domainId is required")
	}
	if strings.ContainsAny(domainID, `/\`) || domainID == "." || domainID == ".." {
		return domain.NewInvalidInputError("domainId must be a single path segment")
	}
	return nil
}

func validateTopicID(topicID string) error {
	if strings.HasPrefix(topicID, "/") || strings.Contains(topicID, `\`) || filepath.IsAbs(topicID) {
		return domain.NewInvalidInputError("topicId must be a relative path")
	}
	for _, segment := range strings.Split(topicID, domain.TopicDelimiter) {
		if segment == ".." || segment == "." {
			return domain.NewInvalidInputError("topicId must not contain relative segments")
		}
	}
	return nil
}
