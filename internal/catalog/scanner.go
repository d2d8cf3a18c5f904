package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxConcurrentDomainScans bounds the goroutines walking domains in parallel.
const maxConcurrentDomainScans = 4

var domainDisplayNames = map[string]string{
	"react19":  "React 19",
	"postgres": "PostgreSQL",
	"nodejs":   "Node.js",
	"golang":   "Go",
}

// DomainDisplayName returns the human readable name for a domain id.
func DomainDisplayName(id string) string {
	if name, ok := domainDisplayNames[id]; ok {
		return name
	}
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' })
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.English, cases.NoLower).String(strings.Join(words, " "))
}

// Scanner builds the domain→topic catalog of a documentation root.
type Scanner struct {
	root string
}

// NewScanner creates a Scanner rooted at the documentation directory.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root}
}

// Root returns the documentation root directory.
func (s *Scanner) Root() string {
	return s.root
}

// Scan lists every domain with its topics. A missing root is reported as a
// not-found domain error naming the root path.
func (s *Scanner) Scan(ctx context.Context) ([]domain.CatalogEntry, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewPathNotFoundError("documentation folder not found", s.root)
		}
		return nil, domain.NewInternalError("failed to read documentation root", err)
	}

	var domainIDs []string
	for _, e := range entries {
		if e.IsDir() && !isHidden(e.Name()) {
			domainIDs = append(domainIDs, e.Name())
		}
	}

	catalog := make([]domain.CatalogEntry, len(domainIDs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDomainScans)
	for i, id := range domainIDs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := s.scanDomain(id)
			if err != nil {
				return err
			}
			catalog[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, domain.NewInternalError("failed to scan documentation", err)
	}

	logger.Get().Debug("Scanned documentation catalog",
		zap.String("root", s.root),
		zap.Int("domains", len(catalog)),
	)
	return catalog, nil
}

func (s *Scanner) scanDomain(id string) (domain.CatalogEntry, error) {
	entry := domain.CatalogEntry{
		ID:     id,
		Name:   DomainDisplayName(id),
		Topics: []domain.Topic{},
	}
	for file, err := range Walk(filepath.Join(s.root, id)) {
		if err != nil {
			return entry, fmt.Errorf("scan domain %s: %w", id, err)
		}
		entry.Topics = append(entry.Topics, file.Topic())
	}
	return entry, nil
}
