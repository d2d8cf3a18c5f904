package domain

import "context"

// TransactionManager runs fn in a single unit of work. Repositories called with
// the context passed to fn take part in it.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoopTransactionManager runs fn directly, for stores without transactions.
type NoopTransactionManager struct{}

func (NoopTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
