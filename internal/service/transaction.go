package service

import "context"

// TransactionManager runs fn in one database transaction. Repositories join
// it through the context; nested calls reuse the outer transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
