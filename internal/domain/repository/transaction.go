package repository

import "context"

// RepositoryFactory provides repositories bound to one transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	ConnectionRepo() ConnectionRepository
	CategoryRepo() CategoryRepository
	SessionRepo() SessionRepository
}

// TransactionManager runs a function inside a storage transaction. The
// factory handed to fn yields repositories that share that transaction, so
// every write in fn commits or rolls back as one unit.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepo RepositoryFactory) error) error
}
