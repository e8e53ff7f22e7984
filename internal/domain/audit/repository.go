package audit

import "context"

// Repository is append-only. Entries leave the store only through the
// cascade that deletes their case.
type Repository interface {
	Append(ctx context.Context, log *Log) error
	ListByCase(ctx context.Context, caseID uint) ([]*Log, error)
}
