package analyses

import "context"

// Repo defines persistence operations for the report history store. Writes
// are append-only; reports are never updated or deleted here.
type Repo interface {
	Create(ctx context.Context, report Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	List(ctx context.Context, limit int) ([]Report, error)
}
