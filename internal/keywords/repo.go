package keywords

import "context"

// Repo defines persistence operations for custom keywords. Builtin entries
// never reach the repo; they live in code.
type Repo interface {
	Create(ctx context.Context, kw Keyword) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Keyword, error)
}
