package keywords

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for the keyword store.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Add validates and stores a custom keyword. Phrases are normalized to
// lowercase; duplicates are allowed and simply produce duplicate matches.
func (s *Service) Add(ctx context.Context, phrase string) (Keyword, error) {
	normalized := strings.ToLower(strings.TrimSpace(phrase))
	if normalized == "" {
		return Keyword{}, ErrEmptyKeyword
	}

	kw := Keyword{
		ID:        uuid.NewString(),
		Phrase:    normalized,
		Builtin:   false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, kw); err != nil {
		return Keyword{}, err
	}
	return kw, nil
}

// Delete removes a custom keyword. Builtin ids are never in the repo, so
// deleting one reports ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// List returns all keywords: builtins in seed order, then customs oldest-first.
func (s *Service) List(ctx context.Context) ([]Keyword, error) {
	custom, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := Builtins()
	out = append(out, custom...)
	return out, nil
}

// ActivePhrases returns a snapshot of every watched phrase for one scan.
// The store is read exactly once, so a concurrent edit cannot split a scan
// across two keyword sets.
func (s *Service) ActivePhrases(ctx context.Context) ([]string, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	phrases := make([]string, 0, len(all))
	for _, kw := range all {
		phrases = append(phrases, kw.Phrase)
	}
	return phrases, nil
}
