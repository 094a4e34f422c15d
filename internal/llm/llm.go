package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for the best-effort contract analysis pass.
type Client interface {
	AnalyzeContract(ctx context.Context, contractText string) (string, error)
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is the stub used when no provider is configured.
type PlaceholderClient struct{}

// AnalyzeContract returns ErrNotImplemented.
func (PlaceholderClient) AnalyzeContract(ctx context.Context, contractText string) (string, error) {
	_ = ctx
	_ = contractText
	return "", ErrNotImplemented
}
