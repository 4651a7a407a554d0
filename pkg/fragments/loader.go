package fragments

import (
	"context"
)

// Loader turns a reference string (a URL, a repository slug, a file path)
// into text that can be handed to a model.
type Loader interface {
	Load(ctx context.Context, argument string) (string, error)
}

// LoaderFunc adapts an ordinary function to the Loader interface
type LoaderFunc func(ctx context.Context, argument string) (string, error)

// Load calls f(ctx, argument)
func (f LoaderFunc) Load(ctx context.Context, argument string) (string, error) {
	return f(ctx, argument)
}

// Provider exposes loaders by scheme. Registry implements it.
type Provider interface {
	// Get returns the loader registered under scheme
	Get(scheme string) (Loader, error)

	// Has reports whether a loader is registered under scheme
	Has(scheme string) bool
}
