package domain

import "context"

// ContentQuerier is the remote CMS boundary: runs a GROQ query with named
// parameters and decodes the result envelope into out.
type ContentQuerier interface {
	Query(ctx context.Context, query string, params map[string]any, out any) error
}

// Cache is the optional read-through cache in front of the dispatcher.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ImageBuilder is a chainable, immutable URL builder for image references.
// Every transform returns a new builder; URL always returns a fetchable URL
// and never an empty string.
type ImageBuilder interface {
	Width(n int) ImageBuilder
	Height(n int) ImageBuilder
	Quality(n int) ImageBuilder
	Format(fm string) ImageBuilder
	Fit(mode string) ImageBuilder
	Auto(mode string) ImageBuilder
	URL() string
}
