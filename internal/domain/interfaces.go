package domain

import (
	"context"
	"net/url"
	"time"
)

// ResourceClient defines the backend surface the retrieval strategies
// consume: an idempotent resource index, exhaustive collection pagination,
// and a raw document fetch for paths outside the resource-type machinery.
type ResourceClient interface {
	// Index ensures the backend's resource index is loaded and returns it.
	// Idempotent; the index is fetched at most once per client.
	Index(ctx context.Context) (ResourceIndex, error)
	// CollectionAll fetches every page of a collection, following
	// pagination links until exhausted.
	CollectionAll(ctx context.Context, req CollectionRequest) ([]ResourcePage, error)
	// GetDocument fetches a single non-paginated document by path.
	GetDocument(ctx context.Context, path string) ([]byte, error)
	// Endpoint returns the configured base API path (e.g. "/jsonapi").
	Endpoint() string
	// Close releases resources
	Close() error
}

// CollectionRequest describes one exhaustive collection fetch.
type CollectionRequest struct {
	// ResourceType is the JSON:API resource type name used for index
	// lookup (e.g. "menu_link_content--menu_link_content").
	ResourceType string
	// Query holds the encoded filter/fields parameters. Passed through
	// to the backend opaquely.
	Query url.Values
	// Location, when set, overrides the index lookup for resource types
	// the backend does not advertise in its index. Relative locations
	// resolve against the client's base URL.
	Location string
}

// Cache defines the interface for response caching
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Has checks if a key exists in cache
	Has(ctx context.Context, key string) bool
	// Delete removes a key from cache
	Delete(ctx context.Context, key string) error
	// Close releases cache resources
	Close() error
}
