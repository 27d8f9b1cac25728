package jsonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/quantmind-br/menufetch-go/internal/domain"
	"github.com/quantmind-br/menufetch-go/internal/utils"
)

const (
	// DefaultEndpoint is the backend's default API base path
	DefaultEndpoint = "/jsonapi"

	contentTypeJSONAPI = "application/vnd.api+json"
)

// Client is the resource client the retrieval strategies talk to. It loads
// the backend's resource index once, follows collection pagination to
// exhaustion, and fetches raw documents for paths that have no resource-type
// semantics.
type Client struct {
	http         *resty.Client
	baseURL      string
	endpoint     string
	retrier      *Retrier
	cache        domain.Cache
	cacheEnabled bool
	cacheTTL     time.Duration
	logger       *utils.Logger

	mu    sync.Mutex
	index domain.ResourceIndex
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	BaseURL     string
	Endpoint    string
	Timeout     time.Duration
	MaxRetries  int
	UserAgent   string
	Cache       domain.Cache
	EnableCache bool
	CacheTTL    time.Duration
	Logger      *utils.Logger
}

// NewClient creates a new resource client
func NewClient(opts ClientOptions) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, domain.NewConfigurationError("baseURL", "base URL is required")
	}
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")

	httpClient := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("Accept", contentTypeJSONAPI)
	if opts.UserAgent != "" {
		httpClient.SetHeader("User-Agent", opts.UserAgent)
	}

	retrier := NewRetrier(RetrierOptions{
		MaxRetries: opts.MaxRetries,
	})

	return &Client{
		http:         httpClient,
		baseURL:      baseURL,
		endpoint:     "/" + strings.Trim(opts.Endpoint, "/"),
		retrier:      retrier,
		cache:        opts.Cache,
		cacheEnabled: opts.EnableCache && opts.Cache != nil,
		cacheTTL:     opts.CacheTTL,
		logger:       opts.Logger.WithComponent("jsonapi"),
	}, nil
}

// Endpoint returns the configured base API path
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Index ensures the backend's resource index is loaded and returns it.
// The index is fetched at most once per client; concurrent callers share
// the same load.
func (c *Client) Index(ctx context.Context) (domain.ResourceIndex, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index != nil {
		return c.index, nil
	}

	body, err := c.get(ctx, c.endpoint)
	if err != nil {
		return nil, err
	}

	var doc indexDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode resource index: %w", err)
	}

	c.index = doc.Links
	c.logger.Debug().Int("resource_types", len(c.index)).Msg("resource index loaded")

	return c.index, nil
}

// CollectionAll fetches every page of a collection, following the
// backend's next links until exhausted. When req.Location is set it
// overrides the index lookup, which lets callers reach collections the
// backend does not advertise in its index.
func (c *Client) CollectionAll(ctx context.Context, req domain.CollectionRequest) ([]domain.ResourcePage, error) {
	location := req.Location
	if location == "" {
		index, err := c.Index(ctx)
		if err != nil {
			return nil, err
		}

		entry, ok := index[req.ResourceType]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownResourceType, req.ResourceType)
		}
		location = entry.Href
	}

	next := location
	if encoded := req.Query.Encode(); encoded != "" {
		next += "?" + encoded
	}

	var pages []domain.ResourcePage
	for next != "" {
		body, err := c.get(ctx, next)
		if err != nil {
			return nil, err
		}

		var doc collectionDocument
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("decode collection page: %w", err)
		}

		pages = append(pages, domain.ResourcePage{Data: doc.Data})

		next = ""
		if doc.Links.Next != nil {
			next = doc.Links.Next.Href
		}
	}

	c.logger.Debug().
		Str("resource_type", req.ResourceType).
		Int("pages", len(pages)).
		Msg("collection fetched")

	return pages, nil
}

// GetDocument fetches a single non-paginated document by path
func (c *Client) GetDocument(ctx context.Context, path string) ([]byte, error) {
	return c.get(ctx, path)
}

// Close releases client resources
func (c *Client) Close() error {
	return nil
}

// get fetches one URL with retry and optional response caching
func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	fullURL := c.absoluteURL(target)

	if c.cacheEnabled {
		if body, err := c.cache.Get(ctx, fullURL); err == nil {
			c.logger.Debug().Str("url", fullURL).Msg("cache hit")
			return body, nil
		}
	}

	body, err := RetryWithValue(ctx, c.retrier, func() ([]byte, error) {
		return c.doGet(ctx, fullURL)
	})
	if err != nil {
		return nil, err
	}

	if c.cacheEnabled {
		_ = c.cache.Set(ctx, fullURL, body, c.cacheTTL)
	}

	return body, nil
}

func (c *Client) doGet(ctx context.Context, fullURL string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(fullURL)
	if err != nil {
		return nil, domain.NewFetchError(fullURL, 0, err)
	}

	if resp.StatusCode() >= 400 {
		fetchErr := domain.NewFetchError(fullURL, resp.StatusCode(), fmt.Errorf("HTTP %d", resp.StatusCode()))
		if ShouldRetryStatus(resp.StatusCode()) {
			return nil, &domain.RetryableError{
				Err:        fetchErr,
				RetryAfter: int(ParseRetryAfter(resp.Header().Get("Retry-After")).Seconds()),
			}
		}
		return nil, fetchErr
	}

	return resp.Body(), nil
}

// absoluteURL resolves a location against the base URL. Index entries and
// pagination links usually come back absolute; configured paths do not.
func (c *Client) absoluteURL(target string) string {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return target
	}
	return c.baseURL + "/" + strings.TrimLeft(target, "/")
}

// indexDocument is the backend's resource index: a links object mapping
// resource type names to collection locations.
type indexDocument struct {
	Links domain.ResourceIndex `json:"links"`
}

// collectionDocument is one page of a paginated collection
type collectionDocument struct {
	Data  []domain.Resource `json:"data"`
	Links struct {
		Next *domain.ResourceLocation `json:"next"`
	} `json:"links"`
}
