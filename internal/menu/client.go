// Package menu is the public entry point for menu retrieval: it selects a
// backend strategy once at construction and exposes a single Get operation
// returning normalized menu entities.
package menu

import (
	"context"
	"strings"
	"time"

	"github.com/quantmind-br/menufetch-go/internal/domain"
	"github.com/quantmind-br/menufetch-go/internal/jsonapi"
	"github.com/quantmind-br/menufetch-go/internal/strategies"
	"github.com/quantmind-br/menufetch-go/internal/utils"
)

// Options configures a Client. The zero value selects the
// menu_link_content strategy against the backend's default endpoint.
type Options struct {
	Menu MenuOptions

	// Resource client tuning, forwarded to jsonapi.NewClient
	Endpoint    string
	Timeout     time.Duration
	MaxRetries  int
	UserAgent   string
	Cache       domain.Cache
	EnableCache bool
	CacheTTL    time.Duration

	Logger *utils.Logger

	// Client overrides the default resource client. Mostly for tests.
	Client domain.ResourceClient
}

// MenuOptions selects the retrieval strategy
type MenuOptions struct {
	// Type is one of menu_link_content, jsonapi_menu_items or
	// decoupled_menus. Unrecognized values fall back to
	// menu_link_content.
	Type string

	// Deprecated: set Type to "jsonapi_menu_items" instead. Accepted for
	// configurations written against the old boolean flag.
	JSONAPIMenuItems bool
}

// Result is the output of one Get call. The caller owns the entity list
// exclusively; entities are produced fresh on every call.
type Result struct {
	Entities []domain.Entity `json:"entities"`
}

// Client retrieves menus through the strategy selected at construction
type Client struct {
	strategy strategies.Strategy
	resource domain.ResourceClient
	logger   *utils.Logger
}

// New creates a menu client. It fails with a ConfigurationError when
// baseURL is empty, before any network activity.
func New(baseURL string, opts Options) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, domain.NewConfigurationError("baseURL", "base URL is required")
	}

	// Legacy flag translation happens before defaulting
	if opts.Menu.JSONAPIMenuItems {
		opts.Menu.Type = strategies.TypeJSONAPIMenuItems
	}
	if opts.Menu.Type == "" {
		opts.Menu.Type = strategies.TypeMenuLinkContent
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	resource := opts.Client
	if resource == nil {
		var err error
		resource, err = jsonapi.NewClient(jsonapi.ClientOptions{
			BaseURL:     baseURL,
			Endpoint:    opts.Endpoint,
			Timeout:     opts.Timeout,
			MaxRetries:  opts.MaxRetries,
			UserAgent:   opts.UserAgent,
			Cache:       opts.Cache,
			EnableCache: opts.EnableCache,
			CacheTTL:    opts.CacheTTL,
			Logger:      logger,
		})
		if err != nil {
			return nil, err
		}
	}

	deps := strategies.NewDependencies(resource, logger)

	return &Client{
		strategy: strategies.ForType(opts.Menu.Type, deps),
		resource: resource,
		logger:   logger.WithComponent("menu"),
	}, nil
}

// Get retrieves the named menu and returns its normalized entities in
// backend order. Transport errors propagate unmodified.
func (c *Client) Get(ctx context.Context, menuName string) (*Result, error) {
	c.logger.Debug().Str("menu", menuName).Str("strategy", c.strategy.Name()).Msg("retrieving menu")

	entities, err := c.strategy.Fetch(ctx, menuName)
	if err != nil {
		return nil, err
	}

	return &Result{Entities: entities}, nil
}

// Strategy returns the name of the selected strategy
func (c *Client) Strategy() string {
	return c.strategy.Name()
}

// Close releases the underlying resource client
func (c *Client) Close() error {
	return c.resource.Close()
}
