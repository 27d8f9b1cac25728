package strategies

import (
	"context"
	"strconv"

	"github.com/quantmind-br/menufetch-go/internal/domain"
	"github.com/quantmind-br/menufetch-go/internal/utils"
)

// Menu source types accepted in configuration
const (
	TypeMenuLinkContent  = "menu_link_content"
	TypeJSONAPIMenuItems = "jsonapi_menu_items"
	TypeDecoupledMenus   = "decoupled_menus"
)

// internalScheme prefixes backend paths to form internal-link URIs
const internalScheme = "internal:"

// Strategy defines the interface for menu retrieval strategies. Each
// implementation knows one backend representation and maps it into the
// normalized entity shape.
type Strategy interface {
	// Name returns the strategy name
	Name() string
	// Fetch retrieves and normalizes every item of the named menu
	Fetch(ctx context.Context, menuName string) ([]domain.Entity, error)
}

// Dependencies contains shared dependencies for all strategies
type Dependencies struct {
	Client domain.ResourceClient
	Logger *utils.Logger
}

// NewDependencies creates new dependencies for strategies
func NewDependencies(client domain.ResourceClient, logger *utils.Logger) *Dependencies {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Dependencies{
		Client: client,
		Logger: logger,
	}
}

// ForType returns the strategy for the configured menu source type.
// Unrecognized types fall back to menu_link_content so configurations
// written against newer backends degrade instead of failing.
func ForType(menuType string, deps *Dependencies) Strategy {
	switch menuType {
	case TypeJSONAPIMenuItems:
		return NewMenuItemsStrategy(deps)
	case TypeDecoupledMenus:
		return NewLinksetStrategy(deps)
	default:
		return NewLinkContentStrategy(deps)
	}
}

// Raw attribute accessors. Backend shape mismatches surface as zero values
// rather than errors; hardening against them is out of scope here.

func stringAttr(attrs map[string]any, key string) string {
	if v, ok := attrs[key].(string); ok {
		return v
	}
	return ""
}

func optionalStringAttr(attrs map[string]any, key string) *string {
	if v, ok := attrs[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

func weightAttr(attrs map[string]any, key string) domain.Weight {
	switch v := attrs[key].(type) {
	case float64:
		return domain.NumericWeight(int(v))
	case int:
		return domain.NumericWeight(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return domain.NumericWeight(n)
		}
		// Preserve non-numeric ordering values as supplied
		return domain.HierarchyWeight(v)
	default:
		return domain.NumericWeight(0)
	}
}

func linkURIAttr(attrs map[string]any) string {
	if link, ok := attrs["link"].(map[string]any); ok {
		if uri, ok := link["uri"].(string); ok {
			return uri
		}
	}
	return ""
}
