package strategies

import (
	"context"

	"github.com/quantmind-br/menufetch-go/internal/domain"
	"github.com/quantmind-br/menufetch-go/internal/query"
	"github.com/quantmind-br/menufetch-go/internal/utils"
)

// MenuItemsStrategy retrieves the backend-synthesized menu items resource,
// which covers both user-created and system-defined links. The backend must
// expose the jsonapi_menu_items resource type; because it is not advertised
// in the resource index, the collection location is supplied explicitly.
type MenuItemsStrategy struct {
	client domain.ResourceClient
	logger *utils.Logger
}

// NewMenuItemsStrategy creates a new jsonapi_menu_items strategy
func NewMenuItemsStrategy(deps *Dependencies) *MenuItemsStrategy {
	return &MenuItemsStrategy{
		client: deps.Client,
		logger: deps.Logger.WithStrategy(TypeJSONAPIMenuItems),
	}
}

// Name returns the strategy name
func (s *MenuItemsStrategy) Name() string {
	return TypeJSONAPIMenuItems
}

// Fetch retrieves every enabled item of the named menu across all pages,
// preserving backend order.
func (s *MenuItemsStrategy) Fetch(ctx context.Context, menuName string) ([]domain.Entity, error) {
	q := query.New().
		Filter("enabled", true).
		Filter("menu_name", menuName)

	pages, err := s.client.CollectionAll(ctx, domain.CollectionRequest{
		ResourceType: "menu_items--" + menuName,
		Query:        q.Values(),
		Location:     s.client.Endpoint() + "/menu_items/" + menuName,
	})
	if err != nil {
		return nil, err
	}

	var entities []domain.Entity
	for _, page := range pages {
		for _, res := range page.Data {
			entities = append(entities, menuItemEntity(menuName, res))
		}
	}

	s.logger.Debug().Str("menu", menuName).Int("entities", len(entities)).Msg("menu fetched")

	return entities, nil
}

// menuItemEntity maps a synthesized menu item record into the normalized
// shape. The raw record is retained on the entity.
func menuItemEntity(menuName string, res domain.Resource) domain.Entity {
	raw := res
	attrs := res.Attributes

	return domain.Entity{
		ID: res.ID,
		Attributes: domain.Attributes{
			Title:       stringAttr(attrs, "title"),
			Description: optionalStringAttr(attrs, "description"),
			Link:        domain.Link{URI: internalScheme + stringAttr(attrs, "url")},
			// The raw record's menu_name is not trusted; the requested
			// name wins.
			MenuName: menuName,
			Parent:   optionalStringAttr(attrs, "parent"),
			Weight:   weightAttr(attrs, "weight"),
		},
		Resource: &raw,
	}
}
