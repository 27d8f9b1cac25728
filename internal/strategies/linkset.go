package strategies

import (
	"context"
	"fmt"
	"strings"

	"github.com/quantmind-br/menufetch-go/internal/domain"
	"github.com/quantmind-br/menufetch-go/internal/utils"
	"github.com/tidwall/gjson"
)

// LinksetStrategy retrieves a linkset document from the decoupled menus
// endpoint: a single non-paginated document with no resource-type
// semantics, fetched through the raw transport path.
//
// This representation is experimental upstream. Link-type detection is a
// known limitation: every link is treated as internal, and sibling order
// follows the raw dot-delimited hierarchy string.
type LinksetStrategy struct {
	client domain.ResourceClient
	logger *utils.Logger
}

// NewLinksetStrategy creates a new decoupled_menus strategy
func NewLinksetStrategy(deps *Dependencies) *LinksetStrategy {
	return &LinksetStrategy{
		client: deps.Client,
		logger: deps.Logger.WithStrategy(TypeDecoupledMenus),
	}
}

// Name returns the strategy name
func (s *LinksetStrategy) Name() string {
	return TypeDecoupledMenus
}

// Fetch retrieves the menu's linkset document and normalizes its entries
// in document order.
func (s *LinksetStrategy) Fetch(ctx context.Context, menuName string) ([]domain.Entity, error) {
	body, err := s.client.GetDocument(ctx, fmt.Sprintf("/system/menu/%s/linkset", menuName))
	if err != nil {
		return nil, err
	}

	var entities []domain.Entity
	for _, set := range gjson.GetBytes(body, "linkset").Array() {
		for _, item := range set.Get("item").Array() {
			entities = append(entities, linksetEntity(menuName, item))
		}
	}

	s.logger.Debug().Str("menu", menuName).Int("entities", len(entities)).Msg("menu fetched")

	return entities, nil
}

// linksetEntity maps one link entry. The entry's position in the tree is
// encoded in a dot-delimited hierarchy string (e.g. "1.2.3"): the entity ID
// is the menu name concatenated with the full hierarchy, and the parent ID
// is the menu name concatenated with the hierarchy minus its last segment.
// A hierarchy without dots is a root item.
func linksetEntity(menuName string, item gjson.Result) domain.Entity {
	hierarchy := item.Get("drupal-menu.0.hierarchy").String()

	var parent *string
	if i := strings.LastIndex(hierarchy, "."); i >= 0 {
		p := menuName + hierarchy[:i]
		parent = &p
	}

	return domain.Entity{
		ID: menuName + hierarchy,
		Attributes: domain.Attributes{
			Title: item.Get("title").String(),
			// This representation never supplies a description
			Description: nil,
			Link:        domain.Link{URI: internalScheme + item.Get("href").String()},
			MenuName:    menuName,
			Parent:      parent,
			Weight:      domain.HierarchyWeight(hierarchy),
		},
	}
}
