package strategies

import (
	"context"

	"github.com/quantmind-br/menufetch-go/internal/domain"
	"github.com/quantmind-br/menufetch-go/internal/query"
	"github.com/quantmind-br/menufetch-go/internal/utils"
)

// linkContentResourceType is the backend's native link content resource
const linkContentResourceType = "menu_link_content--menu_link_content"

// linkContentFields restricts collection responses to the attributes the
// normalized entity needs.
var linkContentFields = []string{
	"bundle", "description", "link", "menu_name", "parent", "title", "weight",
}

// LinkContentStrategy retrieves backend-native link content entities:
// user-created menu links only. Computed and system-provided links are
// structurally invisible to this representation.
type LinkContentStrategy struct {
	client domain.ResourceClient
	logger *utils.Logger
}

// NewLinkContentStrategy creates a new menu_link_content strategy
func NewLinkContentStrategy(deps *Dependencies) *LinkContentStrategy {
	return &LinkContentStrategy{
		client: deps.Client,
		logger: deps.Logger.WithStrategy(TypeMenuLinkContent),
	}
}

// Name returns the strategy name
func (s *LinkContentStrategy) Name() string {
	return TypeMenuLinkContent
}

// Fetch retrieves every enabled link of the named menu across all pages,
// preserving backend order.
func (s *LinkContentStrategy) Fetch(ctx context.Context, menuName string) ([]domain.Entity, error) {
	q := query.New().
		Filter("enabled", true).
		Filter("menu_name", menuName).
		Fields(linkContentResourceType, linkContentFields...)

	pages, err := s.client.CollectionAll(ctx, domain.CollectionRequest{
		ResourceType: linkContentResourceType,
		Query:        q.Values(),
	})
	if err != nil {
		return nil, err
	}

	var entities []domain.Entity
	for _, page := range pages {
		for _, res := range page.Data {
			entities = append(entities, linkContentEntity(res))
		}
	}

	s.logger.Debug().Str("menu", menuName).Int("entities", len(entities)).Msg("menu fetched")

	return entities, nil
}

// linkContentEntity maps a native link content record. The backend shape
// already matches the normalized attributes, so fields copy through.
func linkContentEntity(res domain.Resource) domain.Entity {
	attrs := res.Attributes

	return domain.Entity{
		ID: res.ID,
		Attributes: domain.Attributes{
			Title:       stringAttr(attrs, "title"),
			Description: optionalStringAttr(attrs, "description"),
			Link:        domain.Link{URI: linkURIAttr(attrs)},
			MenuName:    stringAttr(attrs, "menu_name"),
			Parent:      optionalStringAttr(attrs, "parent"),
			Weight:      weightAttr(attrs, "weight"),
		},
	}
}
