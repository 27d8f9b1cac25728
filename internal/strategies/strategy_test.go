package strategies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantmind-br/menufetch-go/internal/domain"
	"github.com/quantmind-br/menufetch-go/internal/utils"
)

// fakeClient implements domain.ResourceClient and records what the
// strategies ask for.
type fakeClient struct {
	endpoint string
	pages    []domain.ResourcePage
	document []byte
	err      error

	lastCollection *domain.CollectionRequest
	lastPath       string
}

func (f *fakeClient) Index(ctx context.Context) (domain.ResourceIndex, error) {
	return domain.ResourceIndex{}, nil
}

func (f *fakeClient) CollectionAll(ctx context.Context, req domain.CollectionRequest) ([]domain.ResourcePage, error) {
	f.lastCollection = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

func (f *fakeClient) GetDocument(ctx context.Context, path string) ([]byte, error) {
	f.lastPath = path
	if f.err != nil {
		return nil, f.err
	}
	return f.document, nil
}

func (f *fakeClient) Endpoint() string {
	if f.endpoint == "" {
		return "/jsonapi"
	}
	return f.endpoint
}

func (f *fakeClient) Close() error { return nil }

func testDeps(client domain.ResourceClient) *Dependencies {
	return NewDependencies(client, utils.NewNopLogger())
}

func TestForType(t *testing.T) {
	tests := []struct {
		menuType string
		want     string
	}{
		{TypeMenuLinkContent, "menu_link_content"},
		{TypeJSONAPIMenuItems, "jsonapi_menu_items"},
		{TypeDecoupledMenus, "decoupled_menus"},
		// Unrecognized types select the default strategy
		{"bogus", "menu_link_content"},
		{"", "menu_link_content"},
	}

	for _, tt := range tests {
		t.Run(tt.menuType, func(t *testing.T) {
			s := ForType(tt.menuType, testDeps(&fakeClient{}))
			assert.Equal(t, tt.want, s.Name())
		})
	}
}

func TestWeightAttr(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]any
		want  domain.Weight
	}{
		{"float from JSON", map[string]any{"weight": float64(3)}, domain.NumericWeight(3)},
		{"negative", map[string]any{"weight": float64(-2)}, domain.NumericWeight(-2)},
		{"int", map[string]any{"weight": 7}, domain.NumericWeight(7)},
		{"numeric string", map[string]any{"weight": "4"}, domain.NumericWeight(4)},
		{"non-numeric string kept as-is", map[string]any{"weight": "1.2"}, domain.HierarchyWeight("1.2")},
		{"missing defaults to zero", map[string]any{}, domain.NumericWeight(0)},
		{"null defaults to zero", map[string]any{"weight": nil}, domain.NumericWeight(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weightAttr(tt.attrs, "weight"))
		})
	}
}

func TestOptionalStringAttr(t *testing.T) {
	attrs := map[string]any{
		"present": "value",
		"empty":   "",
		"null":    nil,
	}

	if got := optionalStringAttr(attrs, "present"); assert.NotNil(t, got) {
		assert.Equal(t, "value", *got)
	}
	assert.Nil(t, optionalStringAttr(attrs, "empty"))
	assert.Nil(t, optionalStringAttr(attrs, "null"))
	assert.Nil(t, optionalStringAttr(attrs, "missing"))
}

func TestLinkURIAttr(t *testing.T) {
	assert.Equal(t, "internal:/about", linkURIAttr(map[string]any{
		"link": map[string]any{"uri": "internal:/about"},
	}))
	assert.Equal(t, "", linkURIAttr(map[string]any{"link": "not-an-object"}))
	assert.Equal(t, "", linkURIAttr(map[string]any{}))
}
