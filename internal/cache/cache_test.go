package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/menufetch-go/internal/domain"
)

func newTestCache(t *testing.T) *BadgerCache {
	t.Helper()

	c, err := NewBadgerCache(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func TestBadgerCache_SetGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	url := "https://cms.example.com/jsonapi/menu_link_content/menu_link_content?filter[menu_name]=main"
	require.NoError(t, c.Set(ctx, url, []byte(`{"data":[]}`), time.Minute))

	got, err := c.Get(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"data":[]}`), got)
	assert.True(t, c.Has(ctx, url))
}

func TestBadgerCache_Miss(t *testing.T) {
	c := newTestCache(t)

	_, err := c.Get(context.Background(), "https://cms.example.com/never-stored")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestBadgerCache_Delete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "https://cms.example.com/jsonapi", []byte("x"), 0))
	require.NoError(t, c.Delete(ctx, "https://cms.example.com/jsonapi"))
	assert.False(t, c.Has(ctx, "https://cms.example.com/jsonapi"))
}

func TestBadgerCache_Clear(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "https://a.example.com/", []byte("a"), 0))
	require.NoError(t, c.Set(ctx, "https://b.example.com/", []byte("b"), 0))
	require.NoError(t, c.Clear())

	assert.False(t, c.Has(ctx, "https://a.example.com/"))
	assert.False(t, c.Has(ctx, "https://b.example.com/"))
}

func TestGenerateKey_Normalization(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{
			"host case ignored",
			"https://CMS.Example.com/jsonapi",
			"https://cms.example.com/jsonapi",
			true,
		},
		{
			"default port stripped",
			"https://cms.example.com:443/jsonapi",
			"https://cms.example.com/jsonapi",
			true,
		},
		{
			"trailing slash stripped",
			"https://cms.example.com/jsonapi/",
			"https://cms.example.com/jsonapi",
			true,
		},
		{
			"query order irrelevant",
			"https://cms.example.com/jsonapi?b=2&a=1",
			"https://cms.example.com/jsonapi?a=1&b=2",
			true,
		},
		{
			"different filters cache separately",
			"https://cms.example.com/jsonapi?filter[menu_name]=main",
			"https://cms.example.com/jsonapi?filter[menu_name]=footer",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.same {
				assert.Equal(t, GenerateKey(tt.a), GenerateKey(tt.b))
			} else {
				assert.NotEqual(t, GenerateKey(tt.a), GenerateKey(tt.b))
			}
		})
	}
}
