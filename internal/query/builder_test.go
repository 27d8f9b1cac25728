package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_Filter(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
		want  string
	}{
		{"string value", "menu_name", "main", "main"},
		{"bool true encodes as 1", "enabled", true, "1"},
		{"bool false encodes as 0", "enabled", false, "0"},
		{"int value", "weight", 5, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New().Filter(tt.field, tt.value)
			assert.Equal(t, tt.want, b.Values().Get("filter["+tt.field+"]"))
		})
	}
}

func TestBuilder_Fields(t *testing.T) {
	b := New().Fields("menu_link_content--menu_link_content", "title", "weight", "parent")

	got := b.Values().Get("fields[menu_link_content--menu_link_content]")
	assert.Equal(t, "title,weight,parent", got)
}

func TestBuilder_Fluent(t *testing.T) {
	b := New().
		Filter("enabled", true).
		Filter("menu_name", "footer").
		Fields("menu_items", "title", "url").
		Sort("weight").
		PageLimit(50)

	v := b.Values()
	assert.Equal(t, "1", v.Get("filter[enabled]"))
	assert.Equal(t, "footer", v.Get("filter[menu_name]"))
	assert.Equal(t, "title,url", v.Get("fields[menu_items]"))
	assert.Equal(t, "weight", v.Get("sort"))
	assert.Equal(t, "50", v.Get("page[limit]"))
}

func TestBuilder_EncodeDeterministic(t *testing.T) {
	b := New().Filter("menu_name", "main").Filter("enabled", true)

	// url.Values.Encode sorts keys, so the query string is stable.
	assert.Equal(t, "filter%5Benabled%5D=1&filter%5Bmenu_name%5D=main", b.Encode())
}
