package query

import (
	"fmt"
	"net/url"
	"strings"
)

// Builder composes JSON:API query parameters fluently. The result is passed
// opaquely to the resource client; the builder never interprets values.
type Builder struct {
	values url.Values
}

// New creates an empty Builder
func New() *Builder {
	return &Builder{values: url.Values{}}
}

// Filter adds a filter[field]=value parameter. Booleans encode as 1/0,
// matching the backend's filter convention.
func (b *Builder) Filter(field string, value any) *Builder {
	b.values.Set(fmt.Sprintf("filter[%s]", field), formatValue(value))
	return b
}

// Fields restricts the returned fields for a resource type:
// fields[resourceType]=a,b,c
func (b *Builder) Fields(resourceType string, fields ...string) *Builder {
	b.values.Set(fmt.Sprintf("fields[%s]", resourceType), strings.Join(fields, ","))
	return b
}

// Sort adds a sort parameter. Prefix a field with "-" for descending order.
func (b *Builder) Sort(fields ...string) *Builder {
	b.values.Set("sort", strings.Join(fields, ","))
	return b
}

// PageLimit sets the page[limit] parameter.
func (b *Builder) PageLimit(limit int) *Builder {
	b.values.Set("page[limit]", fmt.Sprintf("%d", limit))
	return b
}

// Values returns the composed parameters.
func (b *Builder) Values() url.Values {
	return b.values
}

// Encode returns the URL-encoded query string.
func (b *Builder) Encode() string {
	return b.values.Encode()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "1"
		}
		return "0"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
