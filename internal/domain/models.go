package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Entity is the normalized menu item produced by every retrieval strategy.
// Regardless of which backend representation supplied the data, consumers
// can reconstruct the menu tree by grouping entities on Attributes.Parent.
type Entity struct {
	ID         string     `json:"id"`
	Attributes Attributes `json:"attributes"`

	// Resource is the original raw backend record. Only the
	// jsonapi_menu_items strategy supplies it; consumers must not assume
	// its presence.
	Resource *Resource `json:"resource,omitempty"`
}

// Attributes carries the uniform menu item fields.
type Attributes struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Link        Link    `json:"link"`
	MenuName    string  `json:"menu_name"`
	// Parent is the ID of the parent entity, or nil for a root item.
	Parent *string `json:"parent"`
	Weight Weight  `json:"weight"`
}

// Link holds the entity's internal-link URI reference.
type Link struct {
	URI string `json:"uri"`
}

// Resource is a raw JSON:API resource object as returned by the backend.
type Resource struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Attributes map[string]any `json:"attributes"`
}

// ResourcePage is one page of a paginated JSON:API collection.
type ResourcePage struct {
	Data []Resource `json:"data"`
}

// ResourceLocation is one entry of the backend's resource index.
type ResourceLocation struct {
	Href string `json:"href"`
}

// ResourceIndex maps resource type names to their collection locations.
type ResourceIndex map[string]ResourceLocation

// Weight orders sibling menu items. The menu_link_content and
// jsonapi_menu_items strategies supply numeric weights; decoupled_menus
// supplies the raw dot-delimited hierarchy string, which orders segment by
// segment ("1.2" sorts before "1.10").
type Weight struct {
	number    int
	hierarchy string
	isDotted  bool
}

// NumericWeight returns a numeric weight.
func NumericWeight(n int) Weight {
	return Weight{number: n}
}

// HierarchyWeight returns a weight backed by a dot-delimited hierarchy string.
func HierarchyWeight(h string) Weight {
	return Weight{hierarchy: h, isDotted: true}
}

// IsHierarchy reports whether the weight is a hierarchy string.
func (w Weight) IsHierarchy() bool { return w.isDotted }

// Number returns the numeric value. Zero for hierarchy weights.
func (w Weight) Number() int { return w.number }

// Hierarchy returns the hierarchy string. Empty for numeric weights.
func (w Weight) Hierarchy() string { return w.hierarchy }

// Compare orders two weights. Numeric weights compare numerically and
// hierarchy weights compare segment by segment, so "10" sorts after "2"
// within one level. Mixed weights fall back to comparing string forms.
func (w Weight) Compare(other Weight) int {
	switch {
	case !w.isDotted && !other.isDotted:
		return compareInts(w.number, other.number)
	case w.isDotted && other.isDotted:
		return compareHierarchies(w.hierarchy, other.hierarchy)
	default:
		return strings.Compare(w.String(), other.String())
	}
}

// String returns the source representation of the weight.
func (w Weight) String() string {
	if w.isDotted {
		return w.hierarchy
	}
	return strconv.Itoa(w.number)
}

// MarshalJSON preserves the source representation: numbers stay numbers,
// hierarchy strings stay strings.
func (w Weight) MarshalJSON() ([]byte, error) {
	if w.isDotted {
		return json.Marshal(w.hierarchy)
	}
	return json.Marshal(w.number)
}

// UnmarshalJSON accepts either form.
func (w *Weight) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*w = NumericWeight(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("weight must be a number or a string: %w", err)
	}
	*w = HierarchyWeight(s)
	return nil
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareHierarchies(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegments(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return compareInts(len(as), len(bs))
}

// compareSegments compares numerically when both segments are numbers,
// lexically otherwise.
func compareSegments(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return compareInts(an, bn)
	}
	return strings.Compare(a, b)
}
