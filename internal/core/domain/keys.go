package domain

import "strings"

// Key addresses one cache entry. Keys are composite: the primary recipe
// list, one list per category, and one detail entry per recipe identifier.
type Key string

const (
	listKey        Key = "recipes"
	categoryPrefix     = "recipes/"
	detailPrefix       = "recipe/"
)

// ListKey addresses the primary "all recipes" entry.
func ListKey() Key { return listKey }

// CategoryKey addresses the list entry for one category.
func CategoryKey(c Category) Key { return Key(categoryPrefix + string(c)) }

// DetailKey addresses the single-recipe entry for one identifier.
func DetailKey(id string) Key { return Key(detailPrefix + id) }

// IsCategory reports whether k addresses a per-category list entry.
func (k Key) IsCategory() bool { return strings.HasPrefix(string(k), categoryPrefix) }

// IsDetail reports whether k addresses a single-recipe entry.
func (k Key) IsDetail() bool { return strings.HasPrefix(string(k), detailPrefix) }

// IsList reports whether k addresses a list entry (primary or category).
func (k Key) IsList() bool { return k == listKey || k.IsCategory() }

// Category returns the category a per-category key addresses.
func (k Key) Category() Category {
	return Category(strings.TrimPrefix(string(k), categoryPrefix))
}

// RecipeID returns the identifier a detail key addresses.
func (k Key) RecipeID() string {
	return strings.TrimPrefix(string(k), detailPrefix)
}

func (k Key) String() string { return string(k) }
