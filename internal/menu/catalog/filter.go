package catalog

import (
	"strings"

	"github.com/fekuna/omnipos-menu-service/internal/model"
)

// Filter returns the items whose name or category contains term,
// case-insensitively, preserving order. An empty term matches everything.
// It is pure: it never fetches and never touches pagination state, so the
// filtered row count can legitimately sit below the store-reported count.
func Filter(items []model.MenuItem, term string) []model.MenuItem {
	if term == "" {
		out := make([]model.MenuItem, len(items))
		copy(out, items)
		return out
	}

	needle := strings.ToLower(term)
	var out []model.MenuItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Category), needle) {
			out = append(out, item)
		}
	}
	return out
}
