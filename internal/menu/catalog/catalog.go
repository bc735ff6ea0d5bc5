// Package catalog implements the paginated "load more" view over the menu
// collection, plus the client-side filter applied on top of it.
package catalog

import (
	"context"

	"github.com/fekuna/omnipos-menu-service/internal/menu"
	"github.com/fekuna/omnipos-menu-service/internal/model"
	"github.com/fekuna/omnipos-menu-service/internal/store"
)

// DefaultPageSize matches the admin grid's initial page size.
const DefaultPageSize = 10

// Catalog accumulates pages of menu items ordered by name. Each successful
// fetch appends to the collection; the view only shrinks on Reset,
// SetPageSize or RemoveItem. A Catalog belongs to one operator session and
// is not safe for concurrent use.
type Catalog struct {
	repo     menu.Repository
	pageSize int

	items   []model.MenuItem
	cursor  store.Cursor
	hasMore bool
	loading bool
	count   int
}

func New(repo menu.Repository, pageSize int) *Catalog {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Catalog{repo: repo, pageSize: pageSize, hasMore: true}
}

// LoadMore fetches the next page and appends it to the accumulated
// collection. It returns the newly fetched page; the running view is read
// with Items. On failure the accumulated collection and cursor are left
// unchanged and loading is cleared, so the caller can retry.
func (c *Catalog) LoadMore(ctx context.Context) ([]model.MenuItem, error) {
	c.loading = true
	defer func() { c.loading = false }()

	page, next, err := c.repo.ListPage(ctx, c.cursor, c.pageSize)
	if err != nil {
		return nil, &menu.QueryFailure{Cause: err}
	}

	c.items = append(c.items, page...)
	c.cursor = next
	c.count = len(page)
	// Approximate: an exactly-full final page costs one extra empty fetch
	// before has-more settles to false.
	c.hasMore = len(page) == c.pageSize
	return page, nil
}

// SetPageSize clears the cursor and accumulated collection, then fetches the
// first page at the new size. Accumulated data never mixes page sizes.
func (c *Catalog) SetPageSize(ctx context.Context, pageSize int) ([]model.MenuItem, error) {
	if pageSize > 0 {
		c.pageSize = pageSize
	}
	c.Reset()
	return c.LoadMore(ctx)
}

// Reset returns the catalog to its initial empty state. Calling it twice in
// a row yields the same state.
func (c *Catalog) Reset() {
	c.items = nil
	c.cursor = store.Cursor{}
	c.hasMore = true
	c.loading = false
	c.count = 0
}

// Items returns a copy of the accumulated collection in fetch order.
func (c *Catalog) Items() []model.MenuItem {
	out := make([]model.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// RemoveItem drops one item from the accumulated collection after it was
// deleted in the store. Cursor and has-more are untouched: pagination
// position in the store did not move.
func (c *Catalog) RemoveItem(id string) bool {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// PageSize returns the current page size.
func (c *Catalog) PageSize() int { return c.pageSize }

// Count returns the size of the most recently fetched page.
func (c *Catalog) Count() int { return c.count }

// HasMore reports whether another LoadMore is expected to return items.
func (c *Catalog) HasMore() bool { return c.hasMore }

// Loading reports whether a fetch is in flight.
func (c *Catalog) Loading() bool { return c.loading }
