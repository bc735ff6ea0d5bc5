package menu

import (
	"context"

	"github.com/fekuna/omnipos-menu-service/internal/model"
	"github.com/fekuna/omnipos-menu-service/internal/store"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.MenuItem, error)

	// ListPage returns up to limit items ordered by (name, id) ascending,
	// starting strictly after cursor.
	ListPage(ctx context.Context, cursor store.Cursor, limit int) ([]model.MenuItem, store.Cursor, error)

	// FindByNameCategory is the equality query behind the uniqueness
	// precondition check.
	FindByNameCategory(ctx context.Context, name, category string) ([]model.MenuItem, error)

	Insert(ctx context.Context, item *model.MenuItem) (string, error)
	Replace(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, id string) error
}
