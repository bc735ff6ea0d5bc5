package menu

import (
	"context"

	"github.com/fekuna/omnipos-menu-service/internal/menu/dto"
	"github.com/fekuna/omnipos-menu-service/internal/model"
)

type UseCase interface {
	LoadForEdit(ctx context.Context, id string) (*model.MenuItem, error)
	CreateItem(ctx context.Context, input *dto.ItemInput) (*model.MenuItem, error)
	UpdateItem(ctx context.Context, id string, input *dto.ItemInput) (*model.MenuItem, error)
	DeleteItem(ctx context.Context, id string) error
}
