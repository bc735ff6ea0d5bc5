package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-menu-service/internal/menu"
	"github.com/fekuna/omnipos-menu-service/internal/menu/dto"
	"github.com/fekuna/omnipos-menu-service/internal/model"
	"github.com/fekuna/omnipos-menu-service/internal/notify"
	"github.com/fekuna/omnipos-menu-service/pkg/cache"
	"github.com/fekuna/omnipos-menu-service/pkg/logger"
	"go.uber.org/zap"
)

const itemCacheTTL = 5 * time.Minute

// Confirmation messages, one per mutation kind.
const (
	MsgCreated = "added new menu item successfully!"
	MsgUpdated = "update menu item successfully!"
	MsgDeleted = "Menu item deleted successfully!"
)

type menuWorkflow struct {
	repo     menu.Repository
	cache    *cache.RedisClient // optional; nil disables caching
	notifier *notify.Notifier   // optional; nil disables notifications
	logger   logger.ZapLogger
}

func NewMenuWorkflow(repo menu.Repository, cache *cache.RedisClient, notifier *notify.Notifier, log logger.ZapLogger) menu.UseCase {
	return &menuWorkflow{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   log,
	}
}

// LoadForEdit fetches the item being edited, read-through over Redis.
func (uc *menuWorkflow) LoadForEdit(ctx context.Context, id string) (*model.MenuItem, error) {
	if item := uc.cacheGet(ctx, id); item != nil {
		return item, nil
	}

	item, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			return nil, err
		}
		return nil, &menu.PersistenceFailure{Op: "load", Cause: err}
	}

	uc.cacheSet(ctx, item)
	return item, nil
}

// CreateItem validates the input, runs the advisory (name, category)
// uniqueness pre-check, then inserts. The pre-check is read-then-write with
// no store transaction behind it: two racing creates of the same pair can
// both pass. That matches the store capability, which has no transactional
// primitive.
func (uc *menuWorkflow) CreateItem(ctx context.Context, input *dto.ItemInput) (*model.MenuItem, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return nil, &menu.ValidationError{Fields: errs}
	}

	existing, err := uc.repo.FindByNameCategory(ctx, input.Name, input.Category)
	if err != nil {
		return nil, &menu.PersistenceFailure{Op: "create", Cause: err}
	}
	if len(existing) > 0 {
		return nil, &menu.UniquenessViolation{Name: input.Name, Category: input.Category}
	}

	item := input.Item("")
	id, err := uc.repo.Insert(ctx, item)
	if err != nil {
		return nil, &menu.PersistenceFailure{Op: "create", Cause: err}
	}
	item.ID = id

	uc.logger.Info("menu item created",
		zap.String("id", id),
		zap.String("name", item.Name),
		zap.String("category", item.Category),
	)
	uc.emit(MsgCreated)
	return item, nil
}

// UpdateItem rewrites every editable field of the item: full replace, not a
// partial patch. A field the operator blanked would fail validation first;
// one they changed overwrites the stored value unconditionally.
func (uc *menuWorkflow) UpdateItem(ctx context.Context, id string, input *dto.ItemInput) (*model.MenuItem, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return nil, &menu.ValidationError{Fields: errs}
	}

	item := input.Item(id)
	if err := uc.repo.Replace(ctx, item); err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			return nil, err
		}
		return nil, &menu.PersistenceFailure{Op: "update", Cause: err}
	}

	uc.cacheDel(ctx, id)
	uc.logger.Info("menu item updated", zap.String("id", id))
	uc.emit(MsgUpdated)
	return item, nil
}

// DeleteItem removes the item irreversibly. The caller re-syncs its catalog
// view afterwards (Catalog.RemoveItem).
func (uc *menuWorkflow) DeleteItem(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return &menu.PersistenceFailure{Op: "delete", Cause: err}
	}

	uc.cacheDel(ctx, id)
	uc.logger.Info("menu item deleted", zap.String("id", id))
	uc.emit(MsgDeleted)
	return nil
}

func (uc *menuWorkflow) emit(message string) {
	if uc.notifier != nil {
		uc.notifier.Emit(message, notify.SeveritySuccess)
	}
}

func itemCacheKey(id string) string {
	return fmt.Sprintf("menu:item:%s", id)
}

func (uc *menuWorkflow) cacheGet(ctx context.Context, id string) *model.MenuItem {
	if uc.cache == nil {
		return nil
	}
	val, err := uc.cache.Client.Get(ctx, itemCacheKey(id)).Result()
	if err != nil {
		return nil
	}
	var item model.MenuItem
	if err := json.Unmarshal([]byte(val), &item); err != nil {
		return nil
	}
	return &item
}

func (uc *menuWorkflow) cacheSet(ctx context.Context, item *model.MenuItem) {
	if uc.cache == nil {
		return
	}
	data, err := json.Marshal(item)
	if err != nil {
		return
	}
	if err := uc.cache.Client.Set(ctx, itemCacheKey(item.ID), data, itemCacheTTL).Err(); err != nil {
		uc.logger.Warn("failed to cache menu item", zap.String("id", item.ID), zap.Error(err))
	}
}

func (uc *menuWorkflow) cacheDel(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Client.Del(ctx, itemCacheKey(id)).Err(); err != nil {
		uc.logger.Warn("failed to invalidate menu item cache", zap.String("id", id), zap.Error(err))
	}
}
