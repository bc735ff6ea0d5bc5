package repository

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-menu-service/internal/menu"
	"github.com/fekuna/omnipos-menu-service/internal/model"
	"github.com/fekuna/omnipos-menu-service/internal/store"
)

// Collection is the document collection holding menu items.
const Collection = "menu"

// StoreRepository adapts the keyed-document store to the menu repository
// port. It owns the Document <-> MenuItem field mapping.
type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	doc, err := r.store.Get(ctx, Collection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, menu.ErrNotFound
		}
		return nil, err
	}
	item := fromDocument(doc)
	return &item, nil
}

func (r *StoreRepository) ListPage(ctx context.Context, cursor store.Cursor, limit int) ([]model.MenuItem, store.Cursor, error) {
	docs, err := r.store.List(ctx, Collection, model.FieldName, cursor, limit)
	if err != nil {
		return nil, cursor, err
	}

	items := make([]model.MenuItem, len(docs))
	for i, d := range docs {
		items[i] = fromDocument(d)
	}

	next := cursor
	if len(docs) > 0 {
		next = store.After(docs[len(docs)-1], model.FieldName)
	}
	return items, next, nil
}

func (r *StoreRepository) FindByNameCategory(ctx context.Context, name, category string) ([]model.MenuItem, error) {
	docs, err := r.store.Query(ctx, Collection, map[string]string{
		model.FieldName:     name,
		model.FieldCategory: category,
	})
	if err != nil {
		return nil, err
	}
	items := make([]model.MenuItem, len(docs))
	for i, d := range docs {
		items[i] = fromDocument(d)
	}
	return items, nil
}

func (r *StoreRepository) Insert(ctx context.Context, item *model.MenuItem) (string, error) {
	return r.store.Insert(ctx, Collection, toFields(item))
}

func (r *StoreRepository) Replace(ctx context.Context, item *model.MenuItem) error {
	err := r.store.Replace(ctx, Collection, item.ID, toFields(item))
	if errors.Is(err, store.ErrNotFound) {
		return menu.ErrNotFound
	}
	return err
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, Collection, id)
}

func toFields(item *model.MenuItem) map[string]string {
	return map[string]string{
		model.FieldName:     item.Name,
		model.FieldCategory: item.Category,
		model.FieldPrice:    item.Price,
		model.FieldCost:     item.Cost,
		model.FieldStock:    item.Stock,
		model.FieldOptions:  string(item.Options),
	}
}

func fromDocument(doc store.Document) model.MenuItem {
	return model.MenuItem{
		ID:       doc.ID,
		Name:     doc.Fields[model.FieldName],
		Category: doc.Fields[model.FieldCategory],
		Price:    doc.Fields[model.FieldPrice],
		Cost:     doc.Fields[model.FieldCost],
		Stock:    doc.Fields[model.FieldStock],
		Options:  model.Option(doc.Fields[model.FieldOptions]),
	}
}
