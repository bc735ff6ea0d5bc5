package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-menu-service/internal/menu"
	"github.com/fekuna/omnipos-menu-service/internal/menu/dto"
	"github.com/fekuna/omnipos-menu-service/internal/menu/repository"
	"github.com/fekuna/omnipos-menu-service/internal/notify"
	"github.com/fekuna/omnipos-menu-service/internal/store"
	"github.com/fekuna/omnipos-menu-service/internal/store/memory"
	"github.com/fekuna/omnipos-menu-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memory.Store
	uc       menu.UseCase
	notifier *notify.Notifier
}

func newFixture() *fixture {
	s := memory.New()
	n := notify.NewNotifier(8)
	uc := NewMenuWorkflow(repository.NewStoreRepository(s), nil, n, logger.NewNop())
	return &fixture{store: s, uc: uc, notifier: n}
}

func (f *fixture) storedCount(t *testing.T) int {
	t.Helper()
	docs, err := f.store.Query(context.Background(), repository.Collection, nil)
	require.NoError(t, err)
	return len(docs)
}

func (f *fixture) lastNotification(t *testing.T) notify.Notification {
	t.Helper()
	select {
	case n := <-f.notifier.Events():
		return n
	default:
		t.Fatal("expected a notification")
		return notify.Notification{}
	}
}

func burgerInput() *dto.ItemInput {
	return &dto.ItemInput{
		Name:     "Burger",
		Category: "Food",
		Price:    "5.50",
		Cost:     "2.25",
		Stock:    "10",
		Options:  "small",
	}
}

func TestCreateItemPersistsAndNotifies(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	item, err := f.uc.CreateItem(ctx, burgerInput())
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)

	stored, err := f.uc.LoadForEdit(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, item, stored)

	n := f.lastNotification(t)
	assert.Equal(t, MsgCreated, n.Message)
	assert.Equal(t, notify.SeveritySuccess, n.Severity)
}

func TestCreateItemMissingPriceWritesNothing(t *testing.T) {
	f := newFixture()
	in := burgerInput()
	in.Price = ""

	_, err := f.uc.CreateItem(context.Background(), in)

	var verr *menu.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "Price is required", verr.Fields["price"])
	assert.Zero(t, f.storedCount(t))
}

func TestCreateItemDuplicatePairRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.CreateItem(ctx, burgerInput())
	require.NoError(t, err)
	<-f.notifier.Events()

	soda := burgerInput()
	soda.Name = "Soda"
	soda.Category = "Drink"
	_, err = f.uc.CreateItem(ctx, soda)
	require.NoError(t, err)
	<-f.notifier.Events()

	before := f.storedCount(t)

	_, err = f.uc.CreateItem(ctx, burgerInput())
	var uerr *menu.UniquenessViolation
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, map[string]string{
		"name":     "Name already exists",
		"category": "Category already exists",
	}, uerr.FieldErrors())

	assert.Equal(t, before, f.storedCount(t), "rejected create must perform zero writes")

	// Same name under a different category is a distinct item.
	burgerDrink := burgerInput()
	burgerDrink.Category = "Drink"
	_, err = f.uc.CreateItem(ctx, burgerDrink)
	require.NoError(t, err)
}

func TestUpdateItemFullReplaceRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	item, err := f.uc.CreateItem(ctx, burgerInput())
	require.NoError(t, err)
	<-f.notifier.Events()

	replacement := &dto.ItemInput{
		Name:     "Double Burger",
		Category: "Specials",
		Price:    "9.00",
		Cost:     "4.10",
		Stock:    "3",
		Options:  "large",
	}
	updated, err := f.uc.UpdateItem(ctx, item.ID, replacement)
	require.NoError(t, err)

	loaded, err := f.uc.LoadForEdit(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, updated, loaded)
	require.Equal(t, replacement.Item(item.ID), loaded)

	n := f.lastNotification(t)
	assert.Equal(t, MsgUpdated, n.Message)
	assert.Equal(t, notify.SeveritySuccess, n.Severity)
}

func TestUpdateItemValidatesBeforeWriting(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	item, err := f.uc.CreateItem(ctx, burgerInput())
	require.NoError(t, err)
	<-f.notifier.Events()

	bad := burgerInput()
	bad.Stock = "lots"
	_, err = f.uc.UpdateItem(ctx, item.ID, bad)

	var verr *menu.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "stock")

	loaded, err := f.uc.LoadForEdit(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "10", loaded.Stock, "failed update must not touch the stored item")
}

func TestUpdateMissingItemReturnsNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.UpdateItem(context.Background(), "ghost", burgerInput())
	require.ErrorIs(t, err, menu.ErrNotFound)
}

func TestDeleteItemThenLoadReturnsNotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	item, err := f.uc.CreateItem(ctx, burgerInput())
	require.NoError(t, err)
	<-f.notifier.Events()

	require.NoError(t, f.uc.DeleteItem(ctx, item.ID))

	n := f.lastNotification(t)
	assert.Equal(t, MsgDeleted, n.Message)

	_, err = f.uc.LoadForEdit(ctx, item.ID)
	require.ErrorIs(t, err, menu.ErrNotFound)
}

func TestLoadForEditMissingReturnsNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.LoadForEdit(context.Background(), "ghost")
	require.ErrorIs(t, err, menu.ErrNotFound)
}

// brokenStore fails every operation with the same cause.
type brokenStore struct{ err error }

func (s *brokenStore) Get(context.Context, string, string) (store.Document, error) {
	return store.Document{}, s.err
}

func (s *brokenStore) List(context.Context, string, string, store.Cursor, int) ([]store.Document, error) {
	return nil, s.err
}

func (s *brokenStore) Query(context.Context, string, map[string]string) ([]store.Document, error) {
	return nil, s.err
}

func (s *brokenStore) Insert(context.Context, string, map[string]string) (string, error) {
	return "", s.err
}

func (s *brokenStore) Replace(context.Context, string, string, map[string]string) error {
	return s.err
}

func (s *brokenStore) Remove(context.Context, string, string) error { return s.err }

func TestStoreFailuresSurfaceAsPersistenceFailure(t *testing.T) {
	cause := errors.New("store unavailable")
	uc := NewMenuWorkflow(
		repository.NewStoreRepository(&brokenStore{err: cause}),
		nil, nil, logger.NewNop(),
	)
	ctx := context.Background()

	_, err := uc.CreateItem(ctx, burgerInput())
	var perr *menu.PersistenceFailure
	require.ErrorAs(t, err, &perr)
	require.ErrorIs(t, err, cause)

	_, err = uc.UpdateItem(ctx, "id", burgerInput())
	require.ErrorAs(t, err, &perr)

	err = uc.DeleteItem(ctx, "id")
	require.ErrorAs(t, err, &perr)

	_, err = uc.LoadForEdit(ctx, "id")
	require.ErrorAs(t, err, &perr)
}
