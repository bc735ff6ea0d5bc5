package memory

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-menu-service/internal/store"
	"github.com/stretchr/testify/require"
)

func TestGetMissingReturnsNotFound(t *testing.T) {
	s := New()

	_, err := s.Get(context.Background(), "menu", "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestInsertGetRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	id, err := s.Insert(ctx, "menu", map[string]string{"name": "Burger", "category": "Food"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := s.Get(ctx, "menu", id)
	require.NoError(t, err)
	require.Equal(t, "Burger", doc.Fields["name"])
	require.Equal(t, "Food", doc.Fields["category"])
}

func TestListOrdersByFieldThenID(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, name := range []string{"Soda", "Burger", "Fries"} {
		_, err := s.Insert(ctx, "menu", map[string]string{"name": name})
		require.NoError(t, err)
	}

	docs, err := s.List(ctx, "menu", "name", store.Cursor{}, 0)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.Equal(t, "Burger", docs[0].Fields["name"])
	require.Equal(t, "Fries", docs[1].Fields["name"])
	require.Equal(t, "Soda", docs[2].Fields["name"])
}

func TestListCursorPaging(t *testing.T) {
	s := New()
	ctx := context.Background()

	names := []string{"Burger", "Fries", "Pizza", "Soda"}
	for _, name := range names {
		_, err := s.Insert(ctx, "menu", map[string]string{"name": name})
		require.NoError(t, err)
	}

	var got []string
	cursor := store.Cursor{}
	for {
		docs, err := s.List(ctx, "menu", "name", cursor, 2)
		require.NoError(t, err)
		if len(docs) == 0 {
			break
		}
		for _, d := range docs {
			got = append(got, d.Fields["name"])
		}
		cursor = store.After(docs[len(docs)-1], "name")
	}
	require.Equal(t, names, got)
}

func TestListCursorBreaksTiesByID(t *testing.T) {
	s := New()
	ctx := context.Background()

	// Same order-field value; paging must still visit each doc exactly once.
	for i := 0; i < 5; i++ {
		_, err := s.Insert(ctx, "menu", map[string]string{"name": "Burger"})
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	cursor := store.Cursor{}
	for {
		docs, err := s.List(ctx, "menu", "name", cursor, 2)
		require.NoError(t, err)
		if len(docs) == 0 {
			break
		}
		for _, d := range docs {
			require.False(t, seen[d.ID], "document %s listed twice", d.ID)
			seen[d.ID] = true
		}
		cursor = store.After(docs[len(docs)-1], "name")
	}
	require.Len(t, seen, 5)
}

func TestQueryEqualityFilters(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Insert(ctx, "menu", map[string]string{"name": "Burger", "category": "Food"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "menu", map[string]string{"name": "Burger", "category": "Drink"})
	require.NoError(t, err)

	docs, err := s.Query(ctx, "menu", map[string]string{"name": "Burger", "category": "Food"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "Food", docs[0].Fields["category"])

	docs, err = s.Query(ctx, "menu", map[string]string{"name": "Pizza"})
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestReplaceMissingReturnsNotFound(t *testing.T) {
	s := New()

	err := s.Replace(context.Background(), "menu", "nope", map[string]string{"name": "x"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRemoveThenGetReturnsNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	id, err := s.Insert(ctx, "menu", map[string]string{"name": "Burger"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "menu", id))
	_, err = s.Get(ctx, "menu", id)
	require.ErrorIs(t, err, store.ErrNotFound)
}
