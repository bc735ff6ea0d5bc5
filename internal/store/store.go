package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists under the given id.
var ErrNotFound = errors.New("store: document not found")

// Document is a keyed record in a collection. The store assigns and owns the
// ID; Fields carries the flat field set of the record.
type Document struct {
	ID     string
	Fields map[string]string
}

// Cursor marks the position strictly after a previously fetched document in
// an ordered listing. The zero value means "from the beginning". Callers
// treat it as opaque; it is only ever produced by After.
type Cursor struct {
	value string
	id    string
	set   bool
}

// After returns a cursor positioned just after doc in a listing ordered by
// orderBy.
func After(doc Document, orderBy string) Cursor {
	return Cursor{value: doc.Fields[orderBy], id: doc.ID, set: true}
}

// Zero reports whether the cursor points at the beginning.
func (c Cursor) Zero() bool { return !c.set }

// Position exposes the (order-field value, id) pair for adapters.
func (c Cursor) Position() (value, id string) { return c.value, c.id }

// Store is the keyed-document service the catalog is built on. Listings are
// ordered ascending by the orderBy field, ties broken by document ID, so a
// cursor identifies a stable position.
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection, orderBy string, cursor Cursor, limit int) ([]Document, error)
	Query(ctx context.Context, collection string, filters map[string]string) ([]Document, error)
	Insert(ctx context.Context, collection string, fields map[string]string) (string, error)
	Replace(ctx context.Context, collection, id string, fields map[string]string) error
	Remove(ctx context.Context, collection, id string) error
}
