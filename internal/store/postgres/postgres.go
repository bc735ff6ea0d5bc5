// Package postgres backs the document store with a single jsonb table:
//
//	CREATE TABLE documents (
//	    collection TEXT NOT NULL,
//	    id         TEXT NOT NULL,
//	    fields     JSONB NOT NULL,
//	    PRIMARY KEY (collection, id)
//	);
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-menu-service/internal/store"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

type Store struct {
	DB *sqlx.DB
}

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Connect opens a pgx-backed sqlx handle and pings it.
func Connect(cfg *Config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func New(db *sqlx.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	var raw []byte
	query := `SELECT fields FROM documents WHERE collection = $1 AND id = $2 LIMIT 1`
	err := s.DB.GetContext(ctx, &raw, query, collection, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.Document{}, store.ErrNotFound
		}
		return store.Document{}, err
	}
	fields, err := decodeFields(raw)
	if err != nil {
		return store.Document{}, err
	}
	return store.Document{ID: id, Fields: fields}, nil
}

func (s *Store) List(ctx context.Context, collection, orderBy string, cursor store.Cursor, limit int) ([]store.Document, error) {
	// orderBy is injected into the statement, so it must never come from
	// user input unfiltered.
	if !identifier(orderBy) {
		return nil, fmt.Errorf("postgres: invalid order field %q", orderBy)
	}

	query := `SELECT id, fields FROM documents WHERE collection = $1`
	args := []interface{}{collection}

	if !cursor.Zero() {
		value, id := cursor.Position()
		query += fmt.Sprintf(` AND (fields->>'%s', id) > ($2, $3)`, orderBy)
		args = append(args, value, id)
	}

	query += fmt.Sprintf(` ORDER BY fields->>'%s' ASC, id ASC`, orderBy)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	return s.selectDocuments(ctx, query, args...)
}

func (s *Store) Query(ctx context.Context, collection string, filters map[string]string) ([]store.Document, error) {
	query := `SELECT id, fields FROM documents WHERE collection = $1`
	args := []interface{}{collection}

	// Equality filters match jsonb containment, one parameter per field.
	for field, value := range filters {
		if !identifier(field) {
			return nil, fmt.Errorf("postgres: invalid filter field %q", field)
		}
		args = append(args, value)
		query += fmt.Sprintf(` AND fields->>'%s' = $%d`, field, len(args))
	}
	query += ` ORDER BY id ASC`

	return s.selectDocuments(ctx, query, args...)
}

func (s *Store) Insert(ctx context.Context, collection string, fields map[string]string) (string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	id := uuid.New().String()
	query := `INSERT INTO documents (collection, id, fields) VALUES ($1, $2, $3)`
	if _, err := s.DB.ExecContext(ctx, query, collection, id, raw); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Replace(ctx context.Context, collection, id string, fields map[string]string) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	query := `UPDATE documents SET fields = $3 WHERE collection = $1 AND id = $2`
	res, err := s.DB.ExecContext(ctx, query, collection, id, raw)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, collection, id string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	return err
}

func (s *Store) selectDocuments(ctx context.Context, query string, args ...interface{}) ([]store.Document, error) {
	rows, err := s.DB.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []store.Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, store.Document{ID: id, Fields: fields})
	}
	return docs, rows.Err()
}

func decodeFields(raw []byte) (map[string]string, error) {
	fields := map[string]string{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// identifier whitelists field names usable inside a jsonb path expression.
func identifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' {
			continue
		}
		return false
	}
	return true
}
