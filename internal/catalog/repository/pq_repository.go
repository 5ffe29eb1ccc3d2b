package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog"
)

var emptyDocument = []byte(`{"videos":[]}`)

type sqlSource struct {
	db *sqlx.DB
}

// NewSQLSource serves the most recently published catalog document from the
// catalog_documents table.
func NewSQLSource(db *sqlx.DB) catalog.Source {
	return &sqlSource{db: db}
}

func (s *sqlSource) Name() string { return "postgres" }

// Fetch treats an empty table as an empty catalog.
func (s *sqlSource) Fetch(ctx context.Context) ([]byte, error) {
	var body []byte
	if err := s.db.GetContext(ctx, &body, getLatestDocumentQuery); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return emptyDocument, nil
		}
		return nil, errors.Wrap(err, "sqlSource.Fetch.GetContext")
	}
	return body, nil
}

func PublishDocument(ctx context.Context, db *sqlx.DB, body []byte, at time.Time) error {
	if _, err := db.ExecContext(ctx, db.Rebind(insertDocumentQuery), body, at); err != nil {
		return errors.Wrap(err, "PublishDocument.ExecContext")
	}
	return nil
}
