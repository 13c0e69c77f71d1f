// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/feature-votes/models"
)

// database/sql driver names
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// SQLStore implements Store on PostgreSQL or SQLite
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// OpenSQL opens a connection pool for driver, verifies it and creates the schema
func OpenSQL(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	// SQLite allows a single writer, and every connection to :memory:
	// would otherwise get its own empty database
	if driver == DriverSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	if err := CreateSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	return NewSQLStore(conn), nil
}

// DB exposes the underlying pool
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

func (s *SQLStore) CreateFeature(ctx context.Context, name string) (models.Feature, error) {
	feature := models.Feature{
		ID:   uuid.NewString(),
		Name: name,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO features (id, name, created_at)
		VALUES ($1, $2, $3)
	`, feature.ID, feature.Name, time.Now().UnixNano())
	if err != nil {
		if isUniqueViolation(err) {
			return models.Feature{}, ErrDuplicate
		}
		return models.Feature{}, fmt.Errorf("failed to insert feature: %w", err)
	}

	return feature, nil
}

func (s *SQLStore) ListFeatures(ctx context.Context) ([]models.Feature, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM features
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query features: %w", err)
	}
	defer rows.Close()

	features := []models.Feature{}
	for rows.Next() {
		var f models.Feature
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate features: %w", err)
	}

	return features, nil
}

func (s *SQLStore) GetFeature(ctx context.Context, id string) (models.Feature, error) {
	var f models.Feature
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name FROM features WHERE id = $1
	`, id).Scan(&f.ID, &f.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Feature{}, ErrNotFound
	}
	if err != nil {
		return models.Feature{}, fmt.Errorf("failed to query feature: %w", err)
	}

	return f, nil
}

func (s *SQLStore) IncrementVote(ctx context.Context, featureID, choice string) (models.Vote, error) {
	var yes, no int64
	if choice == models.VoteYes {
		yes = 1
	} else {
		no = 1
	}

	// The first vote inserts the tally, later ones hit the unique
	// feature_id and add to the stored counters in place
	var v models.Vote
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO votes (id, feature_id, yes_count, no_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (feature_id) DO UPDATE
		SET yes_count = votes.yes_count + excluded.yes_count,
		    no_count = votes.no_count + excluded.no_count
		RETURNING id, feature_id, yes_count, no_count
	`, uuid.NewString(), featureID, yes, no).Scan(&v.ID, &v.Feature, &v.YesCount, &v.NoCount)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to upsert vote: %w", err)
	}

	return v, nil
}

func (s *SQLStore) ListVotes(ctx context.Context) ([]models.VoteWithFeature, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.yes_count, v.no_count, f.id, f.name
		FROM votes v
		LEFT JOIN features f ON f.id = v.feature_id
		ORDER BY f.created_at, v.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.VoteWithFeature{}
	for rows.Next() {
		var v models.VoteWithFeature
		var featureID, featureName sql.NullString
		if err := rows.Scan(&v.ID, &v.YesCount, &v.NoCount, &featureID, &featureName); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		if featureID.Valid {
			v.Feature = &models.Feature{ID: featureID.String, Name: featureName.String}
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}

	return votes, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close(_ context.Context) error {
	return s.db.Close()
}

// isUniqueViolation reports whether err is a unique constraint failure
// from either supported driver
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			// extended result codes disabled
			return strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
		}
	}

	return false
}
