package prefs

import (
	"context"
	"database/sql"

	"github.com/jask/eshop/internal/database"
	"github.com/jask/eshop/internal/database/repository"
)

// SQLiteStore keeps preferences in the preferences table.
type SQLiteStore struct {
	db   *sql.DB
	repo *repository.PreferenceRepo
}

// OpenSQLite migrates and opens the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := database.OpenMigrated(path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, repo: repository.NewPreferenceRepo(db)}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	p, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if p == nil {
		return "", false, nil
	}
	return p.Value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return s.repo.Upsert(ctx, repository.Preference{Key: key, Value: value, UpdatedAt: database.Now()})
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
