package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	desk "github.com/goliatone/go-desk"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

var _ desk.CredentialStore = (*CredentialRepository)(nil)

// CredentialModel is the Bun model for stored credentials.
type CredentialModel struct {
	bun.BaseModel `bun:"table:credentials"`

	Name      string    `bun:"name,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// CredentialRepository implements desk.CredentialStore using Bun.
type CredentialRepository struct {
	db *bun.DB
}

// NewCredentialRepository creates a new repository.
func NewCredentialRepository(db *bun.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// OpenSQLite opens (or creates) a sqlite database at path and makes sure
// the credentials table exists.
func OpenSQLite(ctx context.Context, path string) (*CredentialRepository, func() error, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening sqlite store %s: %w", path, err)
	}
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	repo := NewCredentialRepository(db)

	if err := repo.CreateTable(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return repo, db.Close, nil
}

// CreateTable creates the credentials table if missing.
func (r *CredentialRepository) CreateTable(ctx context.Context) error {
	_, err := r.db.NewCreateTable().
		Model((*CredentialModel)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("creating credentials table: %w", err)
	}
	return nil
}

// Get implements desk.CredentialStore. Missing entries return "".
func (r *CredentialRepository) Get(ctx context.Context, key string) (string, error) {
	var model CredentialModel
	err := r.db.NewSelect().
		Model(&model).
		Where("name = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return model.Value, nil
}

// Set implements desk.CredentialStore.
func (r *CredentialRepository) Set(ctx context.Context, key, value string) error {
	model := &CredentialModel{
		Name:      key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.db.NewInsert().
		Model(model).
		On("CONFLICT (name) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// Delete implements desk.CredentialStore. Deleting a missing entry is a no-op.
func (r *CredentialRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.NewDelete().
		Model((*CredentialModel)(nil)).
		Where("name = ?", key).
		Exec(ctx)
	return err
}
