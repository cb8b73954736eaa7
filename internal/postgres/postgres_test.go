package postgres

import (
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SergeyBogomolovv/storefront-orders/migrations"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres")
}

func TestNewMigrator_Sources(t *testing.T) {
	p, err := NewMigrator(newMockDB(t), migrations.FS)
	require.NoError(t, err)

	sources := p.ListSources()
	require.Len(t, sources, 1)
	assert.Equal(t, int64(1), sources[0].Version)
}

func TestNewSeeder_Sources(t *testing.T) {
	seedFS, err := fs.Sub(migrations.Seed, "seed")
	require.NoError(t, err)

	p, err := NewSeeder(newMockDB(t), seedFS)
	require.NoError(t, err)
	require.Len(t, p.ListSources(), 1)
}

func TestSchemaExcludesDemoData(t *testing.T) {
	names, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.sql"}, names)

	body, err := fs.ReadFile(migrations.FS, "0001_init.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "payments_transaction_id_uidx")
	assert.NotContains(t, string(body), "INSERT INTO users")
}
