package database

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestEmbeddedMigrations(t *testing.T) {
	ms := GetMigrations()
	require.NotEmpty(t, ms)
	for i, m := range ms {
		assert.Equal(t, i+1, m.Version, "versions must be contiguous")
		assert.NotEmpty(t, m.UpScript)
		assert.NotEmpty(t, m.DownScript)
	}
	assert.Equal(t, "000001_create_users", ms[0].String())
	assert.NotNil(t, GetMigrationByVersion(1))
	assert.Nil(t, GetMigrationByVersion(999))
}

func TestLoadMigrations_Errors(t *testing.T) {
	_, err := LoadMigrations(fstest.MapFS{
		"migrations/000001_a.up.sql": {Data: []byte("SELECT 1;")},
	})
	assert.ErrorContains(t, err, "down migration")

	_, err = LoadMigrations(fstest.MapFS{
		"migrations/x_a.up.sql":   {Data: []byte("SELECT 1;")},
		"migrations/x_a.down.sql": {Data: []byte("SELECT 1;")},
	})
	assert.ErrorContains(t, err, "invalid version")
}

func sqliteMigrations(t *testing.T) []Migration {
	t.Helper()
	ms, err := LoadMigrations(fstest.MapFS{
		"migrations/000002_notes.up.sql":   {Data: []byte("CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT);")},
		"migrations/000002_notes.down.sql": {Data: []byte("DROP TABLE notes;")},
		"migrations/000001_tags.up.sql":    {Data: []byte("CREATE TABLE tags (id INTEGER PRIMARY KEY, name TEXT);")},
		"migrations/000001_tags.down.sql":  {Data: []byte("DROP TABLE tags;")},
		"migrations/README.md":             {Data: []byte("ignored")},
	})
	require.NoError(t, err)
	return ms
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestRunMigrations_AppliesPendingOnce(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	store := NewMigrationStore(db)
	ms := sqliteMigrations(t)

	require.NoError(t, runMigrations(ctx, db, store, ms))
	assert.True(t, db.Migrator().HasTable("tags"))
	assert.True(t, db.Migrator().HasTable("notes"))

	applied, err := store.GetAppliedMigrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, applied)

	// A second run is a no-op.
	require.NoError(t, runMigrations(ctx, db, store, ms))

	require.NoError(t, rollbackMigration(ctx, store, &ms[1], 2))
	assert.False(t, db.Migrator().HasTable("notes"))
	applied, err = store.GetAppliedMigrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, applied)

	assert.Error(t, rollbackMigration(ctx, store, &ms[1], 2))
	assert.Error(t, rollbackMigration(ctx, store, nil, 42))
}

func TestRunMigrations_RejectsUnknownAppliedVersions(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	require.NoError(t, db.AutoMigrate(&MigrationLog{}))
	require.NoError(t, db.Create(&MigrationLog{Version: 77, Name: "ghost"}).Error)

	err := runMigrations(ctx, db, NewMigrationStore(db), sqliteMigrations(t))
	assert.ErrorContains(t, err, "000077")
}
