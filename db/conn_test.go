package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "database.db?_foreign_keys=on", withForeignKeys("database.db"))
	assert.Equal(t, "database.db?cache=shared&_foreign_keys=on", withForeignKeys("database.db?cache=shared"))
	assert.Equal(t, "database.db?_fk=1", withForeignKeys("database.db?_fk=1"))
}

func TestNewMigratesSchema(t *testing.T) {
	d, err := New("sqlite", filepath.Join(t.TempDir(), "test.db"), true)
	require.NoError(t, err)

	for _, table := range []string{"users", "projects", "tasks", "files"} {
		assert.True(t, d.Migrator().HasTable(table), table)
	}

	var fk int
	require.NoError(t, d.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestNewUnknownDriver(t *testing.T) {
	_, err := New("mysql", "whatever", false)
	assert.Error(t, err)
}

func TestCheckMounted(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.db")
	mounted := filepath.Join(dir, "mounted.db")
	require.NoError(t, os.WriteFile(mounted, nil, 0o600))

	assert.NoError(t, checkMounted(missing, false))
	assert.NoError(t, checkMounted("file::memory:?cache=shared", true))
	assert.NoError(t, checkMounted(mounted+"?cache=shared", true))
	assert.ErrorContains(t, checkMounted(missing, true), "not mounted")
}

func TestEnsureMountedIgnoresPostgres(t *testing.T) {
	assert.NoError(t, EnsureMounted("postgres", "host=localhost"))
}
