package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()

	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(t.Context())
}

func TestMigrateCommand_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courier.db")
	t.Setenv("DB_DRIVER", DBDriverSQLite)
	t.Setenv("SQLITE_PATH", path)
	t.Setenv("LOG_FORMAT", "console")

	require.NoError(t, runCommand(t, "migrate"))
	require.NoError(t, runCommand(t, "migrate"), "migrating twice is a no-op")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	db, err := OpenDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeDatabase(db) })

	for _, table := range []string{"customers", "drivers", "jobs", "pricing_rules", "proofs_of_delivery"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestRootCommand_RejectsBadConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	err := runCommand(t, "migrate")
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	assert.Error(t, runCommand(t, "deploy"))
}
