package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iammorganparry/clive/apps/todo/internal/models"
	"github.com/iammorganparry/clive/apps/todo/internal/sessions"
	"github.com/iammorganparry/clive/apps/todo/internal/store"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExportCommand(t *testing.T) {
	// The flag wins over the environment.
	t.Setenv("TODO_DB_PATH", filepath.Join(t.TempDir(), "ignored.db"))
	dbPath := filepath.Join(t.TempDir(), "todo.db")

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	err = sessions.NewSessionStore(db).Save(&models.Session{
		ID:    "sess-1",
		Lists: []models.List{{Name: "Groceries", Todos: []models.Todo{{Name: "Milk"}}}},
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	out, err := runCmd(t, "export", "--db-path", dbPath, "--session", "sess-1")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Groceries")
	assert.Contains(t, out, "name: Milk")
	assert.Contains(t, out, "1 / 1")

	_, err = runCmd(t, "export", "--db-path", dbPath, "--session", "missing")
	assert.Error(t, err)
}

func TestExportRequiresSession(t *testing.T) {
	_, err := runCmd(t, "export", "--db-path", filepath.Join(t.TempDir(), "todo.db"))
	assert.Error(t, err)
}

func TestInvalidFlagConfig(t *testing.T) {
	_, err := runCmd(t, "export", "--log-level", "loud", "--session", "x")
	assert.Error(t, err)
}
