package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/training-marketplace/internal/seed"
)

type recordingExecer struct {
	statements []string
	err        error
}

func (e *recordingExecer) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	e.statements = append(e.statements, sql)
	return pgconn.CommandTag{}, e.err
}

func TestRunMigrations(t *testing.T) {
	db := &recordingExecer{}

	require.NoError(t, RunMigrations(context.Background(), db, zap.NewNop()))

	require.Len(t, db.statements, 1)
	assert.Contains(t, db.statements[0], "CREATE TABLE IF NOT EXISTS events")
	assert.Contains(t, db.statements[0], "CREATE TABLE IF NOT EXISTS users")
}

func TestRunMigrations_ExecError(t *testing.T) {
	db := &recordingExecer{err: errors.New("boom")}

	err := RunMigrations(context.Background(), db, zap.NewNop())

	assert.ErrorContains(t, err, "apply migration migrations/001_fixture_tables.sql")
}

func TestSeedTables(t *testing.T) {
	db := &recordingExecer{}
	fixtures := seed.Fixtures()

	require.NoError(t, SeedTables(context.Background(), db, fixtures))

	require.Len(t, db.statements, len(fixtures.Users)+len(fixtures.Events))
	assert.Contains(t, db.statements[0], "INSERT INTO users")
	assert.Contains(t, db.statements[len(fixtures.Users)], "INSERT INTO events")
	for _, stmt := range db.statements {
		assert.Contains(t, stmt, "ON CONFLICT (id) DO NOTHING")
	}
}

func TestSeedTables_StopsOnError(t *testing.T) {
	db := &recordingExecer{err: errors.New("boom")}

	err := SeedTables(context.Background(), db, seed.Fixtures())

	assert.ErrorContains(t, err, "seed user 1")
	assert.Len(t, db.statements, 1)
}
