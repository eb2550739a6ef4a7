package persistence

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/spec-kit/training-marketplace/internal/store"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Execer is the subset of pgxpool.Pool used to apply migrations.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RunMigrations creates the fixture tables read by LoadFixtures. Files are
// applied in name order and must be idempotent.
func RunMigrations(ctx context.Context, db Execer, logger *zap.Logger) error {
	if db == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	filenames, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(filenames)

	for _, name := range filenames {
		content, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		logger.Info("applying migration", zap.String("file", name))
		if _, err := db.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	logger.Info("migrations applied", zap.Int("count", len(filenames)))
	return nil
}

// SeedTables inserts the given fixtures. Rows whose id already exists are
// left untouched, so the call is safe on every start.
func SeedTables(ctx context.Context, db Execer, seed store.Seed) error {
	const insertUser = `
        INSERT INTO users (id, name, email, password, role, organization, phone, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (id) DO NOTHING`
	const insertEvent = `
        INSERT INTO events (id, title, type, description, category, provider, provider_email, provider_phone,
                            occurs_at, duration, price, max_participants, current_participants, status,
                            requirements, image_url, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        ON CONFLICT (id) DO NOTHING`

	for _, u := range seed.Users {
		if _, err := db.Exec(ctx, insertUser,
			u.ID, u.Name, u.Email, u.Password, string(u.Role), u.Organization, u.Phone, u.Description,
		); err != nil {
			return fmt.Errorf("seed user %d: %w", u.ID, err)
		}
	}
	for _, e := range seed.Events {
		if _, err := db.Exec(ctx, insertEvent,
			e.ID, e.Title, string(e.Type), e.Description, e.Category, e.Provider, e.ProviderEmail, e.ProviderPhone,
			e.OccursAt, e.Duration, e.Price, e.MaxParticipants, e.CurrentParticipants, string(e.Status),
			e.Requirements, e.ImageURL, e.CreatedAt,
		); err != nil {
			return fmt.Errorf("seed event %d: %w", e.ID, err)
		}
	}
	return nil
}
