package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/training-marketplace/internal/domain"
	"github.com/spec-kit/training-marketplace/internal/store"
)

// Querier is the subset of pgxpool.Pool used to read fixtures.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadFixtures reads the seed events and users from the events and users
// tables. Rows are returned in id order, which becomes the store order.
func LoadFixtures(ctx context.Context, db Querier) (store.Seed, error) {
	evs, err := loadEvents(ctx, db)
	if err != nil {
		return store.Seed{}, fmt.Errorf("load events: %w", err)
	}
	users, err := loadUsers(ctx, db)
	if err != nil {
		return store.Seed{}, fmt.Errorf("load users: %w", err)
	}
	return store.Seed{Events: evs, Users: users}, nil
}

func loadEvents(ctx context.Context, db Querier) ([]domain.Event, error) {
	const query = `
        SELECT id, title, type, description, category, provider, provider_email, provider_phone,
               occurs_at, duration, price, max_participants, current_participants, status,
               requirements, image_url, created_at
        FROM events ORDER BY id`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Type,
			&e.Description,
			&e.Category,
			&e.Provider,
			&e.ProviderEmail,
			&e.ProviderPhone,
			&e.OccursAt,
			&e.Duration,
			&e.Price,
			&e.MaxParticipants,
			&e.CurrentParticipants,
			&e.Status,
			&e.Requirements,
			&e.ImageURL,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func loadUsers(ctx context.Context, db Querier) ([]domain.User, error) {
	const query = `
        SELECT id, name, email, password, role, organization, phone, description
        FROM users ORDER BY id`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var (
			u    domain.User
			role string
		)
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.Password,
			&role,
			&u.Organization,
			&u.Phone,
			&u.Description,
		); err != nil {
			return nil, err
		}
		if u.Role, err = domain.ParseRole(role); err != nil {
			return nil, fmt.Errorf("user %d: %w", u.ID, err)
		}
		result = append(result, u)
	}
	return result, rows.Err()
}
