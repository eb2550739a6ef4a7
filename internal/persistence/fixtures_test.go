package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/training-marketplace/internal/domain"
)

type fakeRows struct {
	data [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.data[r.pos-1], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: want %d columns, got %d", len(row), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = row[i].(int64)
		case *int:
			*p = row[i].(int)
		case *float64:
			*p = row[i].(float64)
		case *string:
			*p = row[i].(string)
		case *domain.EventType:
			*p = domain.EventType(row[i].(string))
		case *domain.EventStatus:
			*p = domain.EventStatus(row[i].(string))
		case *time.Time:
			*p = row[i].(time.Time)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

type fakeQuerier struct {
	events [][]any
	users  [][]any
	err    error
}

func (q fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	if q.err != nil {
		return nil, q.err
	}
	if strings.Contains(sql, "FROM events") {
		return &fakeRows{data: q.events}, nil
	}
	return &fakeRows{data: q.users}, nil
}

func TestLoadFixtures(t *testing.T) {
	occurs := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	q := fakeQuerier{
		events: [][]any{{
			int64(10), "Kubernetes in Practice", "course", "Hands-on cluster operations.", "DevOps",
			"Cloud Masters Institute", "info@cloudmasters.com", "+1-555-0456",
			occurs, "3 weeks", 149.0, 20, 0, "pending", "Docker basics", "https://example.com/k8s.png", occurs.Add(-time.Hour),
		}},
		users: [][]any{{
			int64(3), "Cloud Masters Institute", "info@cloudmasters.com", "provider123", "provider",
			"Cloud Masters Institute", "+1-555-0456", "Cloud training",
		}},
	}

	seed, err := LoadFixtures(context.Background(), q)
	require.NoError(t, err)

	require.Len(t, seed.Events, 1)
	assert.Equal(t, domain.EventTypeCourse, seed.Events[0].Type)
	assert.Equal(t, domain.EventStatusPending, seed.Events[0].Status)
	assert.Equal(t, occurs, seed.Events[0].OccursAt)
	require.Len(t, seed.Users, 1)
	assert.Equal(t, domain.RoleProvider, seed.Users[0].Role)
}

func TestLoadFixtures_UnknownRole(t *testing.T) {
	q := fakeQuerier{users: [][]any{{int64(9), "x", "x@example.com", "pw", "guest", "", "", ""}}}

	_, err := LoadFixtures(context.Background(), q)
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestLoadFixtures_QueryError(t *testing.T) {
	boom := errors.New("connection refused")

	_, err := LoadFixtures(context.Background(), fakeQuerier{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestRedis_NilIsNotConfigured(t *testing.T) {
	var r *Redis

	assert.Error(t, r.Publish(context.Background(), []byte("{}")))
	assert.Error(t, r.Ping(context.Background()))
	r.Close()
}
