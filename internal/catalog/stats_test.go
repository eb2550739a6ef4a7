package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/training-marketplace/internal/catalog"
	"github.com/spec-kit/training-marketplace/internal/domain"
	"github.com/spec-kit/training-marketplace/internal/seed"
)

func TestComputeAdminStats(t *testing.T) {
	stats := catalog.ComputeAdminStats(seed.Events(), seed.Users(), date(t, "2024-02-01"))

	assert.Equal(t, catalog.AdminStats{
		TotalEvents:       3,
		ActiveEvents:      2,
		PendingEvents:     0,
		ExpiredEvents:     1,
		TotalProviders:    2,
		TotalParticipants: 41,
	}, stats)
}

func TestComputeProviderStats(t *testing.T) {
	stats := catalog.ComputeProviderStats(seed.Events(), "contact@techacademypro.com", date(t, "2024-02-01"))

	assert.Equal(t, 1, stats.TotalEvents)
	assert.Equal(t, 1, stats.ActiveEvents)
	assert.Equal(t, 23, stats.TotalParticipants)
	assert.InDelta(t, 1127.0, stats.TotalRevenue, 0.001)
	assert.Equal(t, 46, stats.AverageFillRate)
}

func TestComputeProviderStats_NoActiveEvents(t *testing.T) {
	stats := catalog.ComputeProviderStats(seed.Events(), "contact@techacademypro.com", date(t, "2024-03-01"))

	assert.Equal(t, 1, stats.ExpiredEvents)
	assert.Zero(t, stats.AverageFillRate)
	assert.Zero(t, stats.TotalRevenue)
}

func TestComputeStudentStats(t *testing.T) {
	stats := catalog.ComputeStudentStats(seed.Events(), date(t, "2024-02-01"))

	assert.Equal(t, catalog.StudentStats{
		ActiveEvents:   2,
		Categories:     2,
		TotalProviders: 2,
		AveragePrice:   174,
	}, stats)
}

func TestComputePublicStats(t *testing.T) {
	events := seed.Events()
	events = append(events,
		domain.Event{ID: 8, Provider: "TechAcademy Pro", OccursAt: date(t, "2024-03-01"), Status: domain.EventStatusApproved, CurrentParticipants: 5, MaxParticipants: 10},
		domain.Event{ID: 9, Provider: "Fresh Provider", OccursAt: date(t, "2024-03-01"), Status: domain.EventStatusPending, CurrentParticipants: 7, MaxParticipants: 10},
	)

	stats := catalog.ComputePublicStats(events, date(t, "2024-02-01"))

	assert.Equal(t, catalog.PublicStats{
		ActiveEvents:      3,
		TotalProviders:    2,
		TotalParticipants: 46,
	}, stats)
}

func TestCategoriesAndProviderSummaries(t *testing.T) {
	events := seed.Events()
	events = append(events, domain.Event{ID: 7, Category: "Cloud Computing", Provider: "Cloud Masters Institute", Price: 100})

	categories := catalog.Categories(events)
	require.Len(t, categories, 3)
	assert.Equal(t, catalog.CategorySummary{Category: "Cloud Computing", EventCount: 2, AveragePrice: 200}, categories[1])

	providers := catalog.ProviderSummaries(events)
	require.Len(t, providers, 3)
	assert.Equal(t, "Cloud Masters Institute", providers[1].Name)
	assert.Equal(t, "info@cloudmasters.com", providers[1].Email)
	assert.Equal(t, 2, providers[1].EventCount)
}

func TestBuildDashboard(t *testing.T) {
	events := seed.Events()
	users := seed.Users()
	now := date(t, "2024-02-01")

	t.Run("admin", func(t *testing.T) {
		d, err := catalog.BuildDashboard(users[0], events, users, now, catalog.Query{Type: domain.EventTypeAll})
		require.NoError(t, err)
		admin, ok := d.(catalog.AdminDashboard)
		require.True(t, ok)
		assert.Equal(t, domain.RoleAdmin, admin.Role())
		assert.Len(t, admin.All, 3)
		assert.Len(t, admin.Providers, 2)
	})

	t.Run("provider", func(t *testing.T) {
		d, err := catalog.BuildDashboard(users[2], events, users, now, catalog.Query{Type: domain.EventTypeAll})
		require.NoError(t, err)
		provider, ok := d.(catalog.ProviderDashboard)
		require.True(t, ok)
		assert.Equal(t, []int64{2}, ids(provider.All))
		assert.Equal(t, []int64{2}, ids(provider.Active))
	})

	t.Run("student", func(t *testing.T) {
		d, err := catalog.BuildDashboard(users[3], events, users, now, catalog.Query{Term: "frontend", Type: domain.EventTypeAll, MatchCategory: true})
		require.NoError(t, err)
		student, ok := d.(catalog.StudentDashboard)
		require.True(t, ok)
		assert.Equal(t, []int64{1}, ids(student.Browse))
		assert.Len(t, student.Categories, 2)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := catalog.BuildDashboard(domain.User{Role: "guest"}, events, users, now, catalog.Query{})
		assert.ErrorIs(t, err, domain.ErrUnknownRole)
	})
}
