package catalog

import (
	"math"
	"time"

	"github.com/spec-kit/training-marketplace/internal/domain"
)

// AdminStats summarises the whole marketplace.
type AdminStats struct {
	TotalEvents       int `json:"total_events"`
	ActiveEvents      int `json:"active_events"`
	PendingEvents     int `json:"pending_events"`
	ExpiredEvents     int `json:"expired_events"`
	TotalProviders    int `json:"total_providers"`
	TotalParticipants int `json:"total_participants"`
}

// ProviderStats summarises the events of one provider.
type ProviderStats struct {
	TotalEvents       int     `json:"total_events"`
	ActiveEvents      int     `json:"active_events"`
	PendingEvents     int     `json:"pending_events"`
	ExpiredEvents     int     `json:"expired_events"`
	TotalParticipants int     `json:"total_participants"`
	TotalRevenue      float64 `json:"total_revenue"`
	// AverageFillRate is the mean of current/max over active events, in percent.
	AverageFillRate int `json:"average_fill_rate"`
}

// StudentStats summarises what a student can browse.
type StudentStats struct {
	ActiveEvents   int `json:"active_events"`
	Categories     int `json:"categories"`
	TotalProviders int `json:"total_providers"`
	AveragePrice   int `json:"average_price"`
}

// CategorySummary groups active events by category.
type CategorySummary struct {
	Category     string `json:"category"`
	EventCount   int    `json:"event_count"`
	AveragePrice int    `json:"average_price"`
}

// ProviderSummary groups active events by provider name.
type ProviderSummary struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	EventCount   int    `json:"event_count"`
	AveragePrice int    `json:"average_price"`
}

// PublicStats is the landing page summary of the active catalog.
type PublicStats struct {
	ActiveEvents      int `json:"active_events"`
	TotalProviders    int `json:"total_providers"`
	TotalParticipants int `json:"total_participants"`
}

// ComputePublicStats counts active events, the distinct providers offering
// them and their enrolled participants.
func ComputePublicStats(events []domain.Event, now time.Time) PublicStats {
	active := Active(events, now)
	return PublicStats{
		ActiveEvents:      len(active),
		TotalProviders:    len(ProviderSummaries(active)),
		TotalParticipants: sumParticipants(active),
	}
}

// ComputeAdminStats builds the admin overview.
func ComputeAdminStats(events []domain.Event, users []domain.User, now time.Time) AdminStats {
	active := Active(events, now)
	return AdminStats{
		TotalEvents:       len(events),
		ActiveEvents:      len(active),
		PendingEvents:     len(Pending(events)),
		ExpiredEvents:     len(Expired(events, now)),
		TotalProviders:    len(Providers(users)),
		TotalParticipants: sumParticipants(active),
	}
}

// ComputeProviderStats builds the overview for the provider owning email.
func ComputeProviderStats(events []domain.Event, email string, now time.Time) ProviderStats {
	mine := ByProvider(events, email)
	active := Active(mine, now)

	var revenue, fill float64
	for _, e := range active {
		revenue += float64(e.CurrentParticipants) * e.Price
		if e.MaxParticipants > 0 {
			fill += float64(e.CurrentParticipants) / float64(e.MaxParticipants)
		}
	}
	stats := ProviderStats{
		TotalEvents:       len(mine),
		ActiveEvents:      len(active),
		PendingEvents:     len(Pending(mine)),
		ExpiredEvents:     len(Expired(mine, now)),
		TotalParticipants: sumParticipants(active),
		TotalRevenue:      revenue,
	}
	if len(active) > 0 {
		stats.AverageFillRate = round(fill / float64(len(active)) * 100)
	}
	return stats
}

// ComputeStudentStats builds the browse overview.
func ComputeStudentStats(events []domain.Event, now time.Time) StudentStats {
	active := Active(events, now)
	return StudentStats{
		ActiveEvents:   len(active),
		Categories:     len(Categories(active)),
		TotalProviders: len(ProviderSummaries(active)),
		AveragePrice:   averagePrice(active),
	}
}

// Categories groups events by category in order of first appearance.
func Categories(events []domain.Event) []CategorySummary {
	var order []string
	groups := map[string][]domain.Event{}
	for _, e := range events {
		if _, seen := groups[e.Category]; !seen {
			order = append(order, e.Category)
		}
		groups[e.Category] = append(groups[e.Category], e)
	}

	out := make([]CategorySummary, 0, len(order))
	for _, name := range order {
		group := groups[name]
		out = append(out, CategorySummary{
			Category:     name,
			EventCount:   len(group),
			AveragePrice: averagePrice(group),
		})
	}
	return out
}

// ProviderSummaries groups events by provider name in order of first
// appearance. Contact details come from the provider's first event.
func ProviderSummaries(events []domain.Event) []ProviderSummary {
	var order []string
	groups := map[string][]domain.Event{}
	for _, e := range events {
		if _, seen := groups[e.Provider]; !seen {
			order = append(order, e.Provider)
		}
		groups[e.Provider] = append(groups[e.Provider], e)
	}

	out := make([]ProviderSummary, 0, len(order))
	for _, name := range order {
		group := groups[name]
		out = append(out, ProviderSummary{
			Name:         name,
			Email:        group[0].ProviderEmail,
			Phone:        group[0].ProviderPhone,
			EventCount:   len(group),
			AveragePrice: averagePrice(group),
		})
	}
	return out
}

func sumParticipants(events []domain.Event) int {
	total := 0
	for _, e := range events {
		total += e.CurrentParticipants
	}
	return total
}

func averagePrice(events []domain.Event) int {
	if len(events) == 0 {
		return 0
	}
	var sum float64
	for _, e := range events {
		sum += e.Price
	}
	return round(sum / float64(len(events)))
}

// round matches half-up rounding for the non-negative values used here.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
