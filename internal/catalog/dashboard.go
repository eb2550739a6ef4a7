package catalog

import (
	"fmt"
	"time"

	"github.com/spec-kit/training-marketplace/internal/domain"
)

// Dashboard is the role specific landing view. The set of implementations
// is closed: AdminDashboard, ProviderDashboard and StudentDashboard.
type Dashboard interface {
	Role() domain.Role
	isDashboard()
}

// AdminDashboard lists everything an admin moderates.
type AdminDashboard struct {
	Stats     AdminStats
	Pending   []domain.Event
	All       []domain.Event
	Providers []domain.User
}

// ProviderDashboard lists the events of the signed in provider.
type ProviderDashboard struct {
	Stats   ProviderStats
	Active  []domain.Event
	Pending []domain.Event
	All     []domain.Event
}

// StudentDashboard lists what a student can browse.
type StudentDashboard struct {
	Stats      StudentStats
	Browse     []domain.Event
	Categories []CategorySummary
	Providers  []ProviderSummary
}

func (AdminDashboard) Role() domain.Role    { return domain.RoleAdmin }
func (ProviderDashboard) Role() domain.Role { return domain.RoleProvider }
func (StudentDashboard) Role() domain.Role  { return domain.RoleStudent }

func (AdminDashboard) isDashboard()    {}
func (ProviderDashboard) isDashboard() {}
func (StudentDashboard) isDashboard()  {}

// BuildDashboard selects and computes the dashboard for principal. The
// query only narrows the student browse list.
func BuildDashboard(principal domain.User, events []domain.Event, users []domain.User, now time.Time, q Query) (Dashboard, error) {
	switch principal.Role {
	case domain.RoleAdmin:
		return AdminDashboard{
			Stats:     ComputeAdminStats(events, users, now),
			Pending:   Pending(events),
			All:       events,
			Providers: Providers(users),
		}, nil
	case domain.RoleProvider:
		mine := ByProvider(events, principal.Email)
		return ProviderDashboard{
			Stats:   ComputeProviderStats(events, principal.Email, now),
			Active:  Active(mine, now),
			Pending: Pending(mine),
			All:     mine,
		}, nil
	case domain.RoleStudent:
		active := Active(events, now)
		return StudentDashboard{
			Stats:      ComputeStudentStats(events, now),
			Browse:     Search(active, q),
			Categories: Categories(active),
			Providers:  ProviderSummaries(active),
		}, nil
	default:
		return nil, fmt.Errorf("dashboard for %q: %w", principal.Role, domain.ErrUnknownRole)
	}
}
