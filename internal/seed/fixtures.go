// Package seed provides the fixture data the marketplace starts with.
package seed

import (
	"time"

	"github.com/spec-kit/training-marketplace/internal/domain"
	"github.com/spec-kit/training-marketplace/internal/store"
)

// Fixtures returns a fresh copy of the built-in events and users.
func Fixtures() store.Seed {
	return store.Seed{Events: Events(), Users: Users()}
}

// Events returns the three fixture events.
func Events() []domain.Event {
	return []domain.Event{
		{
			ID:                  1,
			Title:               "React Advanced Patterns",
			Type:                domain.EventTypeWebinar,
			Description:         "Learn advanced React patterns and best practices for building scalable applications.",
			Provider:            "TechAcademy Pro",
			ProviderEmail:       "contact@techacademypro.com",
			ProviderPhone:       "+1-555-0123",
			OccursAt:            at("2024-02-15T14:00:00"),
			Duration:            "2 hours",
			Price:               49,
			MaxParticipants:     50,
			CurrentParticipants: 23,
			Status:              domain.EventStatusApproved,
			Category:            "Frontend Development",
			Requirements:        "Basic React knowledge",
			ImageURL:            "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400",
			CreatedAt:           at("2024-01-15T10:00:00"),
		},
		{
			ID:                  2,
			Title:               "AWS Cloud Architecture",
			Type:                domain.EventTypeCourse,
			Description:         "Comprehensive course on AWS cloud architecture and deployment strategies.",
			Provider:            "Cloud Masters Institute",
			ProviderEmail:       "info@cloudmasters.com",
			ProviderPhone:       "+1-555-0456",
			OccursAt:            at("2024-02-20T09:00:00"),
			Duration:            "6 weeks",
			Price:               299,
			MaxParticipants:     30,
			CurrentParticipants: 18,
			Status:              domain.EventStatusApproved,
			Category:            "Cloud Computing",
			Requirements:        "Basic IT knowledge",
			ImageURL:            "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=400",
			CreatedAt:           at("2024-01-10T14:30:00"),
		},
		{
			ID:                  3,
			Title:               "Cybersecurity Fundamentals",
			Type:                domain.EventTypeSeminar,
			Description:         "Essential cybersecurity concepts and practical defense strategies.",
			Provider:            "SecureNet Academy",
			ProviderEmail:       "hello@securenet.com",
			ProviderPhone:       "+1-555-0789",
			OccursAt:            at("2024-01-25T16:00:00"),
			Duration:            "4 hours",
			Price:               79,
			MaxParticipants:     40,
			CurrentParticipants: 35,
			Status:              domain.EventStatusApproved,
			Category:            "Cybersecurity",
			Requirements:        "None",
			ImageURL:            "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?w=400",
			CreatedAt:           at("2024-01-05T11:15:00"),
		},
	}
}

// Users returns the four fixture accounts.
func Users() []domain.User {
	return []domain.User{
		{
			ID:           1,
			Name:         "Admin User",
			Email:        "admin@itplatform.com",
			Password:     "admin123",
			Role:         domain.RoleAdmin,
			Organization: "IT Training Platform",
		},
		{
			ID:           2,
			Name:         "TechAcademy Pro",
			Email:        "contact@techacademypro.com",
			Password:     "provider123",
			Role:         domain.RoleProvider,
			Organization: "TechAcademy Pro",
			Phone:        "+1-555-0123",
			Description:  "Leading provider of React and frontend development training.",
		},
		{
			ID:           3,
			Name:         "Cloud Masters Institute",
			Email:        "info@cloudmasters.com",
			Password:     "provider123",
			Role:         domain.RoleProvider,
			Organization: "Cloud Masters Institute",
			Phone:        "+1-555-0456",
			Description:  "Specialized in cloud computing and AWS training programs.",
		},
		{
			ID:           4,
			Name:         "Student User",
			Email:        "student@example.com",
			Password:     "student123",
			Role:         domain.RoleStudent,
			Organization: "Student",
		},
	}
}

func at(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic("seed: bad fixture time " + value)
	}
	return t
}
