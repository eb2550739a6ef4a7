package dto

import (
	"github.com/spec-kit/training-marketplace/internal/catalog"
	"github.com/spec-kit/training-marketplace/internal/domain"
)

// AdminDashboardResponse renders catalog.AdminDashboard.
type AdminDashboardResponse struct {
	Role      domain.Role        `json:"role"`
	Stats     catalog.AdminStats `json:"stats"`
	Pending   []EventResponse    `json:"pending"`
	Events    []EventResponse    `json:"events"`
	Providers []UserResponse     `json:"providers"`
}

// ProviderDashboardResponse renders catalog.ProviderDashboard.
type ProviderDashboardResponse struct {
	Role    domain.Role           `json:"role"`
	Stats   catalog.ProviderStats `json:"stats"`
	Active  []EventResponse       `json:"active"`
	Pending []EventResponse       `json:"pending"`
	Events  []EventResponse       `json:"events"`
}

// StudentDashboardResponse renders catalog.StudentDashboard.
type StudentDashboardResponse struct {
	Role       domain.Role               `json:"role"`
	Stats      catalog.StudentStats      `json:"stats"`
	Events     []EventResponse           `json:"events"`
	Categories []catalog.CategorySummary `json:"categories"`
	Providers  []catalog.ProviderSummary `json:"providers"`
}
