package domain

// User is a seeded account. Users never change after start-up.
type User struct {
	ID           int64
	Name         string
	Email        string
	Password     string
	Role         Role
	Organization string
	// Provider only.
	Phone       string
	Description string
}

// IsProvider reports whether the user publishes events.
func (u User) IsProvider() bool {
	return u.Role == RoleProvider
}
