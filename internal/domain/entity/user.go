package entity

import "time"

// User represents the authenticated user as reported by the service.
type User struct {
	ID        int64
	Email     string
	FullName  string
	Active    bool
	CreatedAt time.Time
}

// Registration holds the fields needed to register a new user.
type Registration struct {
	Email    string
	FullName string
	Password string
}
