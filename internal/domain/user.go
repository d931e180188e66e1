package domain

import "time"

// User is a portal account. PasswordHash is a bcrypt hash and never leaves
// the service layer.
type User struct {
	ID           int64
	Username     string
	FullName     string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
}

// Document is the read-side view of a portal document.
type Document struct {
	ID        int64
	Name      string
	Status    string
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Announcement is the read-side view of a portal announcement.
type Announcement struct {
	ID        int64
	Title     string
	Category  string
	CreatedBy int64
	CreatedAt time.Time
}
