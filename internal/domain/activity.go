package domain

import "time"

// ActivityEntry is one append-only audit log record.
type ActivityEntry struct {
	ID          int64
	Type        ActivityType
	Description string
	UserID      int64
	DocumentID  *int64
	CreatedAt   time.Time
}
