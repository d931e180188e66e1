package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContentItem is a unit of editorial work tracked through the status lifecycle.
type ContentItem struct {
	ID          int64
	Title       string
	Description *string
	ContentType ContentType
	Status      ContentStatus
	AssignedTo  *int64
	Deadline    *time.Time
	CreatedBy   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContentHistoryEntry records one status the item entered. Entries are
// append-only.
type ContentHistoryEntry struct {
	ID        int64
	ContentID int64
	Status    ContentStatus
	Notes     *string
	CreatedBy int64
	CreatedAt time.Time
}

// ContentWithHistory is a content item together with its history, newest first.
type ContentWithHistory struct {
	ContentItem
	History []ContentHistoryEntry
}

// ContentPatch is a partial update of a content item. A nil field keeps the
// stored value. The Clear* flags null out optional fields and win over the
// corresponding value.
type ContentPatch struct {
	Title            *string
	Description      *string
	ClearDescription bool
	ContentType      *ContentType
	Status           *ContentStatus
	AssignedTo       *int64
	ClearAssignedTo  bool
	Deadline         *time.Time
	ClearDeadline    bool
	Notes            *string
}

// CreatedNote is the history note written when an item is created.
const CreatedNote = "Content item created"

// StatusChangedNote is the default history note for a status change.
func StatusChangedNote(status ContentStatus) string {
	return fmt.Sprintf("Status changed to %s", status)
}

// StatusChange reports the status the patch moves the item to, and whether
// that differs from current.
func (p ContentPatch) StatusChange(current ContentStatus) (ContentStatus, bool) {
	if p.Status == nil || *p.Status == current {
		return current, false
	}
	return *p.Status, true
}

// Apply returns a copy of item with the patch applied and UpdatedAt set to now.
// UpdatedAt never precedes CreatedAt.
func (p ContentPatch) Apply(item ContentItem, now time.Time) ContentItem {
	if p.Title != nil {
		item.Title = *p.Title
	}
	switch {
	case p.ClearDescription:
		item.Description = nil
	case p.Description != nil:
		d := *p.Description
		item.Description = &d
	}
	if p.ContentType != nil {
		item.ContentType = *p.ContentType
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
	switch {
	case p.ClearAssignedTo:
		item.AssignedTo = nil
	case p.AssignedTo != nil:
		a := *p.AssignedTo
		item.AssignedTo = &a
	}
	switch {
	case p.ClearDeadline:
		item.Deadline = nil
	case p.Deadline != nil:
		d := *p.Deadline
		item.Deadline = &d
	}

	if now.Before(item.CreatedAt) {
		now = item.CreatedAt
	}
	item.UpdatedAt = now
	return item
}

// HistoryNote returns the note for the history entry of a status change.
// Blank notes fall back to the default.
func (p ContentPatch) HistoryNote(status ContentStatus) string {
	if p.Notes != nil {
		if n := strings.TrimSpace(*p.Notes); n != "" {
			return n
		}
	}
	return StatusChangedNote(status)
}
