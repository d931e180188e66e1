package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used by financial records and
// date-only deadlines.
const DateLayout = "2006-01-02"

// ContentFilter selects content items. Nil fields mean "no filter on that
// field"; set fields are ANDed.
type ContentFilter struct {
	ContentType *ContentType
	Status      *ContentStatus
	AssignedTo  *int64
}

// ParseContentFilter builds a ContentFilter from raw query-string values.
// Empty strings are ignored. Unknown enum values and a non-numeric assignee
// are rejected so that a typo never silently matches nothing.
func ParseContentFilter(contentType, status, assignedTo string) (ContentFilter, error) {
	var (
		f    ContentFilter
		errs []FieldError
	)

	if v := strings.TrimSpace(contentType); v != "" {
		ct := ContentType(v)
		if !ct.IsValid() {
			errs = append(errs, FieldError{Field: "contentType", Message: "unknown content type"})
		} else {
			f.ContentType = &ct
		}
	}

	if v := strings.TrimSpace(status); v != "" {
		st := ContentStatus(v)
		if !st.IsValid() {
			errs = append(errs, FieldError{Field: "status", Message: "unknown status"})
		} else {
			f.Status = &st
		}
	}

	if v := strings.TrimSpace(assignedTo); v != "" {
		id, err := ParseID(v)
		if err != nil {
			errs = append(errs, FieldError{Field: "assignedTo", Message: "must be a positive integer"})
		} else {
			f.AssignedTo = &id
		}
	}

	if len(errs) > 0 {
		return ContentFilter{}, NewValidationErrors(errs)
	}
	return f, nil
}

// ParseID parses a positive decimal identifier.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

// DateRange restricts records by calendar date. Both bounds are inclusive;
// a nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ParseDateRange builds a DateRange from YYYY-MM-DD strings. Empty strings
// leave the bound open.
func ParseDateRange(start, end string) (DateRange, error) {
	var (
		r    DateRange
		errs []FieldError
	)

	if v := strings.TrimSpace(start); v != "" {
		d, err := time.Parse(DateLayout, v)
		if err != nil {
			errs = append(errs, FieldError{Field: "startDate", Message: "expected YYYY-MM-DD"})
		} else {
			r.Start = &d
		}
	}
	if v := strings.TrimSpace(end); v != "" {
		d, err := time.Parse(DateLayout, v)
		if err != nil {
			errs = append(errs, FieldError{Field: "endDate", Message: "expected YYYY-MM-DD"})
		} else {
			r.End = &d
		}
	}
	if len(errs) > 0 {
		return DateRange{}, NewValidationErrors(errs)
	}

	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return DateRange{}, NewValidationError("startDate", "must not be after endDate")
	}
	return r, nil
}

// Contains reports whether d falls within the range, comparing calendar dates.
func (r DateRange) Contains(d time.Time) bool {
	day := truncateDay(d)
	if r.Start != nil && day.Before(truncateDay(*r.Start)) {
		return false
	}
	if r.End != nil && day.After(truncateDay(*r.End)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDeadline accepts either a calendar date or an RFC 3339 timestamp.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, NewValidationError("deadline", "expected YYYY-MM-DD or RFC 3339 timestamp")
	}
	return t.UTC(), nil
}
