package domain

import (
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

func baseItem() ContentItem {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return ContentItem{
		ID:          7,
		Title:       "Launch Post",
		Description: ptr("first draft"),
		ContentType: ContentTypeBlog,
		Status:      ContentStatusDraft,
		AssignedTo:  ptr(int64(3)),
		CreatedBy:   1,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestContentPatch_Apply_KeepsUnsetFields(t *testing.T) {
	t.Parallel()

	item := baseItem()
	now := item.CreatedAt.Add(time.Hour)

	got := ContentPatch{}.Apply(item, now)

	if got.Title != item.Title || got.ContentType != item.ContentType || got.Status != item.Status {
		t.Errorf("unset fields changed: %+v", got)
	}
	if got.Description == nil || *got.Description != "first draft" {
		t.Errorf("description changed: %v", got.Description)
	}
	if got.AssignedTo == nil || *got.AssignedTo != 3 {
		t.Errorf("assignedTo changed: %v", got.AssignedTo)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, now)
	}
	if got.CreatedBy != item.CreatedBy || !got.CreatedAt.Equal(item.CreatedAt) {
		t.Error("immutable fields changed")
	}
}

func TestContentPatch_Apply_SetsAndClears(t *testing.T) {
	t.Parallel()

	item := baseItem()
	deadline := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	patch := ContentPatch{
		Title:            ptr("Renamed"),
		ClearDescription: true,
		Description:      ptr("ignored because clear wins"),
		ContentType:      ptr(ContentTypeLinkedIn),
		Status:           ptr(ContentStatusReview),
		ClearAssignedTo:  true,
		Deadline:         &deadline,
	}

	got := patch.Apply(item, item.CreatedAt.Add(time.Minute))

	if got.Title != "Renamed" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Description != nil {
		t.Errorf("Description = %v, want nil", *got.Description)
	}
	if got.ContentType != ContentTypeLinkedIn {
		t.Errorf("ContentType = %q", got.ContentType)
	}
	if got.Status != ContentStatusReview {
		t.Errorf("Status = %q", got.Status)
	}
	if got.AssignedTo != nil {
		t.Errorf("AssignedTo = %v, want nil", *got.AssignedTo)
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Errorf("Deadline = %v", got.Deadline)
	}
}

func TestContentPatch_Apply_DoesNotAliasPatch(t *testing.T) {
	t.Parallel()

	desc := "shared"
	patch := ContentPatch{Description: &desc}
	got := patch.Apply(baseItem(), time.Now())
	desc = "mutated"

	if *got.Description != "shared" {
		t.Errorf("Description aliased patch value: %q", *got.Description)
	}
}

func TestContentPatch_Apply_UpdatedAtNeverBeforeCreatedAt(t *testing.T) {
	t.Parallel()

	item := baseItem()
	got := ContentPatch{}.Apply(item, item.CreatedAt.Add(-time.Hour))

	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Errorf("UpdatedAt %v before CreatedAt %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestContentPatch_StatusChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		patch       ContentPatch
		wantStatus  ContentStatus
		wantChanged bool
	}{
		{name: "absent", patch: ContentPatch{}, wantStatus: ContentStatusDraft, wantChanged: false},
		{name: "same", patch: ContentPatch{Status: ptr(ContentStatusDraft)}, wantStatus: ContentStatusDraft, wantChanged: false},
		{name: "different", patch: ContentPatch{Status: ptr(ContentStatusReview)}, wantStatus: ContentStatusReview, wantChanged: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, changed := tt.patch.StatusChange(ContentStatusDraft)
			if got != tt.wantStatus || changed != tt.wantChanged {
				t.Errorf("StatusChange() = (%q, %v), want (%q, %v)", got, changed, tt.wantStatus, tt.wantChanged)
			}
		})
	}
}

func TestContentPatch_HistoryNote(t *testing.T) {
	t.Parallel()

	if got := (ContentPatch{}).HistoryNote(ContentStatusApproved); got != "Status changed to approved" {
		t.Errorf("default note = %q", got)
	}
	if got := (ContentPatch{Notes: ptr("")}).HistoryNote(ContentStatusApproved); got != "Status changed to approved" {
		t.Errorf("empty note = %q", got)
	}
	if got := (ContentPatch{Notes: ptr(" \t ")}).HistoryNote(ContentStatusReview); got != "Status changed to review" {
		t.Errorf("blank note = %q", got)
	}
	if got := (ContentPatch{Notes: ptr("  ready for QA ")}).HistoryNote(ContentStatusReview); got != "ready for QA" {
		t.Errorf("explicit note = %q", got)
	}
}
