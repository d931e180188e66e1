package rest

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

// fieldError is returned by custom unmarshalers so decodeJSON can name the
// offending field.
type fieldError struct {
	field   string
	message string
}

func (e *fieldError) Error() string { return e.field + ": " + e.message }

// optional distinguishes an absent key from an explicit null.
type optional[T any] struct {
	set   bool
	null  bool
	value T
}

func (o *optional[T]) UnmarshalJSON(b []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.null = true
		return nil
	}
	return json.Unmarshal(b, &o.value)
}

// idValue is a user reference sent either as a JSON number or as a numeric
// string. Null and "" mean "no user".
type idValue struct {
	set   bool
	null  bool
	value int64
}

func (v *idValue) UnmarshalJSON(b []byte) error {
	v.set = true
	s := string(bytes.TrimSpace(b))
	if s == "null" {
		v.null = true
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return &fieldError{field: "assignedTo", message: "must be a positive integer"}
		}
		if strings.TrimSpace(str) == "" {
			v.null = true
			return nil
		}
		s = str
	}
	id, err := domain.ParseID(s)
	if err != nil {
		return &fieldError{field: "assignedTo", message: "must be a positive integer"}
	}
	v.value = id
	return nil
}

func (v idValue) ptr() *int64 {
	if !v.set || v.null {
		return nil
	}
	id := v.value
	return &id
}

// ---------------------------------------------------------------------------
// Content
// ---------------------------------------------------------------------------

type createContentRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ContentType string  `json:"contentType"`
	AssignedTo  idValue `json:"assignedTo"`
	Deadline    *string `json:"deadline"`
}

type updateContentRequest struct {
	Title       optional[string] `json:"title"`
	Description optional[string] `json:"description"`
	ContentType optional[string] `json:"contentType"`
	Status      optional[string] `json:"status"`
	AssignedTo  idValue          `json:"assignedTo"`
	Deadline    optional[string] `json:"deadline"`
	Notes       optional[string] `json:"notes"`
}

// toPatch converts the request to a patch. Explicit nulls clear optional
// fields and are rejected for required ones.
func (req updateContentRequest) toPatch() (domain.ContentPatch, error) {
	var (
		p    domain.ContentPatch
		errs []domain.FieldError
	)

	if req.Title.set {
		if req.Title.null {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else {
			p.Title = &req.Title.value
		}
	}

	if req.Description.set {
		if req.Description.null {
			p.ClearDescription = true
		} else {
			p.Description = &req.Description.value
		}
	}

	if req.ContentType.set {
		if req.ContentType.null {
			errs = append(errs, domain.FieldError{Field: "contentType", Message: "required"})
		} else {
			ct := domain.ContentType(req.ContentType.value)
			p.ContentType = &ct
		}
	}

	if req.Status.set {
		if req.Status.null {
			errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
		} else {
			st := domain.ContentStatus(req.Status.value)
			p.Status = &st
		}
	}

	if req.AssignedTo.set {
		if req.AssignedTo.null {
			p.ClearAssignedTo = true
		} else {
			p.AssignedTo = req.AssignedTo.ptr()
		}
	}

	if req.Deadline.set {
		if req.Deadline.null || strings.TrimSpace(req.Deadline.value) == "" {
			p.ClearDeadline = true
		} else if d, err := domain.ParseDeadline(req.Deadline.value); err != nil {
			errs = append(errs, domain.FieldError{Field: "deadline", Message: "expected YYYY-MM-DD or RFC 3339 timestamp"})
		} else {
			p.Deadline = &d
		}
	}

	if req.Notes.set && !req.Notes.null {
		p.Notes = &req.Notes.value
	}

	if len(errs) > 0 {
		return domain.ContentPatch{}, domain.NewValidationErrors(errs)
	}
	return p, nil
}

type contentItemResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ContentType string     `json:"contentType"`
	Status      string     `json:"status"`
	AssignedTo  *int64     `json:"assignedTo"`
	Deadline    *time.Time `json:"deadline"`
	CreatedBy   int64      `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type historyEntryResponse struct {
	ID        int64     `json:"id"`
	ContentID int64     `json:"contentId"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type contentWithHistoryResponse struct {
	contentItemResponse
	History []historyEntryResponse `json:"history"`
}

func toContentItemResponse(c domain.ContentItem) contentItemResponse {
	return contentItemResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ContentType: c.ContentType.String(),
		Status:      c.Status.String(),
		AssignedTo:  c.AssignedTo,
		Deadline:    c.Deadline,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toContentListResponse(items []domain.ContentItem) []contentItemResponse {
	out := make([]contentItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toContentItemResponse(it))
	}
	return out
}

func toContentWithHistoryResponse(c domain.ContentWithHistory) contentWithHistoryResponse {
	history := make([]historyEntryResponse, 0, len(c.History))
	for _, h := range c.History {
		history = append(history, historyEntryResponse{
			ID:        h.ID,
			ContentID: h.ContentID,
			Status:    h.Status.String(),
			Notes:     h.Notes,
			CreatedBy: h.CreatedBy,
			CreatedAt: h.CreatedAt,
		})
	}
	return contentWithHistoryResponse{
		contentItemResponse: toContentItemResponse(c.ContentItem),
		History:             history,
	}
}

// ---------------------------------------------------------------------------
// Workflows
// ---------------------------------------------------------------------------

type createWorkflowRequest struct {
	Name        string   `json:"name"`
	ContentType string   `json:"contentType"`
	Steps       []string `json:"steps"`
}

type updateWorkflowRequest struct {
	Name        *string  `json:"name"`
	ContentType *string  `json:"contentType"`
	Steps       []string `json:"steps"`
}

type workflowResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Steps       []string  `json:"steps"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toWorkflowResponse(wf domain.WorkflowDefinition) workflowResponse {
	steps := wf.Steps
	if steps == nil {
		steps = []string{}
	}
	return workflowResponse{
		ID:          wf.ID,
		Name:        wf.Name,
		ContentType: wf.ContentType.String(),
		Steps:       steps,
		CreatedAt:   wf.CreatedAt,
		UpdatedAt:   wf.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

type statsResponse struct {
	TotalDocuments     int `json:"totalDocuments"`
	TotalUsers         int `json:"totalUsers"`
	ActiveUsers        int `json:"activeUsers"`
	TotalAnnouncements int `json:"totalAnnouncements"`
	DocumentsTrend     int `json:"documentsTrend"`
	UsersTrend         int `json:"usersTrend"`
	ActiveUsersTrend   int `json:"activeUsersTrend"`
	AnnouncementsTrend int `json:"announcementsTrend"`
}

func toStatsResponse(s domain.DashboardStats) statsResponse {
	return statsResponse(s)
}

type activityResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	UserID      int64     `json:"userId"`
	DocumentID  *int64    `json:"documentId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toActivityResponse(e domain.ActivityEntry) activityResponse {
	return activityResponse{
		ID:          e.ID,
		Type:        e.Type.String(),
		Description: e.Description,
		UserID:      e.UserID,
		DocumentID:  e.DocumentID,
		CreatedAt:   e.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Finance
// ---------------------------------------------------------------------------

type createRevenueRequest struct {
	Source      string  `json:"source"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
}

type updateRevenueRequest struct {
	Source      *string  `json:"source"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
}

// expenseRequest is the body of both expense create and update.
type expenseRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

type revenueResponse struct {
	ID          int64   `json:"id"`
	Source      string  `json:"source"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
}

type expenseResponse struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
}

func toRevenueResponse(r domain.Revenue) revenueResponse {
	return revenueResponse{
		ID:          r.ID,
		Source:      r.Source,
		Amount:      r.Amount,
		Date:        r.Date.Format(domain.DateLayout),
		Description: r.Description,
	}
}

func toExpenseResponse(e domain.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date.Format(domain.DateLayout),
		Description: e.Description,
	}
}
