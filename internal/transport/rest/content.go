package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/internal/service/content"
)

type contentService interface {
	ListContent(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentItem, error)
	GetContent(ctx context.Context, id int64) (*domain.ContentWithHistory, error)
	CreateContent(ctx context.Context, input content.CreateContentInput) (*domain.ContentItem, error)
	UpdateContent(ctx context.Context, input content.UpdateContentInput) (*domain.ContentItem, error)
	DeleteContent(ctx context.Context, id int64) error
}

// ContentHandler serves /api/content.
type ContentHandler struct {
	svc contentService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

// List handles GET /api/content?contentType=&status=&assignedTo=.
// "type" is accepted as an alias of contentType.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	contentType := q.Get("contentType")
	if contentType == "" {
		contentType = q.Get("type")
	}

	filter, err := domain.ParseContentFilter(contentType, q.Get("status"), q.Get("assignedTo"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListContent(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContentListResponse(items))
}

// Get handles GET /api/content/{id}.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.GetContent(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContentWithHistoryResponse(*item))
}

// Create handles POST /api/content.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var deadline *time.Time
	if req.Deadline != nil && strings.TrimSpace(*req.Deadline) != "" {
		d, err := domain.ParseDeadline(*req.Deadline)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		deadline = &d
	}

	item, err := h.svc.CreateContent(r.Context(), content.CreateContentInput{
		Title:       req.Title,
		Description: req.Description,
		ContentType: domain.ContentType(req.ContentType),
		AssignedTo:  req.AssignedTo.ptr(),
		Deadline:    deadline,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContentItemResponse(*item))
}

// Update handles PUT /api/content/{id}.
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateContentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.UpdateContent(r.Context(), content.UpdateContentInput{ID: id, Patch: patch})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContentItemResponse(*item))
}

// Delete handles DELETE /api/content/{id}.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteContent(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
