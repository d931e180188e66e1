package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/internal/service/workflow"
	"github.com/sharankona/CompanyPortal-sub000/internal/transport/middleware"
)

type workflowService interface {
	ListWorkflows(ctx context.Context, contentType *domain.ContentType) ([]domain.WorkflowDefinition, error)
	GetWorkflow(ctx context.Context, id int64) (*domain.WorkflowDefinition, error)
	CreateWorkflow(ctx context.Context, input workflow.CreateWorkflowInput) (*domain.WorkflowDefinition, error)
	UpdateWorkflow(ctx context.Context, input workflow.UpdateWorkflowInput) (*domain.WorkflowDefinition, error)
	DeleteWorkflow(ctx context.Context, id int64) error
}

// WorkflowHandler serves /api/workflows.
type WorkflowHandler struct {
	svc workflowService
	log *slog.Logger
}

// NewWorkflowHandler creates a WorkflowHandler.
func NewWorkflowHandler(svc workflowService, logger *slog.Logger) *WorkflowHandler {
	return &WorkflowHandler{svc: svc, log: logger.With("handler", "workflow")}
}

// List handles GET /api/workflows?type=.
func (h *WorkflowHandler) List(w http.ResponseWriter, r *http.Request) {
	var contentType *domain.ContentType
	if v := r.URL.Query().Get("type"); v != "" {
		ct := domain.ContentType(v)
		contentType = &ct
	}

	list, err := h.svc.ListWorkflows(r.Context(), contentType)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]workflowResponse, 0, len(list))
	for _, wf := range list {
		out = append(out, toWorkflowResponse(wf))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/workflows/{id}.
func (h *WorkflowHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	wf, err := h.svc.GetWorkflow(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkflowResponse(*wf))
}

// Create handles POST /api/workflows.
func (h *WorkflowHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createWorkflowRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	wf, err := h.svc.CreateWorkflow(r.Context(), workflow.CreateWorkflowInput{
		Name:        req.Name,
		ContentType: domain.ContentType(req.ContentType),
		Steps:       req.Steps,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkflowResponse(*wf))
}

// Update handles PUT /api/workflows/{id}.
func (h *WorkflowHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateWorkflowRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	patch := domain.WorkflowPatch{Name: req.Name, Steps: req.Steps}
	if req.ContentType != nil {
		ct := domain.ContentType(*req.ContentType)
		patch.ContentType = &ct
	}

	wf, err := h.svc.UpdateWorkflow(r.Context(), workflow.UpdateWorkflowInput{ID: id, Patch: patch})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkflowResponse(*wf))
}

// Delete handles DELETE /api/workflows/{id}.
func (h *WorkflowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteWorkflow(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
