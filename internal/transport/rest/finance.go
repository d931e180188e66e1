package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/internal/service/finance"
)

type financeService interface {
	ListRevenue(ctx context.Context, dr domain.DateRange) ([]domain.Revenue, error)
	ListExpenses(ctx context.Context, dr domain.DateRange) ([]domain.Expense, error)
	CreateRevenue(ctx context.Context, input finance.CreateRevenueInput) (*domain.Revenue, error)
	CreateExpense(ctx context.Context, input finance.CreateExpenseInput) (*domain.Expense, error)
	UpdateRevenue(ctx context.Context, input finance.UpdateRevenueInput) (*domain.Revenue, error)
	UpdateExpense(ctx context.Context, input finance.UpdateExpenseInput) (*domain.Expense, error)
	DeleteRevenue(ctx context.Context, id int64) error
	DeleteExpense(ctx context.Context, id int64) error
}

// FinanceHandler serves /api/financials.
type FinanceHandler struct {
	svc financeService
	log *slog.Logger
}

// NewFinanceHandler creates a FinanceHandler.
func NewFinanceHandler(svc financeService, logger *slog.Logger) *FinanceHandler {
	return &FinanceHandler{svc: svc, log: logger.With("handler", "finance")}
}

func dateRangeFromQuery(r *http.Request) (domain.DateRange, error) {
	q := r.URL.Query()
	return domain.ParseDateRange(q.Get("startDate"), q.Get("endDate"))
}

// ListRevenue handles GET /api/financials/revenue?startDate=&endDate=.
func (h *FinanceHandler) ListRevenue(w http.ResponseWriter, r *http.Request) {
	dr, err := dateRangeFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.ListRevenue(r.Context(), dr)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]revenueResponse, 0, len(list))
	for _, rev := range list {
		out = append(out, toRevenueResponse(rev))
	}
	writeJSON(w, http.StatusOK, out)
}

// ListExpenses handles GET /api/financials/expenses?startDate=&endDate=.
func (h *FinanceHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	dr, err := dateRangeFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.ListExpenses(r.Context(), dr)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]expenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateRevenue handles POST /api/financials/revenue.
func (h *FinanceHandler) CreateRevenue(w http.ResponseWriter, r *http.Request) {
	var req createRevenueRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var date time.Time
	if strings.TrimSpace(req.Date) != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		date = d
	}

	rev, err := h.svc.CreateRevenue(r.Context(), finance.CreateRevenueInput{
		Source:      req.Source,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRevenueResponse(*rev))
}

// CreateExpense handles POST /api/financials/expenses.
func (h *FinanceHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	exp, err := h.svc.CreateExpense(r.Context(), finance.CreateExpenseInput{
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseResponse(*exp))
}

// UpdateRevenue handles PUT /api/financials/revenue/{id}.
func (h *FinanceHandler) UpdateRevenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateRevenueRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rev, err := h.svc.UpdateRevenue(r.Context(), finance.UpdateRevenueInput{
		ID:          id,
		Source:      req.Source,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRevenueResponse(*rev))
}

// DeleteRevenue handles DELETE /api/financials/revenue/{id}.
func (h *FinanceHandler) DeleteRevenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteRevenue(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// UpdateExpense handles PUT /api/financials/expenses/{id}. A missing date
// resets the expense to today.
func (h *FinanceHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req expenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	exp, err := h.svc.UpdateExpense(r.Context(), finance.UpdateExpenseInput{
		ID:          id,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseResponse(*exp))
}

// DeleteExpense handles DELETE /api/financials/expenses/{id}.
func (h *FinanceHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteExpense(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// parseOptionalDate treats a missing or blank date as unset.
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "expected YYYY-MM-DD")
	}
	return d, nil
}
