package rest

import "net/http"

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Content   *ContentHandler
	Workflow  *WorkflowHandler
	Dashboard *DashboardHandler
	Finance   *FinanceHandler
}

// NewRouter registers every route. statsLimit wraps the polled dashboard
// counters endpoint; nil leaves it unlimited. Authentication is applied by
// the caller around the /api/ subtree.
func NewRouter(h Handlers, statsLimit func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/content", h.Content.List)
	mux.HandleFunc("POST /api/content", h.Content.Create)
	mux.HandleFunc("GET /api/content/{id}", h.Content.Get)
	mux.HandleFunc("PUT /api/content/{id}", h.Content.Update)
	mux.HandleFunc("DELETE /api/content/{id}", h.Content.Delete)

	mux.HandleFunc("GET /api/workflows", h.Workflow.List)
	mux.HandleFunc("POST /api/workflows", h.Workflow.Create)
	mux.HandleFunc("GET /api/workflows/{id}", h.Workflow.Get)
	mux.HandleFunc("PUT /api/workflows/{id}", h.Workflow.Update)
	mux.HandleFunc("DELETE /api/workflows/{id}", h.Workflow.Delete)

	var stats http.Handler = http.HandlerFunc(h.Dashboard.Stats)
	if statsLimit != nil {
		stats = statsLimit(stats)
	}
	mux.Handle("GET /api/dashboard/stats", stats)
	mux.HandleFunc("GET /api/activities", h.Dashboard.Activities)

	mux.HandleFunc("GET /api/financials/revenue", h.Finance.ListRevenue)
	mux.HandleFunc("POST /api/financials/revenue", h.Finance.CreateRevenue)
	mux.HandleFunc("PUT /api/financials/revenue/{id}", h.Finance.UpdateRevenue)
	mux.HandleFunc("DELETE /api/financials/revenue/{id}", h.Finance.DeleteRevenue)
	mux.HandleFunc("GET /api/financials/expenses", h.Finance.ListExpenses)
	mux.HandleFunc("POST /api/financials/expenses", h.Finance.CreateExpense)
	mux.HandleFunc("PUT /api/financials/expenses/{id}", h.Finance.UpdateExpense)
	mux.HandleFunc("DELETE /api/financials/expenses/{id}", h.Finance.DeleteExpense)

	return mux
}
