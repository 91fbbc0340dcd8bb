package http

import (
	"log"
	"net/http"

	"fintrack/internal/domain/dashboard"
	"fintrack/internal/shared/middleware"
)

type DashboardHandler struct {
	dashboardService *dashboard.Service
}

func NewDashboardHandler(dashboardService *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// HandleDashboard returns the period-scoped summary: income/expense totals,
// per-category spending, recent transactions, and account balances.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	period := r.URL.Query().Get("period")

	summary, err := h.dashboardService.Summarize(r.Context(), userID, period)
	if err != nil {
		log.Printf("Error building dashboard for user %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
