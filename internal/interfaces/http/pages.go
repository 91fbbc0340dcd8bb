package http

import (
	"net/http"

	"fintrack/internal/web"
)

// HandleHealth returns a simple health check response.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// HandleLoginPage serves the login/register page.
func HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, web.FS, "login.html")
}

// HandleDashboardPage serves the dashboard page.
func HandleDashboardPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, web.FS, "dashboard.html")
}
