package main

import (
	"log"
	"net/http"

	httphandlers "fintrack/internal/interfaces/http"
	"fintrack/internal/shared/config"
	"fintrack/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Static pages
	mux.HandleFunc("/", httphandlers.HandleLoginPage)
	mux.HandleFunc("/login", httphandlers.HandleLoginPage)
	mux.HandleFunc("/dashboard", httphandlers.HandleDashboardPage)

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Public auth routes
	mux.HandleFunc("/api/auth/register", deps.AuthHandler.HandleRegister)
	mux.HandleFunc("/api/auth/login", deps.AuthHandler.HandleLogin)
	mux.HandleFunc("/api/auth/logout", deps.AuthHandler.HandleLogout)

	// Protected routes
	authMiddleware := middleware.Auth(deps.JWT)

	mux.Handle("/api/users/me", authMiddleware(http.HandlerFunc(deps.UserHandler.HandleMe)))
	mux.Handle("/api/accounts", authMiddleware(http.HandlerFunc(deps.AccountHandler.HandleAccounts)))
	mux.Handle("/api/categories", authMiddleware(http.HandlerFunc(deps.CategoryHandler.HandleListCategories)))
	mux.Handle("/api/transactions", authMiddleware(http.HandlerFunc(deps.TransactionHandler.HandleTransactions)))
	mux.Handle("/api/dashboard", authMiddleware(http.HandlerFunc(deps.DashboardHandler.HandleDashboard)))

	// Apply global middleware
	handler := middleware.Logging(middleware.CORS(mux))

	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(handler)
	}

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(middleware.SecureCookies(handler))
		log.Println("TLS security middleware enabled (HSTS + SecureCookies)")
	}

	return handler
}
