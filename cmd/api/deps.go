package main

import (
	"log"

	"fintrack/internal/domain/dashboard"
	"fintrack/internal/infrastructure/postgres"
	httphandlers "fintrack/internal/interfaces/http"
	"fintrack/internal/shared/auth"
	"fintrack/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	AuthHandler        *httphandlers.AuthHandler
	UserHandler        *httphandlers.UserHandler
	AccountHandler     *httphandlers.AccountHandler
	CategoryHandler    *httphandlers.CategoryHandler
	TransactionHandler *httphandlers.TransactionHandler
	DashboardHandler   *httphandlers.DashboardHandler

	// Auth
	JWT *auth.JWT
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	// Connect to database
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	// Initialize domain services
	dashboardService := dashboard.NewService(transactionRepo, accountRepo)

	// Initialize auth components
	jwt := auth.NewJWT(cfg.JWT.Secret)

	// Initialize handlers
	authHandler := httphandlers.NewAuthHandler(userRepo, jwt)
	userHandler := httphandlers.NewUserHandler(userRepo)
	accountHandler := httphandlers.NewAccountHandler(accountRepo)
	categoryHandler := httphandlers.NewCategoryHandler(categoryRepo)
	transactionHandler := httphandlers.NewTransactionHandler(transactionRepo, accountRepo, categoryRepo)
	dashboardHandler := httphandlers.NewDashboardHandler(dashboardService)

	return &Dependencies{
		DB:                 db,
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		AccountHandler:     accountHandler,
		CategoryHandler:    categoryHandler,
		TransactionHandler: transactionHandler,
		DashboardHandler:   dashboardHandler,
		JWT:                jwt,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
