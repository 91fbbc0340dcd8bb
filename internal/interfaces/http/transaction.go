package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/domain/account"
	"fintrack/internal/domain/category"
	"fintrack/internal/domain/transaction"
	"fintrack/internal/shared/middleware"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type TransactionHandler struct {
	transactionRepo transaction.Repository
	accountRepo     account.Repository
	categoryRepo    category.Repository
}

func NewTransactionHandler(transactionRepo transaction.Repository, accountRepo account.Repository, categoryRepo category.Repository) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

type CreateTransactionRequest struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	AccountID   string  `json:"accountId"`
	CategoryID  string  `json:"categoryId"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type ListTransactionsResponse struct {
	Transactions []*transaction.Transaction `json:"transactions"`
	Pagination   Pagination                 `json:"pagination"`
}

// HandleTransactions routes the transactions collection endpoint
// (GET list, POST create)
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleListTransactions(w, r, userID)
	case http.MethodPost:
		h.handleCreateTransaction(w, r, userID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleListTransactions returns a filtered, paginated page of the user's
// transactions, newest first.
func (h *TransactionHandler) handleListTransactions(w http.ResponseWriter, r *http.Request, userID string) {
	q := r.URL.Query()

	page := defaultPage
	if parsed, err := strconv.Atoi(q.Get("page")); err == nil && parsed > 0 {
		page = parsed
	}

	limit := defaultLimit
	if parsed, err := strconv.Atoi(q.Get("limit")); err == nil && parsed > 0 {
		limit = parsed
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := transaction.ListFilter{
		Type:       q.Get("type"),
		CategoryID: q.Get("categoryId"),
		AccountID:  q.Get("accountId"),
	}

	if filter.Type != "" && !transaction.IsValidType(filter.Type) {
		writeError(w, http.StatusBadRequest, "Invalid transaction type")
		return
	}

	if raw := q.Get("startDate"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid startDate format (use YYYY-MM-DD)")
			return
		}
		filter.StartDate = &parsed
	}
	if raw := q.Get("endDate"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid endDate format (use YYYY-MM-DD)")
			return
		}
		filter.EndDate = &parsed
	}

	ctx := r.Context()

	transactions, err := h.transactionRepo.List(ctx, userID, filter, limit, (page-1)*limit)
	if err != nil {
		log.Printf("Error listing transactions for user %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	total, err := h.transactionRepo.Count(ctx, userID, filter)
	if err != nil {
		log.Printf("Error counting transactions for user %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if transactions == nil {
		transactions = []*transaction.Transaction{}
	}

	writeJSON(w, http.StatusOK, ListTransactionsResponse{
		Transactions: transactions,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// handleCreateTransaction records a money movement and adjusts the owning
// account's balance.
func (h *TransactionHandler) handleCreateTransaction(w http.ResponseWriter, r *http.Request, userID string) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "Amount must be greater than zero")
		return
	}
	if !transaction.IsValidType(req.Type) {
		writeError(w, http.StatusBadRequest, "Type must be INCOME or EXPENSE")
		return
	}
	if req.AccountID == "" {
		writeError(w, http.StatusBadRequest, "Amount, type, and account are required")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)")
			return
		}
		date = parsed
	}

	ctx := r.Context()

	// Ownership checks: both references must resolve for the caller
	if _, err := h.accountRepo.GetForUser(ctx, req.AccountID, userID); err != nil {
		if err == account.ErrAccountNotFound {
			writeError(w, http.StatusNotFound, "Account not found")
			return
		}
		log.Printf("Error getting account %s for transaction creation: %v", req.AccountID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var categoryID *string
	if req.CategoryID != "" {
		if _, err := h.categoryRepo.GetForUser(ctx, req.CategoryID, userID); err != nil {
			if err == category.ErrCategoryNotFound {
				writeError(w, http.StatusNotFound, "Category not found")
				return
			}
			log.Printf("Error getting category %s for transaction creation: %v", req.CategoryID, err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		categoryID = &req.CategoryID
	}

	var description *string
	if req.Description != "" {
		description = &req.Description
	}

	created, err := h.transactionRepo.Create(ctx, transaction.CreateTransactionParams{
		ID:          uuid.New().String(),
		UserID:      userID,
		AccountID:   req.AccountID,
		CategoryID:  categoryID,
		Amount:      req.Amount,
		Type:        req.Type,
		Description: description,
		Date:        date,
	})
	if err != nil {
		log.Printf("Error creating transaction for account %s: %v", req.AccountID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// parseDate accepts YYYY-MM-DD or RFC3339 timestamps.
func parseDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, raw)
}
