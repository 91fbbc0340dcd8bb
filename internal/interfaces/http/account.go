package http

import (
	"encoding/json"
	"log"
	"net/http"

	"fintrack/internal/domain/account"
	"fintrack/internal/shared/middleware"

	"github.com/google/uuid"
)

type AccountHandler struct {
	accountRepo account.Repository
}

func NewAccountHandler(accountRepo account.Repository) *AccountHandler {
	return &AccountHandler{accountRepo: accountRepo}
}

type CreateAccountRequest struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Balance float64 `json:"balance"`
}

// HandleAccounts routes the accounts collection endpoint (GET list, POST create)
func (h *AccountHandler) HandleAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleListAccounts(w, r, userID)
	case http.MethodPost:
		h.handleCreateAccount(w, r, userID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleListAccounts returns all accounts for the authenticated user,
// highest balance first
func (h *AccountHandler) handleListAccounts(w http.ResponseWriter, r *http.Request, userID string) {
	accounts, err := h.accountRepo.ListByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing accounts for user %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if accounts == nil {
		accounts = []*account.Account{}
	}

	writeJSON(w, http.StatusOK, accounts)
}

// handleCreateAccount creates an additional account for the user
func (h *AccountHandler) handleCreateAccount(w http.ResponseWriter, r *http.Request, userID string) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Account name is required")
		return
	}
	if !account.IsValidType(req.Type) {
		writeError(w, http.StatusBadRequest, "Invalid account type")
		return
	}

	acc, err := h.accountRepo.Create(r.Context(), account.CreateParams{
		ID:      uuid.New().String(),
		UserID:  userID,
		Name:    req.Name,
		Type:    req.Type,
		Balance: req.Balance,
	})
	if err != nil {
		log.Printf("Error creating account for user %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, acc)
}
