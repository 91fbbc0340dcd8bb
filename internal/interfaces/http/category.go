package http

import (
	"log"
	"net/http"

	"fintrack/internal/domain/category"
	"fintrack/internal/shared/middleware"
)

type CategoryHandler struct {
	categoryRepo category.Repository
}

func NewCategoryHandler(categoryRepo category.Repository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// HandleListCategories returns the user's categories, optionally filtered by
// type (?type=INCOME|EXPENSE). The transaction form uses the type filter to
// offer only matching categories.
func (h *CategoryHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	typeFilter := r.URL.Query().Get("type")
	if typeFilter != "" && !category.IsValidType(typeFilter) {
		writeError(w, http.StatusBadRequest, "Invalid category type")
		return
	}

	categories, err := h.categoryRepo.ListByUserID(r.Context(), userID, typeFilter)
	if err != nil {
		log.Printf("Error listing categories for user %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if categories == nil {
		categories = []*category.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}
