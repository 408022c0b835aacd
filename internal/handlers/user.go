package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crucial707/studdy/internal/metrics"
	"github.com/crucial707/studdy/internal/repo"
)

// ==========================
// UserHandler
// ==========================
type UserHandler struct {
	Repo *repo.UserRepo
}

// ==========================
// Create User (registration; email must be unique)
// ==========================
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username *string `json:"username" validate:"required"`
		Email    *string `json:"email" validate:"required,email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			JSONValidationError(w, "validation failed",
				map[string]string{typeErr.Field: "wrong type"}, http.StatusUnprocessableEntity)
			return
		}
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&input); err != nil {
		JSONValidationError(w, "validation failed", validationFields(err), http.StatusUnprocessableEntity)
		return
	}

	// Explicit duplicate check before insert. Concurrent registrations with
	// the same email can still race past this and hit the UNIQUE constraint,
	// which surfaces as a 500 instead of the friendly 400.
	existing, err := h.Repo.GetByEmail(r.Context(), *input.Email)
	if err != nil && err != sql.ErrNoRows {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if existing != nil {
		JSONError(w, "Email already registered", http.StatusBadRequest)
		return
	}

	user, err := h.Repo.Create(r.Context(), *input.Username, *input.Email)
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.IncUsersRegistered()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
