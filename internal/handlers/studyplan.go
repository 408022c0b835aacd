package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/crucial707/studdy/internal/metrics"
	"github.com/crucial707/studdy/internal/models"
	"github.com/crucial707/studdy/internal/recommend"
	"github.com/crucial707/studdy/internal/repo"
	"github.com/go-chi/chi/v5"
)

// ==========================
// StudyPlanHandler
// ==========================
type StudyPlanHandler struct {
	Repo        *repo.StudyPlanRepo
	Recommender *recommend.Recommender
}

// ==========================
// Create Study Plan
// ==========================
// The recommendation string is computed synchronously before the row is
// written, so a persisted plan always carries its resources.
func (h *StudyPlanHandler) CreateStudyPlan(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID       *int     `json:"user_id" validate:"required"`
		Subject      *string  `json:"subject" validate:"required"`
		HoursPerWeek *float64 `json:"hours_per_week" validate:"required"`
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

	// user_id is not checked against the users table; orphaned plans are
	// allowed. Zero and negative hours are accepted as-is.
	resources := h.Recommender.Recommend(*input.Subject, *input.HoursPerWeek)

	plan, err := h.Repo.Create(r.Context(), *input.UserID, *input.Subject, *input.HoursPerWeek, resources)
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.IncStudyPlansCreated()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

// ==========================
// List Study Plans
// ==========================
// An unknown user id is not an error; the response is an empty array.
func (h *StudyPlanHandler) ListStudyPlans(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "user_id")
	userID, err := strconv.Atoi(idStr)
	if err != nil {
		JSONValidationError(w, "validation failed",
			map[string]string{"user_id": "must be an integer"}, http.StatusUnprocessableEntity)
		return
	}

	plans, err := h.Repo.ListByUser(r.Context(), userID)
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if plans == nil {
		plans = []models.StudyPlan{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plans)
}
