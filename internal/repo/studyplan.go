package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/studdy/internal/models"
)

// ==========================
// StudyPlanRepo
// ==========================
type StudyPlanRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewStudyPlanRepo(db *sql.DB) *StudyPlanRepo {
	return &StudyPlanRepo{DB: db}
}

// ==========================
// Create Study Plan
// ==========================
// Create inserts a plan with the recommendation string already computed.
// userID is stored as given; it is not checked against the users table.
func (r *StudyPlanRepo) Create(ctx context.Context, userID int, subject string, hoursPerWeek float64, recommendedResources string) (*models.StudyPlan, error) {
	query := `
		INSERT INTO study_plans (user_id, subject, hours_per_week, recommended_resources)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, subject, hours_per_week, recommended_resources, created_at
	`

	plan := &models.StudyPlan{}

	err := r.DB.QueryRowContext(ctx, query, userID, subject, hoursPerWeek, recommendedResources).
		Scan(&plan.ID, &plan.UserID, &plan.Subject, &plan.HoursPerWeek, &plan.RecommendedResources, &plan.CreatedAt)

	if err != nil {
		return nil, err
	}

	return plan, nil
}

// ==========================
// List By User
// ==========================
// ListByUser returns the user's plans in insertion order. The slice is empty
// (never nil-checked by callers as an error) when the user has no plans.
func (r *StudyPlanRepo) ListByUser(ctx context.Context, userID int) ([]models.StudyPlan, error) {
	query := `
		SELECT id, user_id, subject, hours_per_week, recommended_resources, created_at
		FROM study_plans
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.StudyPlan
	for rows.Next() {
		var p models.StudyPlan
		if err := rows.Scan(&p.ID, &p.UserID, &p.Subject, &p.HoursPerWeek, &p.RecommendedResources, &p.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}
