package models

import "time"

// StudyPlan is read-only after creation; RecommendedResources is computed
// once when the plan is written and never recomputed.
type StudyPlan struct {
	ID                   int       `json:"id"`
	UserID               int       `json:"user_id"`
	Subject              string    `json:"subject"`
	HoursPerWeek         float64   `json:"hours_per_week"`
	RecommendedResources string    `json:"recommended_resources"`
	CreatedAt            time.Time `json:"created_at"`
}
