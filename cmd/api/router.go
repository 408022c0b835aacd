package main

import (
	"database/sql"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crucial707/studdy/internal/config"
	"github.com/crucial707/studdy/internal/handlers"
	"github.com/crucial707/studdy/internal/middleware"
	"github.com/crucial707/studdy/internal/recommend"
	"github.com/crucial707/studdy/internal/repo"
)

// newRouter wires repositories, the recommender, and handlers into the chi
// router. Split out from main so tests can drive the full stack with a
// sqlmock-backed DB.
func newRouter(database *sql.DB, cfg config.Config) http.Handler {
	userRepo := repo.NewUserRepo(database)
	planRepo := repo.NewStudyPlanRepo(database)
	recommender := recommend.New(rand.NewSource(time.Now().UnixNano()))

	userH := &handlers.UserHandler{Repo: userRepo}
	planH := &handlers.StudyPlanHandler{Repo: planRepo, Recommender: recommender}
	metaH := &handlers.MetaHandler{DB: database}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))

	r.Get("/", metaH.Root)
	r.Get("/health", metaH.Health)
	r.Get("/ready", metaH.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/users/", userH.CreateUser)
	r.Post("/api/studyplan/", planH.CreateStudyPlan)
	r.Get("/api/studyplans/{user_id}", planH.ListStudyPlans)

	return r
}
