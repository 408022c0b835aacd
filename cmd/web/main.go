package main

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates
var templatesFS embed.FS

const (
	defaultPort = "3000"
	defaultAPI  = "http://localhost:8080"
	envWebPort  = "STUDDY_WEB_PORT"
	envAPIURL   = "STUDDY_API_URL"
)

func main() {
	port := getEnv(envWebPort, defaultPort)
	apiBase := getEnv(envAPIURL, defaultAPI)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health (no templates)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Get("/", planForm)
	r.Post("/plan", createPlan(apiBase))
	r.Get("/plans/{userID}", listPlans(apiBase))

	log.Printf("Studdy web UI running on http://localhost:%s (API: %s)", port, apiBase)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type user struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type studyPlan struct {
	ID                   int     `json:"id"`
	UserID               int     `json:"user_id"`
	Subject              string  `json:"subject"`
	HoursPerWeek         float64 `json:"hours_per_week"`
	RecommendedResources string  `json:"recommended_resources"`
	CreatedAt            string  `json:"created_at"`
}

// Resources splits the stored recommendation string for list rendering.
func (p studyPlan) Resources() []string {
	parts := strings.Split(p.RecommendedResources, ", ")
	out := make([]string, 0, len(parts))
	for _, r := range parts {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func planForm(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "index.html", nil)
}

// createPlan registers the user (reusing nothing on conflict: a duplicate
// email sends the visitor to their existing plan history instead) and then
// submits the study plan.
func createPlan(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		username := strings.TrimSpace(r.FormValue("username"))
		email := strings.TrimSpace(r.FormValue("email"))
		subject := strings.TrimSpace(r.FormValue("subject"))
		hoursStr := strings.TrimSpace(r.FormValue("hours"))

		hours, err := strconv.ParseFloat(hoursStr, 64)
		if username == "" || email == "" || subject == "" || err != nil {
			renderTemplate(w, "index.html", map[string]string{"Error": "Please fill in all fields"})
			return
		}

		userBody := fmt.Sprintf(`{"username":%q,"email":%q}`, username, email)
		body, status, err := apiPost(apiBase, "/api/users/", userBody)
		if err != nil {
			renderTemplate(w, "index.html", map[string]string{"Error": "Cannot reach API: " + err.Error()})
			return
		}

		if status == http.StatusBadRequest {
			renderTemplate(w, "index.html", map[string]string{
				"Error": "Email already registered. Open /plans/<your user id> to see your existing plans.",
			})
			return
		}
		if status != http.StatusOK {
			renderTemplate(w, "index.html", map[string]string{"Error": apiDetail(body)})
			return
		}

		var u user
		if err := json.Unmarshal(body, &u); err != nil {
			renderTemplate(w, "index.html", map[string]string{"Error": "Bad API response"})
			return
		}

		planBody := fmt.Sprintf(`{"user_id":%d,"subject":%q,"hours_per_week":%s}`,
			u.ID, subject, strconv.FormatFloat(hours, 'f', -1, 64))
		body, status, err = apiPost(apiBase, "/api/studyplan/", planBody)
		if err != nil || status != http.StatusOK {
			renderTemplate(w, "index.html", map[string]string{"Error": "Failed to create study plan"})
			return
		}

		var plan studyPlan
		if err := json.Unmarshal(body, &plan); err != nil {
			renderTemplate(w, "index.html", map[string]string{"Error": "Bad API response"})
			return
		}

		renderTemplate(w, "result.html", map[string]interface{}{
			"User": u,
			"Plan": plan,
		})
	}
}

func listPlans(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		if _, err := strconv.Atoi(userID); err != nil {
			http.Error(w, "user id must be an integer", http.StatusBadRequest)
			return
		}

		body, status, err := apiGet(apiBase, "/api/studyplans/"+userID)
		if err != nil || status != http.StatusOK {
			http.Error(w, "cannot fetch plans", http.StatusBadGateway)
			return
		}

		var plans []studyPlan
		if err := json.Unmarshal(body, &plans); err != nil {
			http.Error(w, "bad API response", http.StatusBadGateway)
			return
		}

		renderTemplate(w, "plans.html", map[string]interface{}{
			"UserID": userID,
			"Plans":  plans,
		})
	}
}

// ==========================
// API helpers
// ==========================

func apiGet(apiBase, path string) ([]byte, int, error) {
	resp, err := http.Get(apiBase + path)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	return b, resp.StatusCode, err
}

func apiPost(apiBase, path, body string) ([]byte, int, error) {
	resp, err := http.Post(apiBase+path, "application/json", strings.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	return b, resp.StatusCode, err
}

// apiDetail extracts the "detail" message from an API error body.
func apiDetail(body []byte) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Detail != "" {
		return e.Detail
	}
	return "request failed"
}

func renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	tmpl, err := template.ParseFS(templatesFS, "templates/"+name)
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		http.Error(w, "render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
