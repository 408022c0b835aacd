package plans

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/crucial707/studdy/internal/models"
)

// captureOutput helps capture stdout during command execution.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestListPlans_TableOutput(t *testing.T) {
	plans := []models.StudyPlan{
		{ID: 1, UserID: 1, Subject: "math", HoursPerWeek: 3, RecommendedResources: "Khan Academy - Mathematics, Brilliant.org Math Courses"},
		{ID: 2, UserID: 1, Subject: "programming", HoursPerWeek: 6, RecommendedResources: "freeCodeCamp, CS50 Harvard Course, LeetCode for Practice"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/studyplans/1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(plans)
	}))
	defer srv.Close()

	_ = os.Setenv("STUDDY_API_URL", srv.URL)
	defer os.Unsetenv("STUDDY_API_URL")

	cmd := listPlansCmd()

	out := captureOutput(t, func() {
		if err := cmd.RunE(cmd, []string{"1"}); err != nil {
			t.Errorf("run: %v", err)
		}
	})

	if !strings.Contains(out, "math") || !strings.Contains(out, "freeCodeCamp") {
		t.Fatalf("expected plan rows in output, got: %s", out)
	}
}

func TestListPlans_JSONOutput(t *testing.T) {
	plans := []models.StudyPlan{
		{ID: 1, UserID: 1, Subject: "math", HoursPerWeek: 3, RecommendedResources: "Khan Academy - Mathematics, Brilliant.org Math Courses"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/studyplans/1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(plans)
	}))
	defer srv.Close()

	_ = os.Setenv("STUDDY_API_URL", srv.URL)
	defer os.Unsetenv("STUDDY_API_URL")

	cmd := listPlansCmd()
	_ = cmd.Flags().Set("json", "true")

	out := captureOutput(t, func() {
		if err := cmd.RunE(cmd, []string{"1"}); err != nil {
			t.Errorf("run: %v", err)
		}
	})

	if !strings.Contains(out, `"subject": "math"`) {
		t.Fatalf("expected JSON output, got: %s", out)
	}
}

func TestCreatePlan_TableOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/studyplan/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var input struct {
			UserID       int     `json:"user_id"`
			Subject      string  `json:"subject"`
			HoursPerWeek float64 `json:"hours_per_week"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(models.StudyPlan{
			ID:                   7,
			UserID:               input.UserID,
			Subject:              input.Subject,
			HoursPerWeek:         input.HoursPerWeek,
			RecommendedResources: "Duolingo, Babbel, FluentU",
		})
	}))
	defer srv.Close()

	_ = os.Setenv("STUDDY_API_URL", srv.URL)
	defer os.Unsetenv("STUDDY_API_URL")

	cmd := createPlanCmd()
	_ = cmd.Flags().Set("user-id", "1")
	_ = cmd.Flags().Set("subject", "language")
	_ = cmd.Flags().Set("hours", "7")

	out := captureOutput(t, func() {
		if err := cmd.RunE(cmd, []string{}); err != nil {
			t.Errorf("run: %v", err)
		}
	})

	if !strings.Contains(out, "language") || !strings.Contains(out, "Duolingo") {
		t.Fatalf("expected plan in output, got: %s", out)
	}
}
