package users

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

func TestRegisterUser_TableOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var input struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(models.User{ID: 1, Username: input.Username, Email: input.Email})
	}))
	defer srv.Close()

	_ = os.Setenv("STUDDY_API_URL", srv.URL)
	defer os.Unsetenv("STUDDY_API_URL")

	cmd := registerUserCmd()
	_ = cmd.Flags().Set("username", "alice")
	_ = cmd.Flags().Set("email", "alice@example.com")

	out := captureOutput(t, func() {
		if err := cmd.RunE(cmd, []string{}); err != nil {
			t.Errorf("run: %v", err)
		}
	})

	if !strings.Contains(out, "alice") || !strings.Contains(out, "alice@example.com") {
		t.Fatalf("expected user in output, got: %s", out)
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Email already registered"}`))
	}))
	defer srv.Close()

	_ = os.Setenv("STUDDY_API_URL", srv.URL)
	defer os.Unsetenv("STUDDY_API_URL")

	cmd := registerUserCmd()
	_ = cmd.Flags().Set("username", "alice")
	_ = cmd.Flags().Set("email", "alice@example.com")

	err := cmd.RunE(cmd, []string{})
	if err == nil {
		t.Fatal("expected error for duplicate email")
	}
	if !strings.Contains(err.Error(), "Email already registered") {
		t.Errorf("unexpected error: %v", err)
	}
}
