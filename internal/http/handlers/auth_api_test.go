package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestSignupRejectsDuplicateEmailIgnoringCaseAndSpace(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, "POST", "/signup", map[string]string{
		"name": "A", "email": " X@Y.com ", "password": "p",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first signup: %d %s", resp.StatusCode, raw)
	}

	resp, raw = doJSON(t, app, "POST", "/signup", map[string]string{
		"name": "B", "email": "x@y.com", "password": "q",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate signup: want 400, got %d", resp.StatusCode)
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.Message != "Email already registered" {
		t.Fatalf("want duplicate message, got %q", out.Message)
	}
}

func TestSignupRequiresAllFields(t *testing.T) {
	app, _ := newTestApp(t)

	for _, body := range []map[string]string{
		{"email": "a@b.com", "password": "p"},
		{"name": "A", "password": "p"},
		{"name": "A", "email": "a@b.com"},
		{"name": "  ", "email": "a@b.com", "password": "p"},
	} {
		resp, _ := doJSON(t, app, "POST", "/signup", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %v: want 400, got %d", body, resp.StatusCode)
		}
	}
}

func TestLoginReturnsProjectionWithoutHash(t *testing.T) {
	app, _ := newTestApp(t)

	if resp, raw := doJSON(t, app, "POST", "/signup", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret-pass",
	}); resp.StatusCode != http.StatusOK {
		t.Fatalf("signup: %d %s", resp.StatusCode, raw)
	}

	resp, raw := doJSON(t, app, "POST", "/login", map[string]string{
		"email": "Alice@Example.com", "password": "secret-pass",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: %d %s", resp.StatusCode, raw)
	}
	body := string(raw)
	if strings.Contains(body, "$2") || strings.Contains(body, "password") {
		t.Fatalf("response leaks credentials: %s", body)
	}
	var out struct {
		User struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.User.ID == "" || out.User.Email != "alice@example.com" {
		t.Fatalf("bad projection: %s", raw)
	}

	// Wrong password and unknown email both come back 400 with distinct messages.
	resp, raw = doJSON(t, app, "POST", "/login", map[string]string{"email": "alice@example.com", "password": "nope"})
	if resp.StatusCode != http.StatusBadRequest || !strings.Contains(string(raw), "Incorrect password") {
		t.Fatalf("bad-password path: %d %s", resp.StatusCode, raw)
	}
	resp, raw = doJSON(t, app, "POST", "/login", map[string]string{"email": "ghost@example.com", "password": "nope"})
	if resp.StatusCode != http.StatusBadRequest || !strings.Contains(string(raw), "Email not found") {
		t.Fatalf("unknown-email path: %d %s", resp.StatusCode, raw)
	}
}

func TestAdminLoginCollapsesFailureModes(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/admin-login", map[string]string{"username": "admin", "password": "1234"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("seeded admin login: %d", resp.StatusCode)
	}

	for _, body := range []map[string]string{
		{"username": "admin", "password": "wrong"},
		{"username": "ghost", "password": "1234"},
	} {
		resp, raw := doJSON(t, app, "POST", "/admin-login", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("want 400, got %d", resp.StatusCode)
		}
		if !strings.Contains(string(raw), "Invalid credentials") {
			t.Fatalf("message must not leak which field failed: %s", raw)
		}
	}
}
