package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gadgetstore/storefront/internal/core/navigator"
	"github.com/gadgetstore/storefront/internal/infrastructure/config"
)

func storefrontServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "t1",
			"user":         map[string]any{"id": 1, "email": "a@b.com", "role": "user"},
		})
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer t1" {
			t.Errorf("Authorization = %q, want Bearer t1", got)
		}
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewStorefront_WiresClientCore(t *testing.T) {
	srv := storefrontServer(t)
	cfg := config.ClientConfig{
		APIBaseURL:  srv.URL,
		SessionFile: filepath.Join(t.TempDir(), "session.json"),
	}
	ctx := context.Background()

	sf := NewStorefront(cfg, zerolog.Nop())
	sf.Session.Restore(ctx)
	if got := sf.Nav.State(); got != navigator.StateUnauthenticated {
		t.Fatalf("State = %q, want unauthenticated", got)
	}

	if err := sf.Session.Login(ctx, "a@b.com", "x"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if got := sf.Nav.State(); got != navigator.StateAuthenticated {
		t.Fatalf("State = %q, want authenticated", got)
	}

	// The session store feeds the client's token source: the server asserts
	// the bearer header on this call.
	if _, err := sf.API.ListProducts(ctx); err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
}

func TestNewStorefront_SessionSurvivesRestart(t *testing.T) {
	srv := storefrontServer(t)
	cfg := config.ClientConfig{
		APIBaseURL:  srv.URL,
		SessionFile: filepath.Join(t.TempDir(), "session.json"),
	}
	ctx := context.Background()

	first := NewStorefront(cfg, zerolog.Nop())
	first.Session.Restore(ctx)
	if err := first.Session.Login(ctx, "a@b.com", "x"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// A second composition over the same config restores the persisted session.
	second := NewStorefront(cfg, zerolog.Nop())
	second.Session.Restore(ctx)
	if !second.Session.IsAuthenticated() {
		t.Fatal("expected the restored session to be authenticated")
	}
	if got := second.Session.Token(); got != "t1" {
		t.Fatalf("Token = %q, want t1", got)
	}
}
