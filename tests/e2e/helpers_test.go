//go:build e2e

package e2e_test

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmirnova/circleback/internal/adapter/postgres"
	contactrepo "github.com/asmirnova/circleback/internal/adapter/postgres/contact"
	interactionrepo "github.com/asmirnova/circleback/internal/adapter/postgres/interaction"
	"github.com/asmirnova/circleback/internal/adapter/postgres/testhelper"
	"github.com/asmirnova/circleback/internal/auth"
	"github.com/asmirnova/circleback/internal/bot/client"
	"github.com/asmirnova/circleback/internal/config"
	contactsvc "github.com/asmirnova/circleback/internal/service/contact"
	interactionsvc "github.com/asmirnova/circleback/internal/service/interaction"
	statssvc "github.com/asmirnova/circleback/internal/service/stats"
	"github.com/asmirnova/circleback/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests. API is the
// bot-side client pointed at the running server, so every test call goes
// through token minting, routing, and the real database.
type testServer struct {
	URL    string
	API    *client.Client
	Pool   *pgxpool.Pool
	tokens *auth.TokenManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	contacts := contactrepo.New(pool)
	interactions := interactionrepo.New(pool)

	// 4. Services.
	contactService := contactsvc.NewService(logger, contacts)
	interactionService := interactionsvc.NewService(logger, interactions, contacts, txm)
	statsService := statssvc.NewService(logger, interactions)

	// 5. Service tokens with a test secret (>= 32 chars).
	tokens := auth.NewTokenManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	// 6. Router + httptest server.
	router := rest.NewRouter(
		logger,
		config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		tokens,
		rest.NewContactHandler(contactService, logger),
		rest.NewLogHandler(interactionService, logger),
		rest.NewStatsHandler(statsService, logger),
		rest.NewHealthHandler(pool, "test-version"),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		API:    client.New(srv.URL+"/api/v1", tokens, logger),
		Pool:   pool,
		tokens: tokens,
	}
}

// uniqueName returns a contact name that cannot collide across tests
// sharing the database container.
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s %s", prefix, uuid.New().String()[:8])
}

func strPtr(s string) *string { return &s }

// get performs a raw GET against the server, for endpoints outside the
// client's typed surface (health probes, unauthenticated access).
func (ts *testServer) get(t *testing.T, path, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}
