//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/worktracker-backend/internal/adapter/postgres"
	employeerepo "github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/employee"
	sessionrepo "github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/testhelper"
	timeentryrepo "github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/timeentry"
	tokenrepo "github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/token"
	authpkg "github.com/heartmarshall/worktracker-backend/internal/auth"
	"github.com/heartmarshall/worktracker-backend/internal/config"
	authsvc "github.com/heartmarshall/worktracker-backend/internal/service/auth"
	employeesvc "github.com/heartmarshall/worktracker-backend/internal/service/employee"
	reportsvc "github.com/heartmarshall/worktracker-backend/internal/service/report"
	trackingsvc "github.com/heartmarshall/worktracker-backend/internal/service/tracking"
	"github.com/heartmarshall/worktracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/worktracker-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-test-secret",
		JWTIssuer:        "worktracker-e2e",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  24 * time.Hour,
		PasswordHashCost: 4, // fast hashing for tests
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	// 3. Repositories.
	employeeRepo := employeerepo.New(pool)
	sessionRepo := sessionrepo.New(pool)
	entryRepo := timeentryrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)

	// 4. Services.
	authService := authsvc.NewService(logger, employeeRepo, tokenRepo, jwtMgr, authCfg)
	trackingService := trackingsvc.NewService(logger, sessionRepo, entryRepo, txm)
	employeeService := employeesvc.NewService(logger, employeeRepo)
	reportService := reportsvc.NewService(logger, entryRepo, employeeRepo, sessionRepo)

	// 5. Handlers + routes.
	mux := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Tracking: rest.NewTrackingHandler(trackingService, logger),
		Admin:    rest.NewAdminHandler(employeeService, trackingService, logger),
		Report:   rest.NewReportHandler(reportService, logger),
		Health:   rest.NewHealthHandler(pool, "e2e-test"),
	})

	// 6. Middleware chain.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// doJSON sends a request with an optional JSON body and bearer token, and
// returns the status code plus decoded response body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err, "create request")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	defer resp.Body.Close()

	// Not every response is JSON: the auth middleware writes plain text.
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "read response body")

	var result map[string]any
	_ = json.Unmarshal(raw, &result)
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// Account helpers.
// ---------------------------------------------------------------------------

var accountSeq int

// registerAccount registers a fresh employee through the API and returns
// the access token, refresh token, and the employee's server-side id.
func registerAccount(t *testing.T, ts *testServer) (accessToken, refreshToken, employeeID string) {
	t.Helper()

	accountSeq++
	unique := fmt.Sprintf("%d-%d", time.Now().UnixNano(), accountSeq)

	status, result := ts.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"employeeId":      "E2E-" + unique,
		"firstName":       "Test",
		"lastName":        "Employee",
		"email":           fmt.Sprintf("e2e-%s@example.com", unique),
		"department":      "Engineering",
		"position":        "Developer",
		"password":        "secret-password-1",
		"passwordConfirm": "secret-password-1",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", result)

	employee, ok := result["employee"].(map[string]any)
	require.True(t, ok, "expected employee in register response")

	return result["accessToken"].(string), result["refreshToken"].(string), employee["id"].(string)
}

// registerAdmin registers an account and flips its admin flag directly in
// the database, then logs in again so the new token carries the admin claim.
func registerAdmin(t *testing.T, ts *testServer) (accessToken string, employeeID string) {
	t.Helper()

	_, _, id := registerAccount(t, ts)

	var email string
	err := ts.Pool.QueryRow(t.Context(),
		"UPDATE employees SET is_admin = true WHERE id = $1 RETURNING email", id,
	).Scan(&email)
	require.NoError(t, err, "promote to admin")

	status, result := ts.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": "secret-password-1",
	}, "")
	require.Equal(t, http.StatusOK, status, "admin login: %v", result)

	return result["accessToken"].(string), id
}
