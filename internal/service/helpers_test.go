package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/tableplanner/internal/auth"
	"github.com/mmynk/tableplanner/internal/metrics"
	"github.com/mmynk/tableplanner/internal/middleware"
	"github.com/mmynk/tableplanner/internal/storage/sqlite"
	"github.com/mmynk/tableplanner/pkg/plannerapi"
)

type testEnv struct {
	planner *plannerapi.PlannerServiceClient
	auth    *plannerapi.AuthServiceClient
	metrics *metrics.Metrics
}

// setupTestServer starts both services behind the production interceptor
// chain, backed by a SQLite file in a temp dir.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	m := metrics.New(prometheus.NewRegistry())

	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.RequireAuth(jwtManager, plannerapi.PublicProcedures...),
		middleware.LoggingInterceptor(logger),
	)

	authSvc := NewAuthService(auth.NewPasswordAuthenticator(store, bcrypt.MinCost), jwtManager, store, logger)
	plannerSvc := NewPlannerService(store, m, 20)

	mux := http.NewServeMux()
	mux.Handle(plannerapi.NewAuthServiceHandler(authSvc, interceptors))
	mux.Handle(plannerapi.NewPlannerServiceHandler(plannerSvc, interceptors))

	server := httptest.NewServer(mux)
	transport := &http.Transport{}
	t.Cleanup(func() {
		server.Close()
		transport.CloseIdleConnections()
	})

	client := &http.Client{Transport: transport}
	return &testEnv{
		planner: plannerapi.NewPlannerServiceClient(client, server.URL),
		auth:    plannerapi.NewAuthServiceClient(client, server.URL),
		metrics: m,
	}
}

// signUp registers a user and returns a bearer token for them.
func (e *testEnv) signUp(t *testing.T, email string) string {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&plannerapi.RegisterRequest{
		Email:       email,
		DisplayName: "Test User",
		Password:    "password123",
	}))
	require.NoError(t, err)
	return resp.Msg.Token
}

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func requireCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}
