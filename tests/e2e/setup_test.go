package e2e

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pairchat/pairchat/internal/config"
	"github.com/pairchat/pairchat/internal/server"
	"github.com/pairchat/pairchat/internal/store"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// TestAdminPassword seeds the admin record for the test server.
	TestAdminPassword = "test_password"

	// testBlacklistTTL keeps the blacklist cache fresh enough that admin
	// updates become visible to chat relays within one short sleep.
	testBlacklistTTL = 20 * time.Millisecond
)

// TestEnv holds all test dependencies
type TestEnv struct {
	DB        *pgxpool.Pool
	Server    *server.Server
	ServerURL string
	PostgresC testcontainers.Container
	cancel    context.CancelFunc
}

// SetupTestEnv creates a complete test environment with containers
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)

	env := &TestEnv{
		cancel: cancel,
	}

	// Start Postgres container
	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("pairchat_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres: %v", err)
	}
	env.PostgresC = postgresC

	postgresURL, err := postgresC.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := pgxpool.New(ctx, postgresURL)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	env.DB = db

	st := store.New(db)
	if err := st.EnsureSchema(ctx); err != nil {
		t.Fatalf("failed to ensure schema: %v", err)
	}
	if err := st.SeedAdmin(ctx, TestAdminPassword); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	cfg := &config.Config{
		Port:              "0",
		ShutdownTimeout:   5 * time.Second,
		DatabaseURL:       postgresURL,
		LogLevel:          "debug",
		LogFormat:         "text",
		AdminPassword:     TestAdminPassword,
		BlacklistCacheTTL: testBlacklistTTL,
	}

	srv := server.New(cfg, db)

	// Start server on random port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to create listener: %v", err)
	}

	env.ServerURL = fmt.Sprintf("http://%s", listener.Addr().String())

	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	env.Server = srv

	// Wait for server to be ready
	if err := waitForServer(env.ServerURL); err != nil {
		t.Fatalf("server not ready: %v", err)
	}

	return env
}

// Cleanup tears down the test environment
func (e *TestEnv) Cleanup(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if e.Server != nil {
		e.Server.Shutdown(ctx)
	}
	if e.DB != nil {
		e.DB.Close()
	}
	if e.PostgresC != nil {
		e.PostgresC.Terminate(ctx)
	}
	e.cancel()
}

func waitForServer(url string) error {
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("server did not become ready")
}
