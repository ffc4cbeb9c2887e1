package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pairchat/pairchat/internal/chat"
	"github.com/pairchat/pairchat/internal/config"
	"github.com/pairchat/pairchat/internal/middleware"
	"github.com/pairchat/pairchat/internal/store"
)

// Server is the HTTP server: chat WebSocket endpoint plus the REST surface
// around it (reports, feedback, maintenance, blacklist).
type Server struct {
	cfg         *config.Config
	store       *store.Store
	engine      *chat.Engine
	blacklist   *store.BlacklistCache
	rateLimiter *middleware.RateLimiter
	server      *http.Server
}

// New creates a new Server. The pairing engine is constructed here and owns
// all matchmaking state; tests build their own engines directly.
func New(cfg *config.Config, pool *pgxpool.Pool) *Server {
	st := store.New(pool)

	mask := ""
	var seed []string
	if cfg.ModerationConfigPath != "" {
		mcfg, err := chat.LoadModerationConfig(cfg.ModerationConfigPath)
		if err != nil {
			// A broken moderation file should not keep chat down.
			slog.Error("failed to load moderation config, starting without seed blacklist", "error", err)
		} else {
			mask = mcfg.Mask
			seed = mcfg.Words
		}
	}

	blacklist := store.NewBlacklistCache(st, cfg.BlacklistCacheTTL, seed)
	engine := chat.NewEngine(chat.NewMessageFilter(blacklist, mask))

	s := &Server{
		cfg:         cfg,
		store:       st,
		engine:      engine,
		blacklist:   blacklist,
		rateLimiter: middleware.NewRateLimiter(middleware.DefaultRateLimitConfig()),
	}

	s.server = &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.routes(),
	}
	return s
}

// Engine exposes the pairing engine (used by the e2e harness).
func (s *Server) Engine() *chat.Engine {
	return s.engine
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Serve starts the HTTP server on the given listener.
func (s *Server) Serve(l net.Listener) error {
	return s.server.Serve(l)
}

// Shutdown gracefully shuts down the server. Connected chat clients are
// dropped by the transport close; their teardown runs through the usual
// disconnect path.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.blacklist != nil {
		s.blacklist.Stop()
	}
	return s.server.Shutdown(ctx)
}
