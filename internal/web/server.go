package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vitos/crypto_dash/internal/domain"
	"github.com/vitos/crypto_dash/internal/usecase"
	"go.uber.org/zap"
)

type Server struct {
	router  *http.ServeMux
	server  *http.Server
	source  domain.MarketDataSource
	viewCfg usecase.ViewConfig
	logger  *zap.Logger
}

func NewServer(
	port int,
	source domain.MarketDataSource,
	viewCfg usecase.ViewConfig,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if viewCfg.Logger == nil {
		viewCfg.Logger = logger
	}
	s := &Server{
		router:  http.NewServeMux(),
		source:  source,
		viewCfg: viewCfg,
		logger:  logger,
	}
	s.routes()
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	// Pages
	s.router.HandleFunc("GET /{$}", s.handleHome)
	s.router.HandleFunc("GET /coin/{id}", s.handleCoin)
	s.router.HandleFunc("GET /about", s.handleAbout)

	// JSON
	s.router.HandleFunc("GET /api/coins", s.handleListCoinsJSON)
	s.router.HandleFunc("GET /api/coins/{id}", s.handleCoinJSON)
	s.router.HandleFunc("GET /api/coins/{id}/chart", s.handleChartJSON)

	// Live list view
	s.router.HandleFunc("GET /ws/home", s.handleLiveHome)

	s.router.HandleFunc("GET /healthz", s.handleHealth)

	// Everything else
	s.router.HandleFunc("/", s.handleNotFound)
}

// Handler returns the router wrapped in middleware.
func (s *Server) Handler() http.Handler {
	return s.withRecovery(s.withRequestLog(s.router))
}

func (s *Server) Start() error {
	s.logger.Info("Starting web server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}
