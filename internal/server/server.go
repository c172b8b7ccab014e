package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"sublate/internal/config"
	"sublate/internal/history"
	"sublate/internal/logging"
	"sublate/internal/pipeline"
)

// Runner executes one subtitle generation request. *pipeline.Pipeline is the
// production implementation; tests substitute stubs.
type Runner interface {
	Run(ctx context.Context, req pipeline.Request) (pipeline.Result, error)
}

// Server hosts the HTTP boundary for the synthesis pipeline.
type Server struct {
	cfg         config.Server
	defaultMode pipeline.Mode
	runner      Runner
	store       *history.Store
	logger      *slog.Logger
}

// New constructs a server. store may be nil when history is disabled.
func New(cfg *config.Config, runner Runner, store *history.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	defaultMode, _ := pipeline.ParseMode(cfg.Translator.OutputMode, pipeline.ModePlain)
	return &Server{
		cfg:         cfg.Server,
		defaultMode: defaultMode,
		runner:      runner,
		store:       store,
		logger:      logger.With(slog.String(logging.FieldComponent, "server")),
	}
}

// Handler builds the full middleware-wrapped route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/subtitles", s.handleSubtitles)
	mux.HandleFunc("GET /api/languages", s.handleLanguages)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.cfg.StaticDir != "" {
		if _, err := os.Stat(s.cfg.StaticDir); err == nil {
			mux.Handle("/", http.FileServer(http.Dir(s.cfg.StaticDir)))
		} else {
			s.logger.Warn("static dir missing, not serving client", slog.String("dir", s.cfg.StaticDir))
		}
	}

	var handler http.Handler = mux
	handler = withCORS(s.cfg.AllowedOrigins, handler)
	handler = withRequestLog(s.logger, handler)
	handler = withRequestID(handler)
	return handler
}

// Run serves HTTP until ctx is cancelled, holding the single-instance lock
// for the duration. Shutdown is graceful: in-flight requests get a short
// drain window.
func (s *Server) Run(ctx context.Context) error {
	release, err := acquireLock(s.cfg.LockPath)
	if err != nil {
		return err
	}
	defer release()

	httpServer := &http.Server{
		Addr:              s.cfg.Bind,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		// The pipeline waits on two upstream calls; give handlers the
		// configured budget before the server cuts them off.
		WriteTimeout: time.Duration(s.cfg.RequestTimeout+5) * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Info("listening", slog.String("bind", s.cfg.Bind))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return httpServer.Close()
		}
		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
