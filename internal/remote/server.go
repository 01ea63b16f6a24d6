package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/multispin/internal/config"
	"github.com/muurk/multispin/internal/logging"
	"github.com/muurk/multispin/internal/version"
)

// Config holds the server configuration
type Config struct {
	Host          string
	Port          int
	DefaultPreset string           // Preset used when the client names none
	Registry      *config.Registry // Presets and preferences (default registry if nil)
}

// Server serves spin box sessions over WebSocket
type Server struct {
	config     *Config
	registry   *config.Registry
	upgrader   websocket.Upgrader
	httpServer *http.Server
	listener   net.Listener
	wg         sync.WaitGroup
	mu         sync.Mutex
	sessions   map[string]*websocket.Conn
}

// New creates a new Server instance
func New(cfg *Config) (*Server, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = config.NewRegistry()
	}

	if cfg.DefaultPreset != "" {
		if _, err := registry.Preset(cfg.DefaultPreset); err != nil {
			return nil, fmt.Errorf("invalid default preset: %w", err)
		}
	}

	s := &Server{
		config:   cfg,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Sessions are local tools; any origin may connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		sessions: make(map[string]*websocket.Conn),
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the HTTP handler serving /ws and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleUpgrade)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// Listen binds the listening socket. A zero port picks a free one; Addr
// reports it afterwards.
func (s *Server) Listen() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener
	logging.Info("Server listening for connections", zap.String("addr", listener.Addr().String()))
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Start listens if needed and serves until SIGINT, SIGTERM or ctx ends.
func (s *Server) Start(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	logging.Info("Starting MultiSpin session server",
		zap.String("addr", s.listener.Addr().String()),
		zap.String("default_preset", s.config.DefaultPreset),
	)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		err := s.httpServer.Serve(s.listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errChan <- err
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
	case <-ctx.Done():
		logging.Info("Context cancelled, stopping server...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logging.Error("Error shutting down HTTP server", zap.Error(err))
	}

	// Hijacked WebSocket connections are not closed by http.Server.
	s.mu.Lock()
	for addr, conn := range s.sessions {
		logging.Info("Closing active session", zap.String("remote_addr", addr))
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All sessions closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
	}

	logging.Sync()
	return nil
}

// ActiveSessions returns the number of connected clients
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "ok %d\n", s.ActiveSessions())
}

// handleUpgrade creates the session for ?preset=name and upgrades the
// connection.
func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("preset")
	if name == "" {
		name = s.config.DefaultPreset
	}
	if name == "" {
		name = s.registry.DefaultPresetName()
	}
	preset, err := s.registry.Preset(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	session, err := NewSession(name, preset, s.registry.Preferences)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, http.Header{"Server": {version.UserAgent()}})
	if err != nil {
		logging.Error("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	remoteAddr := conn.RemoteAddr().String()
	s.mu.Lock()
	s.sessions[remoteAddr] = conn
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.sessions, remoteAddr)
			s.mu.Unlock()
		}()
		if err := serveSession(conn, remoteAddr, session); err != nil {
			logging.Error("WebSocket session error",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
		}
	}()
}
