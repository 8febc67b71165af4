package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/five82/clueboard/internal/game"
)

const (
	timeout         = 10 * time.Second
	shutdownTimeout = 5 * time.Second
	qrSize          = 320
)

//go:embed assets/*
var assets embed.FS

// Options configures a Server.
type Options struct {
	Listen  string
	Version string
	Logger  *slog.Logger

	// NewGame returns a fresh game for each browser connection.
	NewGame func() *game.Game
}

// Server serves the board page and one websocket session per tab.
type Server struct {
	listen  string
	version string
	logger  *slog.Logger
	newGame func() *game.Game
	router  *httprouter.Router
}

// New builds a Server and registers its routes.
func New(opts Options) (*Server, error) {
	if opts.NewGame == nil {
		return nil, errors.New("web: NewGame is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		listen:  opts.Listen,
		version: opts.Version,
		logger:  logger,
		newGame: opts.NewGame,
		router:  httprouter.New(),
	}

	s.router.PanicHandler = func(w http.ResponseWriter, r *http.Request, v any) {
		s.logger.Error("handler panic", slog.String("path", r.URL.Path), slog.Any("panic", v))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(w)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "An error has occurred. Please try again.\n")
	}

	s.router.GET("/", s.serveAsset("assets/index.html", "text/html; charset=utf-8"))
	s.router.GET("/assets/app.js", s.serveAsset("assets/app.js", "text/javascript; charset=utf-8"))
	s.router.GET("/assets/app.css", s.serveAsset("assets/app.css", "text/css; charset=utf-8"))
	s.router.GET("/ws", s.serveWS)
	s.router.GET("/qr", s.serveQR)
	s.router.GET("/healthz", s.serveHealthCheck)
	s.router.GET("/version", s.serveVersion)

	return s, nil
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.listen,
		Handler:           s.router,
		IdleTimeout:       10 * time.Minute,
		ReadHeaderTimeout: timeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("url", "http://"+s.listen+"/"), slog.String("version", s.version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("listen: %w", err)
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func securityHeaders(w http.ResponseWriter) {
	w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
	w.Header().Set("Cross-Origin-Resource-Policy", "same-site")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'self'; connect-src 'self' ws: wss:")
}

func realIP(r *http.Request) string {
	host, port, _ := net.SplitHostPort(r.RemoteAddr)
	if ip := r.Header.Get("X-Real-IP"); ip != "" && net.ParseIP(ip) != nil {
		host = ip
	}
	if net.ParseIP(host) != nil && strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if port != "" {
		return host + ":" + port
	}
	return host
}

func (s *Server) logServe(r *http.Request, what string, written int, start time.Time) {
	s.logger.Debug("serve",
		slog.String("what", what),
		slog.Int("bytes", written),
		slog.String("remote", realIP(r)),
		slog.Duration("elapsed", time.Since(start).Round(time.Microsecond)),
	)
}

func (s *Server) serveAsset(name, contentType string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		start := time.Now()

		data, err := assets.ReadFile(name)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		securityHeaders(w)

		written, err := w.Write(data)
		if err != nil {
			s.logger.Warn("write response", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
			return
		}
		s.logServe(r, name, written, start)
	}
}

func (s *Server) serveHealthCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	securityHeaders(w)
	_, _ = w.Write([]byte("Ok\n"))
}

func (s *Server) serveVersion(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	start := time.Now()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	securityHeaders(w)
	written, _ := w.Write([]byte("clueboard v" + s.version + "\n"))
	s.logServe(r, "version", written, start)
}

// serveQR returns a PNG QR code pointing at the board page, so a phone on
// the same network can open it.
func (s *Server) serveQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	png, err := qrcode.Encode(scheme+"://"+r.Host+"/", qrcode.Medium, qrSize)
	if err != nil {
		s.logger.Warn("qr generation failed", slog.String("error", err.Error()))
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	securityHeaders(w)
	_, _ = w.Write(png)
}
