// Package server wires the HTTP router, middleware stack and handlers.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CaseOpener_Go/internal/game"
	"github.com/osse101/CaseOpener_Go/internal/handler"
	"github.com/osse101/CaseOpener_Go/internal/logger"
	"github.com/osse101/CaseOpener_Go/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
	RateLimit      int
	RateWindow     time.Duration
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, gameService game.Service, store handler.Pinger) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, gameService, store),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and routes.
func NewRouter(opts Options, gameService game.Service, store handler.Pinger) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.RateLimit, opts.RateWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion())

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", handler.HandleRegisterUser(gameService))
			r.Get("/{userID}", handler.HandleGetUser(gameService))
		})

		r.Route("/gamestate", func(r chi.Router) {
			r.Post("/", handler.HandleCreateGameState(gameService))
			r.Get("/{userID}", handler.HandleGetGameState(gameService))
			r.Patch("/{userID}", handler.HandleUpdateGameState(gameService))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Post("/", handler.HandleAddInventoryItem(gameService))
			r.Get("/{userID}", handler.HandleGetInventory(gameService))
			r.Delete("/{userID}", handler.HandleClearInventory(gameService))
			r.Delete("/{userID}/{itemID}", handler.HandleRemoveInventoryItem(gameService))
		})

		r.Route("/cooldowns", func(r chi.Router) {
			r.Post("/", handler.HandleSetCooldown(gameService))
			r.Get("/{userID}", handler.HandleGetCooldowns(gameService))
			r.Delete("/{userID}/{caseID}", handler.HandleClearCooldown(gameService))
		})

		r.Route("/cases", func(r chi.Router) {
			r.Get("/", handler.HandleGetCases(gameService))
			r.Get("/{caseID}", handler.HandleGetCase(gameService))
			r.Get("/{caseID}/odds", handler.HandleGetCaseOdds(gameService))
		})

		r.Route("/game/{userID}", func(r chi.Router) {
			r.Post("/open", handler.HandleOpenCase(gameService))
			r.Post("/purchase", handler.HandlePurchaseCase(gameService))
			r.Post("/sell", handler.HandleSellItem(gameService))
			r.Post("/sell-all", handler.HandleSellAll(gameService))
			r.Post("/trade-up", handler.HandleTradeUp(gameService))
			r.Get("/market", handler.HandleGetMarket(gameService))
			r.Post("/market/buy", handler.HandleBuyMarketItem(gameService))
			r.Get("/stats", handler.HandleGetStats(gameService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
