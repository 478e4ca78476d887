// Package server sets up the HTTP server with all routes
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/kentsel/kentsel/internal/config"
	"github.com/kentsel/kentsel/internal/health"
	"github.com/kentsel/kentsel/internal/logging"
	"github.com/kentsel/kentsel/internal/metrics"
	"github.com/kentsel/kentsel/internal/projects"
	"github.com/kentsel/kentsel/internal/ratelimit"
	"github.com/kentsel/kentsel/internal/realtime"
	"github.com/kentsel/kentsel/internal/report"
	"github.com/kentsel/kentsel/internal/retry"
	"github.com/kentsel/kentsel/internal/risk"
	"github.com/kentsel/kentsel/internal/scenario"
	"github.com/kentsel/kentsel/internal/security"
	"github.com/kentsel/kentsel/internal/traces"
	"github.com/kentsel/kentsel/internal/validation"
	"github.com/kentsel/kentsel/migrations"
)

// Version of the HTTP service.
const Version = "1.3.0"

// RootMessage is returned by GET /.
const RootMessage = "AI Kentsel Analiz API çalışıyor! (v1.3 – AI risk skoru ile)"

// SampleMapID is the fixed id handed out by the demo upload endpoint.
const SampleMapID = "sample_map_001"

const (
	dbStatsInterval = 15 * time.Second
	healthTimeout   = 5 * time.Second
)

// -----------------------------------------------------------------------------
// Server
// -----------------------------------------------------------------------------

// Server wraps the HTTP server and dependencies
type Server struct {
	cfg            *config.Config
	catalog        *scenario.Catalog
	store          projects.Store
	projects       *projects.Service
	realtimeHub    *realtime.Hub
	rateLimiter    *ratelimit.Limiter
	health         *health.Registry
	db             *sql.DB // nil if using in-memory
	router         *gin.Engine
	httpSrv        *http.Server
	logger         *slog.Logger
	cancelRunCtx   context.CancelFunc // cancels background goroutines started in Run
	shutdownTracer traces.ShutdownFunc
	drainDelay     time.Duration

	// Health state
	ready   atomic.Bool
	healthy atomic.Bool
}

// Option configures the server
type Option func(*Server)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithStore sets the project store, bypassing DATABASE_URL (for testing)
func WithStore(store projects.Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithDrainDelay sets how long Shutdown waits before closing listeners
func WithDrainDelay(d time.Duration) Option {
	return func(s *Server) {
		s.drainDelay = d
	}
}

// New creates a new server instance
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:        cfg,
		catalog:    scenario.Default(),
		logger:     logging.New(cfg.LogLevel, cfg.LogFormat),
		drainDelay: 5 * time.Second,
		health:     health.NewRegistry(),
	}

	// Apply options first (may set store/logger)
	for _, opt := range opts {
		opt(s)
	}

	// Context for initialization
	ctx := context.Background()

	if s.store == nil {
		if err := s.openStore(ctx); err != nil {
			return nil, err
		}
	}
	s.logger.Info("project storage ready", "backend", s.store.Backend())

	// Create realtime hub for WebSocket streaming
	s.realtimeHub = realtime.NewHub(s.logger, cfg.CORSAllowedOrigins...)

	s.projects = projects.NewService(s.store, s.catalog).
		WithEvents(&realtimeEventEmitter{hub: s.realtimeHub})

	s.health.Register("storage", health.PingChecker("storage", s.store, healthTimeout))
	s.health.Register("catalog", health.Static("catalog",
		len(s.catalog.Keys()) > 0,
		fmt.Sprintf("%d scenarios", len(s.catalog.Keys()))))

	// Configure gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()
	s.setupMiddleware()
	s.setupRoutes()

	s.healthy.Store(true)

	return s, nil
}

// openStore selects the project store from configuration.
func (s *Server) openStore(ctx context.Context) error {
	if !s.cfg.UsePostgres() {
		s.store = projects.NewMemoryStore()
		return nil
	}

	db, err := sql.Open("postgres", s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test connection; the database may still be starting
	err = retry.StartupPolicy.Do(ctx, db.PingContext, func(attempt int, err error) {
		s.logger.Warn("database not reachable yet, retrying", "attempt", attempt, "error", err)
	})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if s.cfg.AutoMigrate {
		if err := migrations.Up(ctx, db); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		s.logger.Info("database migrations applied")
	}

	s.db = db
	s.store = projects.NewPostgresStore(db)
	s.logger.Info("using PostgreSQL storage", "url", maskDSN(s.cfg.DatabaseURL))
	return nil
}

// maskDSN hides password in connection string for logging
func maskDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "***"
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "***")
		}
	}
	return u.String()
}

// -----------------------------------------------------------------------------
// Middleware
// -----------------------------------------------------------------------------

func (s *Server) setupMiddleware() {
	// Request ID first so every later log line carries it
	s.router.Use(s.requestIDMiddleware())

	// Logging
	s.router.Use(s.loggingMiddleware())

	// Recovery with logging
	s.router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.L(c.Request.Context()).Error("panic recovered",
			"error", recovered,
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "An unexpected error occurred",
		})
	}))

	// Security headers
	s.router.Use(security.HeadersMiddleware())

	// CORS for the map frontend
	s.router.Use(security.CORSMiddleware(security.CORSOptions{
		AllowedOrigins:   s.cfg.CORSAllowedOrigins,
		AllowCredentials: s.cfg.CORSAllowCredentials,
	}))

	// Request size limit (1MB)
	s.router.Use(validation.RequestSizeMiddleware(validation.MaxRequestSize))

	// Rate limiting
	rlCfg := ratelimit.DefaultConfig()
	rlCfg.RequestsPerMinute = s.cfg.RateLimitRPM
	rlCfg.BurstSize = s.cfg.RateLimitBurst
	s.rateLimiter = ratelimit.New(rlCfg)
	s.router.Use(s.rateLimiter.Middleware())

	// Prometheus metrics
	s.router.Use(metrics.Middleware())
}

func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check for existing request ID (from load balancer, etc.)
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		// Add to context
		ctx := logging.WithRequestID(c.Request.Context(), requestID)
		ctx = logging.WithLogger(ctx, s.logger)
		c.Request = c.Request.WithContext(ctx)

		// Set response header
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger := logging.L(c.Request.Context())

		// Log level based on status code
		switch {
		case status >= 500:
			logger.Error("request completed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
				"client_ip", c.ClientIP(),
			)
		case status >= 400:
			logger.Warn("request completed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
			)
		default:
			logger.Info("request completed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
			)
		}
	}
}

// -----------------------------------------------------------------------------
// Routes
// -----------------------------------------------------------------------------

func (s *Server) setupRoutes() {
	// Health & metrics endpoints
	s.router.GET("/health", s.healthHandler)
	s.router.GET("/health/live", s.livenessHandler)
	s.router.GET("/health/ready", s.readinessHandler)
	s.router.GET("/metrics", metrics.Handler())

	// WebSocket for real-time streaming
	s.router.GET("/ws", func(c *gin.Context) {
		s.realtimeHub.HandleWebSocket(c.Writer, c.Request)
	})

	s.router.GET("/", s.rootHandler)
	s.router.POST("/upload-map", s.uploadMapHandler)

	api := s.router.Group("")
	scenario.NewHandler(s.catalog).RegisterRoutes(api)
	risk.NewHandler(&realtimeEventEmitter{hub: s.realtimeHub}).RegisterRoutes(api)
	projects.NewHandler(s.projects, report.NewRenderer(s.catalog)).RegisterRoutes(api)
}

// -----------------------------------------------------------------------------
// Handlers
// -----------------------------------------------------------------------------

// HealthResponse for health check endpoints
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Storage   string            `json:"storage"`
	Checks    map[string]string `json:"checks,omitempty"`
	Realtime  map[string]any    `json:"realtime,omitempty"`
	Timestamp string            `json:"timestamp"`
}

func (s *Server) healthHandler(c *gin.Context) {
	ok, statuses := s.health.CheckAll(c.Request.Context())

	checks := make(map[string]string, len(statuses))
	for _, st := range statuses {
		switch {
		case st.Healthy:
			checks[st.Name] = "healthy"
		case st.Detail != "":
			checks[st.Name] = "unhealthy: " + st.Detail
		default:
			checks[st.Name] = "unhealthy"
		}
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !ok {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthResponse{
		Status:    status,
		Version:   Version,
		Storage:   s.store.Backend(),
		Checks:    checks,
		Realtime:  s.realtimeHub.Stats(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) livenessHandler(c *gin.Context) {
	if !s.healthy.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (s *Server) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}

// uploadMapHandler accepts any body and always reports the sample map.
// Nothing is stored.
func (s *Server) uploadMapHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Harita dosyası başarıyla yüklendi (demo).",
		"map_id":  SampleMapID,
	})
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Run starts the HTTP server with graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	// Create a cancellable context for background goroutines so Shutdown() can stop them.
	runCtx, cancel := context.WithCancel(ctx)
	s.cancelRunCtx = cancel

	shutdownTracer, err := traces.Init(runCtx, s.cfg.OTLPEndpoint, Version, s.logger)
	if err != nil {
		s.logger.Warn("failed to initialize tracing", "error", err)
	} else {
		s.shutdownTracer = shutdownTracer
	}

	s.httpSrv = &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Channel to catch server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.logger.Info("starting server",
			"port", s.cfg.Port,
			"storage", s.store.Backend(),
		)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Start realtime hub
	go s.realtimeHub.Run(runCtx)

	// Sample connection pool stats
	if s.db != nil {
		go metrics.StartDBStatsCollector(runCtx, s.db, dbStatsInterval)
	}

	// Mark as ready after brief delay for startup
	go func() {
		time.Sleep(100 * time.Millisecond)
		s.ready.Store(true)
		s.logger.Info("server ready")
	}()

	// Wait for shutdown signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		cancel()
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		s.logger.Info("shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		s.logger.Info("context cancelled")
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	s.ready.Store(false)
	s.logger.Info("starting graceful shutdown")

	// Cancel the context for all background goroutines (hub, DB stats)
	if s.cancelRunCtx != nil {
		s.cancelRunCtx()
	}

	// Give load balancers time to stop sending traffic
	time.Sleep(s.drainDelay)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
		s.logger.Info("rate limiter stopped")
	}

	// Flush pending spans
	if s.shutdownTracer != nil {
		if err := s.shutdownTracer(ctx); err != nil {
			s.logger.Error("tracer shutdown error", "error", err)
		}
	}

	// Close database connection pool
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("database close error", "error", err)
		} else {
			s.logger.Info("database connection closed")
		}
	}

	s.logger.Info("server stopped")
	return nil
}

// Router returns the gin router for testing
func (s *Server) Router() *gin.Engine {
	return s.router
}

// -----------------------------------------------------------------------------
// Adapters
// -----------------------------------------------------------------------------

// realtimeEventEmitter adapts realtime.Hub to the project and risk emitters
type realtimeEventEmitter struct {
	hub *realtime.Hub
}

var (
	_ projects.EventEmitter = (*realtimeEventEmitter)(nil)
	_ risk.EventEmitter     = (*realtimeEventEmitter)(nil)
)

func (e *realtimeEventEmitter) EmitProjectCreated(p *projects.Project) {
	if e.hub == nil {
		return
	}
	e.hub.Broadcast(&realtime.Event{
		Type:     realtime.EventProjectCreated,
		Scenario: p.Scenario,
		Data:     p,
	})
}

func (e *realtimeEventEmitter) EmitRiskScored(in risk.Input, a risk.Assessment) {
	if e.hub == nil {
		return
	}
	e.hub.Broadcast(&realtime.Event{
		Type:     realtime.EventRiskScored,
		Scenario: in.Scenario,
		Data: map[string]any{
			"input":       in,
			"score":       a.Score,
			"level":       a.Level,
			"explanation": a.Explanation,
		},
	})
}
