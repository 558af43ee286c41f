// @title           HTTP Playground API
// @version         1.0
// @description     An educational HTTP server: request echo, status codes, DNS lookups and a browser rendering demo.

// @contact.name   API Support
// @contact.email  info@bentech.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vit0-9/http_playground/config"
	_ "github.com/vit0-9/http_playground/docs"
	"github.com/vit0-9/http_playground/handlers"
	"github.com/vit0-9/http_playground/pkg/metrics"
	"github.com/vit0-9/http_playground/pkg/resolver"
	"github.com/vit0-9/http_playground/pkg/utils"
	"github.com/vit0-9/http_playground/web"
)

// App encapsulates all the components of the application
type App struct {
	Router *gin.Engine

	cfg       *config.Config
	logger    logrus.FieldLogger
	metrics   *metrics.Metrics
	resolver  *resolver.Service
	inspector *utils.IPInspector

	PlaygroundHandlers *handlers.HTTPPlaygroundHandlers
	NetIntelHandlers   *handlers.NetworkIntelligenceHandlers
	PageHandlers       *handlers.PageHandlers
	HealthHandler      *handlers.HealthHandler
}

// NewApp creates and initializes a new application instance
func NewApp(cfg *config.Config, logger logrus.FieldLogger) (*App, error) {
	backend, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}

	m, err := metrics.New()
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	svc := resolver.New(backend,
		resolver.WithMaxConcurrentLookups(cfg.MaxConcurrentLookups),
		resolver.WithObserver(m),
	)
	inspector := utils.NewIPInspector(cfg.MMDBCityPath, cfg.MMDBASNPath, logger)

	app := &App{
		cfg:                cfg,
		logger:             logger,
		metrics:            m,
		resolver:           svc,
		inspector:          inspector,
		PlaygroundHandlers: handlers.NewHTTPPlaygroundHandlers(cfg.EchoDelay),
		NetIntelHandlers:   handlers.NewNetworkIntelligenceHandlers(svc, inspector, cfg.LookupTimeout, logger),
		PageHandlers:       handlers.NewPageHandlers(),
		HealthHandler:      handlers.NewHealthHandler(svc.Backend()),
	}

	if err := app.setupRouter(); err != nil {
		inspector.Close()
		return nil, err
	}
	return app, nil
}

func newBackend(cfg *config.Config) (resolver.Backend, error) {
	switch cfg.Resolver {
	case resolver.SystemBackendName:
		return resolver.NewSystemBackend(), nil
	case resolver.ResolvConfBackendName:
		return resolver.NewResolvConfBackend(cfg.ResolvConf), nil
	default:
		return nil, fmt.Errorf("unsupported resolver backend %q", cfg.Resolver)
	}
}

// corsConfig returns nil when no origin is configured.
func corsConfig(origins []string) *cors.Config {
	if len(origins) == 0 {
		return nil
	}
	c := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       time.Hour,
	}
	if slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return &c
}

func (app *App) setupRouter() error {
	router := gin.New()
	// Client addresses come straight from the connection.
	if err := router.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	router.Use(
		gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
			app.logger.WithField("panic", recovered).Error("recovered from panic")
			c.AbortWithStatus(http.StatusInternalServerError)
		}),
		handlers.RequestLogger(app.logger),
		handlers.RequestMetrics(app.metrics),
	)
	if cc := corsConfig(app.cfg.CORSOrigins); cc != nil {
		if err := cc.Validate(); err != nil {
			return fmt.Errorf("invalid CORS configuration: %w", err)
		}
		router.Use(cors.New(*cc))
	}

	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(web.Static()))

	app.Router = router
	app.setupRoutes()
	return nil
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	app.Router.GET("/", app.PageHandlers.IndexHandler)
	app.Router.GET("/render-demo", app.PageHandlers.RenderDemoHandler)

	app.Router.GET("/echo", app.PlaygroundHandlers.EchoHandler)
	app.Router.POST("/echo", app.PlaygroundHandlers.EchoWithBodyHandler)
	app.Router.PUT("/echo", app.PlaygroundHandlers.EchoWithBodyHandler)
	app.Router.DELETE("/echo", app.PlaygroundHandlers.EchoHandler)
	app.Router.GET("/status/:code", app.PlaygroundHandlers.StatusCodeHandler)

	app.Router.GET("/dns-lookup", app.NetIntelHandlers.DNSLookupHandler)
	app.Router.POST("/dns-lookup", app.NetIntelHandlers.DNSLookupPostHandler)
	app.Router.GET("/ip-info", app.NetIntelHandlers.IPInfoHandler)

	app.Router.GET("/health", app.HealthHandler.HealthCheckHandler)
	app.Router.GET("/metrics", gin.WrapH(app.metrics.Handler()))

	// Absolute from the host, not affected by @BasePath.
	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// Start listens on the configured address and serves until ctx is done.
func (app *App) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.cfg.Addr, err)
	}
	return app.Serve(ctx, ln)
}

// Serve runs the HTTP server on ln. When ctx is done the server stops
// accepting connections and in-flight requests get ShutdownTimeout to finish.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.WithFields(logrus.Fields{
			"addr":     ln.Addr().String(),
			"resolver": app.resolver.Backend(),
		}).Info("HTTP playground server starting")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

// Close releases the GeoIP databases.
func (app *App) Close() {
	app.inspector.Close()
}
