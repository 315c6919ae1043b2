package router

import (
	"net/http"

	docs "github.com/budget-planner/backend/api"
	"github.com/budget-planner/backend/internal/config"
	"github.com/budget-planner/backend/internal/controllers"
	"github.com/budget-planner/backend/internal/httperrors"
	"github.com/budget-planner/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Overridden with -ldflags "-X github.com/budget-planner/backend/internal/router.version=..."
var version = "0.0.0"

// Config creates the engine with all middlewares and the /metrics endpoint.
//
// The teardown function unregisters the metrics. Call it before building
// another engine in the same process.
func Config(cfg *config.Config) (*gin.Engine, func(), error) {
	teardown := func() {
		unregisterPrometheusMetrics()
	}

	url, err := cfg.BaseURL()
	if err != nil {
		return nil, teardown, err
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, teardown, err
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()

	// Client IPs are never used, so neither forwarding headers
	// nor proxies are trusted
	r.ForwardedByClientIP = false
	_ = r.SetTrustedProxies([]string{})

	// Known paths with an unsupported method get a 405 instead of a 404
	r.HandleMethodNotAllowed = true

	r.Use(
		gin.Recovery(),
		requestid.New(),
		URLMiddleware(url),
		MetricsMiddleware(),
		requestLogger(),
	)

	r.NoMethod(func(c *gin.Context) {
		httperrors.New(c, http.StatusMethodNotAllowed, "This HTTP method is not allowed for the endpoint you called")
	})
	r.NoRoute(func(c *gin.Context) {
		httperrors.New(c, http.StatusNotFound, "There is no endpoint for the path you called")
	})

	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("origins", cfg.CORSAllowOrigins).Msg("CORS enabled")

		r.Use(cors.New(cors.Config{
			AllowOriginFunc: func(origin string) bool {
				return originAllowed(cfg.CORSAllowOrigins, origin)
			},
			AllowMethods:     []string{http.MethodOptions, http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Routes are listed in the docs, printing them on every start is noise
	gin.DebugPrintRouteFunc = func(string, string, string, int) {}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.Title = "Budget Planner"
	docs.SwaggerInfo.Description = "The backend for Budget Planner. Track expenses in your wallet and share budgets with others."
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path

	log.Info().Str("version", version).Str("url", url.String()).Msg("Router configured")

	return r, teardown, nil
}

// requestLogger logs each request with zerolog.
func requestLogger() gin.HandlerFunc {
	return logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		}),
	)
}

// originAllowed reports if the origin matches any of the glob patterns.
func originAllowed(patterns []string, origin string) bool {
	for _, pattern := range patterns {
		if glob.Glob(pattern, origin) {
			return true
		}
	}

	return false
}

// AttachRoutes registers all API routes on the group. The group is the
// path of the API URL, so the same routes can be served below any prefix.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup, cfg *config.Config) {
	group.OPTIONS("", httputil.OptionsGet)
	group.GET("", GetRoot)
	group.OPTIONS("/version", httputil.OptionsGet)
	group.GET("/version", GetVersion)
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	co.RegisterHealthzRoutes(group.Group("/healthz"))

	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	v1 := group.Group("/v1")
	v1.OPTIONS("", httputil.OptionsGet)
	v1.GET("", GetV1)

	co.RegisterUserRoutes(v1.Group("/user"))
	co.RegisterWalletRoutes(v1.Group("/wallet"))
	co.RegisterExpenseRoutes(v1.Group("/expense"))
	co.RegisterBudgetRoutes(v1.Group("/budget"))
	co.RegisterItemRoutes(v1.Group("/item"))
}
