package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"

	"github.com/daniilsolovey/article-feed/internal/metrics"
)

const (
	apiV1Prefix = "/api/v1"

	healthPath      = "/health"
	rssPath         = "/rss.xml"
	rpcPath         = "/v1/rpc/"
	metricsPath     = "/metrics"
	swaggerDocPath  = "/swagger/doc.json"
	contentTypeJSON = "application/json"
)

// RegisterRoutes builds the echo router with REST, RSS, RPC, metrics and swagger endpoints.
func (h *ArticleHandler) RegisterRoutes(rpcHandler http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(h.requestLogger())
	e.Use(metricsMiddleware)

	e.GET(healthPath, h.Health)
	e.GET(rssPath, h.RSS)

	api := e.Group(apiV1Prefix)
	api.GET("/articles", h.Articles)
	api.GET("/articles/page/:page", h.ArticlesPage)
	api.GET("/articles/:slug", h.ArticleBySlug)
	api.GET("/search", h.Search)
	api.GET("/homepage", h.Homepage)
	api.GET("/categories", h.Categories)
	api.GET("/tags", h.Tags)

	if rpcHandler != nil {
		e.Any(rpcPath, echo.WrapHandler(rpcHandler))
	}
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET(swaggerDocPath, h.swaggerDoc)

	return e
}

func (h *ArticleHandler) swaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "swagger doc is not registered")
	}

	return c.Blob(http.StatusOK, contentTypeJSON, []byte(doc))
}

func (h *ArticleHandler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				h.log.ErrorContext(c.Request().Context(), "HTTP request", append(attrs, "error", v.Error)...)
				return nil
			}

			h.log.InfoContext(c.Request().Context(), "HTTP request", attrs...)
			return nil
		},
	})
}

func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request().Method, path, status, time.Since(start))

		return err
	}
}
