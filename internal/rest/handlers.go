package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/article-feed/internal/newsportal"
)

const (
	cacheControlHeader = "Cache-Control"
	sharedCacheControl = "public, s-maxage=10"
)

type ArticleHandler struct {
	manager *newsportal.Manager
	feed    FeedConfig
	log     *slog.Logger
}

func NewArticleHandler(manager *newsportal.Manager, feed FeedConfig, log *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		manager: manager,
		feed:    feed,
		log:     log,
	}
}

func (h *ArticleHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.ErrorContext(c.Request().Context(), "handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *ArticleHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Articles handles GET /api/v1/articles
// @Summary Get article listing
// @Description Returns a page of published articles ordered by publishedAt, priority and id (all DESC). A tag filter takes precedence over a category.
// @Tags articles
// @Produce json
// @Param tag query string false "Filter by tag name"
// @Param category query string false "Filter by category slug"
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.Page
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/articles [get]
func (h *ArticleHandler) Articles(c echo.Context) error {
	var req ListingRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	return h.listing(c, req)
}

// ArticlesPage handles GET /api/v1/articles/page/:page
// @Summary Get article listing page
// @Tags articles
// @Produce json
// @Param page path int true "Page number"
// @Param tag query string false "Filter by tag name"
// @Param category query string false "Filter by category slug"
// @Success 200 {object} rest.Page
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/articles/page/{page} [get]
func (h *ArticleHandler) ArticlesPage(c echo.Context) error {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid page")
	}

	var req ListingRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	req.Page = page

	return h.listing(c, req)
}

func (h *ArticleHandler) listing(c echo.Context, req ListingRequest) error {
	page, err := h.manager.Latest(c.Request().Context(), req.Page, req.Tag, req.Category)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	c.Response().Header().Set(cacheControlHeader, sharedCacheControl)
	return c.JSON(http.StatusOK, NewPage(*page))
}

// ArticleBySlug handles GET /api/v1/articles/:slug
// @Summary Get article by slug
// @Description Returns a published article with category, author, tags, images, videos and comments
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} rest.ArticleDetail
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/articles/{slug} [get]
func (h *ArticleHandler) ArticleBySlug(c echo.Context) error {
	article, err := h.manager.ArticleBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
	}

	return c.JSON(http.StatusOK, NewArticleDetail(*article))
}

// Search handles GET /api/v1/search
// @Summary Search articles by title
// @Description Splits q on whitespace, drops terms shorter than 2 characters and returns articles whose title contains any remaining term
// @Tags articles
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.Page
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/search [get]
func (h *ArticleHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.manager.Search(c.Request().Context(), req.Q, req.Page)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	c.Response().Header().Set(cacheControlHeader, sharedCacheControl)
	return c.JSON(http.StatusOK, NewPage(*page))
}

// Homepage handles GET /api/v1/homepage
// @Summary Get homepage
// @Description Returns the top story, latest and trending articles and the tag cloud
// @Tags articles
// @Produce json
// @Success 200 {object} rest.Homepage
// @Failure 500 {object} map[string]string
// @Router /api/v1/homepage [get]
func (h *ArticleHandler) Homepage(c echo.Context) error {
	home, err := h.manager.Homepage(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	c.Response().Header().Set(cacheControlHeader, sharedCacheControl)
	return c.JSON(http.StatusOK, NewHomepage(*home))
}

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Description Retrieves all categories ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *ArticleHandler) Categories(c echo.Context) error {
	categories, err := h.manager.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// Tags handles GET /api/v1/tags
// @Summary Get all tags
// @Description Retrieves all tags ordered by name
// @Tags tags
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} map[string]string
// @Router /api/v1/tags [get]
func (h *ArticleHandler) Tags(c echo.Context) error {
	tags, err := h.manager.Tags(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewTags(tags))
}

// RSS handles GET /rss.xml
// @Summary RSS feed
// @Description RSS 2.0 feed of the first page of the public listing
// @Tags feed
// @Produce xml
// @Success 200 {string} string
// @Failure 500 {object} map[string]string
// @Router /rss.xml [get]
func (h *ArticleHandler) RSS(c echo.Context) error {
	articles, err := h.manager.Feed(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	rss, err := NewFeed(h.feed, articles).ToRss()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	c.Response().Header().Set(cacheControlHeader, sharedCacheControl)
	return c.Blob(http.StatusOK, "application/rss+xml; charset=UTF-8", []byte(rss))
}
