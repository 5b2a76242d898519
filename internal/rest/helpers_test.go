package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/article-feed/internal/cache"
	"github.com/daniilsolovey/article-feed/internal/db"
	"github.com/daniilsolovey/article-feed/internal/newsportal"
)

var testFeed = FeedConfig{
	Title:       "Article Feed",
	Description: "Latest articles",
	Author:      "Newsroom",
	BaseURL:     "https://example.com/",
}

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// fakeStorage serves fixed articles ordered most recent first.
type fakeStorage struct {
	articles   []db.Article
	categories []db.Category
	tags       []db.Tag
	err        error
}

func (s *fakeStorage) match(q db.ArticleQuery) []db.Article {
	if q.MatchNone {
		return nil
	}

	var result []db.Article
	for _, a := range s.articles {
		if q.PublishedBefore != nil && a.PublishedAt.After(*q.PublishedBefore) {
			continue
		}
		if q.TopStoryOnly && !a.IsTopStory {
			continue
		}
		if q.CategorySlug != nil && (a.Category == nil || a.Category.Slug != *q.CategorySlug) {
			continue
		}
		if q.TagName != nil && !hasTag(a, *q.TagName) {
			continue
		}
		if len(q.TitleTerms) > 0 && !titleContainsAny(a.Title, q.TitleTerms) {
			continue
		}
		result = append(result, a)
	}

	return result
}

func (s *fakeStorage) CountArticles(_ context.Context, q db.ArticleQuery) (int, error) {
	return len(s.match(q)), s.err
}

func (s *fakeStorage) ArticleIDs(_ context.Context, q db.ArticleQuery, limit, offset int) ([]int, error) {
	ids := []int{}
	for _, a := range window(s.match(q), limit, offset) {
		ids = append(ids, a.ID)
	}
	return ids, s.err
}

func (s *fakeStorage) ArticlesByIDs(_ context.Context, ids []int, _ []db.Relation) ([]db.Article, error) {
	var result []db.Article
	for _, a := range s.articles {
		for _, id := range ids {
			if a.ID == id {
				result = append(result, a)
			}
		}
	}
	return result, s.err
}

func (s *fakeStorage) Articles(_ context.Context, q db.ArticleQuery, _ []db.Relation, limit, offset int) ([]db.Article, error) {
	return window(s.match(q), limit, offset), s.err
}

func (s *fakeStorage) ArticleBySlug(_ context.Context, slug string, publishedBefore *time.Time) (*db.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.articles {
		if a.Slug == slug && !a.PublishedAt.After(*publishedBefore) {
			article := a
			return &article, nil
		}
	}
	return nil, nil
}

func (s *fakeStorage) Categories(context.Context) ([]db.Category, error) {
	return s.categories, s.err
}

func (s *fakeStorage) Tags(context.Context) ([]db.Tag, error) {
	return s.tags, s.err
}

func window(list []db.Article, limit, offset int) []db.Article {
	if offset >= len(list) {
		return []db.Article{}
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

func hasTag(a db.Article, name string) bool {
	for _, t := range a.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

func titleContainsAny(title string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(strings.ToLower(title), strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func testStorage() *fakeStorage {
	now := time.Now()
	sports := &db.Category{ID: 1, Name: "Sports", Slug: "sports"}
	economy := &db.Category{ID: 2, Name: "Economy", Slug: "economy"}
	author := &db.Author{ID: 1, Name: "Jane Smith", Email: "jane@example.com"}
	caption := "Cover"

	return &fakeStorage{
		articles: []db.Article{
			{
				ID: 4, CategoryID: 1, Title: "Embargoed final", Slug: "embargoed-final",
				PublishedAt: now.Add(time.Hour), Category: sports,
			},
			{
				ID: 1, CategoryID: 1, Title: "Cup final tonight", Slug: "cup-final-tonight", Summary: "Preview",
				PublishedAt: now.Add(-time.Hour), Category: sports, Author: author,
				Tags:   []db.Tag{{ID: 2, Name: "football"}},
				Images: []db.ArticleImage{{ID: 1, ImageName: "cover.jpg", Caption: &caption}},
				Comments: []db.Comment{
					{ID: 1, Content: "First!", PublishedAt: now, Author: author},
				},
			},
			{
				ID: 2, CategoryID: 2, Title: "Markets rally", Slug: "markets-rally", Summary: "Stocks up",
				PublishedAt: now.Add(-2 * time.Hour), Category: economy, IsTopStory: true,
				Tags: []db.Tag{{ID: 1, Name: "economy"}},
			},
			{
				ID: 3, CategoryID: 2, Title: "Rates hold steady", Slug: "rates-hold-steady", Summary: "Central bank",
				PublishedAt: now.Add(-3 * time.Hour), Category: economy,
			},
		},
		categories: []db.Category{*economy, *sports},
		tags:       []db.Tag{{ID: 1, Name: "economy"}, {ID: 2, Name: "football"}},
	}
}

func newTestRouter(store newsportal.Storage) *echo.Echo {
	manager := newsportal.NewManager(store, cache.New("test", 0), newsportal.DefaultSettings(), noOpLogger())
	return NewArticleHandler(manager, testFeed, noOpLogger()).RegisterRoutes(nil)
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
