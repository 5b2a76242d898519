package newsportal

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/daniilsolovey/article-feed/internal/cache"
	"github.com/daniilsolovey/article-feed/internal/db"
)

var baseTime = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// stubStorage is a manual stub implementation of Storage
type stubStorage struct {
	countArticlesFunc func(ctx context.Context, q db.ArticleQuery) (int, error)
	articleIDsFunc    func(ctx context.Context, q db.ArticleQuery, limit, offset int) ([]int, error)
	articlesByIDsFunc func(ctx context.Context, ids []int, rels []db.Relation) ([]db.Article, error)
	articlesFunc      func(ctx context.Context, q db.ArticleQuery, rels []db.Relation, limit, offset int) ([]db.Article, error)
	articleBySlugFunc func(ctx context.Context, slug string, publishedBefore *time.Time) (*db.Article, error)
	categoriesFunc    func(ctx context.Context) ([]db.Category, error)
	tagsFunc          func(ctx context.Context) ([]db.Tag, error)
}

func (s *stubStorage) CountArticles(ctx context.Context, q db.ArticleQuery) (int, error) {
	if s.countArticlesFunc != nil {
		return s.countArticlesFunc(ctx, q)
	}
	return 0, nil
}

func (s *stubStorage) ArticleIDs(ctx context.Context, q db.ArticleQuery, limit, offset int) ([]int, error) {
	if s.articleIDsFunc != nil {
		return s.articleIDsFunc(ctx, q, limit, offset)
	}
	return nil, nil
}

func (s *stubStorage) ArticlesByIDs(ctx context.Context, ids []int, rels []db.Relation) ([]db.Article, error) {
	if s.articlesByIDsFunc != nil {
		return s.articlesByIDsFunc(ctx, ids, rels)
	}
	return nil, nil
}

func (s *stubStorage) Articles(ctx context.Context, q db.ArticleQuery, rels []db.Relation, limit, offset int) ([]db.Article, error) {
	if s.articlesFunc != nil {
		return s.articlesFunc(ctx, q, rels, limit, offset)
	}
	return nil, nil
}

func (s *stubStorage) ArticleBySlug(ctx context.Context, slug string, publishedBefore *time.Time) (*db.Article, error) {
	if s.articleBySlugFunc != nil {
		return s.articleBySlugFunc(ctx, slug, publishedBefore)
	}
	return nil, nil
}

func (s *stubStorage) Categories(ctx context.Context) ([]db.Category, error) {
	if s.categoriesFunc != nil {
		return s.categoriesFunc(ctx)
	}
	return nil, nil
}

func (s *stubStorage) Tags(ctx context.Context) ([]db.Tag, error) {
	if s.tagsFunc != nil {
		return s.tagsFunc(ctx)
	}
	return nil, nil
}

// memStorage evaluates ArticleQuery in memory. Like a naive SQL join, Articles
// emits one row per tag when tags are requested, and ArticlesByIDs returns rows in
// reverse id order.
type memStorage struct {
	articles []db.Article
	tags     []db.Tag
	calls    map[string]int
}

func newMemStorage(articles ...db.Article) *memStorage {
	return &memStorage{articles: articles, calls: map[string]int{}}
}

func (s *memStorage) match(q db.ArticleQuery) []db.Article {
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
		if len(q.TitleTerms) > 0 && !titleMatches(a.Title, q.TitleTerms, q.CaseSensitive) {
			continue
		}
		result = append(result, a)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.PublishedAt.Equal(b.PublishedAt) {
			return a.PublishedAt.After(b.PublishedAt)
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.ID > b.ID
	})

	return result
}

func (s *memStorage) CountArticles(_ context.Context, q db.ArticleQuery) (int, error) {
	s.calls["CountArticles"]++
	return len(s.match(q)), nil
}

func (s *memStorage) ArticleIDs(_ context.Context, q db.ArticleQuery, limit, offset int) ([]int, error) {
	s.calls["ArticleIDs"]++
	ids := []int{}
	for _, a := range window(s.match(q), limit, offset) {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func (s *memStorage) ArticlesByIDs(_ context.Context, ids []int, _ []db.Relation) ([]db.Article, error) {
	s.calls["ArticlesByIDs"]++
	wanted := map[int]bool{}
	for _, id := range ids {
		wanted[id] = true
	}

	var result []db.Article
	for i := len(s.articles) - 1; i >= 0; i-- {
		if wanted[s.articles[i].ID] {
			result = append(result, s.articles[i])
		}
	}
	return result, nil
}

func (s *memStorage) Articles(_ context.Context, q db.ArticleQuery, rels []db.Relation, limit, offset int) ([]db.Article, error) {
	s.calls["Articles"]++
	rows := s.match(q)

	for _, rel := range rels {
		if rel != db.RelTags {
			continue
		}
		var joined []db.Article
		for _, a := range rows {
			joined = append(joined, a)
			for i := 1; i < len(a.Tags); i++ {
				joined = append(joined, a)
			}
		}
		rows = joined
	}

	return window(rows, limit, offset), nil
}

func (s *memStorage) ArticleBySlug(_ context.Context, slug string, publishedBefore *time.Time) (*db.Article, error) {
	for _, a := range s.articles {
		if a.Slug == slug && (publishedBefore == nil || !a.PublishedAt.After(*publishedBefore)) {
			article := a
			return &article, nil
		}
	}
	return nil, nil
}

func (s *memStorage) Categories(_ context.Context) ([]db.Category, error) {
	return nil, nil
}

func (s *memStorage) Tags(_ context.Context) ([]db.Tag, error) {
	s.calls["Tags"]++
	return s.tags, nil
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

func titleMatches(title string, terms []string, caseSensitive bool) bool {
	for _, term := range terms {
		if caseSensitive && strings.Contains(title, term) {
			return true
		}
		if !caseSensitive && strings.Contains(strings.ToLower(title), strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// testArticle builds an article published hoursAgo hours before baseTime.
func testArticle(id int, title string, hoursAgo int) db.Article {
	return db.Article{
		ID:          id,
		CategoryID:  1,
		Title:       title,
		Slug:        strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		PublishedAt: baseTime.Add(-time.Duration(hoursAgo) * time.Hour),
		Category:    &db.Category{ID: 1, Name: "International", Slug: "international"},
	}
}

func newTestManager(store Storage) *Manager {
	m := NewManager(store, cache.New("test", 0), DefaultSettings(), noOpLogger())
	m.composer.Now = func() time.Time { return baseTime }
	return m
}
