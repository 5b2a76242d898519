package newsportal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/daniilsolovey/article-feed/internal/cache"
	"github.com/daniilsolovey/article-feed/internal/db"
)

const (
	tagsCacheKey       = "tags"
	categoriesCacheKey = "categories"
)

// Storage is the article storage capability. It is implemented by *db.Repository.
type Storage interface {
	CountArticles(ctx context.Context, q db.ArticleQuery) (int, error)
	ArticleIDs(ctx context.Context, q db.ArticleQuery, limit, offset int) ([]int, error)
	ArticlesByIDs(ctx context.Context, ids []int, rels []db.Relation) ([]db.Article, error)
	Articles(ctx context.Context, q db.ArticleQuery, rels []db.Relation, limit, offset int) ([]db.Article, error)
	ArticleBySlug(ctx context.Context, slug string, publishedBefore *time.Time) (*db.Article, error)
	Categories(ctx context.Context) ([]db.Category, error)
	Tags(ctx context.Context) ([]db.Tag, error)
}

var (
	listingRelations  = []db.Relation{db.RelCategory, db.RelAuthor, db.RelTags}
	searchRelations   = []db.Relation{db.RelCategory, db.RelTags}
	homepageRelations = []db.Relation{db.RelCategory, db.RelAuthor}
)

type Manager struct {
	store     Storage
	cache     *cache.Cache
	composer  QueryComposer
	tokenizer Tokenizer
	paginator *Paginator
	settings  Settings
	logger    *slog.Logger
}

func NewManager(store Storage, c *cache.Cache, settings Settings, logger *slog.Logger) *Manager {
	defaults := DefaultSettings()
	if settings.PageSize < 1 {
		settings.PageSize = defaults.PageSize
	}
	if settings.RawSize < 1 {
		settings.RawSize = defaults.RawSize
	}
	if settings.LatestSize < 1 {
		settings.LatestSize = defaults.LatestSize
	}
	if settings.TrendingSize < 1 {
		settings.TrendingSize = defaults.TrendingSize
	}

	return &Manager{
		store:     store,
		cache:     c,
		composer:  QueryComposer{CaseSensitive: settings.CaseSensitive},
		tokenizer: Tokenizer{CaseSensitive: settings.CaseSensitive},
		paginator: NewPaginator(store, settings.PageSize),
		settings:  settings,
		logger:    logger,
	}
}

func (m *Manager) Settings() Settings {
	return m.settings
}

// Latest returns a page of the public listing. A tag filter takes precedence over
// a category; with neither set the configured default category applies.
func (m *Manager) Latest(ctx context.Context, page int, tag, category string) (*Page, error) {
	if tag != "" {
		category = ""
	} else if category == "" {
		category = m.settings.DefaultCategory
	}

	q := m.composer.Compose(Filter{Tag: tag, Category: category, VisibleOnly: true})

	result, err := m.paginator.Paginate(ctx, q, page, listingRelations)
	if err != nil {
		return nil, fmt.Errorf("db get latest articles: %w", err)
	}

	return result, nil
}

// Search returns a page of visible articles whose title contains any search term.
// Input without usable terms yields an empty page.
func (m *Manager) Search(ctx context.Context, raw string, page int) (*Page, error) {
	terms := m.tokenizer.Terms(raw)
	m.logger.DebugContext(ctx, "search", "query", raw, "terms", terms)

	q := m.composer.Compose(Filter{SearchTerms: terms, Search: true, VisibleOnly: true})

	result, err := m.paginator.Paginate(ctx, q, page, searchRelations)
	if err != nil {
		return nil, fmt.Errorf("db search articles: %w", err)
	}

	return result, nil
}

// SearchList returns at most one page of search results without count metadata.
func (m *Manager) SearchList(ctx context.Context, raw string) (Articles, error) {
	q := m.composer.Compose(Filter{SearchTerms: m.tokenizer.Terms(raw), Search: true, VisibleOnly: true})
	if q.MatchNone {
		return Articles{}, nil
	}

	list, err := m.store.Articles(ctx, q, []db.Relation{db.RelCategory}, m.settings.PageSize, 0)
	if err != nil {
		return nil, fmt.Errorf("db search articles: %w", err)
	}

	return NewArticles(list), nil
}

// ArticleBySlug returns a visible article with all relations or nil when absent.
func (m *Manager) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	now := m.composer.now()
	dbArticle, err := m.store.ArticleBySlug(ctx, slug, &now)
	if err != nil {
		return nil, fmt.Errorf("db get article by slug: %w", err)
	} else if dbArticle == nil {
		return nil, nil
	}

	article := NewArticle(*dbArticle)
	return &article, nil
}

// Feed returns the articles of the RSS feed: the first page of Latest without
// tag or category, so the default category applies when configured.
func (m *Manager) Feed(ctx context.Context) (Articles, error) {
	page, err := m.Latest(ctx, 1, "", "")
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

// Categories returns the category menu ordered by name.
func (m *Manager) Categories(ctx context.Context) (Categories, error) {
	return cache.Fetch(ctx, m.cache, categoriesCacheKey, func(ctx context.Context) (Categories, error) {
		list, err := m.store.Categories(ctx)
		if err != nil {
			return nil, fmt.Errorf("db get categories: %w", err)
		}
		return NewCategories(list), nil
	})
}

// Tags returns the tag cloud ordered by name.
func (m *Manager) Tags(ctx context.Context) (Tags, error) {
	return cache.Fetch(ctx, m.cache, tagsCacheKey, func(ctx context.Context) (Tags, error) {
		list, err := m.store.Tags(ctx)
		if err != nil {
			return nil, fmt.Errorf("db get tags: %w", err)
		}
		return NewTags(list), nil
	})
}

// InvalidateMenus drops the cached tag cloud and category menu.
func (m *Manager) InvalidateMenus() {
	m.cache.Invalidate(tagsCacheKey)
	m.cache.Invalidate(categoriesCacheKey)
}
