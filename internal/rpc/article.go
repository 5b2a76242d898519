package rpc

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/article-feed/internal/newsportal"
)

//go:generate zenrpc

var (
	ErrNotFound = zenrpc.NewStringError(http.StatusNotFound, "article not found")
	ErrInternal = zenrpc.NewStringError(http.StatusInternalServerError, "internal error")
)

// ArticleService provides RPC methods for published articles.
type ArticleService struct {
	zenrpc.Service
	manager *newsportal.Manager
	logger  *slog.Logger
}

func NewArticleService(manager *newsportal.Manager, logger *slog.Logger) *ArticleService {
	return &ArticleService{manager: manager, logger: logger}
}

func (s *ArticleService) internal(ctx context.Context, method string, err error) error {
	s.logger.ErrorContext(ctx, "rpc call failed", "method", method, "error", err)
	return ErrInternal
}

// List returns a page of published articles ordered by publishedAt, priority and id (all DESC).
// A tag filter takes precedence over a category.
//
//zenrpc:filter listing filter
//zenrpc:return page of article summaries
//zenrpc:500 internal server error
func (s *ArticleService) List(ctx context.Context, filter ArticleFilter) (Page, error) {
	var tag, category string
	if filter.Tag != nil {
		tag = *filter.Tag
	}
	if filter.Category != nil {
		category = *filter.Category
	}
	page := 1
	if filter.Page != nil {
		page = *filter.Page
	}

	result, err := s.manager.Latest(ctx, page, tag, category)
	if err != nil {
		return Page{}, s.internal(ctx, RPC.ArticleService.List, err)
	}

	return NewPage(*result), nil
}

// Search returns a page of published articles whose title contains any term of the query.
//
//zenrpc:query search query, terms shorter than 2 characters are ignored
//zenrpc:page=1 page number (1-based)
//zenrpc:return page of article summaries
//zenrpc:500 internal server error
func (s *ArticleService) Search(ctx context.Context, query string, page *int) (Page, error) {
	n := 1
	if page != nil {
		n = *page
	}

	result, err := s.manager.Search(ctx, query, n)
	if err != nil {
		return Page{}, s.internal(ctx, RPC.ArticleService.Search, err)
	}

	return NewPage(*result), nil
}

// BySlug returns a published article with all of its relations.
//
//zenrpc:slug article slug
//zenrpc:return article with content, images, videos and comments
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *ArticleService) BySlug(ctx context.Context, slug string) (*Article, error) {
	article, err := s.manager.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, s.internal(ctx, RPC.ArticleService.BySlug, err)
	} else if article == nil {
		return nil, ErrNotFound
	}

	result := NewArticle(*article)
	return &result, nil
}

// Homepage returns the top story, latest and trending articles and the tag cloud.
//
//zenrpc:return homepage
//zenrpc:500 internal server error
func (s *ArticleService) Homepage(ctx context.Context) (Homepage, error) {
	home, err := s.manager.Homepage(ctx)
	if err != nil {
		return Homepage{}, s.internal(ctx, RPC.ArticleService.Homepage, err)
	}

	return NewHomepage(*home), nil
}

// Categories returns all categories ordered by name.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *ArticleService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, s.internal(ctx, RPC.ArticleService.Categories, err)
	}

	return NewCategories(categories), nil
}

// Tags returns all tags ordered by name.
//
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *ArticleService) Tags(ctx context.Context) (Tags, error) {
	tags, err := s.manager.Tags(ctx)
	if err != nil {
		return nil, s.internal(ctx, RPC.ArticleService.Tags, err)
	}

	return NewTags(tags), nil
}
