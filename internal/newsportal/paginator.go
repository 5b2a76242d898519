package newsportal

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/article-feed/internal/db"
	"github.com/daniilsolovey/article-feed/internal/metrics"
)

// Paginator pages through articles matching a predicate.
//
// When a requested relation is one-to-many the page is built in two phases:
// ids of the page are selected first and only those ids are hydrated with
// relations, so joined rows can never change the page size or the total.
type Paginator struct {
	store    Storage
	pageSize int
}

func NewPaginator(store Storage, pageSize int) *Paginator {
	if pageSize < 1 {
		pageSize = DefaultSettings().PageSize
	}

	return &Paginator{
		store:    store,
		pageSize: pageSize,
	}
}

func (p *Paginator) PageSize() int {
	return p.pageSize
}

// Paginate returns the given 1-based page. Pages below 1 are clamped to 1,
// pages past the end are empty.
func (p *Paginator) Paginate(ctx context.Context, q db.ArticleQuery, page int, rels []db.Relation) (*Page, error) {
	if page < 1 {
		page = 1
	}

	total, err := p.store.CountArticles(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("db count articles: %w", err)
	}

	result := &Page{
		Items:       Articles{},
		CurrentPage: page,
		TotalItems:  total,
		TotalPages:  TotalPages(total, p.pageSize),
		PageSize:    p.pageSize,
		HasPrevious: page > 1,
	}
	result.HasNext = page < result.TotalPages

	if page > result.TotalPages {
		return result, nil
	}
	offset := (page - 1) * p.pageSize

	twoPhase := db.HasToMany(rels)
	metrics.RecordPageQuery(twoPhase)

	if !twoPhase {
		list, err := p.store.Articles(ctx, q, rels, p.pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("db get articles: %w", err)
		}

		result.Items = NewArticles(list)
		return result, nil
	}

	ids, err := p.store.ArticleIDs(ctx, q, p.pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("db get article ids: %w", err)
	}

	list, err := p.store.ArticlesByIDs(ctx, ids, rels)
	if err != nil {
		return nil, fmt.Errorf("db get articles by ids: %w", err)
	}

	result.Items = NewArticles(orderByIDs(list, ids))
	return result, nil
}

// TotalPages is ceil(total/pageSize), 0 for an empty listing.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
