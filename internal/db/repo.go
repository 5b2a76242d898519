package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Close()
	}

	return nil
}

// CountArticles returns the number of distinct articles matching the query.
func (r *Repository) CountArticles(ctx context.Context, aq ArticleQuery) (int, error) {
	if aq.MatchNone {
		return 0, nil
	}

	var count int
	err := aq.apply(r.db.ModelContext(ctx, (*Article)(nil))).
		ColumnExpr(`count(DISTINCT "t"."articleId")`).
		Select(pg.Scan(&count))
	if err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}

	return count, nil
}

// ArticleIDs returns ids of matching articles in contract order.
// Rows are grouped by article so joined filters never repeat an id.
func (r *Repository) ArticleIDs(ctx context.Context, aq ArticleQuery, limit, offset int) ([]int, error) {
	if aq.MatchNone {
		return []int{}, nil
	}

	var ids []int
	err := aq.apply(r.db.ModelContext(ctx, (*Article)(nil))).
		ColumnExpr(`"t"."articleId"`).
		GroupExpr(`"t"."articleId"`).
		OrderExpr(orderExpr).
		Limit(limit).
		Offset(offset).
		Select(&ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query article ids: %w", err)
	}

	return ids, nil
}

// ArticlesByIDs loads articles with the given relations.
// The result order is not guaranteed to follow ids.
func (r *Repository) ArticlesByIDs(ctx context.Context, ids []int, rels []Relation) ([]Article, error) {
	if len(ids) == 0 {
		return []Article{}, nil
	}

	var articles []Article
	err := withRelations(r.db.ModelContext(ctx, &articles), rels).
		Where(`"t"."articleId" IN (?)`, pg.In(ids)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query articles by ids: %w", err)
	}

	return articles, nil
}

// Articles is a single ordered listing query. Only to-one relations should be
// requested here, see ArticlesByIDs for to-many ones.
func (r *Repository) Articles(ctx context.Context, aq ArticleQuery, rels []Relation, limit, offset int) ([]Article, error) {
	if aq.MatchNone {
		return []Article{}, nil
	}

	var articles []Article
	err := withRelations(aq.apply(r.db.ModelContext(ctx, &articles)), rels).
		OrderExpr(orderExpr).
		Limit(limit).
		Offset(offset).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

// ArticleBySlug returns the article with every relation loaded, nil when it does not exist
// or is not published before the given time.
func (r *Repository) ArticleBySlug(ctx context.Context, slug string, publishedBefore *time.Time) (*Article, error) {
	article := &Article{}
	query := withRelations(r.db.ModelContext(ctx, article), AllRelations).
		Where(`"t"."slug" = ?`, slug)

	if publishedBefore != nil {
		query = query.Where(`"t"."publishedAt" <= ?`, *publishedBefore)
	}

	err := query.Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	return article, nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"t"."name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

func withRelations(q *orm.Query, rels []Relation) *orm.Query {
	for _, rel := range rels {
		switch rel {
		case RelTags:
			q = q.Relation(string(rel), func(q *orm.Query) (*orm.Query, error) {
				return q.OrderExpr(`"t"."name" ASC`), nil
			})
		case RelImages:
			q = q.Relation(string(rel), func(q *orm.Query) (*orm.Query, error) {
				return q.OrderExpr(`"t"."position" ASC, "t"."imageId" DESC`), nil
			})
		case RelVideos:
			q = q.Relation(string(rel), func(q *orm.Query) (*orm.Query, error) {
				return q.OrderExpr(`"t"."position" ASC, "t"."videoId" DESC`), nil
			})
		case RelComments:
			q = q.Relation(string(rel), func(q *orm.Query) (*orm.Query, error) {
				return q.OrderExpr(`"t"."publishedAt" DESC, "t"."commentId" DESC`), nil
			}).Relation(string(rel) + ".Author")
		default:
			q = q.Relation(string(rel))
		}
	}

	return q
}
