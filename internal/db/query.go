package db

import (
	"strings"
	"time"

	"github.com/go-pg/pg/v10/orm"
)

// Relation names an eager-loadable relation of Article.
type Relation string

const (
	RelCategory Relation = "Category"
	RelAuthor   Relation = "Author"
	RelTags     Relation = "Tags"
	RelImages   Relation = "Images"
	RelVideos   Relation = "Videos"
	RelComments Relation = "Comments"
)

// AllRelations is the full join graph of an article page.
var AllRelations = []Relation{RelCategory, RelAuthor, RelTags, RelImages, RelVideos, RelComments}

// ToMany reports whether loading the relation can yield several rows per article.
func (r Relation) ToMany() bool {
	switch r {
	case RelTags, RelImages, RelVideos, RelComments:
		return true
	}
	return false
}

// HasToMany reports whether any of rels is a one-to-many relation.
func HasToMany(rels []Relation) bool {
	for _, r := range rels {
		if r.ToMany() {
			return true
		}
	}
	return false
}

// ArticleQuery is the predicate shared by count, id, hydrate and listing queries.
// Filters are combined with AND, TitleTerms with OR.
type ArticleQuery struct {
	TagName         *string
	CategorySlug    *string
	TitleTerms      []string
	CaseSensitive   bool
	PublishedBefore *time.Time
	TopStoryOnly    bool

	// MatchNone makes the predicate match no rows at all.
	MatchNone bool
}

// orderExpr is the contract ordering of every public listing.
const orderExpr = `"t"."publishedAt" DESC, "t"."priority" DESC, "t"."articleId" DESC`

func (aq ArticleQuery) apply(q *orm.Query) *orm.Query {
	if aq.PublishedBefore != nil {
		q = q.Where(`"t"."publishedAt" <= ?`, *aq.PublishedBefore)
	}

	if aq.CategorySlug != nil {
		q = q.Where(`"t"."categoryId" IN (SELECT "categoryId" FROM "categories" WHERE "slug" = ?)`, *aq.CategorySlug)
	}

	if aq.TagName != nil {
		q = q.Where(`EXISTS (SELECT 1 FROM "article_tags" AS "at"
			JOIN "tags" AS "tag" ON "tag"."tagId" = "at"."tagId"
			WHERE "at"."articleId" = "t"."articleId" AND "tag"."name" = ?)`, *aq.TagName)
	}

	if aq.TopStoryOnly {
		q = q.Where(`"t"."isTopStory" = TRUE`)
	}

	if len(aq.TitleTerms) > 0 {
		op := "ILIKE"
		if aq.CaseSensitive {
			op = "LIKE"
		}

		q = q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			for _, term := range aq.TitleTerms {
				q = q.WhereOr(`"t"."title" `+op+` ?`, "%"+escapeLike(term)+"%")
			}
			return q, nil
		})
	}

	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
