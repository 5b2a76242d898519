package newsportal

import (
	"github.com/samber/lo"

	"github.com/daniilsolovey/article-feed/internal/db"
)

type (
	Articles   []Article
	Categories []Category
	Tags       []Tag
)

func NewArticles(list []db.Article) Articles {
	return lo.Map(list, func(a db.Article, _ int) Article { return NewArticle(a) })
}

func NewCategories(list []db.Category) Categories {
	return lo.Map(list, func(c db.Category, _ int) Category { return NewCategory(c) })
}

func NewTags(list []db.Tag) Tags {
	return lo.Map(list, func(t db.Tag, _ int) Tag { return NewTag(t) })
}

func (ll Articles) IDs() []int {
	return lo.Map(ll, func(a Article, _ int) int { return a.ID })
}

// Without returns the articles whose id differs from id, keeping order.
func (ll Articles) Without(id int) Articles {
	return lo.Filter(ll, func(a Article, _ int) bool { return a.ID != id })
}

// Head returns at most n leading articles.
func (ll Articles) Head(n int) Articles {
	if n < 0 {
		n = 0
	}
	if len(ll) > n {
		return ll[:n]
	}
	return ll
}

// orderByIDs sorts hydrated articles by the position of their id in ids.
// Articles missing from ids are dropped.
func orderByIDs(list []db.Article, ids []int) []db.Article {
	rank := make(map[int]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}

	ordered := make([]db.Article, len(ids))
	found := make([]bool, len(ids))
	for _, a := range list {
		if i, ok := rank[a.ID]; ok {
			ordered[i] = a
			found[i] = true
		}
	}

	return lo.Filter(ordered, func(_ db.Article, i int) bool { return found[i] })
}
