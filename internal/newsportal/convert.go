package newsportal

import "github.com/daniilsolovey/article-feed/internal/db"

func NewArticle(a db.Article) Article {
	return Article{Article: a}
}

func NewCategory(c db.Category) Category {
	return Category{Category: c}
}

func NewTag(t db.Tag) Tag {
	return Tag{Tag: t}
}
