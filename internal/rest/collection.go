package rest

import "github.com/daniilsolovey/article-feed/internal/newsportal"

// Map converts every element of list, always returning a non-nil slice.
func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewArticles(in newsportal.Articles) []Article {
	return Map(in, NewArticle)
}

func NewCategories(in newsportal.Categories) []Category {
	return Map(in, NewCategory)
}

func NewTags(in newsportal.Tags) []Tag {
	return Map(in, NewTag)
}
