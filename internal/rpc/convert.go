package rpc

import (
	"github.com/daniilsolovey/article-feed/internal/db"
	"github.com/daniilsolovey/article-feed/internal/newsportal"
)

func NewArticleSummary(a newsportal.Article) ArticleSummary {
	summary := ArticleSummary{
		ArticleID:   a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Summary:     a.Summary,
		PublishedAt: a.PublishedAt,
		IsTopStory:  a.IsTopStory,
		Author:      newAuthor(a.Author),
		Tags:        NewTags(newsportal.NewTags(a.Tags)),
	}

	if a.Category != nil {
		category := NewCategory(newsportal.NewCategory(*a.Category))
		summary.Category = &category
	}

	return summary
}

func NewArticle(a newsportal.Article) Article {
	article := Article{
		ArticleSummary: NewArticleSummary(a),
		Lead:           a.Lead,
		Content:        a.Content,
		Images:         make([]Image, 0, len(a.Images)),
		Videos:         make([]Video, 0, len(a.Videos)),
		Comments:       make([]Comment, 0, len(a.Comments)),
	}

	for _, i := range a.Images {
		article.Images = append(article.Images, Image{ImageID: i.ID, ImageName: i.ImageName, Caption: i.Caption, Position: i.Position})
	}
	for _, v := range a.Videos {
		article.Videos = append(article.Videos, Video{VideoID: v.ID, URL: v.URL, Caption: v.Caption, Position: v.Position})
	}
	for _, c := range a.Comments {
		article.Comments = append(article.Comments, Comment{
			CommentID:   c.ID,
			Content:     c.Content,
			PublishedAt: c.PublishedAt,
			Author:      newAuthor(c.Author),
		})
	}

	return article
}

func NewPage(p newsportal.Page) Page {
	return Page{
		Items:       NewArticleSummaries(p.Items),
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
	}
}

func NewHomepage(h newsportal.Homepage) Homepage {
	home := Homepage{
		Latest:   NewArticleSummaries(h.Latest),
		Trending: NewArticleSummaries(h.Trending),
		Tags:     NewTags(h.Tags),
	}

	if h.TopStory != nil {
		top := NewArticleSummary(*h.TopStory)
		home.TopStory = &top
	}

	return home
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		CategoryID: c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
	}
}

func NewTag(t newsportal.Tag) Tag {
	return Tag{
		TagID: t.ID,
		Name:  t.Name,
	}
}

func newAuthor(a *db.Author) *Author {
	if a == nil {
		return nil
	}

	return &Author{AuthorID: a.ID, Name: a.Name}
}
