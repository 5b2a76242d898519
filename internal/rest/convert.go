package rest

import (
	"github.com/daniilsolovey/article-feed/internal/db"
	"github.com/daniilsolovey/article-feed/internal/newsportal"
)

func NewArticle(a newsportal.Article) Article {
	article := Article{
		ArticleID:   a.ID,
		CategoryID:  a.CategoryID,
		Title:       a.Title,
		Slug:        a.Slug,
		Summary:     a.Summary,
		PublishedAt: a.PublishedAt,
		Priority:    a.Priority,
		IsTopStory:  a.IsTopStory,
		Author:      newAuthor(a.Author),
		Tags:        Map(a.Tags, newDBTag),
	}

	if a.Category != nil {
		c := NewCategory(newsportal.NewCategory(*a.Category))
		article.Category = &c
	}

	return article
}

func NewArticleDetail(a newsportal.Article) ArticleDetail {
	return ArticleDetail{
		Article:  NewArticle(a),
		Lead:     a.Lead,
		Content:  a.Content,
		Images:   Map(a.Images, newImage),
		Videos:   Map(a.Videos, newVideo),
		Comments: Map(a.Comments, newComment),
	}
}

func NewPage(p newsportal.Page) Page {
	return Page{
		Items:       NewArticles(p.Items),
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		PageSize:    p.PageSize,
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
	}
}

func NewHomepage(h newsportal.Homepage) Homepage {
	home := Homepage{
		Latest:   NewArticles(h.Latest),
		Trending: NewArticles(h.Trending),
		Tags:     NewTags(h.Tags),
	}

	if h.TopStory != nil {
		top := NewArticle(*h.TopStory)
		home.TopStory = &top
	}

	return home
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
	}
}

func NewTag(t newsportal.Tag) Tag {
	return Tag{
		TagID: t.ID,
		Name:  t.Name,
	}
}

func newDBTag(t db.Tag) Tag {
	return NewTag(newsportal.NewTag(t))
}

func newAuthor(a *db.Author) *Author {
	if a == nil {
		return nil
	}

	return &Author{
		AuthorID: a.ID,
		Name:     a.Name,
	}
}

func newImage(i db.ArticleImage) Image {
	return Image{
		ImageID:   i.ID,
		ImageName: i.ImageName,
		ImageSize: i.ImageSize,
		Caption:   i.Caption,
		Position:  i.Position,
	}
}

func newVideo(v db.ArticleVideo) Video {
	return Video{
		VideoID:  v.ID,
		URL:      v.URL,
		Caption:  v.Caption,
		Position: v.Position,
	}
}

func newComment(c db.Comment) Comment {
	return Comment{
		CommentID:   c.ID,
		Content:     c.Content,
		PublishedAt: c.PublishedAt,
		Author:      newAuthor(c.Author),
	}
}
