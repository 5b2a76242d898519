package rpc

import (
	"time"
)

type ArticleFilter struct {
	//tag optional tag name, takes precedence over category
	Tag *string `json:"tag,omitempty"`
	//category optional category slug
	Category *string `json:"category,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
}

type Category struct {
	CategoryID int    `json:"categoryId"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

type Tag struct {
	TagID int    `json:"tagId"`
	Name  string `json:"name"`
}

type Author struct {
	AuthorID int    `json:"authorId"`
	Name     string `json:"name"`
}

type Image struct {
	ImageID   int     `json:"imageId"`
	ImageName string  `json:"imageName"`
	Caption   *string `json:"caption,omitempty"`
	Position  int     `json:"position"`
}

type Video struct {
	VideoID  int     `json:"videoId"`
	URL      string  `json:"url"`
	Caption  *string `json:"caption,omitempty"`
	Position int     `json:"position"`
}

type Comment struct {
	CommentID   int       `json:"commentId"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
	Author      *Author   `json:"author,omitempty"`
}

type ArticleSummary struct {
	ArticleID   int       `json:"articleId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Summary     string    `json:"summary"`
	PublishedAt time.Time `json:"publishedAt"`
	IsTopStory  bool      `json:"isTopStory"`
	Category    *Category `json:"category,omitempty"`
	Author      *Author   `json:"author,omitempty"`
	Tags        Tags      `json:"tags"`
}

type Article struct {
	ArticleSummary
	Lead     *string   `json:"lead,omitempty"`
	Content  string    `json:"content"`
	Images   []Image   `json:"images"`
	Videos   []Video   `json:"videos"`
	Comments []Comment `json:"comments"`
}

type Page struct {
	Items       ArticleSummaries `json:"items"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
	TotalItems  int              `json:"totalItems"`
	HasPrevious bool             `json:"hasPrevious"`
	HasNext     bool             `json:"hasNext"`
}

type Homepage struct {
	TopStory *ArticleSummary  `json:"topStory"`
	Latest   ArticleSummaries `json:"latest"`
	Trending ArticleSummaries `json:"trending"`
	Tags     Tags             `json:"tags"`
}
