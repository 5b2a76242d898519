package rest

import "time"

type Category struct {
	CategoryID  int     `json:"categoryId"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
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
	ImageSize *int    `json:"imageSize,omitempty"`
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

// Article is the listing representation of an article, without its body.
type Article struct {
	ArticleID   int       `json:"articleId"`
	CategoryID  int       `json:"categoryId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Summary     string    `json:"summary"`
	PublishedAt time.Time `json:"publishedAt"`
	Priority    int       `json:"priority"`
	IsTopStory  bool      `json:"isTopStory"`
	Category    *Category `json:"category,omitempty"`
	Author      *Author   `json:"author,omitempty"`
	Tags        []Tag     `json:"tags"`
}

type ArticleDetail struct {
	Article
	Lead     *string   `json:"lead,omitempty"`
	Content  string    `json:"content"`
	Images   []Image   `json:"images"`
	Videos   []Video   `json:"videos"`
	Comments []Comment `json:"comments"`
}

type Page struct {
	Items       []Article `json:"items"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	TotalItems  int       `json:"totalItems"`
	PageSize    int       `json:"pageSize"`
	HasPrevious bool      `json:"hasPrevious"`
	HasNext     bool      `json:"hasNext"`
}

type Homepage struct {
	TopStory *Article  `json:"topStory"`
	Latest   []Article `json:"latest"`
	Trending []Article `json:"trending"`
	Tags     []Tag     `json:"tags"`
}

// ListingRequest is decoded from the query string of listing endpoints.
type ListingRequest struct {
	Tag      string
	Category string
	Page     int
}

type SearchRequest struct {
	Q    string
	Page int
}
