package rest

import (
	"strings"

	"github.com/gorilla/feeds"

	"github.com/daniilsolovey/article-feed/internal/newsportal"
)

type FeedConfig struct {
	Title       string
	Description string
	Author      string
	// BaseURL is the public site root used to build article links.
	BaseURL string
}

// NewFeed builds the RSS channel for articles. Links and guids point to BaseURL/articles/<slug>.
func NewFeed(cfg FeedConfig, articles newsportal.Articles) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       cfg.Title,
		Link:        &feeds.Link{Href: cfg.BaseURL},
		Description: cfg.Description,
		Items:       make([]*feeds.Item, 0, len(articles)),
	}
	if cfg.Author != "" {
		feed.Author = &feeds.Author{Name: cfg.Author}
	}
	if len(articles) > 0 {
		feed.Updated = articles[0].PublishedAt
	}

	for _, a := range articles {
		link := articleURL(cfg.BaseURL, a.Slug)
		item := &feeds.Item{
			Title:       a.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			IsPermaLink: "true",
			Description: a.Summary,
			Created:     a.PublishedAt,
		}
		if a.Author != nil {
			item.Author = &feeds.Author{Name: a.Author.Name}
		}
		feed.Items = append(feed.Items, item)
	}

	return feed
}

func articleURL(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/articles/" + slug
}
