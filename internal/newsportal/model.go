package newsportal

import (
	"github.com/daniilsolovey/article-feed/internal/db"
)

type Article struct {
	db.Article
}

type Category struct {
	db.Category
}

type Tag struct {
	db.Tag
}

// Page is one page of a paginated article listing.
type Page struct {
	Items       Articles
	CurrentPage int
	TotalPages  int
	TotalItems  int
	PageSize    int
	HasPrevious bool
	HasNext     bool
}

// Homepage is the aggregated homepage view model.
type Homepage struct {
	TopStory *Article
	Latest   Articles
	Trending Articles
	Tags     Tags
}

// Filter is the set of listing filters handed to the query composer.
type Filter struct {
	Tag         string
	Category    string
	SearchTerms []string
	// Search marks a search listing: no terms means no results.
	Search       bool
	VisibleOnly  bool
	TopStoryOnly bool
}

type Settings struct {
	PageSize        int
	DefaultCategory string
	CaseSensitive   bool

	RawSize      int
	LatestSize   int
	TrendingSize int
}

func DefaultSettings() Settings {
	return Settings{
		PageSize:     10,
		RawSize:      15,
		LatestSize:   10,
		TrendingSize: 3,
	}
}
