package newsportal

import (
	"time"

	"github.com/daniilsolovey/article-feed/internal/db"
)

// QueryComposer turns listing filters into a storage predicate.
// Listing, search and feed paths all go through Compose so they share
// visibility and ordering.
type QueryComposer struct {
	CaseSensitive bool
	Now           func() time.Time
}

func (c QueryComposer) Compose(f Filter) db.ArticleQuery {
	var q db.ArticleQuery

	if f.Search && len(f.SearchTerms) == 0 {
		q.MatchNone = true
		return q
	}

	if f.Tag != "" {
		tag := f.Tag
		q.TagName = &tag
	}

	if f.Category != "" {
		category := f.Category
		q.CategorySlug = &category
	}

	if f.VisibleOnly {
		now := c.now()
		q.PublishedBefore = &now
	}

	q.TitleTerms = f.SearchTerms
	q.CaseSensitive = c.CaseSensitive
	q.TopStoryOnly = f.TopStoryOnly

	return q
}

func (c QueryComposer) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
