package newsportal

import (
	"context"
	"fmt"
)

// Homepage assembles the homepage: the top story, the latest articles without
// the top story, the trending subset and the tag cloud.
//
// The explicitly flagged top story wins; otherwise the most recent visible
// article is promoted. Trending is the head of Latest.
func (m *Manager) Homepage(ctx context.Context) (*Homepage, error) {
	visible := m.composer.Compose(Filter{VisibleOnly: true})

	flagged := visible
	flagged.TopStoryOnly = true

	explicit, err := m.store.Articles(ctx, flagged, homepageRelations, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("db get top story: %w", err)
	}

	list, err := m.store.Articles(ctx, visible, homepageRelations, m.settings.RawSize, 0)
	if err != nil {
		return nil, fmt.Errorf("db get recent articles: %w", err)
	}
	raw := NewArticles(list)

	var topStory *Article
	switch {
	case len(explicit) > 0:
		a := NewArticle(explicit[0])
		topStory = &a
	case len(raw) > 0:
		a := raw[0]
		topStory = &a
		m.logger.DebugContext(ctx, "no flagged top story, promoting most recent article", "articleId", a.ID)
	}

	latest := raw
	if topStory != nil {
		latest = raw.Without(topStory.ID)
	}
	latest = latest.Head(m.settings.LatestSize)

	tags, err := m.Tags(ctx)
	if err != nil {
		return nil, err
	}

	return &Homepage{
		TopStory: topStory,
		Latest:   latest,
		Trending: latest.Head(m.settings.TrendingSize),
		Tags:     tags,
	}, nil
}
