package config

import (
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/article-feed/internal/newsportal"
	"github.com/daniilsolovey/article-feed/internal/rest"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
		// BaseURL is the public site root used in RSS links.
		BaseURL string
	}
	Pagination struct {
		PageSize int
	}
	Listing struct {
		DefaultCategory string
	}
	Search struct {
		CaseSensitive bool
	}
	Homepage struct {
		RawSize      int
		LatestSize   int
		TrendingSize int
	}
	Cache struct {
		// TTL of the tag cloud and category menu; zero keeps them until restart.
		TTL Duration
	}
	Feed struct {
		Title       string
		Description string
		Author      string
	}
	LogQueries bool
}

// Duration is a time.Duration decoded from TOML strings like "5m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default returns the configuration used for keys missing from the config file.
func Default() Config {
	var cfg Config
	cfg.App.Host = "localhost"
	cfg.App.Port = 3000
	cfg.App.BaseURL = "http://localhost:3000"

	settings := newsportal.DefaultSettings()
	cfg.Pagination.PageSize = settings.PageSize
	cfg.Homepage.RawSize = settings.RawSize
	cfg.Homepage.LatestSize = settings.LatestSize
	cfg.Homepage.TrendingSize = settings.TrendingSize
	cfg.Cache.TTL = Duration{5 * time.Minute}

	cfg.Feed.Title = "Article Feed"
	cfg.Feed.Description = "Latest published articles"

	return cfg
}

func (c Config) Settings() newsportal.Settings {
	return newsportal.Settings{
		PageSize:        c.Pagination.PageSize,
		DefaultCategory: c.Listing.DefaultCategory,
		CaseSensitive:   c.Search.CaseSensitive,
		RawSize:         c.Homepage.RawSize,
		LatestSize:      c.Homepage.LatestSize,
		TrendingSize:    c.Homepage.TrendingSize,
	}
}

func (c Config) FeedConfig() rest.FeedConfig {
	return rest.FeedConfig{
		Title:       c.Feed.Title,
		Description: c.Feed.Description,
		Author:      c.Feed.Author,
		BaseURL:     c.App.BaseURL,
	}
}
