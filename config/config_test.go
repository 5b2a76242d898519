package config

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/article-feed/internal/newsportal"
)

func TestDecode_OverridesDefaults(t *testing.T) {
	cfg := Default()
	_, err := toml.Decode(`
LogQueries = true

[Database]
Addr = "localhost:5432"
User = "postgres"
Database = "articles"

[App]
Port = 8080
BaseURL = "https://news.example.com"

[Pagination]
PageSize = 20

[Listing]
DefaultCategory = "international"

[Cache]
TTL = "30s"

[Feed]
Author = "Newsroom"
`, &cfg)
	require.NoError(t, err)

	assert.Equal(t, "localhost:5432", cfg.Database.Addr)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "localhost", cfg.App.Host)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL.Duration)
	assert.True(t, cfg.LogQueries)

	settings := cfg.Settings()
	assert.Equal(t, 20, settings.PageSize)
	assert.Equal(t, "international", settings.DefaultCategory)
	assert.Equal(t, 15, settings.RawSize)

	feed := cfg.FeedConfig()
	assert.Equal(t, "Article Feed", feed.Title)
	assert.Equal(t, "Newsroom", feed.Author)
	assert.Equal(t, "https://news.example.com", feed.BaseURL)
}

func TestDefault_MatchesManagerSettings(t *testing.T) {
	assert.Equal(t, newsportal.DefaultSettings(), Default().Settings())
}

func TestDuration_Invalid(t *testing.T) {
	var cfg Config
	_, err := toml.Decode("[Cache]\nTTL = \"soon\"\n", &cfg)
	assert.Error(t, err)
}
