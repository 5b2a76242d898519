//go:build integration

package newsportal

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/article-feed/internal/cache"
	"github.com/daniilsolovey/article-feed/internal/db"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (*pg.Tx, context.Context, *Manager) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	manager := NewManager(db.New(tx), cache.New("test", 0), DefaultSettings(), noOpLogger())
	return tx, ctx, manager
}

func TestManager_Latest_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	t.Run("PagesCoverAllVisibleArticles", func(t *testing.T) {
		seen := map[int]struct{}{}
		page, err := manager.Latest(ctx, 1, "", "")
		if err != nil {
			t.Fatalf("Latest: %v", err)
		}
		if page.TotalItems != len(db.TestArticles) || page.TotalPages != 2 {
			t.Fatalf("expected %d items on 2 pages, got %d on %d", len(db.TestArticles), page.TotalItems, page.TotalPages)
		}

		for n := 1; n <= page.TotalPages; n++ {
			p, err := manager.Latest(ctx, n, "", "")
			if err != nil {
				t.Fatalf("Latest page %d: %v", n, err)
			}
			for _, a := range p.Items {
				if _, ok := seen[a.ID]; ok {
					t.Fatalf("article %d appears twice", a.ID)
				}
				seen[a.ID] = struct{}{}
			}
		}
		if len(seen) != len(db.TestArticles) {
			t.Fatalf("expected %d distinct articles, got %d", len(db.TestArticles), len(seen))
		}
	})

	t.Run("ArticleWithFiveTagsCountsOnce", func(t *testing.T) {
		page, err := manager.Latest(ctx, 1, "", "")
		if err != nil {
			t.Fatalf("Latest: %v", err)
		}
		if len(page.Items) != 10 {
			t.Fatalf("expected a full page, got %d", len(page.Items))
		}
		if page.Items[2].ID != 3 || len(page.Items[2].Tags) != 5 {
			t.Fatalf("expected article 3 with 5 tags at position 2, got %d with %d tags", page.Items[2].ID, len(page.Items[2].Tags))
		}
	})

	t.Run("BeyondLastPageIsEmpty", func(t *testing.T) {
		page, err := manager.Latest(ctx, 5, "", "")
		if err != nil {
			t.Fatalf("Latest: %v", err)
		}
		if len(page.Items) != 0 || page.TotalItems != len(db.TestArticles) {
			t.Fatalf("expected empty page with totals, got %d items, total %d", len(page.Items), page.TotalItems)
		}
	})

	t.Run("TagFilter", func(t *testing.T) {
		page, err := manager.Latest(ctx, 1, "football", "economy")
		if err != nil {
			t.Fatalf("Latest: %v", err)
		}
		if page.TotalItems != 3 {
			t.Fatalf("expected 3 football articles, got %d", page.TotalItems)
		}
	})
}

func TestManager_Search_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	page, err := manager.Search(ctx, "  football GLACIERS  a ", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.TotalItems != 3 {
		t.Fatalf("expected 3 results, got %d", page.TotalItems)
	}

	empty, err := manager.Search(ctx, "a", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(empty.Items) != 0 || empty.TotalItems != 0 {
		t.Fatalf("expected no results, got %d", empty.TotalItems)
	}
}

func TestManager_Homepage_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	home, err := manager.Homepage(ctx)
	if err != nil {
		t.Fatalf("Homepage: %v", err)
	}
	if home.TopStory == nil || home.TopStory.ID != 13 {
		t.Fatalf("expected flagged article 13 as top story, got %+v", home.TopStory)
	}
	if len(home.Latest) != 10 || len(home.Trending) != 3 {
		t.Fatalf("expected 10 latest and 3 trending, got %d and %d", len(home.Latest), len(home.Trending))
	}
	for _, a := range home.Latest {
		if a.ID == home.TopStory.ID {
			t.Fatal("top story must not be repeated in latest")
		}
	}
	if len(home.Tags) != 5 {
		t.Fatalf("expected 5 tags, got %d", len(home.Tags))
	}
}

func TestManager_ArticleBySlug_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	article, err := manager.ArticleBySlug(ctx, "article-3")
	if err != nil {
		t.Fatalf("ArticleBySlug: %v", err)
	}
	if article == nil || len(article.Images) != 3 || len(article.Comments) != 2 {
		t.Fatalf("expected article with relations, got %+v", article)
	}

	absent, err := manager.ArticleBySlug(ctx, "article-16")
	if err != nil || absent != nil {
		t.Fatalf("expected nil, nil; got %v, %v", absent, err)
	}
}
