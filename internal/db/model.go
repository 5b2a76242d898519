// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
)

func init() {
	orm.RegisterTable((*ArticleTag)(nil))
}

var Columns = struct {
	Article struct {
		ID, CategoryID, AuthorID, Title, Slug, Summary, Lead, Content, PublishedAt, Priority, IsTopStory string

		Category, Author, Tags, Images, Videos, Comments string
	}
	ArticleImage struct {
		ID, ArticleID, ImageName, ImageSize, Caption, Position, UpdatedAt string
	}
	ArticleTag struct {
		ArticleID, TagID string
	}
	ArticleVideo struct {
		ID, ArticleID, URL, Caption, Position string
	}
	Author struct {
		ID, Name, Email string
	}
	Category struct {
		ID, Name, Slug, Description, Color string
	}
	Comment struct {
		ID, ArticleID, AuthorID, Content, PublishedAt string

		Author string
	}
	Tag struct {
		ID, Name string
	}
}{
	Article: struct {
		ID, CategoryID, AuthorID, Title, Slug, Summary, Lead, Content, PublishedAt, Priority, IsTopStory string

		Category, Author, Tags, Images, Videos, Comments string
	}{
		ID:          "articleId",
		CategoryID:  "categoryId",
		AuthorID:    "authorId",
		Title:       "title",
		Slug:        "slug",
		Summary:     "summary",
		Lead:        "lead",
		Content:     "content",
		PublishedAt: "publishedAt",
		Priority:    "priority",
		IsTopStory:  "isTopStory",

		Category: "Category",
		Author:   "Author",
		Tags:     "Tags",
		Images:   "Images",
		Videos:   "Videos",
		Comments: "Comments",
	},
	ArticleImage: struct {
		ID, ArticleID, ImageName, ImageSize, Caption, Position, UpdatedAt string
	}{
		ID:        "imageId",
		ArticleID: "articleId",
		ImageName: "imageName",
		ImageSize: "imageSize",
		Caption:   "caption",
		Position:  "position",
		UpdatedAt: "updatedAt",
	},
	ArticleTag: struct {
		ArticleID, TagID string
	}{
		ArticleID: "articleId",
		TagID:     "tagId",
	},
	ArticleVideo: struct {
		ID, ArticleID, URL, Caption, Position string
	}{
		ID:        "videoId",
		ArticleID: "articleId",
		URL:       "url",
		Caption:   "caption",
		Position:  "position",
	},
	Author: struct {
		ID, Name, Email string
	}{
		ID:    "authorId",
		Name:  "name",
		Email: "email",
	},
	Category: struct {
		ID, Name, Slug, Description, Color string
	}{
		ID:          "categoryId",
		Name:        "name",
		Slug:        "slug",
		Description: "description",
		Color:       "color",
	},
	Comment: struct {
		ID, ArticleID, AuthorID, Content, PublishedAt string

		Author string
	}{
		ID:          "commentId",
		ArticleID:   "articleId",
		AuthorID:    "authorId",
		Content:     "content",
		PublishedAt: "publishedAt",

		Author: "Author",
	},
	Tag: struct {
		ID, Name string
	}{
		ID:   "tagId",
		Name: "name",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	ArticleImage struct {
		Name, Alias string
	}
	ArticleTag struct {
		Name, Alias string
	}
	ArticleVideo struct {
		Name, Alias string
	}
	Author struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	ArticleImage: struct {
		Name, Alias string
	}{
		Name:  "article_images",
		Alias: "t",
	},
	ArticleTag: struct {
		Name, Alias string
	}{
		Name:  "article_tags",
		Alias: "at",
	},
	ArticleVideo: struct {
		Name, Alias string
	}{
		Name:  "article_videos",
		Alias: "t",
	},
	Author: struct {
		Name, Alias string
	}{
		Name:  "authors",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID          int       `pg:"articleId,pk"`
	CategoryID  int       `pg:"categoryId,use_zero"`
	AuthorID    *int      `pg:"authorId"`
	Title       string    `pg:"title,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	Summary     string    `pg:"summary,use_zero"`
	Lead        *string   `pg:"lead"`
	Content     string    `pg:"content,use_zero"`
	PublishedAt time.Time `pg:"publishedAt,use_zero"`
	Priority    int       `pg:"priority,use_zero"`
	IsTopStory  bool      `pg:"isTopStory,use_zero"`

	Category *Category      `pg:"fk:categoryId,rel:has-one"`
	Author   *Author        `pg:"fk:authorId,rel:has-one"`
	Tags     []Tag          `pg:"many2many:article_tags,fk:articleId,join_fk:tagId"`
	Images   []ArticleImage `pg:"rel:has-many,join_fk:articleId"`
	Videos   []ArticleVideo `pg:"rel:has-many,join_fk:articleId"`
	Comments []Comment      `pg:"rel:has-many,join_fk:articleId"`
}

type ArticleImage struct {
	tableName struct{} `pg:"article_images,alias:t,discard_unknown_columns"`

	ID        int        `pg:"imageId,pk"`
	ArticleID int        `pg:"articleId,use_zero"`
	ImageName string     `pg:"imageName,use_zero"`
	ImageSize *int       `pg:"imageSize"`
	Caption   *string    `pg:"caption"`
	Position  int        `pg:"position,use_zero"`
	UpdatedAt *time.Time `pg:"updatedAt"`
}

type ArticleTag struct {
	tableName struct{} `pg:"article_tags,alias:at,discard_unknown_columns"`

	ArticleID int `pg:"articleId,pk"`
	TagID     int `pg:"tagId,pk"`
}

type ArticleVideo struct {
	tableName struct{} `pg:"article_videos,alias:t,discard_unknown_columns"`

	ID        int     `pg:"videoId,pk"`
	ArticleID int     `pg:"articleId,use_zero"`
	URL       string  `pg:"url,use_zero"`
	Caption   *string `pg:"caption"`
	Position  int     `pg:"position,use_zero"`
}

type Author struct {
	tableName struct{} `pg:"authors,alias:t,discard_unknown_columns"`

	ID    int    `pg:"authorId,pk"`
	Name  string `pg:"name,use_zero"`
	Email string `pg:"email,use_zero"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int     `pg:"categoryId,pk"`
	Name        string  `pg:"name,use_zero"`
	Slug        string  `pg:"slug,use_zero"`
	Description *string `pg:"description"`
	Color       *string `pg:"color"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID          int       `pg:"commentId,pk"`
	ArticleID   int       `pg:"articleId,use_zero"`
	AuthorID    int       `pg:"authorId,use_zero"`
	Content     string    `pg:"content,use_zero"`
	PublishedAt time.Time `pg:"publishedAt,use_zero"`

	Author *Author `pg:"fk:authorId,rel:has-one"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   int    `pg:"tagId,pk"`
	Name string `pg:"name,use_zero"`
}
