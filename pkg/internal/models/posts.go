package models

import (
	"time"

	"gorm.io/datatypes"
)

type BlogPost struct {
	BaseModel

	Title         string                      `json:"title"`
	Slug          string                      `json:"slug" gorm:"uniqueIndex"`
	Content       string                      `json:"content" gorm:"type:text"`
	Excerpt       *string                     `json:"excerpt"`
	FeaturedImage *string                     `json:"featured_image"`
	Author        string                      `json:"author"`
	Language      string                      `json:"language"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`

	// PublishedAt is recomputed from the published flag on every write; it is
	// non-null exactly when Published is true.
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
	Views       int64      `json:"views"`

	Categories []BlogCategory `json:"categories" gorm:"many2many:post_categories"`
}
