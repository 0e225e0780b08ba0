package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limelight-agency/limelight/pkg/internal/models"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

func seedBlogCategories(t *testing.T, names ...string) []models.BlogCategory {
	t.Helper()

	var out []models.BlogCategory
	for _, name := range names {
		item, err := services.NewBlogCategory(name)
		require.NoError(t, err)
		out = append(out, item)
	}
	return out
}

func TestNewBlogPostStampsPublishedAt(t *testing.T) {
	testDatabase(t)
	categories := seedBlogCategories(t, "Industry News")

	item, err := services.NewBlogPost(models.BlogPost{
		Title:   "Summer Casting Season",
		Content: "The summer casting season is about to start and here is what to expect.",
		Author:  "Jane Doe",
	}, []uint{categories[0].ID}, true)
	require.NoError(t, err)

	assert.True(t, item.Published)
	assert.NotNil(t, item.PublishedAt)
	assert.Equal(t, "summer-casting-season", item.Slug)
	assert.Equal(t, "en", item.Language)
}

func TestNewBlogPostDraftHasNoPublishedAt(t *testing.T) {
	testDatabase(t)
	categories := seedBlogCategories(t, "Industry News")

	item, err := services.NewBlogPost(models.BlogPost{
		Title:   "Summer Casting Season",
		Content: "The summer casting season is about to start and here is what to expect.",
		Author:  "Jane Doe",
	}, []uint{categories[0].ID}, false)
	require.NoError(t, err)

	assert.False(t, item.Published)
	assert.Nil(t, item.PublishedAt)
}

func TestEditBlogPostUnpublishClearsPublishedAt(t *testing.T) {
	testDatabase(t)
	categories := seedBlogCategories(t, "Industry News")

	item, err := services.NewBlogPost(models.BlogPost{
		Title:   "Summer Casting Season",
		Content: "The summer casting season is about to start and here is what to expect.",
		Author:  "Jane Doe",
	}, []uint{categories[0].ID}, true)
	require.NoError(t, err)
	require.NotNil(t, item.PublishedAt)

	item, err = services.EditBlogPost(item, []uint{categories[0].ID}, false)
	require.NoError(t, err)
	assert.False(t, item.Published)
	assert.Nil(t, item.PublishedAt)
}

func TestNewBlogPostRequiresCategories(t *testing.T) {
	db := testDatabase(t)

	_, err := services.NewBlogPost(models.BlogPost{
		Title:   "Summer Casting Season",
		Content: "The summer casting season is about to start and here is what to expect.",
		Author:  "Jane Doe",
	}, nil, false)
	assert.ErrorIs(t, err, services.ErrNoCategories)

	var count int64
	require.NoError(t, db.Model(&models.BlogPost{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestEditBlogPostRequiresCategories(t *testing.T) {
	testDatabase(t)
	categories := seedBlogCategories(t, "Industry News")

	item, err := services.NewBlogPost(models.BlogPost{
		Title:   "Summer Casting Season",
		Content: "The summer casting season is about to start and here is what to expect.",
		Author:  "Jane Doe",
	}, []uint{categories[0].ID}, false)
	require.NoError(t, err)

	_, err = services.EditBlogPost(item, []uint{}, false)
	assert.ErrorIs(t, err, services.ErrNoCategories)
}

func TestNewBlogPostRejectsDuplicateSlug(t *testing.T) {
	db := testDatabase(t)
	categories := seedBlogCategories(t, "Industry News")

	_, err := services.NewBlogPost(models.BlogPost{
		Title:   "Summer Casting Season",
		Content: "The summer casting season is about to start and here is what to expect.",
		Author:  "Jane Doe",
	}, []uint{categories[0].ID}, false)
	require.NoError(t, err)

	_, err = services.NewBlogPost(models.BlogPost{
		Title:   "Summer  Casting  Season",
		Content: "Another take on the same topic with a colliding slug.",
		Author:  "John Doe",
	}, []uint{categories[0].ID}, false)
	assert.ErrorIs(t, err, services.ErrPostExists)

	var count int64
	require.NoError(t, db.Model(&models.BlogPost{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
