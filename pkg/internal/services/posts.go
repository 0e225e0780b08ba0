package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/store"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/models"
)

var ErrPostExists = errors.New("A post with this title (or slug) already exists.")

func FilterPostPublished(tx *gorm.DB) *gorm.DB {
	return tx.Where("published = ?", true)
}

func FilterPostWithCategory(tx *gorm.DB, slug string) *gorm.DB {
	return tx.Joins("JOIN post_categories ON blog_posts.id = post_categories.blog_post_id").
		Joins("JOIN blog_categories ON blog_categories.id = post_categories.blog_category_id").
		Where("blog_categories.slug IN ?", strings.Split(slug, ",")).
		Distinct("blog_posts.id")
}

func FilterPostWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + probe + "%"
	return tx.Where("title ILIKE ? OR content ILIKE ?", probe, probe)
}

func PreloadPostGeneral(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Categories")
}

func GetPost(tx *gorm.DB, id uint) (models.BlogPost, error) {
	var item models.BlogPost
	if err := PreloadPostGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func GetPostBySlug(tx *gorm.DB, slug string) (models.BlogPost, error) {
	var item models.BlogPost
	if err := PreloadPostGeneral(tx).
		Where("slug = ?", slug).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]models.BlogPost, error) {
	if take > 100 {
		take = 100
	}

	var items []models.BlogPost
	if err := PreloadPostGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.BlogPost{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func GetPostCacheKey(slug string) string {
	return fmt.Sprintf("post-page#%s", slug)
}

func GetPostWithCache(slug string) (models.BlogPost, error) {
	marshal := routeMarshaler()
	ctx := context.Background()

	if val, err := marshal.Get(ctx, GetPostCacheKey(slug), new(models.BlogPost)); err == nil {
		return *val.(*models.BlogPost), nil
	}

	item, err := GetPostBySlug(FilterPostPublished(database.C), slug)
	if err != nil {
		return item, err
	}

	_ = marshal.Set(ctx, GetPostCacheKey(slug), item,
		store.WithExpiration(10*time.Minute),
		store.WithTags([]string{"posts", fmt.Sprintf("post#%d", item.ID)}),
	)

	return item, nil
}

func ListPostWithCache(take int, offset int) ([]models.BlogPost, error) {
	marshal := routeMarshaler()
	ctx := context.Background()
	key := fmt.Sprintf("post-list#%d,%d", take, offset)

	if val, err := marshal.Get(ctx, key, new([]models.BlogPost)); err == nil {
		return *val.(*[]models.BlogPost), nil
	}

	items, err := ListPost(FilterPostPublished(database.C), take, offset, "published_at DESC")
	if err != nil {
		return items, err
	}

	_ = marshal.Set(ctx, key, items,
		store.WithExpiration(10*time.Minute),
		store.WithTags([]string{"posts"}),
	)

	return items, nil
}

func resolveBlogCategories(categoryIDs []uint) ([]models.BlogCategory, error) {
	if len(categoryIDs) == 0 {
		return nil, ErrNoCategories
	}

	var categories []models.BlogCategory
	if err := database.C.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(categoryIDs) {
		return nil, ErrUnknownCategory
	}

	return categories, nil
}

// NewBlogPost derives the slug from the title, guesses the content language
// and stamps PublishedAt when the post goes out published. Like talents, a
// post must land in at least one category.
func NewBlogPost(item models.BlogPost, categoryIDs []uint, publish bool) (models.BlogPost, error) {
	categories, err := resolveBlogCategories(categoryIDs)
	if err != nil {
		return item, err
	}

	item.Slug = MakeSlug(item.Title)

	var count int64
	if err := database.C.Model(&models.BlogPost{}).
		Where("slug = ?", item.Slug).
		Count(&count).Error; err != nil {
		return item, err
	}
	if count > 0 {
		return item, ErrPostExists
	}

	item.Language = DetectLanguage(item.Content)
	item.Published = publish
	if publish {
		item.PublishedAt = lo.ToPtr(time.Now())
	} else {
		item.PublishedAt = nil
	}
	item.Categories = categories

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	InvalidateRoutes("posts")

	return item, nil
}

// EditBlogPost recomputes PublishedAt from the submitted flag on every update:
// publishing stamps the current time, unpublishing clears it. The slug is
// never recomputed.
func EditBlogPost(item models.BlogPost, categoryIDs []uint, publish bool) (models.BlogPost, error) {
	categories, err := resolveBlogCategories(categoryIDs)
	if err != nil {
		return item, err
	}

	item.Language = DetectLanguage(item.Content)
	item.Published = publish
	if publish {
		item.PublishedAt = lo.ToPtr(time.Now())
	} else {
		item.PublishedAt = nil
	}

	if err := database.C.Omit("Categories").Save(&item).Error; err != nil {
		return item, err
	}
	if err := database.C.Model(&item).Association("Categories").Replace(&categories); err != nil {
		return item, err
	}
	item.Categories = categories

	InvalidateRoutes("posts", fmt.Sprintf("post#%d", item.ID))

	return item, nil
}

func DeleteBlogPost(id uint) error {
	var item models.BlogPost
	if err := database.C.First(&item, id).Error; err != nil {
		return err
	}

	if err := database.C.Delete(&item).Error; err != nil {
		return err
	}

	InvalidateRoutes("posts", fmt.Sprintf("post#%d", item.ID))

	return nil
}
