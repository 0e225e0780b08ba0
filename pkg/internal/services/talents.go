package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/store"
	"gorm.io/gorm"

	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/models"
)

var (
	ErrTalentExists    = errors.New("A talent with this name (or slug) already exists.")
	ErrNoCategories    = errors.New("You must select at least one category.")
	ErrUnknownCategory = errors.New("One or more selected categories do not exist.")
)

func FilterTalentPublished(tx *gorm.DB) *gorm.DB {
	return tx.Where("published = ?", true)
}

func FilterTalentFeatured(tx *gorm.DB) *gorm.DB {
	return tx.Where("featured = ?", true)
}

func FilterTalentWithCategory(tx *gorm.DB, slug string) *gorm.DB {
	return tx.Joins("JOIN talent_categories ON talents.id = talent_categories.talent_id").
		Joins("JOIN categories ON categories.id = talent_categories.category_id").
		Where("categories.slug IN ?", strings.Split(slug, ",")).
		Distinct("talents.id")
}

func FilterTalentWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + probe + "%"
	return tx.Where("name ILIKE ? OR bio ILIKE ? OR location ILIKE ?", probe, probe, probe)
}

func PreloadTalentGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Categories").
		Preload("Images", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") }).
		Preload("Reels", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") })
}

func GetTalent(tx *gorm.DB, id uint) (models.Talent, error) {
	var item models.Talent
	if err := PreloadTalentGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func GetTalentBySlug(tx *gorm.DB, slug string) (models.Talent, error) {
	var item models.Talent
	if err := PreloadTalentGeneral(tx).
		Where("slug = ?", slug).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func ListTalent(tx *gorm.DB, take int, offset int, order any) ([]models.Talent, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Talent
	if err := PreloadTalentGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func CountTalent(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Talent{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func GetTalentCacheKey(slug string) string {
	return fmt.Sprintf("talent-page#%s", slug)
}

// GetTalentWithCache serves the public detail route: published talents only,
// cached until the talent (or the whole listing) is invalidated.
func GetTalentWithCache(slug string) (models.Talent, error) {
	marshal := routeMarshaler()
	ctx := context.Background()

	if val, err := marshal.Get(ctx, GetTalentCacheKey(slug), new(models.Talent)); err == nil {
		return *val.(*models.Talent), nil
	}

	item, err := GetTalentBySlug(FilterTalentPublished(database.C), slug)
	if err != nil {
		return item, err
	}

	_ = marshal.Set(ctx, GetTalentCacheKey(slug), item,
		store.WithExpiration(10*time.Minute),
		store.WithTags([]string{"talents", fmt.Sprintf("talent#%d", item.ID)}),
	)

	return item, nil
}

// ListTalentWithCache serves the plain published listing, the hottest public
// query. Filtered listings go straight to the store.
func ListTalentWithCache(take int, offset int) ([]models.Talent, error) {
	marshal := routeMarshaler()
	ctx := context.Background()
	key := fmt.Sprintf("talent-list#%d,%d", take, offset)

	if val, err := marshal.Get(ctx, key, new([]models.Talent)); err == nil {
		return *val.(*[]models.Talent), nil
	}

	items, err := ListTalent(FilterTalentPublished(database.C), take, offset, "name ASC")
	if err != nil {
		return items, err
	}

	_ = marshal.Set(ctx, key, items,
		store.WithExpiration(10*time.Minute),
		store.WithTags([]string{"talents"}),
	)

	return items, nil
}

func resolveCategories(categoryIDs []uint) ([]models.Category, error) {
	if len(categoryIDs) == 0 {
		return nil, ErrNoCategories
	}

	var categories []models.Category
	if err := database.C.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(categoryIDs) {
		return nil, ErrUnknownCategory
	}

	return categories, nil
}

// NewTalent derives the slug, runs the advisory uniqueness pre-check and
// inserts the talent connected to the given categories. Nothing is written
// when any pre-condition fails.
func NewTalent(item models.Talent, categoryIDs []uint) (models.Talent, error) {
	categories, err := resolveCategories(categoryIDs)
	if err != nil {
		return item, err
	}

	item.Slug = MakeSlug(item.Name)

	var count int64
	if err := database.C.Model(&models.Talent{}).
		Where("slug = ?", item.Slug).
		Count(&count).Error; err != nil {
		return item, err
	}
	if count > 0 {
		return item, ErrTalentExists
	}

	item.Categories = categories

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	InvalidateRoutes("talents")

	return item, nil
}

// EditTalent saves the scalar fields and replaces the category set with the
// submitted one; a category omitted from the submission is detached. The slug
// is never recomputed on update.
func EditTalent(item models.Talent, categoryIDs []uint) (models.Talent, error) {
	categories, err := resolveCategories(categoryIDs)
	if err != nil {
		return item, err
	}

	if err := database.C.Omit("Categories").Save(&item).Error; err != nil {
		return item, err
	}
	if err := database.C.Model(&item).Association("Categories").Replace(&categories); err != nil {
		return item, err
	}
	item.Categories = categories

	InvalidateRoutes("talents", fmt.Sprintf("talent#%d", item.ID))

	return item, nil
}

// DeleteTalent removes the talent row only; gallery images and reels are left
// to the store's referential configuration and the cleanup task.
func DeleteTalent(id uint) error {
	var item models.Talent
	if err := database.C.First(&item, id).Error; err != nil {
		return err
	}

	if err := database.C.Delete(&item).Error; err != nil {
		return err
	}

	InvalidateRoutes("talents", fmt.Sprintf("talent#%d", item.ID))

	return nil
}
