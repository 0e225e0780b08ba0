package services

import (
	"errors"

	"gorm.io/gorm/clause"

	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/models"
)

var (
	ErrCategoryExists     = errors.New("A category with this name or slug already exists.")
	ErrBlogCategoryExists = errors.New("A blog category with this name or slug already exists.")
)

func ListCategory(take int, offset int) ([]models.Category, error) {
	var categories []models.Category
	err := database.C.Order("name ASC").Offset(offset).Limit(take).Find(&categories).Error

	return categories, err
}

func GetCategory(slug string) (models.Category, error) {
	var category models.Category
	if err := database.C.Where(models.Category{Slug: slug}).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func GetCategoryWithID(id uint) (models.Category, error) {
	var category models.Category
	if err := database.C.First(&category, id).Error; err != nil {
		return category, err
	}
	return category, nil
}

// NewCategory runs the advisory name-or-slug pre-check before inserting. The
// check is not transactional with the insert; the unique indexes on the table
// are the last line of defense.
func NewCategory(name string) (models.Category, error) {
	category := models.Category{
		Name: name,
		Slug: MakeSlug(name),
	}

	var count int64
	if err := database.C.Model(&models.Category{}).
		Where("name = ? OR slug = ?", category.Name, category.Slug).
		Count(&count).Error; err != nil {
		return category, err
	}
	if count > 0 {
		return category, ErrCategoryExists
	}

	if err := database.C.Create(&category).Error; err != nil {
		return category, err
	}

	InvalidateRoutes("categories")

	return category, nil
}

func EditCategory(category models.Category, name string) (models.Category, error) {
	category.Name = name
	category.Slug = MakeSlug(name)

	if err := database.C.Save(&category).Error; err != nil {
		return category, err
	}

	InvalidateRoutes("categories", "talents")

	return category, nil
}

// DeleteCategory clears the join rows so no talent keeps pointing at a dead
// category; there is no guard against deleting a category that is still in use.
func DeleteCategory(id uint) error {
	var category models.Category
	if err := database.C.First(&category, id).Error; err != nil {
		return err
	}

	if err := database.C.Select(clause.Associations).Delete(&category).Error; err != nil {
		return err
	}

	InvalidateRoutes("categories", "talents")

	return nil
}

func ListBlogCategory(take int, offset int) ([]models.BlogCategory, error) {
	var categories []models.BlogCategory
	err := database.C.Order("name ASC").Offset(offset).Limit(take).Find(&categories).Error

	return categories, err
}

func GetBlogCategory(slug string) (models.BlogCategory, error) {
	var category models.BlogCategory
	if err := database.C.Where(models.BlogCategory{Slug: slug}).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func GetBlogCategoryWithID(id uint) (models.BlogCategory, error) {
	var category models.BlogCategory
	if err := database.C.First(&category, id).Error; err != nil {
		return category, err
	}
	return category, nil
}

func NewBlogCategory(name string) (models.BlogCategory, error) {
	category := models.BlogCategory{
		Name: name,
		Slug: MakeSlug(name),
	}

	var count int64
	if err := database.C.Model(&models.BlogCategory{}).
		Where("name = ? OR slug = ?", category.Name, category.Slug).
		Count(&count).Error; err != nil {
		return category, err
	}
	if count > 0 {
		return category, ErrBlogCategoryExists
	}

	if err := database.C.Create(&category).Error; err != nil {
		return category, err
	}

	InvalidateRoutes("blog-categories")

	return category, nil
}

func EditBlogCategory(category models.BlogCategory, name string) (models.BlogCategory, error) {
	category.Name = name
	category.Slug = MakeSlug(name)

	if err := database.C.Save(&category).Error; err != nil {
		return category, err
	}

	InvalidateRoutes("blog-categories", "posts")

	return category, nil
}

func DeleteBlogCategory(id uint) error {
	var category models.BlogCategory
	if err := database.C.First(&category, id).Error; err != nil {
		return err
	}

	if err := database.C.Select(clause.Associations).Delete(&category).Error; err != nil {
		return err
	}

	InvalidateRoutes("blog-categories", "posts")

	return nil
}
