package services_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limelight-agency/limelight/pkg/internal/models"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

func seedCategories(t *testing.T, names ...string) []models.Category {
	t.Helper()

	var out []models.Category
	for _, name := range names {
		item, err := services.NewCategory(name)
		require.NoError(t, err)
		out = append(out, item)
	}
	return out
}

func TestNewTalentRequiresCategories(t *testing.T) {
	db := testDatabase(t)

	_, err := services.NewTalent(models.Talent{
		Name: "Sarah Johnson",
		Bio:  "An experienced runway model.",
	}, nil)
	assert.ErrorIs(t, err, services.ErrNoCategories)

	var count int64
	require.NoError(t, db.Model(&models.Talent{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestNewTalentRejectsDuplicateSlug(t *testing.T) {
	db := testDatabase(t)
	categories := seedCategories(t, "Fashion")

	_, err := services.NewTalent(models.Talent{
		Name: "Sarah Johnson",
		Bio:  "An experienced runway model.",
	}, []uint{categories[0].ID})
	require.NoError(t, err)

	_, err = services.NewTalent(models.Talent{
		Name: "Sarah Johnson",
		Bio:  "A different person, same name.",
	}, []uint{categories[0].ID})
	assert.ErrorIs(t, err, services.ErrTalentExists)

	var count int64
	require.NoError(t, db.Model(&models.Talent{}).
		Where("slug = ?", "sarah-johnson").
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEditTalentReplacesCategories(t *testing.T) {
	db := testDatabase(t)
	categories := seedCategories(t, "Alpha", "Beta", "Gamma")

	item, err := services.NewTalent(models.Talent{
		Name: "Sarah Johnson",
		Bio:  "An experienced runway model.",
	}, []uint{categories[0].ID, categories[1].ID})
	require.NoError(t, err)

	item, err = services.EditTalent(item, []uint{categories[1].ID, categories[2].ID})
	require.NoError(t, err)

	got, err := services.GetTalent(db, item.ID)
	require.NoError(t, err)

	names := lo.Map(got.Categories, func(c models.Category, _ int) string { return c.Name })
	assert.ElementsMatch(t, []string{"Beta", "Gamma"}, names)
}

func TestEditTalentKeepsSlug(t *testing.T) {
	testDatabase(t)
	categories := seedCategories(t, "Fashion")

	item, err := services.NewTalent(models.Talent{
		Name: "Sarah Johnson",
		Bio:  "An experienced runway model.",
	}, []uint{categories[0].ID})
	require.NoError(t, err)

	item.Name = "Sarah Johnson-Smith"
	item, err = services.EditTalent(item, []uint{categories[0].ID})
	require.NoError(t, err)
	assert.Equal(t, "sarah-johnson", item.Slug)
}

func TestNewTalentRejectsUnknownCategories(t *testing.T) {
	testDatabase(t)
	categories := seedCategories(t, "Fashion")

	_, err := services.NewTalent(models.Talent{
		Name: "Sarah Johnson",
		Bio:  "An experienced runway model.",
	}, []uint{categories[0].ID, 999})
	assert.ErrorIs(t, err, services.ErrUnknownCategory)
}
