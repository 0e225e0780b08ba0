package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limelight-agency/limelight/pkg/internal/mediastore"
	"github.com/limelight-agency/limelight/pkg/internal/models"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

type stubStore struct {
	deleteErr error
	deleted   []string
}

func (v *stubStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return "http://media.local/" + key, nil
}

func (v *stubStore) Delete(ctx context.Context, publicID string, kind mediastore.Kind) error {
	if v.deleteErr != nil {
		return v.deleteErr
	}
	v.deleted = append(v.deleted, publicID)
	return nil
}

func swapMediaStore(t *testing.T, store mediastore.Store) {
	t.Helper()
	previous := mediastore.S
	mediastore.S = store
	t.Cleanup(func() { mediastore.S = previous })
}

func seedTalentWithImage(t *testing.T) (models.Talent, models.Image) {
	t.Helper()
	categories := seedCategories(t, "Fashion")

	talent, err := services.NewTalent(models.Talent{
		Name: "Sarah Johnson",
		Bio:  "An experienced runway model.",
	}, []uint{categories[0].ID})
	require.NoError(t, err)

	image, err := services.AddTalentImage(talent.ID, "http://media.local/images/a.jpg", "images/a.jpg", 0)
	require.NoError(t, err)

	return talent, image
}

func TestRemoveTalentImageDeletesBoth(t *testing.T) {
	db := testDatabase(t)
	store := &stubStore{}
	swapMediaStore(t, store)

	_, image := seedTalentWithImage(t)

	outcome, err := services.RemoveTalentImage(image.ID)
	require.NoError(t, err)
	assert.Equal(t, services.DetachBoth, outcome)
	assert.Equal(t, []string{"images/a.jpg"}, store.deleted)

	var count int64
	require.NoError(t, db.Model(&models.Image{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRemoveTalentImageStoreFailureKeepsRowGone(t *testing.T) {
	db := testDatabase(t)
	store := &stubStore{deleteErr: errors.New("bucket unreachable")}
	swapMediaStore(t, store)

	_, image := seedTalentWithImage(t)

	outcome, err := services.RemoveTalentImage(image.ID)
	assert.Error(t, err)
	assert.Equal(t, services.DetachRowOnly, outcome)

	// The row stays gone even though the asset survived.
	var count int64
	require.NoError(t, db.Model(&models.Image{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRemoveTalentImageMissingRow(t *testing.T) {
	testDatabase(t)
	swapMediaStore(t, &stubStore{})

	outcome, err := services.RemoveTalentImage(999)
	assert.Error(t, err)
	assert.Equal(t, services.DetachNone, outcome)
}

func TestRemoveTalentReelDeletesBoth(t *testing.T) {
	testDatabase(t)
	store := &stubStore{}
	swapMediaStore(t, store)

	categories := seedCategories(t, "Film")
	talent, err := services.NewTalent(models.Talent{
		Name: "John Smith",
		Bio:  "A seasoned commercial actor.",
	}, []uint{categories[0].ID})
	require.NoError(t, err)

	reel, err := services.AddTalentReel(talent.ID, "http://media.local/reels/a.mp4", "reels/a.mp4", "Showreel 2026", 0)
	require.NoError(t, err)

	outcome, err := services.RemoveTalentReel(reel.ID)
	require.NoError(t, err)
	assert.Equal(t, services.DetachBoth, outcome)
	assert.Equal(t, []string{"reels/a.mp4"}, store.deleted)
}
