package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/mediastore"
	"github.com/limelight-agency/limelight/pkg/internal/models"
)

// DetachOutcome reports how far a detach got. Removing the row and removing
// the backing media are separate steps, and the second one can fail after the
// first succeeded.
type DetachOutcome int

const (
	// DetachNone means the attachment row was not found; nothing changed.
	DetachNone DetachOutcome = iota
	// DetachRowOnly means the row is gone but the media store still holds the
	// asset; the returned error says why.
	DetachRowOnly
	// DetachBoth means both the row and the backing asset were removed.
	DetachBoth
)

func AddTalentImage(talentID uint, url string, publicID string, order int) (models.Image, error) {
	image := models.Image{
		TalentID: talentID,
		URL:      url,
		PublicID: publicID,
		Order:    order,
	}

	if err := database.C.Create(&image).Error; err != nil {
		return image, err
	}

	InvalidateRoutes("talents", fmt.Sprintf("talent#%d", talentID))

	return image, nil
}

func AddTalentReel(talentID uint, url string, publicID string, title string, order int) (models.Reel, error) {
	reel := models.Reel{
		TalentID: talentID,
		URL:      url,
		PublicID: publicID,
		Title:    title,
		Order:    order,
	}

	if err := database.C.Create(&reel).Error; err != nil {
		return reel, err
	}

	InvalidateRoutes("talents", fmt.Sprintf("talent#%d", talentID))

	return reel, nil
}

// RemoveTalentImage deletes the attachment row first, then asks the media
// store to drop the asset. A store failure does not resurrect the row; the
// caller gets DetachRowOnly and can surface the partial result.
func RemoveTalentImage(id uint) (DetachOutcome, error) {
	var image models.Image
	if err := database.C.First(&image, id).Error; err != nil {
		return DetachNone, err
	}

	if err := database.C.Delete(&image).Error; err != nil {
		return DetachNone, err
	}

	InvalidateRoutes("talents", fmt.Sprintf("talent#%d", image.TalentID))

	if mediastore.S != nil {
		if err := mediastore.S.Delete(context.Background(), image.PublicID, mediastore.KindImage); err != nil {
			log.Warn().Err(err).Str("public_id", image.PublicID).Msg("An error occurred when removing image from media store...")
			return DetachRowOnly, err
		}
	}

	return DetachBoth, nil
}

func RemoveTalentReel(id uint) (DetachOutcome, error) {
	var reel models.Reel
	if err := database.C.First(&reel, id).Error; err != nil {
		return DetachNone, err
	}

	if err := database.C.Delete(&reel).Error; err != nil {
		return DetachNone, err
	}

	InvalidateRoutes("talents", fmt.Sprintf("talent#%d", reel.TalentID))

	if mediastore.S != nil {
		if err := mediastore.S.Delete(context.Background(), reel.PublicID, mediastore.KindVideo); err != nil {
			log.Warn().Err(err).Str("public_id", reel.PublicID).Msg("An error occurred when removing reel from media store...")
			return DetachRowOnly, err
		}
	}

	return DetachBoth, nil
}
