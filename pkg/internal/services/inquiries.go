package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/mailer"
	"github.com/limelight-agency/limelight/pkg/internal/models"
)

var ErrInvalidInquiryStatus = errors.New("Inquiry status must be either new or contacted.")

// NewInquiry persists the submission and then tries to notify both sides.
// Persisting is the load-bearing part; a failed email never fails the inquiry.
func NewInquiry(item models.Inquiry) (models.Inquiry, error) {
	item.Status = models.InquiryStatusNew

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	deliverInquiryNotifications(item)

	InvalidateRoutes("inquiries")

	return item, nil
}

func deliverInquiryNotifications(item models.Inquiry) {
	if mailer.S == nil {
		return
	}

	if inbox := viper.GetString("mailer.inbox"); len(inbox) > 0 {
		body := fmt.Sprintf(
			"<p>New inquiry from <b>%s</b> (%s).</p><p>%s</p>",
			item.Name, item.Email, item.Message,
		)
		if err := mailer.S.Send(inbox, "New inquiry received", body); err != nil {
			log.Warn().Err(err).Str("to", inbox).Msg("An error occurred when notifying the agency inbox...")
		}
	}

	ack := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for reaching out! We received your message and will get back to you soon.</p><blockquote>%s</blockquote>",
		item.Name, item.Message,
	)
	if err := mailer.S.Send(item.Email, "We received your inquiry", ack); err != nil {
		log.Warn().Err(err).Str("to", item.Email).Msg("An error occurred when acknowledging the inquiry...")
	}
}

func ListInquiry(tx *gorm.DB, take int, offset int) ([]models.Inquiry, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Inquiry
	if err := tx.Preload("Talent").
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func CountInquiry(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Inquiry{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func EditInquiryStatus(id uint, status string) (models.Inquiry, error) {
	var item models.Inquiry
	if status != models.InquiryStatusNew && status != models.InquiryStatusContacted {
		return item, ErrInvalidInquiryStatus
	}

	if err := database.C.First(&item, id).Error; err != nil {
		return item, err
	}

	item.Status = status
	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	InvalidateRoutes("inquiries")

	return item, nil
}

func DeleteInquiry(id uint) error {
	var item models.Inquiry
	if err := database.C.First(&item, id).Error; err != nil {
		return err
	}

	if err := database.C.Delete(&item).Error; err != nil {
		return err
	}

	InvalidateRoutes("inquiries")

	return nil
}
