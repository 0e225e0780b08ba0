package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limelight-agency/limelight/pkg/internal/mailer"
	"github.com/limelight-agency/limelight/pkg/internal/models"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

type failingSender struct{ calls int }

func (v *failingSender) Send(to, subject, html string) error {
	v.calls++
	return errors.New("smtp is down")
}

func swapMailer(t *testing.T, sender mailer.Sender) {
	t.Helper()
	previous := mailer.S
	mailer.S = sender
	t.Cleanup(func() { mailer.S = previous })
}

func TestNewInquirySurvivesMailerFailure(t *testing.T) {
	db := testDatabase(t)
	sender := &failingSender{}
	swapMailer(t, sender)

	item, err := services.NewInquiry(models.Inquiry{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "We would love to book one of your talents for a campaign.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusNew, item.Status)
	assert.NotZero(t, sender.calls)

	var count int64
	require.NoError(t, db.Model(&models.Inquiry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEditInquiryStatus(t *testing.T) {
	testDatabase(t)
	swapMailer(t, nil)

	item, err := services.NewInquiry(models.Inquiry{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "We would love to book one of your talents for a campaign.",
	})
	require.NoError(t, err)

	item, err = services.EditInquiryStatus(item.ID, models.InquiryStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusContacted, item.Status)

	_, err = services.EditInquiryStatus(item.ID, "archived")
	assert.ErrorIs(t, err, services.ErrInvalidInquiryStatus)
}
