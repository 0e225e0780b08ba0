package models

const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
)

// Inquiry is an inbound booking request from a site visitor, optionally
// referencing the talent it is about.
type Inquiry struct {
	BaseModel

	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Message string  `json:"message" gorm:"type:text"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`

	TalentID *uint   `json:"talent_id"`
	Talent   *Talent `json:"talent"`

	Status string `json:"status" gorm:"default:'new'"`
}
