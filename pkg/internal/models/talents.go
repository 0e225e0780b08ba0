package models

import (
	"time"

	"gorm.io/datatypes"
)

type Talent struct {
	BaseModel

	Name         string                      `json:"name"`
	Slug         string                      `json:"slug" gorm:"uniqueIndex"`
	Bio          string                      `json:"bio" gorm:"type:text"`
	ProfileImage string                      `json:"profile_image"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`

	Age      *int    `json:"age"`
	Height   *string `json:"height"`
	Location *string `json:"location"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`

	Featured  bool  `json:"featured"`
	Published bool  `json:"published"`
	Views     int64 `json:"views"`

	Categories []Category `json:"categories" gorm:"many2many:talent_categories"`
	Images     []Image    `json:"images" gorm:"foreignKey:TalentID"`
	Reels      []Reel     `json:"reels" gorm:"foreignKey:TalentID"`
}

// Image is a gallery entry owned by a talent. PublicID is the media store's
// deletion handle; the row and the hosted asset are torn down separately.
type Image struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TalentID  uint      `json:"talent_id"`
	URL       string    `json:"url"`
	PublicID  string    `json:"public_id"`
	Order     int       `json:"order" gorm:"column:sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// Reel is a short promotional video owned by a talent.
type Reel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TalentID  uint      `json:"talent_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	PublicID  string    `json:"public_id"`
	Order     int       `json:"order" gorm:"column:sort_order"`
	CreatedAt time.Time `json:"created_at"`
}
