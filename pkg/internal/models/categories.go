package models

// Category groups talents; BlogCategory groups blog posts. The two namespaces
// are intentionally separate tables so slugs never collide across them.
type Category struct {
	BaseModel

	Name    string   `json:"name" gorm:"uniqueIndex"`
	Slug    string   `json:"slug" gorm:"uniqueIndex"`
	Talents []Talent `json:"talents" gorm:"many2many:talent_categories"`
}

type BlogCategory struct {
	BaseModel

	Name  string     `json:"name" gorm:"uniqueIndex"`
	Slug  string     `json:"slug" gorm:"uniqueIndex"`
	Posts []BlogPost `json:"posts" gorm:"many2many:post_categories"`
}
