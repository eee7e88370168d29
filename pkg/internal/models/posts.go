package models

import "time"

type Post struct {
	BaseModel

	Text  string  `json:"text"`
	Image *string `json:"image"`

	// PublishedAt is stamped once at creation and never touched by edits.
	PublishedAt time.Time `json:"published_at"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group" gorm:"constraint:OnDelete:SET NULL"`

	Comments []Comment `json:"comments" gorm:"constraint:OnDelete:CASCADE"`
}
