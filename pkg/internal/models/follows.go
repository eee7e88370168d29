package models

// Follow is a directed subscription from UserID to AuthorID.
// The composite unique index keeps concurrent double-follows out of the table;
// the self-follow guard lives in the service layer.
type Follow struct {
	BaseModel

	UserID uint    `json:"user_id" gorm:"uniqueIndex:idx_follows_pair"`
	User   Account `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	AuthorID uint    `json:"author_id" gorm:"uniqueIndex:idx_follows_pair"`
	Author   Account `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
