package models

// Account is the local mirror of a user registered on the identity service.
// Rows are upserted through the admin API, never created by Chronicle itself.
type Account struct {
	BaseModel

	Name   string `json:"name" gorm:"uniqueIndex"`
	Nick   string `json:"nick"`
	Avatar string `json:"avatar"`

	Posts    []Post    `json:"posts" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AuthorID"`
}
