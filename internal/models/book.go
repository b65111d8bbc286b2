package models

// Book represents a book in the library catalogue.
type Book struct {
	ID          int32   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string  `json:"title" gorm:"type:varchar(128);not null"`
	Author      string  `json:"author" gorm:"type:varchar(128);not null"`
	Content     *string `json:"content"`
	Category    string  `json:"category" gorm:"type:varchar(128);not null"`
	PublishDate Date    `json:"publish_date" gorm:"not null"`
}

func (Book) TableName() string {
	return "BOOKS"
}
