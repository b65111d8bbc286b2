package models

// Borrow links a user to a book they borrowed. The table has no primary key
// and duplicate (user, book) pairs are allowed.
type Borrow struct {
	UserID     int32 `json:"user_id" gorm:"not null;index"`
	BookID     int32 `json:"book_id" gorm:"not null;index"`
	BorrowDate Date  `json:"borrow_date" gorm:"not null"`
}

func (Borrow) TableName() string {
	return "BORROW"
}

// BorrowRecord is the projection returned by borrow queries: a borrow row
// joined with the user's name and the book's title.
type BorrowRecord struct {
	UserName   string `json:"user_name"`
	BookTitle  string `json:"book_title"`
	BorrowDate Date   `json:"borrow_date"`
}
