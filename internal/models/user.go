package models

import (
	"encoding/json"
	"time"
)

// StatusActive is the status assigned to newly created users.
const StatusActive = "active"

// User represents a library member.
type User struct {
	ID        int32     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(128);not null"`
	Email     string    `json:"email" gorm:"type:varchar(128);not null"`
	Password  string    `json:"-" gorm:"type:varchar(512);not null"` // never rendered
	Status    string    `json:"status" gorm:"type:varchar(32);not null;default:active"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (User) TableName() string {
	return "USERS"
}

// Exists reports whether u holds a stored row rather than the zero value
// used for "no such user".
func (u User) Exists() bool {
	return u.ID != 0
}

// MarshalJSON renders the zero User as an empty object.
func (u User) MarshalJSON() ([]byte, error) {
	if !u.Exists() {
		return []byte("{}"), nil
	}
	type plain User
	return json.Marshal(plain(u))
}
