package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"createdAt"`
}
