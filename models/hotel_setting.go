package models

import "time"

// HotelSetting is the single-row public profile shown on the site footer and
// in confirmation emails.
type HotelSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"size:64" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Website   string    `gorm:"size:512" json:"website"`
	Logo      string    `gorm:"size:512" json:"logo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (HotelSetting) TableName() string { return "hotel_profile" }
