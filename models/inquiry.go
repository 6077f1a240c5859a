package models

import "time"

type BookingInquiry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	CheckInDate  string    `gorm:"column:check_in_date;type:char(10);not null" json:"checkInDate"`
	CheckOutDate string    `gorm:"column:check_out_date;type:char(10);not null" json:"checkOutDate"`
	Guests       int       `gorm:"not null" json:"guests"`
	RoomType     string    `gorm:"column:room_type;size:255;not null" json:"roomType"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
