package models

import (
	"time"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingCancelled, BookingCompleted},
	BookingCancelled: {},
	BookingCompleted: {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Booking is a reservation of one room for the nights [CheckInDate, CheckOutDate).
// TotalPrice is stored in cents.
type Booking struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	RoomID uint  `gorm:"column:room_id;not null;index" json:"roomId"`
	UserID *uint `gorm:"column:user_id;index" json:"userId"`

	GuestName  string `gorm:"column:guest_name;size:255;not null" json:"guestName"`
	GuestEmail string `gorm:"column:guest_email;size:255;not null" json:"guestEmail"`
	GuestPhone string `gorm:"column:guest_phone;size:64;not null" json:"guestPhone"`

	CheckInDate    string        `gorm:"column:check_in_date;type:char(10);not null" json:"checkInDate"`
	CheckOutDate   string        `gorm:"column:check_out_date;type:char(10);not null" json:"checkOutDate"`
	NumberOfGuests int           `gorm:"column:number_of_guests;not null" json:"numberOfGuests"`
	TotalPrice     int           `gorm:"column:total_price;not null" json:"totalPrice"`
	Status         BookingStatus `gorm:"column:status;size:16;not null;default:confirmed;index" json:"status"`

	SpecialRequests *string `gorm:"column:special_requests;type:text" json:"specialRequests"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Room Room  `gorm:"foreignKey:RoomID;references:ID" json:"-"`
	User *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
