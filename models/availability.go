package models

// AvailabilityEntry is the manually managed sellability of one room on one date.
// PricePerNight overrides Room.Price for that night when set.
type AvailabilityEntry struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	RoomID        uint   `gorm:"column:room_id;not null;uniqueIndex:idx_room_availability_room_date" json:"roomId"`
	Date          string `gorm:"column:date;type:char(10);not null;uniqueIndex:idx_room_availability_room_date" json:"date"`
	IsAvailable   bool   `gorm:"column:is_available;not null;default:true" json:"isAvailable"`
	PricePerNight *int   `gorm:"column:price_per_night" json:"pricePerNight"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}

func (AvailabilityEntry) TableName() string { return "room_availability" }

// RoomDateUnavailability is one occupied night of a confirmed booking.
// The composite primary key guarantees a room/date is claimed at most once.
type RoomDateUnavailability struct {
	RoomID    uint   `gorm:"column:room_id;primaryKey;autoIncrement:false" json:"roomId"`
	Date      string `gorm:"column:date;type:char(10);primaryKey" json:"date"`
	BookingID uint   `gorm:"column:booking_id;not null;index" json:"bookingId"`

	Room    Room    `gorm:"foreignKey:RoomID;references:ID" json:"-"`
	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
}

func (RoomDateUnavailability) TableName() string { return "room_date_unavailability" }
