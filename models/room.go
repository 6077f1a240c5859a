package models

import "gorm.io/datatypes"

// Room is catalog reference data. Price is a whole-unit nightly rate.
type Room struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Name        string                      `gorm:"size:255;not null" json:"name"`
	Description string                      `gorm:"type:text" json:"description"`
	Price       int                         `gorm:"not null" json:"price"`
	Image       string                      `gorm:"size:512" json:"image"`
	Capacity    int                         `gorm:"not null" json:"capacity"`
	Size        int                         `json:"size"`
	BedType     string                      `gorm:"column:bed_type;size:64" json:"bedType"`
	Amenities   datatypes.JSONSlice[string] `json:"amenities"`
	Beds        int                         `gorm:"default:1" json:"beds"`
}
