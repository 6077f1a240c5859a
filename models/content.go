package models

type GalleryItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:255;not null" json:"title"`
	ImageURL string `gorm:"column:image_url;size:512;not null" json:"imageUrl"`
}

type Amenity struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:64" json:"icon"`
}

type Testimonial struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Location string `gorm:"size:255" json:"location"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Rating   int    `gorm:"not null" json:"rating"`
	Avatar   string `gorm:"size:512" json:"avatar"`
}
