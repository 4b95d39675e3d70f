package models

import "time"

// Tipo de medio de un elemento de galería
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type GalleryItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Src       string    `gorm:"size:500;not null" json:"src"`
	Alt       string    `gorm:"size:255;not null" json:"alt"`
	EventID   uint      `gorm:"not null" json:"event_id"`
	Event     *Event    `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Year      int       `gorm:"not null" json:"year"`
	Type      MediaType `gorm:"type:enum('image','video');default:'image'" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}
