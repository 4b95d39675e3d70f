package models

import "time"

// CategoryDefault es la categoría asignada cuando el formulario no envía ninguna.
const CategoryDefault = "evento"

type Event struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Date        string    `gorm:"size:100;not null" json:"date"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       string    `gorm:"size:500" json:"image"`
	Category    string    `gorm:"size:50;default:'evento'" json:"category"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	CreatedAt   time.Time `json:"created_at"`

	// Al eliminar un evento se eliminan sus elementos de galería (ON DELETE CASCADE).
	Gallery []GalleryItem `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Event) TableName() string {
	return "events"
}
