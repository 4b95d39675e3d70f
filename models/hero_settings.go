package models

import "time"

// HeroSettings es una fila única. La clave primaria fija evita que dos
// creaciones concurrentes dejen filas duplicadas.
const (
	HeroSettingsID   = 1
	DefaultEventDate = "2025-08-10T06:00:00"
)

type HeroSettings struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	HeroVideo string    `gorm:"size:500" json:"hero_video"`
	EventDate string    `gorm:"size:100" json:"event_date"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (HeroSettings) TableName() string {
	return "hero_settings"
}
