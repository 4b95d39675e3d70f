package models

import "time"

// EventSetting guarda los datos del evento principal que muestra la portada.
// Solo una fila debería estar activa a la vez.
type EventSetting struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	EventName string    `gorm:"size:255;not null" json:"event_name"`
	EventDate time.Time `gorm:"not null" json:"event_date"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
}

func (EventSetting) TableName() string {
	return "event_settings"
}
