package database

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/josechaverradev-cyber/quibdo/models"
)

// Migrate crea o actualiza las tablas del esquema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.EventSetting{},
		&models.Event{},
		&models.GalleryItem{},
		&models.HeroSettings{},
		&models.Sponsor{},
		&models.AdminUser{},
	)
}

// Seed deja la base en un estado usable: la fila única de hero, el evento
// principal activo y el usuario administrador.
func Seed(db *gorm.DB, adminUsername, adminPassword string) error {
	hero := models.HeroSettings{
		ID:        models.HeroSettingsID,
		HeroVideo: "",
		EventDate: models.DefaultEventDate,
	}
	if err := db.FirstOrCreate(&hero, models.HeroSettings{ID: models.HeroSettingsID}).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.EventSetting{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		main := models.EventSetting{
			EventName: "Media Maratón de Quibdó 2025",
			EventDate: time.Date(2025, 8, 10, 6, 0, 0, 0, time.UTC),
			IsActive:  true,
		}
		if err := db.Create(&main).Error; err != nil {
			return err
		}
	}

	var admin models.AdminUser
	err := db.Where("username = ?", adminUsername).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = models.AdminUser{Username: adminUsername, Password: adminPassword}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Info().Str("username", adminUsername).Msg("usuario administrador creado")
	} else if err != nil {
		return err
	}

	log.Info().Msg("base de datos inicializada")
	return nil
}
