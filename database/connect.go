package database

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect abre la conexión MySQL y configura el pool. La conexión se inyecta a
// las capas superiores en lugar de exponerse como estado global.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// El hosting remoto corta conexiones inactivas (wait_timeout); reciclar
	// antes de que eso pase evita el clásico error 2006.
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.Info().Msg("conexión a la base de datos establecida")
	return db, nil
}

// Close cierra el pool subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
