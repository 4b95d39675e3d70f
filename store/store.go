// Package store define la capa de acceso a datos que consumen los
// controladores. Los handlers dependen de esta interfaz, no de una conexión
// global, así las pruebas pueden sustituirla por una implementación en memoria.
package store

import (
	"errors"

	"github.com/josechaverradev-cyber/quibdo/models"
)

// ErrNotFound se devuelve cuando el identificador no corresponde a ninguna fila.
var ErrNotFound = errors.New("registro no encontrado")

type Store interface {
	// Eventos
	ListEvents() ([]models.Event, error)
	GetEvent(id uint) (*models.Event, error)
	CreateEvent(e *models.Event) error
	SaveEvent(e *models.Event) error
	DeleteEvent(id uint) error

	// Galería
	ListGalleryItems() ([]models.GalleryItem, error)
	GalleryItemsByEvent(eventID uint) ([]models.GalleryItem, error)
	GetGalleryItem(id uint) (*models.GalleryItem, error)
	CreateGalleryItem(item *models.GalleryItem) error
	DeleteGalleryItem(id uint) error

	// Configuración del hero (fila única, creada en el primer acceso)
	HeroSettings() (*models.HeroSettings, error)
	SaveHeroSettings(s *models.HeroSettings) error

	// Patrocinadores
	ListSponsors() ([]models.Sponsor, error)
	GetSponsor(id uint) (*models.Sponsor, error)
	CreateSponsor(s *models.Sponsor) error
	DeleteSponsor(id uint) error

	// Evento principal activo
	ActiveEventSetting() (*models.EventSetting, error)

	// Credenciales de administración
	AdminUserByUsername(username string) (*models.AdminUser, error)

	// Estadísticas
	CountEvents() (int64, error)
	CountFeaturedEvents() (int64, error)
	CountGalleryItems() (int64, error)
}
