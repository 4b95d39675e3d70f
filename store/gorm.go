package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/josechaverradev-cyber/quibdo/models"
)

// GormStore implementa Store sobre una conexión gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---- Eventos ----

func (s *GormStore) ListEvents() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Order("created_at desc").Find(&events).Error
	return events, err
}

func (s *GormStore) GetEvent(id uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, id).Error; err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (s *GormStore) CreateEvent(e *models.Event) error {
	return s.db.Create(e).Error
}

func (s *GormStore) SaveEvent(e *models.Event) error {
	return s.db.Save(e).Error
}

func (s *GormStore) DeleteEvent(id uint) error {
	res := s.db.Delete(&models.Event{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Galería ----

func (s *GormStore) ListGalleryItems() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := s.db.Preload("Event").Order("created_at desc").Find(&items).Error
	return items, err
}

func (s *GormStore) GalleryItemsByEvent(eventID uint) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := s.db.Where("event_id = ?", eventID).Find(&items).Error
	return items, err
}

func (s *GormStore) GetGalleryItem(id uint) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := s.db.Preload("Event").First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *GormStore) CreateGalleryItem(item *models.GalleryItem) error {
	return s.db.Create(item).Error
}

func (s *GormStore) DeleteGalleryItem(id uint) error {
	res := s.db.Delete(&models.GalleryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Hero ----

func (s *GormStore) HeroSettings() (*models.HeroSettings, error) {
	settings := models.HeroSettings{
		ID:        models.HeroSettingsID,
		HeroVideo: "",
		EventDate: models.DefaultEventDate,
	}
	// La clave primaria fija hace que dos peticiones concurrentes terminen
	// sobre la misma fila en lugar de crear dos.
	err := s.db.FirstOrCreate(&settings, models.HeroSettings{ID: models.HeroSettingsID}).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *GormStore) SaveHeroSettings(settings *models.HeroSettings) error {
	settings.ID = models.HeroSettingsID
	return s.db.Save(settings).Error
}

// ---- Patrocinadores ----

func (s *GormStore) ListSponsors() ([]models.Sponsor, error) {
	var sponsors []models.Sponsor
	err := s.db.Find(&sponsors).Error
	return sponsors, err
}

func (s *GormStore) GetSponsor(id uint) (*models.Sponsor, error) {
	var sponsor models.Sponsor
	if err := s.db.First(&sponsor, id).Error; err != nil {
		return nil, translate(err)
	}
	return &sponsor, nil
}

func (s *GormStore) CreateSponsor(sp *models.Sponsor) error {
	return s.db.Create(sp).Error
}

func (s *GormStore) DeleteSponsor(id uint) error {
	res := s.db.Delete(&models.Sponsor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Evento principal ----

func (s *GormStore) ActiveEventSetting() (*models.EventSetting, error) {
	var setting models.EventSetting
	if err := s.db.Where("is_active = ?", true).First(&setting).Error; err != nil {
		return nil, translate(err)
	}
	return &setting, nil
}

// ---- Administración ----

func (s *GormStore) AdminUserByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ---- Estadísticas ----

func (s *GormStore) CountEvents() (int64, error) {
	var n int64
	err := s.db.Model(&models.Event{}).Count(&n).Error
	return n, err
}

func (s *GormStore) CountFeaturedEvents() (int64, error) {
	var n int64
	err := s.db.Model(&models.Event{}).Where("featured = ?", true).Count(&n).Error
	return n, err
}

func (s *GormStore) CountGalleryItems() (int64, error) {
	var n int64
	err := s.db.Model(&models.GalleryItem{}).Count(&n).Error
	return n, err
}
