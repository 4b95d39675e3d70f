package mappers

import (
	"strconv"
	"time"

	"github.com/josechaverradev-cyber/quibdo/dto"
	"github.com/josechaverradev-cyber/quibdo/models"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func EventToResponse(e models.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          strconv.FormatUint(uint64(e.ID), 10),
		Title:       e.Title,
		Date:        e.Date,
		Description: e.Description,
		Image:       e.Image,
		Category:    e.Category,
		Featured:    e.Featured,
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

func EventsToResponse(events []models.Event) []dto.EventResponse {
	out := make([]dto.EventResponse, len(events))
	for i, e := range events {
		out[i] = EventToResponse(e)
	}
	return out
}

func GalleryItemToResponse(item models.GalleryItem) dto.GalleryItemResponse {
	eventTitle := ""
	if item.Event != nil {
		eventTitle = item.Event.Title
	}
	return dto.GalleryItemResponse{
		ID:        strconv.FormatUint(uint64(item.ID), 10),
		Src:       item.Src,
		Alt:       item.Alt,
		Event:     eventTitle,
		EventID:   item.EventID,
		Year:      item.Year,
		Type:      string(item.Type),
		CreatedAt: formatTime(item.CreatedAt),
	}
}

func GalleryItemsToResponse(items []models.GalleryItem) []dto.GalleryItemResponse {
	out := make([]dto.GalleryItemResponse, len(items))
	for i, item := range items {
		out[i] = GalleryItemToResponse(item)
	}
	return out
}

func HeroSettingsToResponse(s models.HeroSettings) dto.HeroSettingsResponse {
	return dto.HeroSettingsResponse{
		ID:        s.ID,
		HeroVideo: s.HeroVideo,
		EventDate: s.EventDate,
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}

func SponsorToResponse(s models.Sponsor) dto.SponsorResponse {
	return dto.SponsorResponse{
		ID:        strconv.FormatUint(uint64(s.ID), 10),
		Name:      s.Name,
		Logo:      s.Logo,
		Tier:      string(s.Tier),
		CreatedAt: formatTime(s.CreatedAt),
	}
}

func SponsorsToResponse(sponsors []models.Sponsor) []dto.SponsorResponse {
	out := make([]dto.SponsorResponse, len(sponsors))
	for i, s := range sponsors {
		out[i] = SponsorToResponse(s)
	}
	return out
}
