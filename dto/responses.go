// Package dto define las formas JSON que consume el frontend. Los ids viajan
// como cadenas y las fechas en RFC 3339, igual que espera el bundle ya
// construido.
package dto

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Featured    bool   `json:"featured"`
	CreatedAt   string `json:"created_at"`
}

type GalleryItemResponse struct {
	ID        string `json:"id"`
	Src       string `json:"src"`
	Alt       string `json:"alt"`
	Event     string `json:"event"`
	EventID   uint   `json:"event_id"`
	Year      int    `json:"year"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

type HeroSettingsResponse struct {
	ID        uint   `json:"id"`
	HeroVideo string `json:"heroVideo"`
	EventDate string `json:"eventDate"`
	UpdatedAt string `json:"updated_at"`
}

type SponsorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	Tier      string `json:"tier"`
	CreatedAt string `json:"created_at"`
}

type StatsResponse struct {
	TotalEvents    int64 `json:"totalEvents"`
	TotalGallery   int64 `json:"totalGallery"`
	FeaturedEvents int64 `json:"featuredEvents"`
}

// Resultado por archivo de la carga masiva de galería.
type BulkItemResult struct {
	Filename string `json:"filename"`
	Alt      string `json:"alt"`
}

type BulkItemFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}
