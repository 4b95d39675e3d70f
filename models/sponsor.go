package models

import "time"

// Nivel de patrocinio
type SponsorTier string

const (
	TierPrincipal   SponsorTier = "principal"
	TierOro         SponsorTier = "oro"
	TierPlata       SponsorTier = "plata"
	TierColaborador SponsorTier = "colaborador"
)

// ValidTier reporta si el nivel recibido es uno de los cuatro conocidos.
func ValidTier(t SponsorTier) bool {
	switch t {
	case TierPrincipal, TierOro, TierPlata, TierColaborador:
		return true
	}
	return false
}

type Sponsor struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	Name      string      `gorm:"size:255;not null" json:"name"`
	Logo      string      `gorm:"size:500;not null" json:"logo"`
	Tier      SponsorTier `gorm:"type:enum('principal','oro','plata','colaborador');not null" json:"tier"`
	CreatedAt time.Time   `json:"created_at"`
}

func (Sponsor) TableName() string {
	return "sponsors"
}
