package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/josechaverradev-cyber/quibdo/dto"
	"github.com/josechaverradev-cyber/quibdo/utils"
)

// GetStats calcula los tres contadores del panel. Sin caché: siempre refleja
// el estado actual de la base.
func (h *Handler) GetStats(c *gin.Context) {
	totalEvents, err := h.Store.CountEvents()
	if err != nil {
		log.Error().Err(err).Msg("error contando eventos")
		utils.ServerError(c)
		return
	}
	totalGallery, err := h.Store.CountGalleryItems()
	if err != nil {
		log.Error().Err(err).Msg("error contando galería")
		utils.ServerError(c)
		return
	}
	featured, err := h.Store.CountFeaturedEvents()
	if err != nil {
		log.Error().Err(err).Msg("error contando destacados")
		utils.ServerError(c)
		return
	}

	utils.OK(c, "", gin.H{"stats": dto.StatsResponse{
		TotalEvents:    totalEvents,
		TotalGallery:   totalGallery,
		FeaturedEvents: featured,
	}})
}

// GetEventInfo devuelve el evento principal activo.
func (h *Handler) GetEventInfo(c *gin.Context) {
	setting, err := h.Store.ActiveEventSetting()
	if err != nil {
		storeError(c, err, "No hay eventos activos")
		return
	}

	utils.OK(c, "", gin.H{
		"eventName": setting.EventName,
		// Sin zona horaria: el bundle compara este texto tal cual.
		"eventDate": setting.EventDate.Format("2006-01-02T15:04:05"),
	})
}
