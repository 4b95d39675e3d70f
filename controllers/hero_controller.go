package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/josechaverradev-cyber/quibdo/dto"
	"github.com/josechaverradev-cyber/quibdo/mappers"
	"github.com/josechaverradev-cyber/quibdo/storage"
	"github.com/josechaverradev-cyber/quibdo/utils"
)

// GetHeroSettings devuelve la configuración del hero. La primera lectura crea
// la fila única con valores por defecto.
func (h *Handler) GetHeroSettings(c *gin.Context) {
	settings, err := h.Store.HeroSettings()
	if err != nil {
		log.Error().Err(err).Msg("error leyendo configuración del hero")
		utils.ServerError(c)
		return
	}
	utils.OK(c, "", gin.H{"settings": mappers.HeroSettingsToResponse(*settings)})
}

// UpdateHeroVideo reemplaza el video de portada.
func (h *Handler) UpdateHeroVideo(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "Debe subir un archivo")
		return
	}
	url, err := h.Files.Save(fh, storage.CategoryHero)
	if err != nil {
		fileError(c, err)
		return
	}

	settings, err := h.Store.HeroSettings()
	if err != nil {
		log.Error().Err(err).Msg("error leyendo configuración del hero")
		utils.ServerError(c)
		return
	}
	settings.HeroVideo = url
	if err := h.Store.SaveHeroSettings(settings); err != nil {
		log.Error().Err(err).Msg("error guardando configuración del hero")
		utils.ServerError(c)
		return
	}

	utils.OK(c, "Video del hero actualizado", gin.H{"settings": mappers.HeroSettingsToResponse(*settings)})
}

// UpdateHeroEventDate actualiza la fecha que muestra el contador de portada.
func (h *Handler) UpdateHeroEventDate(c *gin.Context) {
	var req dto.UpdateEventDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Debe indicar la fecha del evento")
		return
	}

	settings, err := h.Store.HeroSettings()
	if err != nil {
		log.Error().Err(err).Msg("error leyendo configuración del hero")
		utils.ServerError(c)
		return
	}
	settings.EventDate = req.EventDate
	if err := h.Store.SaveHeroSettings(settings); err != nil {
		log.Error().Err(err).Msg("error guardando configuración del hero")
		utils.ServerError(c)
		return
	}

	utils.OK(c, "Fecha del evento actualizada", gin.H{"settings": mappers.HeroSettingsToResponse(*settings)})
}
