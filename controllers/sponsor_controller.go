package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/josechaverradev-cyber/quibdo/mappers"
	"github.com/josechaverradev-cyber/quibdo/models"
	"github.com/josechaverradev-cyber/quibdo/storage"
	"github.com/josechaverradev-cyber/quibdo/utils"
)

func (h *Handler) ListSponsors(c *gin.Context) {
	sponsors, err := h.Store.ListSponsors()
	if err != nil {
		log.Error().Err(err).Msg("error listando patrocinadores")
		utils.ServerError(c)
		return
	}
	utils.OK(c, "", gin.H{"sponsors": mappers.SponsorsToResponse(sponsors)})
}

// CreateSponsor registra un patrocinador con su logo.
func (h *Handler) CreateSponsor(c *gin.Context) {
	name := c.PostForm("name")
	tier := models.SponsorTier(c.PostForm("tier"))
	if name == "" {
		utils.BadRequest(c, "El nombre es obligatorio")
		return
	}
	if !models.ValidTier(tier) {
		utils.BadRequest(c, "Nivel de patrocinio inválido")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "Debe subir un logo")
		return
	}
	logoURL, err := h.Files.Save(fh, storage.CategorySponsors)
	if err != nil {
		fileError(c, err)
		return
	}

	sponsor := models.Sponsor{Name: name, Logo: logoURL, Tier: tier}
	if err := h.Store.CreateSponsor(&sponsor); err != nil {
		h.Files.Remove(logoURL)
		log.Error().Err(err).Msg("error creando patrocinador")
		utils.ServerError(c)
		return
	}

	utils.Created(c, "Patrocinador creado exitosamente", gin.H{"sponsor": mappers.SponsorToResponse(sponsor)})
}

func (h *Handler) DeleteSponsor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	sponsor, err := h.Store.GetSponsor(id)
	if err != nil {
		storeError(c, err, "Patrocinador no encontrado")
		return
	}

	if err := h.Store.DeleteSponsor(id); err != nil {
		storeError(c, err, "Patrocinador no encontrado")
		return
	}
	h.Files.Remove(sponsor.Logo)

	utils.OK(c, "Patrocinador eliminado exitosamente", nil)
}
