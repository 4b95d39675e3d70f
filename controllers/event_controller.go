package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/josechaverradev-cyber/quibdo/mappers"
	"github.com/josechaverradev-cyber/quibdo/models"
	"github.com/josechaverradev-cyber/quibdo/storage"
	"github.com/josechaverradev-cyber/quibdo/utils"
)

// ListEvents devuelve todos los eventos, del más reciente al más antiguo.
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.Store.ListEvents()
	if err != nil {
		log.Error().Err(err).Msg("error listando eventos")
		utils.ServerError(c)
		return
	}
	utils.OK(c, "", gin.H{"events": mappers.EventsToResponse(events)})
}

// CreateEvent crea un evento desde un formulario multipart con imagen opcional.
func (h *Handler) CreateEvent(c *gin.Context) {
	title := c.PostForm("title")
	date := c.PostForm("date")
	description := c.PostForm("description")
	if title == "" || date == "" || description == "" {
		utils.BadRequest(c, "Título, fecha y descripción son obligatorios")
		return
	}

	category := c.DefaultPostForm("category", models.CategoryDefault)
	featured := c.PostForm("featured") == "true"

	imageURL := ""
	if fh, err := c.FormFile("file"); err == nil {
		url, err := h.Files.Save(fh, storage.CategoryEvents)
		if err != nil {
			fileError(c, err)
			return
		}
		imageURL = url
	}

	event := models.Event{
		Title:       title,
		Date:        date,
		Description: description,
		Image:       imageURL,
		Category:    category,
		Featured:    featured,
	}
	if err := h.Store.CreateEvent(&event); err != nil {
		log.Error().Err(err).Msg("error creando evento")
		utils.ServerError(c)
		return
	}

	utils.Created(c, "Evento creado exitosamente", gin.H{"event": mappers.EventToResponse(event)})
}

// UpdateEvent aplica una actualización parcial: los campos ausentes del
// formulario conservan su valor anterior.
func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	event, err := h.Store.GetEvent(id)
	if err != nil {
		storeError(c, err, "Evento no encontrado")
		return
	}

	if v, ok := c.GetPostForm("title"); ok {
		event.Title = v
	}
	if v, ok := c.GetPostForm("date"); ok {
		event.Date = v
	}
	if v, ok := c.GetPostForm("description"); ok {
		event.Description = v
	}
	if v, ok := c.GetPostForm("category"); ok {
		event.Category = v
	}
	if v, ok := c.GetPostForm("featured"); ok {
		event.Featured = v == "true"
	}

	// Una imagen nueva reemplaza la referencia; el archivo anterior se queda
	// en disco como basura recolectable.
	if fh, err := c.FormFile("file"); err == nil {
		url, err := h.Files.Save(fh, storage.CategoryEvents)
		if err != nil {
			fileError(c, err)
			return
		}
		event.Image = url
	}

	if err := h.Store.SaveEvent(event); err != nil {
		log.Error().Err(err).Msg("error actualizando evento")
		utils.ServerError(c)
		return
	}

	utils.OK(c, "Evento actualizado exitosamente", gin.H{"event": mappers.EventToResponse(*event)})
}

// DeleteEvent elimina el evento y, en cascada, sus filas de galería. El
// archivo de imagen se borra con mejor esfuerzo.
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	event, err := h.Store.GetEvent(id)
	if err != nil {
		storeError(c, err, "Evento no encontrado")
		return
	}

	// Las URLs de la galería hay que leerlas antes del borrado: la cascada de
	// la base elimina las filas junto con el evento.
	items, err := h.Store.GalleryItemsByEvent(id)
	if err != nil {
		log.Error().Err(err).Msg("error listando galería del evento")
		utils.ServerError(c)
		return
	}

	if err := h.Store.DeleteEvent(id); err != nil {
		storeError(c, err, "Evento no encontrado")
		return
	}
	if event.Image != "" {
		h.Files.Remove(event.Image)
	}
	for _, item := range items {
		if item.Src != "" {
			h.Files.Remove(item.Src)
		}
	}

	utils.OK(c, "Evento eliminado exitosamente", nil)
}
