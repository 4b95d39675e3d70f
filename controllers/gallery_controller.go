package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/josechaverradev-cyber/quibdo/mappers"
	"github.com/josechaverradev-cyber/quibdo/models"
	"github.com/josechaverradev-cyber/quibdo/storage"
	"github.com/josechaverradev-cyber/quibdo/store"
	"github.com/josechaverradev-cyber/quibdo/utils"
)

// ListGallery devuelve la galería completa, del más reciente al más antiguo,
// con el título del evento al que pertenece cada elemento.
func (h *Handler) ListGallery(c *gin.Context) {
	items, err := h.Store.ListGalleryItems()
	if err != nil {
		log.Error().Err(err).Msg("error listando galería")
		utils.ServerError(c)
		return
	}
	utils.OK(c, "", gin.H{"items": mappers.GalleryItemsToResponse(items)})
}

// galleryForm valida los campos compartidos de las cargas de galería y
// devuelve el evento dueño ya verificado.
func (h *Handler) galleryForm(c *gin.Context) (*models.Event, int, models.MediaType, bool) {
	eventIDStr := c.PostForm("event_id")
	if eventIDStr == "" {
		utils.BadRequest(c, "Debe seleccionar un evento")
		return nil, 0, "", false
	}
	eventID, err := strconv.ParseUint(eventIDStr, 10, 32)
	if err != nil {
		utils.BadRequest(c, "Identificador de evento inválido")
		return nil, 0, "", false
	}

	event, err := h.Store.GetEvent(uint(eventID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.BadRequest(c, "El evento seleccionado no existe")
		} else {
			log.Error().Err(err).Msg("error consultando evento")
			utils.ServerError(c)
		}
		return nil, 0, "", false
	}

	year, err := strconv.Atoi(c.PostForm("year"))
	if err != nil {
		utils.BadRequest(c, "Año inválido")
		return nil, 0, "", false
	}

	mediaType := models.MediaType(c.DefaultPostForm("type", string(models.MediaTypeImage)))
	if mediaType != models.MediaTypeImage && mediaType != models.MediaTypeVideo {
		utils.BadRequest(c, "Tipo de medio inválido")
		return nil, 0, "", false
	}

	return event, year, mediaType, true
}

// CreateGalleryItem añade un elemento con su archivo.
func (h *Handler) CreateGalleryItem(c *gin.Context) {
	event, year, mediaType, ok := h.galleryForm(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "Debe subir un archivo")
		return
	}
	url, err := h.Files.Save(fh, storage.CategoryGallery)
	if err != nil {
		fileError(c, err)
		return
	}

	alt := c.PostForm("alt")
	if alt == "" {
		alt = storage.AltFromFilename(fh.Filename)
	}

	item := models.GalleryItem{
		Src:     url,
		Alt:     alt,
		EventID: event.ID,
		Year:    year,
		Type:    mediaType,
	}
	if err := h.Store.CreateGalleryItem(&item); err != nil {
		h.Files.Remove(url)
		log.Error().Err(err).Msg("error creando elemento de galería")
		utils.ServerError(c)
		return
	}
	item.Event = event

	utils.Created(c, "Elemento añadido a la galería", gin.H{"item": mappers.GalleryItemToResponse(item)})
}

// DeleteGalleryItem elimina la fila y borra el archivo con mejor esfuerzo.
func (h *Handler) DeleteGalleryItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.Store.GetGalleryItem(id)
	if err != nil {
		storeError(c, err, "Elemento no encontrado")
		return
	}

	if err := h.Store.DeleteGalleryItem(id); err != nil {
		storeError(c, err, "Elemento no encontrado")
		return
	}
	h.Files.Remove(item.Src)

	utils.OK(c, "Elemento eliminado de la galería", nil)
}

// BulkCreateGallery procesa varios archivos con metadatos compartidos. Cada
// archivo se trata de forma independiente: los fallos se acumulan en una lista
// en lugar de abortar el lote.
func (h *Handler) BulkCreateGallery(c *gin.Context) {
	event, year, mediaType, ok := h.galleryForm(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequest(c, "Formulario multipart inválido")
		return
	}
	files := form.File["files[]"]
	if len(files) == 0 {
		utils.BadRequest(c, "Debe subir al menos un archivo")
		return
	}

	successful, failed := h.Importer.Import(files, event.ID, year, mediaType)

	utils.Created(c, fmt.Sprintf("%d archivos subidos exitosamente", len(successful)), gin.H{
		"successful":    successful,
		"failed":        failed,
		"total":         len(files),
		"success_count": len(successful),
		"failed_count":  len(failed),
	})
}
