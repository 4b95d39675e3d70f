package services

import (
	"mime/multipart"

	"github.com/josechaverradev-cyber/quibdo/dto"
	"github.com/josechaverradev-cyber/quibdo/models"
	"github.com/josechaverradev-cyber/quibdo/storage"
	"github.com/josechaverradev-cyber/quibdo/store"
)

// GalleryImporter procesa cargas masivas de galería archivo por archivo.
type GalleryImporter struct {
	Store store.Store
	Files *storage.FileStore
}

// Import guarda cada archivo y crea su fila de galería. Cada fila se confirma
// por separado: los éxitos reportados son durables aunque un archivo posterior
// falle. El texto alternativo se deriva del nombre saneado del archivo.
func (g *GalleryImporter) Import(files []*multipart.FileHeader, eventID uint, year int, mediaType models.MediaType) ([]dto.BulkItemResult, []dto.BulkItemFailure) {
	successful := []dto.BulkItemResult{}
	failed := []dto.BulkItemFailure{}

	for _, fh := range files {
		url, err := g.Files.SaveUnique(fh, storage.CategoryGallery)
		if err != nil {
			failed = append(failed, dto.BulkItemFailure{Filename: fh.Filename, Error: err.Error()})
			continue
		}

		alt := storage.AltFromFilename(fh.Filename)
		item := &models.GalleryItem{
			Src:     url,
			Alt:     alt,
			EventID: eventID,
			Year:    year,
			Type:    mediaType,
		}
		if err := g.Store.CreateGalleryItem(item); err != nil {
			// El archivo ya está en disco; se retira para no dejar huérfanos.
			g.Files.Remove(url)
			failed = append(failed, dto.BulkItemFailure{Filename: fh.Filename, Error: "no se pudo guardar el registro"})
			continue
		}

		successful = append(successful, dto.BulkItemResult{Filename: fh.Filename, Alt: alt})
	}

	return successful, failed
}
