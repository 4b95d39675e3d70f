package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/josechaverradev-cyber/quibdo/storage"
	"github.com/josechaverradev-cyber/quibdo/utils"
)

// UploadFile guarda un archivo en una de las categorías conocidas y devuelve
// su URL pública. La categoría nunca se usa como ruta libre del cliente.
func (h *Handler) UploadFile(c *gin.Context) {
	category := c.Param("category")
	if !storage.ValidCategory(category) {
		utils.BadRequest(c, "Categoría inválida")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "No se envió ningún archivo")
		return
	}

	url, err := h.Files.Save(fh, category)
	if err != nil {
		fileError(c, err)
		return
	}

	utils.Created(c, "Archivo subido exitosamente", gin.H{"url": url})
}
