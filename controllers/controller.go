// Package controllers implementa los handlers HTTP del API. Cada handler hace
// como mucho una operación de lectura o escritura contra la capa de datos.
package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/josechaverradev-cyber/quibdo/services"
	"github.com/josechaverradev-cyber/quibdo/storage"
	"github.com/josechaverradev-cyber/quibdo/store"
	"github.com/josechaverradev-cyber/quibdo/utils"
)

type Handler struct {
	Store     store.Store
	Files     *storage.FileStore
	Importer  *services.GalleryImporter
	JWTSecret []byte

	// Usuario usado cuando el login no envía username.
	AdminUsername string
}

func NewHandler(st store.Store, files *storage.FileStore, jwtSecret []byte, adminUsername string) *Handler {
	return &Handler{
		Store:         st,
		Files:         files,
		Importer:      &services.GalleryImporter{Store: st, Files: files},
		JWTSecret:     jwtSecret,
		AdminUsername: adminUsername,
	}
}

// idParam lee el :id de la ruta. Devuelve false (y responde 400) si no es un
// entero positivo.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Identificador inválido")
		return 0, false
	}
	return uint(id), true
}

// fileError clasifica los fallos al guardar un archivo: los de validación son
// error del cliente, el resto error del servidor.
func fileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrEmptyFilename),
		errors.Is(err, storage.ErrDisallowedType),
		errors.Is(err, storage.ErrUnknownCategory):
		utils.BadRequest(c, err.Error())
	default:
		log.Error().Err(err).Msg("error guardando archivo")
		utils.ServerError(c)
	}
}

func storeError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, notFoundMsg)
		return
	}
	log.Error().Err(err).Msg("error de base de datos")
	utils.ServerError(c)
}
