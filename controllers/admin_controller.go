package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/josechaverradev-cyber/quibdo/dto"
	"github.com/josechaverradev-cyber/quibdo/store"
	"github.com/josechaverradev-cyber/quibdo/utils"
)

// AdminLogin verifica la contraseña contra el hash almacenado y emite un token
// de sesión. El frontend antiguo solo envía password; el username por defecto
// viene de la configuración.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Debe indicar la contraseña")
		return
	}

	username := req.Username
	if username == "" {
		username = h.AdminUsername
	}

	user, err := h.Store.AdminUserByUsername(username)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error().Err(err).Msg("error consultando usuario administrador")
			utils.ServerError(c)
			return
		}
		utils.Error(c, http.StatusUnauthorized, "Contraseña incorrecta")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Error(c, http.StatusUnauthorized, "Contraseña incorrecta")
		return
	}

	token, err := utils.GenerateToken(h.JWTSecret, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("error generando token")
		utils.ServerError(c)
		return
	}

	utils.OK(c, "Login exitoso", gin.H{"isAdmin": true, "token": token})
}
