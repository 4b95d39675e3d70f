package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Todas las respuestas usan el sobre {status: "success"|"error", ...}.

func Success(c *gin.Context, code int, message string, payload gin.H) {
	body := gin.H{"status": "success"}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(code, body)
}

func OK(c *gin.Context, message string, payload gin.H) {
	Success(c, http.StatusOK, message, payload)
}

func Created(c *gin.Context, message string, payload gin.H) {
	Success(c, http.StatusCreated, message, payload)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ServerError responde 500 con un mensaje genérico. El detalle del error
// interno se queda en los logs, no en el cliente.
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Error interno del servidor")
}
