package routes

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/josechaverradev-cyber/quibdo/config"
	"github.com/josechaverradev-cyber/quibdo/controllers"
	"github.com/josechaverradev-cyber/quibdo/middlewares"
	"github.com/josechaverradev-cyber/quibdo/utils"
)

// SetupRouter arma el API, el servido de archivos subidos y el fallback del
// bundle del frontend.
func SetupRouter(h *controllers.Handler, limiter *middlewares.LoginLimiter, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// El panel de administración se sirve desde otro origen durante el
	// desarrollo, así que el API acepta cualquier origen.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	{
		// Lecturas públicas
		api.GET("/events", h.ListEvents)
		api.GET("/gallery", h.ListGallery)
		api.GET("/hero-settings", h.GetHeroSettings)
		api.GET("/sponsors", h.ListSponsors)
		api.GET("/event-info", h.GetEventInfo)
		api.GET("/stats", h.GetStats)

		api.POST("/admin/login", limiter.Middleware(), h.AdminLogin)

		// Escrituras del panel de administración
		admin := api.Group("", middlewares.AdminAuth(h.JWTSecret))
		{
			admin.POST("/events", h.CreateEvent)
			admin.PUT("/events/:id", h.UpdateEvent)
			admin.DELETE("/events/:id", h.DeleteEvent)

			admin.POST("/gallery", h.CreateGalleryItem)
			admin.DELETE("/gallery/:id", h.DeleteGalleryItem)
			admin.POST("/gallery/bulk", h.BulkCreateGallery)

			admin.PUT("/hero-settings/video", h.UpdateHeroVideo)
			admin.PUT("/hero-settings/event-date", h.UpdateHeroEventDate)

			admin.POST("/sponsors", h.CreateSponsor)
			admin.DELETE("/sponsors/:id", h.DeleteSponsor)

			admin.POST("/upload/:category", h.UploadFile)
		}
	}

	// Archivos subidos
	r.Static("/uploads", cfg.UploadDir)

	// Todo lo demás es el bundle del frontend, con fallback a index.html para
	// el enrutado del lado del cliente. Las rutas /api desconocidas responden
	// JSON 404.
	r.NoRoute(spaFallback(cfg.StaticDir))

	return r
}

func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if reqPath == "/api" || strings.HasPrefix(reqPath, "/api/") {
			utils.NotFound(c, "Recurso no encontrado")
			return
		}

		// Clean con raíz anclada elimina cualquier "..".
		full := filepath.Join(staticDir, path.Clean("/"+reqPath))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}

		utils.NotFound(c, "Frontend no construido o no encontrado")
	}
}
