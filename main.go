package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/josechaverradev-cyber/quibdo/config"
	"github.com/josechaverradev-cyber/quibdo/controllers"
	"github.com/josechaverradev-cyber/quibdo/database"
	"github.com/josechaverradev-cyber/quibdo/middlewares"
	"github.com/josechaverradev-cyber/quibdo/routes"
	"github.com/josechaverradev-cyber/quibdo/storage"
	"github.com/josechaverradev-cyber/quibdo/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("error migrando el esquema")
	}
	if err := database.Seed(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("error inicializando datos")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("no se pudo crear el directorio de subidas")
	}

	var limiter *middlewares.LoginLimiter
	if cfg.RedisAddr != "" {
		rdb, err := database.InitRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo conectar a Redis")
		}
		limiter = middlewares.NewLoginLimiter(rdb, cfg.MaxLoginAttempts)
	}

	h := controllers.NewHandler(
		store.NewGormStore(db),
		storage.NewFileStore(cfg.UploadDir),
		[]byte(cfg.JWTSecret),
		cfg.AdminUsername,
	)

	r := routes.SetupRouter(h, limiter, cfg)

	log.Info().Str("port", cfg.Port).Msg("servidor iniciado")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("el servidor terminó con error")
	}
}
