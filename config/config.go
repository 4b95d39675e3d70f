package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config reúne toda la configuración del servicio. Se carga desde variables de
// entorno, con un .env opcional para desarrollo local.
type Config struct {
	Port        string `env:"PORT" envDefault:"5000"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"root:123456@tcp(localhost:3306)/quibdo?charset=utf8mb4&parseTime=True&loc=Local"`
	UploadDir   string `env:"UPLOAD_DIR" envDefault:"uploads"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"dist"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"mmq2025admin"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"cambia-este-secreto-en-produccion"`

	// Limitador de intentos de login. Vacío = deshabilitado.
	RedisAddr        string `env:"REDIS_ADDR"`
	RedisPassword    string `env:"REDIS_PASSWORD"`
	MaxLoginAttempts int64  `env:"MAX_LOGIN_ATTEMPTS" envDefault:"10"`
}

func Load() (*Config, error) {
	// .env es opcional; en producción las variables vienen del entorno.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
