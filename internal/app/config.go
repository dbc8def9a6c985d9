package app

import (
	"github.com/feelbite/moodmenu-backend/internal/platform/envutil"
)

type Config struct {
	ServiceName    string
	Environment    string
	Version        string
	AdminJWTSecret string
}

func LoadConfig() Config {
	return Config{
		ServiceName:    envutil.String("SERVICE_NAME", "moodmenu"),
		Environment:    envutil.String("APP_ENV", "development"),
		Version:        envutil.String("APP_VERSION", "dev"),
		AdminJWTSecret: envutil.String("ADMIN_JWT_SECRET", ""),
	}
}
