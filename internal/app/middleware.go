package app

import (
	httpMW "github.com/feelbite/moodmenu-backend/internal/http/middleware"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

type Middleware struct {
	AdminAuth *httpMW.AdminAuth
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	return Middleware{
		AdminAuth: httpMW.NewAdminAuth(log, cfg.AdminJWTSecret),
	}
}
