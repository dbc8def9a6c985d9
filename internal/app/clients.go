package app

import (
	"os"
	"strings"

	redisclient "github.com/feelbite/moodmenu-backend/internal/clients/redis"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

type Clients struct {
	Prompts redisclient.PromptStore
}

// wireClients prefers redis for reflection prompt timers so they survive
// restarts; without REDIS_ADDR the in-process store keeps local development
// dependency-free.
func wireClients(log *logger.Logger) Clients {
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		prompts, err := redisclient.NewPromptStore(log)
		if err == nil {
			return Clients{Prompts: prompts}
		}
		log.Warn("redis unavailable, using in-memory prompt store", "error", err)
	}
	return Clients{Prompts: redisclient.NewMemoryPromptStore()}
}
