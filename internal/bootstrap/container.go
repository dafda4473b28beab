package bootstrap

import (
	"log"
	"time"

	"alpacapc-be/internal/config"
	"alpacapc-be/internal/controller"
	"alpacapc-be/internal/pkg/logger"
	"alpacapc-be/internal/service"
	"alpacapc-be/pkg/catalog"
	"alpacapc-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Shared infrastructure (exposed for main.go and health checks)
	CatalogStore   *catalog.Store
	CatalogWatcher *catalog.Watcher
	Logger         logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Catalog (loaded once, shared read-only by every request)
	catalogStore := catalog.NewStore(cfg.Catalog.Path, sysLogger)

	var watcher *catalog.Watcher
	if cfg.Catalog.Watch {
		w, err := catalog.NewWatcher(catalogStore, sysLogger)
		if err != nil {
			log.Printf("[WARN] Catalog watcher unavailable: %v", err)
		} else {
			watcher = w
		}
	}

	// 3. Generation collaborator
	provider, err := factory.NewProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Services
	chatService := service.NewChatService(
		catalogStore,
		provider,
		sysLogger,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
		time.Duration(cfg.Ai.CacheTTLSecs)*time.Second,
	)

	// 5. Controllers
	return &Container{
		ChatController: controller.NewChatController(chatService),
		CatalogStore:   catalogStore,
		CatalogWatcher: watcher,
		Logger:         sysLogger,
	}
}
