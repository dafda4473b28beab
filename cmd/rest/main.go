package main

import (
	"context"
	"log"

	"alpacapc-be/internal/bootstrap"
	"alpacapc-be/internal/config"
	"alpacapc-be/internal/server"
	"alpacapc-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 4. Start Background Services
	if container.CatalogWatcher != nil {
		go container.CatalogWatcher.Run(context.Background())
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
