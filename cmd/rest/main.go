package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"agentic-ai-be/internal/bootstrap"
	"agentic-ai-be/internal/config"
	"agentic-ai-be/internal/server"
	"agentic-ai-be/internal/tracer"
	"agentic-ai-be/pkg/database"
)

func main() {
	// 1. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server, release the store connection on shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		if err := database.Close(gormDB); err != nil {
			log.Printf("DB close error: %v", err)
		}
		container.Logger.Sync()
	}()

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
