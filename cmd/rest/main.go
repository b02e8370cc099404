package main

import (
	"context"
	"log"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/bootstrap"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/config"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Persister
	go func() {
		log.Println("Background: Starting Session Persister...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Persister Error: %v", err)
		}
	}()

	// 4. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
