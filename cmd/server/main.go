package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/accountkeeper/internal/server"
	"github.com/dmitrijs2005/accountkeeper/internal/server/config"
)

func main() {

	cfg := config.LoadConfig()
	if cfg.SecretKey == "" {
		log.Fatal("JWT secret is not set (JWT_SECRET or -s)")
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	app.Run(context.Background())

}
