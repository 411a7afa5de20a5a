package main

import (
	"context"
	"log"
	"net/http"

	"github.com/devfolio/portfolio-backend/config"
	"github.com/devfolio/portfolio-backend/internal/auth"
	"github.com/devfolio/portfolio-backend/internal/bootstrap"
	"github.com/devfolio/portfolio-backend/internal/vault"
)

func main() {
	if err := vault.LoadSecrets(http.DefaultClient); err != nil {
		log.Printf("[vault] secrets unavailable, using environment variables: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Auth.AuthorizedUserID == "" {
		log.Print("AUTHORIZED_USER_ID not set; project mutations will be rejected")
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	client, err := bootstrap.OpenMongo(ctx, bootstrap.MongoOptions{URI: cfg.Mongo.URI})
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	r := bootstrap.BuildProjectsRouter(bootstrap.ProjectsRouterDeps{
		ServiceName:      "projects-service",
		Version:          cfg.App.Version,
		Mongo:            client,
		Database:         cfg.DatabaseName("projects"),
		Verifier:         auth.NewVerifier(cfg.Auth.JWTSecret),
		AuthorizedUserID: cfg.Auth.AuthorizedUserID,
	})

	log.Printf("projects service listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
