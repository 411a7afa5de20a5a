package main

import (
	"context"
	"log"
	"net/http"

	"github.com/devfolio/portfolio-backend/config"
	"github.com/devfolio/portfolio-backend/internal/auth"
	"github.com/devfolio/portfolio-backend/internal/bootstrap"
	"github.com/devfolio/portfolio-backend/internal/comments/publisher"
	"github.com/devfolio/portfolio-backend/internal/comments/repository"
	"github.com/devfolio/portfolio-backend/internal/comments/service"
	"github.com/devfolio/portfolio-backend/internal/vault"
)

func main() {
	// Secrets first, so config.Load sees them. An unreachable Vault is
	// survivable as long as the environment already carries everything.
	if err := vault.LoadSecrets(http.DefaultClient); err != nil {
		log.Printf("[vault] secrets unavailable, using environment variables: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.RabbitMQ.URL == "" {
		log.Fatal("RABBITMQ_URL is required")
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

	pub, err := publisher.NewRabbitMQPublisher(cfg.RabbitMQ.URL)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer pub.Close()

	collection := client.Database(cfg.DatabaseName("comments")).Collection("comments")
	repo := repository.NewMongoCommentRepository(collection)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Printf("comment indexes: %v", err)
	}

	r := bootstrap.BuildCommentsRouter(bootstrap.CommentsRouterDeps{
		ServiceName: "comments-service",
		Version:     cfg.App.Version,
		Mongo:       client,
		Verifier:    auth.NewVerifier(cfg.Auth.JWTSecret),
		Comments:    service.NewCommentService(repo, pub),
	})

	log.Printf("comments service listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
