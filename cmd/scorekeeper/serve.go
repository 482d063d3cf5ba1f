package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dicemaster/scorekeeper/internal/common/clock"
	"github.com/dicemaster/scorekeeper/internal/common/uuid"
	"github.com/dicemaster/scorekeeper/internal/config"
	"github.com/dicemaster/scorekeeper/internal/dice"
	"github.com/dicemaster/scorekeeper/internal/handlers/httpapi"
	"github.com/dicemaster/scorekeeper/internal/repositories/gamestate"
	gameService "github.com/dicemaster/scorekeeper/internal/services/game"
	"github.com/dicemaster/scorekeeper/internal/services/messaging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scorekeeper HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return err
	}

	stateRepo, err := gamestate.NewRedis(&gamestate.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return err
	}

	hub := httpapi.NewHub()

	svc, err := gameService.New(context.Background(), &gameService.Config{
		TableID:       cfg.TableID,
		StateRepo:     stateRepo,
		DiceRoller:    dice.New(&dice.Config{}),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		EventSink:     hub,
	})
	if err != nil {
		return err
	}

	messages, err := messaging.NewService(&messaging.ServiceConfig{
		DefaultLocale: cfg.Locale,
	})
	if err != nil {
		return err
	}

	handler, err := httpapi.New(&httpapi.Config{
		GameService: svc,
		Messaging:   messages,
		Locale:      cfg.Locale,
		Hub:         hub,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	go func() {
		log.Printf("scorekeeper listening on %s (table %s)", cfg.HTTPAddr, cfg.TableID)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for a shutdown signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	log.Println("Shutting down...")
	hub.Close()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	return server.Shutdown(shutdownCtx)
}
