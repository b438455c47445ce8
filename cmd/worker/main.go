package main

import (
	"context"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"webmusic-backend/internal/config"
	"webmusic-backend/internal/infrastructure/database"
	"webmusic-backend/internal/infrastructure/queue"
	"webmusic-backend/pkg/logger"
)

// The worker runs the periodic counter reconciliation: the API computes
// like and comment counts live, and this process keeps the stored
// columns in agreement with the truth tables.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.App.Environment)

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(context.Background()); err != nil {
		logger.Error("Failed to connect to database", err)
		os.Exit(1)
	}
	defer db.Close()

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register("*/10 * * * *", queue.NewReconcileCountersTask()); err != nil {
		logger.Error("Failed to register schedule", err)
		os.Exit(1)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("Scheduler stopped", err)
			os.Exit(1)
		}
	}()

	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 1})

	reconciler := queue.NewCounterReconciler(db.Pool)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeReconcileCounters, reconciler.HandleReconcileCounters)

	logger.Info("Starting worker", map[string]interface{}{"env": cfg.App.Environment})
	if err := srv.Run(mux); err != nil {
		logger.Error("Worker stopped", err)
		os.Exit(1)
	}
}
