package main

import (
	"context"
	stdlog "log"
	"net/http"
	"time"

	"pulsenet-backend/internal/config"
	"pulsenet-backend/internal/core"
	"pulsenet-backend/internal/db"
	httpserver "pulsenet-backend/internal/http"
	"pulsenet-backend/internal/llm"
	"pulsenet-backend/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("configuration error: %v", err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		stdlog.Fatalf("failed to construct logger: %v", err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("failed to connect to document store", "error", err)
	}
	store := db.NewStore(database)
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatal("failed to create indexes", "error", err)
	}

	llmClient, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		log.Fatal("failed to construct completion client", "error", err)
	}

	analysis := core.NewAnalysisService(llmClient, store, log)
	chat := core.NewChatService(llmClient, log)
	srv := httpserver.NewServer(analysis, chat, store, log)

	addr := ":" + cfg.Port
	log.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, srv); err != nil {
		log.Fatal("server error", "error", err)
	}
}
