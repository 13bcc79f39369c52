package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/config"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/database"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/contract"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/service"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/handlers"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/pkg/logger"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/storage/file"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/storage/memory"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/telegram"
	"github.com/CodeByArtem/telegram-birthday-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog := logger.New("birthday-bot", cfg.Logger)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %q: %v", cfg.Timezone, err)
	}

	storage, cleanup, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer cleanup()

	telegramClient := telegram.NewClient(cfg.TelegramBotToken)

	services := service.NewInstance(storage, telegramClient, service.SchedulerConfig{
		NotifyTime: cfg.NotifyTime,
		Location:   location,
		ChatID:     cfg.BirthdayChatID,
		ImageURL:   cfg.ImageURL,
	}, appLog)

	handler := handlers.New(telegramClient, services.Roster, cfg.WebhookSecret, cfg.AdminUsernames, location, appLog)

	mux := http.NewServeMux()
	mux.HandleFunc("/telegram/webhook", handler.HandleWebhook)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
	appLog.Info("server stopped")
}

// buildStorage picks the roster backing from the configured driver.
func buildStorage(cfg *config.Config) (contract.PersonStorage, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageNone:
		return memory.New(), func() {}, nil

	case config.StorageFile:
		s, err := file.New(cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil

	case config.StorageSQLite:
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return database.NewPersonStorage(db), func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
