package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/pnicewicz421/big-picture/internal/channels"
	"github.com/pnicewicz421/big-picture/internal/handlers"
	"github.com/pnicewicz421/big-picture/internal/rooms"
	"github.com/pnicewicz421/big-picture/pkg/common/env"
)

type Application struct {
	cfg      *Config
	logger   *slog.Logger
	manager  *rooms.Manager
	gr       *channels.GlobalRooms
	handlers *handlers.HandlerRepo
}

type Config struct {
	Port          int
	RoomTTL       time.Duration
	SweepInterval time.Duration
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := &Config{
		Port:          env.GetInt("PORT", 8080),
		RoomTTL:       time.Duration(env.GetInt("ROOM_TTL_MINUTES", 60)) * time.Minute,
		SweepInterval: time.Duration(env.GetInt("SWEEP_INTERVAL_MINUTES", 30)) * time.Minute,
	}

	// log to os standard output
	slogHandler := tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug, AddSource: true})
	logger := slog.New(slogHandler)
	slog.SetDefault(logger) // Set default for any library using slog's default logger

	manager := rooms.NewManager(logger)
	gr := channels.NewGlobalRooms(logger)
	handlerRepo := handlers.NewHandlerRepo(logger, gr, manager)

	app := &Application{
		cfg:      cfg,
		logger:   logger,
		manager:  manager,
		gr:       gr,
		handlers: handlerRepo,
	}

	// Periodic cleanup of idle rooms and their event streams.
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()

		for range ticker.C {
			removed := manager.Sweep(cfg.RoomTTL)
			for _, roomID := range removed {
				gr.CloseRoom(roomID)
			}
			if len(removed) > 0 {
				logger.Info("cleaned up idle rooms", "count", len(removed))
			}
		}
	}()

	err = app.run()
	if err != nil {
		// Using standard log here to be absolutely sure it prints if slog itself had an issue
		log.Printf("CRITICAL ERROR from run(): %v\n", err)
		currentTrace := string(debug.Stack())
		log.Printf("Trace: %s\n", currentTrace)
		slog.Error("CRITICAL ERROR from run()", "error", err.Error(), "trace", currentTrace)
		os.Exit(1)
	}
}

func (app *Application) run() error {
	addr := fmt.Sprintf(":%d", app.cfg.Port)
	app.logger.Info("server starting", "addr", addr)
	return http.ListenAndServe(addr, app.routes())
}
