package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pilgrim/internal/config"
	"github.com/jask/pilgrim/internal/database"
	"github.com/jask/pilgrim/internal/database/repository"
	"github.com/jask/pilgrim/internal/itinerary"
	"github.com/jask/pilgrim/internal/prefs"
	"github.com/jask/pilgrim/internal/service"
	"github.com/jask/pilgrim/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
	}

	// the alt screen owns stdout, so logs go to a file next to the data
	logDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.Fatalf("mkdir data dir: %v", err)
	}
	logFile, err := tea.LogToFile(filepath.Join(logDir, "pilgrim.log"), "pilgrim")
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer logFile.Close()

	slot, closeSlot, err := openSlot(cfg)
	if err != nil {
		log.Fatalf("open slot: %v", err)
	}
	defer closeSlot()

	store := itinerary.New(ctx, slot,
		itinerary.WithLogger(slog.Default().With("backend", cfg.Store.Backend, "key", cfg.Store.Key)),
		itinerary.WithLocation(loc),
		itinerary.WithSaveTimeout(cfg.Store.SaveTimeout),
	)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			log.Printf("close itinerary: %v", err)
		}
	}()

	planner := &service.Planner{Itinerary: store}
	maintenance := &service.MaintenanceService{Itinerary: store}

	p := tea.NewProgram(tui.New(ctx, cfg, store,
		tui.Services{Planner: planner, Maintenance: maintenance},
		loc,
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func openSlot(cfg config.Config) (itinerary.Slot, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendFile:
		path := cfg.Store.FilePath
		if path == "" {
			var err error
			if path, err = prefs.DefaultSlotPath(cfg.Store.Key); err != nil {
				return nil, nil, err
			}
		}
		slot, err := prefs.NewFileSlot(path)
		if err != nil {
			return nil, nil, err
		}
		return slot, func() {}, nil
	default:
		if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open db: %w", err)
		}
		return repository.NewSlotRepo(db).Bind(cfg.Store.Key), func() { _ = db.Close() }, nil
	}
}
