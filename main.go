package main

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/little-lemon/config"
	"github.com/yeremiapane/little-lemon/database"
	"github.com/yeremiapane/little-lemon/live"
	"github.com/yeremiapane/little-lemon/router"
	"github.com/yeremiapane/little-lemon/services"
	"github.com/yeremiapane/little-lemon/utils"
)

func init() {
	utils.InitLogger()
}

func main() {
	cfg := config.Load()
	utils.SetLogLevel(cfg.LogLevel)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r, cleanup, err := newApp(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to start: %v", err)
	}
	defer cleanup()

	utils.InfoLogger.Printf("Listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// newApp opens the menu database, migrates it, opens the profile store and
// wires the router. cleanup closes everything newApp opened.
func newApp(cfg *config.Config) (*gin.Engine, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	menuDB, err := config.InitDB(cfg.MenuDBPath)
	if err != nil {
		return nil, cleanup, err
	}
	if sqlDB, err := menuDB.DB(); err == nil {
		closers = append(closers, func() { sqlDB.Close() })
	}

	if err := database.EnsureSchema(menuDB); err != nil {
		cleanup()
		return nil, func() {}, err
	}
	utils.InfoLogger.Println("Menu schema ready.")

	store, closeStore, err := openProfileStore(cfg)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	closers = append(closers, closeStore)

	r := router.SetupRouter(router.Dependencies{
		Menu:           services.NewMenuService(menuDB),
		Profiles:       services.NewProfileService(store),
		Hub:            live.NewHub(),
		QR:             services.DefaultQRGenerator{BaseURL: cfg.ShareBaseURL},
		UploadDir:      cfg.UploadDir,
		AllowedOrigin:  cfg.AllowedOrigin,
		SearchDebounce: cfg.Search.Debounce,
	})

	return r, cleanup, nil
}

func openProfileStore(cfg *config.Config) (services.KeyValueStore, func(), error) {
	switch cfg.Profile.Backend {
	case config.ProfileBackendRedis:
		client, err := config.InitRedis(cfg.Profile)
		if err != nil {
			return nil, nil, err
		}
		utils.InfoLogger.Printf("Profile store: redis at %s", cfg.Profile.RedisAddr)
		return services.NewRedisKVStore(client, cfg.Profile.RedisPrefix), func() { client.Close() }, nil
	default:
		db, err := config.InitDB(cfg.Profile.DBPath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		store, err := services.NewSQLiteKVStore(db)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		utils.InfoLogger.Printf("Profile store: sqlite at %s", cfg.Profile.DBPath)
		return store, closeDB, nil
	}
}
