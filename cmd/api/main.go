package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/rations-api/internal/application/usecase"
	"github.com/jhoicas/rations-api/internal/domain/entity"
	"github.com/jhoicas/rations-api/internal/domain/repository"
	"github.com/jhoicas/rations-api/internal/infrastructure/localstore"
	"github.com/jhoicas/rations-api/internal/infrastructure/memory"
	"github.com/jhoicas/rations-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/rations-api/internal/interfaces/http"
	"github.com/jhoicas/rations-api/pkg/config"
	"github.com/jhoicas/rations-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	store, err := newStore(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento local")
	}
	defer func() { _ = store.Close() }()

	adapter := storage.NewAdapter(store)
	if !adapter.IsAvailable() {
		// Se arranca igualmente: las lecturas degradan a vacío y las
		// escrituras fallan con error identificable.
		log.Warn().Msg("el medio de almacenamiento no está disponible")
	}

	catalogRepo := memory.NewCatalogRepository(entity.DefaultCatalog())
	customRepo := localstore.NewCustomAlimentRepository(adapter)
	rationRepo := localstore.NewRationRepository(adapter)
	compositeRepo := repository.NewCompositeAlimentRepository(catalogRepo, customRepo)

	alimentUC := usecase.NewAlimentUseCase(compositeRepo, customRepo)
	rationUC := usecase.NewRationUseCase(rationRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AlimentUC: alimentUC,
		RationUC:  rationUC,
		Adapter:   adapter,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando")
	if err := app.ShutdownWithTimeout(time.Second * 5); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}

// newStore elige el backend del medio local según configuración.
func newStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case "file":
		return storage.NewFileStore(cfg.Path)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewSQLiteStore(cfg.Path)
	}
}
