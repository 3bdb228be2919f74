package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlanJumabayev/SafeDocs/internal/chat"
	"github.com/AlanJumabayev/SafeDocs/internal/documents"
	"github.com/AlanJumabayev/SafeDocs/internal/extract"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/config"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/server"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/storage/db"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/storage/object"
	localstore "github.com/AlanJumabayev/SafeDocs/internal/shared/storage/object/local"
	s3store "github.com/AlanJumabayev/SafeDocs/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	DocumentsRepo    documents.Repo
	ChatRepo         chat.Repo
	DocumentsService *documents.Service
	ChatService      *chat.Service
	DocumentsHandler *documents.Handler
	ChatHandler      *chat.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		DocumentsHandler: app.DocumentsHandler,
		ChatHandler:      app.ChatHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	var docRepo documents.Repo
	var chatRepo chat.Repo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		chatRepo = chat.NewPGRepo(app.DB)
	} else {
		docRepo = documents.NewMemoryRepo()
		chatRepo = chat.NewMemoryRepo()
	}

	app.DocumentsRepo = docRepo
	app.ChatRepo = chatRepo
	app.DocumentsService = &documents.Service{
		Store:     app.Store,
		Repo:      docRepo,
		Extractor: extract.New(app.Config.TesseractPath),
	}
	app.ChatService = chat.NewService(docRepo, chatRepo)
	app.DocumentsHandler = documents.NewHandler(app.DocumentsService)
	app.ChatHandler = chat.NewHandler(app.ChatService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
