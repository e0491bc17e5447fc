package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/stoicaf/stoicaf-backend/internal/config"
	"github.com/stoicaf/stoicaf-backend/internal/database"
	"github.com/stoicaf/stoicaf-backend/internal/handlers"
	"github.com/stoicaf/stoicaf-backend/internal/middleware"
	"github.com/stoicaf/stoicaf-backend/internal/routes"
	"github.com/stoicaf/stoicaf-backend/internal/services"
	"github.com/stoicaf/stoicaf-backend/internal/store"
	"github.com/stoicaf/stoicaf-backend/pkg/utils"
)

// maskURI hides the password portion of a connection string for logging.
func maskURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at == -1 {
		return uri
	}
	head := uri[:at]
	if colon := strings.LastIndex(head, ":"); colon != -1 && strings.Contains(head, "://") {
		scheme := strings.Index(head, "://")
		if colon > scheme+3 {
			return head[:colon] + ":***" + uri[at:]
		}
	}
	return uri
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}
	cfg := config.Load()

	if cfg.EncryptionKey == "" {
		log.Warn("ENCRYPTION_KEY not set; recovery email encryption disabled. Generate one with: openssl rand -base64 32")
	} else if _, err := utils.GetEncryptionKey(); err != nil {
		log.Warn("ENCRYPTION_KEY is invalid; recovery email encryption disabled", "error", err)
	}

	log.Info("Connecting to PostgreSQL", "uri", maskURI(cfg.PostgresURI))
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	defer database.DisconnectPostgres()

	log.Info("Connecting to Redis")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis", "error", err)
	}
	defer database.DisconnectRedis()

	log.Info("Connecting to MongoDB", "uri", maskURI(cfg.MongoURI))
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer database.Disconnect()

	entryStore := store.NewEntryStore(database.DB)
	if err := entryStore.EnsureIndexes(context.Background()); err != nil {
		log.Warn("Failed to ensure entry indexes", "error", err)
	}
	handlers.InitJournal(cfg, entryStore)

	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		if err := handlers.InitCloudinaryService(cfg); err != nil {
			log.Warn("Failed to initialize Cloudinary; uploads disabled", "error", err)
		}
	} else {
		log.Info("Cloudinary credentials not found; uploads disabled")
	}

	// Bridge Redis pub/sub into the in-process insights hub so refresh
	// events reach sockets on every instance, not just the one that
	// handled the mutation.
	services.StartRedisInsightsSubscriber(context.Background())

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(cfg.AllowedHost) {
			r.Use(mw)
		}
		log.Info("Production security enabled", "allowed_host", cfg.AllowedHost)
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r)

	log.Info("Stoic AF backend running", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server", "error", err)
	}
}
