package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"promokit/config"
	"promokit/db"
	"promokit/handlers"
	"promokit/middleware"
	"promokit/services"
)

func runMigrations() {
	sqlBytes, err := os.ReadFile("schema.sql")
	if err != nil {
		config.Log.Fatal("Failed to read schema.sql: ", err)
	}

	if _, err := db.GetDB().Exec(string(sqlBytes)); err != nil {
		config.Log.Fatal("Failed to apply schema: ", err)
	}
	config.Log.Info("Database schema verified")
}

// newCounterStore picks the limiter backend: shared Redis window when
// REDIS_URL is set, otherwise a process-local map with a periodic sweep.
func newCounterStore() services.CounterStore {
	if url := os.Getenv("REDIS_URL"); url != "" {
		store, err := services.NewRedisCounterStore(url)
		if err == nil {
			config.Log.Info("Rate limiter backed by Redis")
			return store
		}
		config.Log.WithError(err).Warn("Redis unavailable, falling back to in-memory rate limiter")
	}

	store := services.NewMemoryCounterStore()
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			store.Sweep()
		}
	}()
	return store
}

func main() {
	_ = godotenv.Load()
	config.InitLogger()

	if err := db.InitDB(); err != nil {
		config.Log.Fatal("Failed to connect to database: ", err)
	}
	runMigrations()

	if err := services.InitStorage(); err != nil {
		config.Log.Fatal("Failed to configure object storage: ", err)
	}

	features := config.LoadFeatures()
	config.Log.Infof(
		"Features: auth=%v billing=%v slack=%v smartfill=%v",
		features.AuthEnabled,
		features.BillingEnabled,
		features.SlackEnabled,
		features.SmartFillEnabled,
	)

	limiter := newCounterStore()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Signed inbound integrations; these verify their own payloads.
	r.POST("/api/webhooks/billing", handlers.BillingWebhook)
	r.POST("/api/slack/command", handlers.SlackCommand)

	// Public generation surface, gated by the fixed-window limiter. The
	// template lookup inside decides whether anonymous access is allowed.
	public := r.Group("/api", middleware.RateLimit(limiter))
	{
		public.POST("/render", handlers.RenderImage)
		public.POST("/render/pack", handlers.RenderPack)
		public.POST("/smartfill", handlers.SmartFill)
		public.POST("/url2image", handlers.URLToFields)
		public.GET("/templates/:id", handlers.GetTemplate)
	}

	r.POST("/api/auth/signup", handlers.Signup)
	r.POST("/api/auth/login", handlers.Login)

	api := r.Group("/api", middleware.AuthRequired())
	{
		api.GET("/me", handlers.Me)

		api.POST("/templates", handlers.CreateTemplate)
		api.GET("/templates", handlers.ListTemplates)
		api.DELETE("/templates/:id", handlers.DeleteTemplate)

		api.POST("/brandkits", handlers.CreateBrandKit)
		api.GET("/brandkits", handlers.ListBrandKits)
		api.DELETE("/brandkits/:id", handlers.DeleteBrandKit)

		api.GET("/renders", handlers.ListRenders)
		api.GET("/billing/subscription", handlers.GetSubscription)
		api.GET("/billing/usage", handlers.GetUsageOverview)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Log.Info("Server starting on port " + port)
	if err := r.Run(":" + port); err != nil {
		config.Log.Fatal(err)
	}
}
