package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hartmannbarbearia/booking-api/internal/cache"
	"github.com/hartmannbarbearia/booking-api/internal/config"
	dbpkg "github.com/hartmannbarbearia/booking-api/internal/db"
	"github.com/hartmannbarbearia/booking-api/internal/middleware"
	"github.com/hartmannbarbearia/booking-api/internal/notifications"
	"github.com/hartmannbarbearia/booking-api/internal/routes"
	"github.com/hartmannbarbearia/booking-api/internal/storage"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// ------------------------------
	// Cache (Redis opcional)
	// ------------------------------
	var c cache.Cache = cache.NewNoop()
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisCache.Ping(ctx)
		cancel()
		if err != nil {
			log.Printf("redis indisponível (%v), seguindo sem cache", err)
		} else {
			c = redisCache
		}
	}

	// ------------------------------
	// E-mail (Resend opcional)
	// ------------------------------
	var mailer notifications.Mailer = notifications.NoopMailer{}
	if cfg.ResendAPIKey != "" {
		mailer = notifications.NewResendClient(cfg.ResendAPIKey, cfg.EmailFrom)
	}

	// ------------------------------
	// Storage (S3 opcional: logo/avatares)
	// ------------------------------
	var uploader *storage.Uploader
	if cfg.StorageAccessKey != "" {
		uploader = storage.NewUploader(storage.NewClient(cfg), cfg)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, c, mailer, uploader)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
