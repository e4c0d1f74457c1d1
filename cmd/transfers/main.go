package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/visitgeorgia/transfers/internal/booking"
	"github.com/visitgeorgia/transfers/internal/currency"
	"github.com/visitgeorgia/transfers/internal/dispatch"
	"github.com/visitgeorgia/transfers/internal/location"
	"github.com/visitgeorgia/transfers/internal/preferences"
	"github.com/visitgeorgia/transfers/internal/pricing"
	"github.com/visitgeorgia/transfers/internal/vehicle"
	"github.com/visitgeorgia/transfers/pkg/common"
	"github.com/visitgeorgia/transfers/pkg/config"
	"github.com/visitgeorgia/transfers/pkg/email"
	"github.com/visitgeorgia/transfers/pkg/logger"
	"github.com/visitgeorgia/transfers/pkg/middleware"
	"github.com/visitgeorgia/transfers/pkg/redis"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load("transfers")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Preference store: Redis when configured, in-memory otherwise.
	var prefStore preferences.Store
	healthChecks := map[string]func() error{}
	if cfg.Redis.Enabled() {
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		prefStore = preferences.NewRedisStore(redisClient)
		healthChecks["redis"] = func() error {
			return redisClient.Ping(context.Background()).Err()
		}
		logger.Info("Connected to Redis", zap.String("addr", cfg.Redis.RedisAddr()))
	} else {
		prefStore = preferences.NewMemoryStore()
		logger.Info("Redis not configured, using in-memory preference store")
	}

	sender := newSender(cfg)
	if !sender.Configured() {
		logger.Warn("Email channel not configured, only chat submissions will be accepted")
	}

	pricingSvc := pricing.NewService()
	dispatcher := dispatch.NewDispatcher(pricingSvc, sender, cfg.Booking.WhatsAppPhone)

	chatLink := func(origin, dest location.Key, tier vehicle.Tier, quote *pricing.Quote) string {
		msg := booking.QuoteMessage(origin, dest, tier, quote)
		return booking.WhatsAppLink(cfg.Booking.WhatsAppPhone, msg)
	}

	currencyHandler := currency.NewHandler()
	locationHandler := location.NewHandler()
	vehicleHandler := vehicle.NewHandler()
	pricingHandler := pricing.NewHandler(pricingSvc, chatLink)
	dispatchHandler := dispatch.NewHandler(dispatcher)
	preferencesHandler := preferences.NewHandler(prefStore)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.SecurityHeaders())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", common.HealthCheck("transfers", version, healthChecks))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		currencyHandler.RegisterRoutes(api)
		locationHandler.RegisterRoutes(api)
		vehicleHandler.RegisterRoutes(api)
		pricingHandler.RegisterRoutes(api)
		dispatchHandler.RegisterRoutes(api)
		preferencesHandler.RegisterRoutes(api)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	logger.Info("Starting transfers service", zap.String("port", cfg.Server.Port))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// newSender picks the email implementation from configuration. An
// unconfigured sender is still returned so chat-only deployments work
// without any email credentials.
func newSender(cfg *config.Config) email.Sender {
	if cfg.Email.Provider == "ses" {
		sender, err := email.NewSESSender(context.Background(),
			cfg.Email.SESRegion, cfg.Email.SESFrom, cfg.Email.Recipient, cfg.Email.TemplateID)
		if err != nil {
			logger.Fatal("Failed to initialize SES sender", zap.Error(err))
		}
		return sender
	}

	return email.NewRelaySender(email.RelayConfig{
		ServiceID:  cfg.Email.ServiceID,
		TemplateID: cfg.Email.TemplateID,
		PublicKey:  cfg.Email.PublicKey,
		Recipient:  cfg.Email.Recipient,
	})
}
