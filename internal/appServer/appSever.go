package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adeenasif/little-lemon-booking/config"
	"github.com/adeenasif/little-lemon-booking/internal/database"
	"github.com/adeenasif/little-lemon-booking/internal/pkg/timeslot"
	"github.com/adeenasif/little-lemon-booking/internal/pkg/validation"
	"github.com/adeenasif/little-lemon-booking/internal/service"
	"github.com/adeenasif/little-lemon-booking/internal/transport"
	"github.com/adeenasif/little-lemon-booking/internal/worker"

	"github.com/adeenasif/little-lemon-booking/pkg/redis"
	"github.com/adeenasif/little-lemon-booking/pkg/reservationapi"
	"github.com/adeenasif/little-lemon-booking/pkg/scheduler"
	"github.com/adeenasif/little-lemon-booking/pkg/telegram"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize durable storage
	var redisClient *goredis.Client
	if cfg.Storage.Backend == "redis" {
		var err error
		redisClient, err = redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logrus.Fatalf("Failed to initialize redis: %v", err)
		}
		defer redisClient.Close()
	}

	bookingRepo, err := database.NewBookingRepository(&cfg.Storage, redisClient)
	if err != nil {
		logrus.Fatalf("Failed to initialize booking storage: %v", err)
	}

	// Initialize Telegram bot
	var telegramBot *telegram.Bot
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)
		logrus.Info("Telegram bot initialized")
	} else {
		logrus.Warn("Telegram bot disabled, notifications will not be sent")
	}

	// Initialize domain policies
	policy := timeslot.NewPolicy(cfg.Hours, time.Now)
	validator := validation.NewValidator(cfg.Booking)
	apiClient := reservationapi.NewStubClient(cfg.API.Latency)

	// Initialize services
	timeSlotService := service.NewTimeSlotService(policy)
	bookingService := service.NewBookingService(
		bookingRepo, apiClient, timeSlotService, validator,
		telegramBot, cfg.Telegram.ChatID, cfg.Booking, time.Now)

	// Hydrate the store from durable storage
	if err := bookingService.Restore(context.Background()); err != nil {
		logrus.Warnf("Could not restore bookings from storage: %v. Starting empty...", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start slot refresh scheduler
	slotScheduler := scheduler.NewScheduler(timeSlotService,
		time.Duration(cfg.Worker.SlotRefreshInterval)*time.Minute)
	go slotScheduler.Start(ctx)
	logrus.Info("Slot refresh scheduler started")

	// Start storage sync worker
	syncWorker := worker.NewBookingSyncWorker(bookingService,
		time.Duration(cfg.Worker.SyncInterval)*time.Minute)
	go syncWorker.Start(ctx)
	logrus.Info("Storage sync worker started")

	// Initialize handlers
	bookingHandler := transport.NewBookingHandler(bookingService)
	timesHandler := transport.NewTimesHandler(timeSlotService)

	// Setup HTTP server
	if cfg.Server.Env == "production" || cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(bookingHandler, timesHandler, syncWorker)); err != nil {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
