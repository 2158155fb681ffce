package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airline-mgmt/config"
	"github.com/Domenick1991/airline-mgmt/internal/email"
	"github.com/Domenick1991/airline-mgmt/internal/kafka"
	"github.com/Domenick1991/airline-mgmt/internal/repository"
	"github.com/Domenick1991/airline-mgmt/internal/service/reservation"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
)

// The worker owns everything that must not block an interactive session:
// customer notifications and the waitlist promotion sweep.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	reservationRepo := repository.NewReservationRepository(pool)
	reservationService := reservation.NewReservationService(
		reservationRepo,
		producer,
		cfg.Kafka.ReservationTopic,
		reservation.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.ReservationEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("decode event error: %v", err)
				return nil
			}
			return emailSender.Send(ctx, event)
		}); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	healthSrv := &http.Server{Addr: cfg.Worker.HealthAddress, Handler: router}
	go func() {
		if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("health server stopped: %v", err)
		}
	}()

	promoteTicker := time.NewTicker(time.Duration(cfg.Worker.PromotionSweepMinutes) * time.Minute)
	defer promoteTicker.Stop()

	for {
		select {
		case <-promoteTicker.C:
			promoted, err := reservationService.PromoteWaitlisted(ctx)
			if err != nil {
				log.Printf("promote waitlisted error: %v", err)
				continue
			}
			if len(promoted) > 0 {
				log.Printf("promoted %d reservations from the waitlist", len(promoted))
			}
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := healthSrv.Shutdown(shutdownCtx); err != nil {
				log.Printf("shutdown health server: %v", err)
			}
			log.Printf("shutting down")
			return
		}
	}
}
