package bootstrap

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/Domenick1991/airline-mgmt/config"
	"github.com/Domenick1991/airline-mgmt/internal/cache"
	"github.com/Domenick1991/airline-mgmt/internal/cli"
	"github.com/Domenick1991/airline-mgmt/internal/kafka"
	"github.com/Domenick1991/airline-mgmt/internal/repository"
	"github.com/Domenick1991/airline-mgmt/internal/service/auth"
	"github.com/Domenick1991/airline-mgmt/internal/service/crew"
	"github.com/Domenick1991/airline-mgmt/internal/service/flights"
	"github.com/Domenick1991/airline-mgmt/internal/service/reservation"
	"github.com/Domenick1991/airline-mgmt/internal/validate"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Run wires repositories, services and the terminal frontend, then drives
// the session loop until the user exits or the context is canceled.
// Redis and Kafka are optional: an empty address disables the feature and
// the services degrade to direct queries and silent events.
func Run(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, in io.Reader, out io.Writer) error {
	customerRepo := repository.NewCustomerRepository(pool)
	crewRepo := repository.NewCrewRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	maintenanceRepo := repository.NewMaintenanceRepository(pool)

	var scheduleCache flights.Cache
	if cfg.Redis.Addr != "" {
		scheduleCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.ScheduleTTLSeconds)*time.Second)
	}

	var producer reservation.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		p := kafka.NewProducer(cfg.Kafka.Brokers)
		defer func() {
			if err := p.Close(); err != nil {
				log.Printf("WARNING: failed to close kafka producer: %v", err)
			}
		}()
		producer = p
	}

	authSvc := auth.NewAuthService(customerRepo, crewRepo, cfg.Auth.ManagerSecret)
	flightSvc := flights.NewFlightService(flightRepo, scheduleCache)
	reservationSvc := reservation.NewReservationService(
		reservationRepo,
		producer,
		cfg.Kafka.ReservationTopic,
		reservation.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	crewSvc := crew.NewCrewService(customerRepo, crewRepo, maintenanceRepo)

	app := cli.New(in, out, Bands(cfg), authSvc, flightSvc, reservationSvc, crewSvc)
	return app.Run(ctx)
}

// Bands converts the configured validation ranges into the form the
// prompter checks against.
func Bands(cfg *config.Config) validate.Bands {
	return validate.Bands{
		MinYear:         cfg.Validation.MinYear,
		MaxYear:         cfg.Validation.MaxYear,
		MinFlightNumber: cfg.Validation.MinFlightNumber,
		MaxFlightNumber: cfg.Validation.MaxFlightNumber,
	}
}
