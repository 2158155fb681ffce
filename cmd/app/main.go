package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Domenick1991/airline-mgmt/config"
	"github.com/Domenick1991/airline-mgmt/internal/bootstrap"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dbname> <port> <user>\n", os.Args[0])
		os.Exit(1)
	}
	port, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid port %q\n", os.Args[2])
		os.Exit(1)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("load config: %v", err)
		}
		cfg = config.Default()
	}

	// Positional arguments win over the config file, matching the
	// classic invocation of the tool.
	cfg.Database.Name = os.Args[1]
	cfg.Database.Port = port
	cfg.Database.User = os.Args[3]

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	// The database is the only hard dependency; refuse to start without it.
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("ping postgres: %v", err)
	}

	if err := bootstrap.Run(ctx, cfg, pool, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("session error: %v", err)
	}
}
