package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/team-manager/internal/jwt"
	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/middlewares"
	"github.com/sbilibin2017/team-manager/internal/repositories"
	"github.com/sbilibin2017/team-manager/internal/services"
	"github.com/sbilibin2017/team-manager/internal/storage/memory"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/team-manager/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Storage backends
const (
	backendMemory   = "memory"
	backendPostgres = "postgres"
)

// config is the whole service configuration, read from the environment.
type config struct {
	AppHost      string `env:"APP_HOST" envDefault:"localhost"`
	AppPort      string `env:"APP_PORT" envDefault:"8080"`
	LogLevel     string `env:"APP_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"APP_LOG_FORMAT" envDefault:"json"`
	StorageKind  string `env:"STORAGE_BACKEND" envDefault:"memory"`
	SeedFixtures bool   `env:"STORAGE_SEED" envDefault:"true"`

	PostgresHost         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser         string `env:"POSTGRES_USER" envDefault:"user"`
	PostgresPassword     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	PostgresDB           string `env:"POSTGRES_DB" envDefault:"database"`
	PostgresMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	PostgresMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`

	// Empty address disables the featured-athlete cache.
	RedisAddr      string `env:"REDIS_ADDR"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisExpSecond int    `env:"REDIS_EXP_SECOND" envDefault:"300"`

	// No brokers disables the change feed.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"team-changes"`

	JWTSecretKey string `env:"JWT_SECRET_KEY" envDefault:"my_super_secret_key"`
	JWTExpSecond int    `env:"JWT_EXP_SECOND" envDefault:"86400"`
}

// @title team-manager API
// @version 1.0.0
// @description Backend for a basketball team: accounts, athlete profiles, exercises, training sessions, events, gallery, best of week and live streams
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads an optional env file and parses the environment into a config.
// Variables already set in the environment win over the file.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	cfg := &config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.StorageKind {
	case backendMemory, backendPostgres:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageKind)
	}
	return cfg, nil
}

// run wires storage, cache, change feed and the HTTP server, then blocks until shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	deps := routerDeps{
		tokens: jwt.New(
			jwt.WithSecretKey(cfg.JWTSecretKey),
			jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
		),
		swaggerURL: fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	}

	switch cfg.StorageKind {
	case backendPostgres:
		db, err := connectPostgres(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		deps.store = repositories.NewPostgresStore(db, middlewares.GetTxFromContext)
		deps.db = db
	default:
		var opts []memory.Option
		if !cfg.SeedFixtures {
			opts = append(opts, memory.WithoutSeed())
		}
		store, err := memory.New(opts...)
		if err != nil {
			return fmt.Errorf("init memory store: %w", err)
		}
		deps.store = store
	}
	logger.Log.Infow("storage ready", "backend", cfg.StorageKind)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		deps.cache = repositories.NewHighlightCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
		logger.Log.Infow("featured-athlete cache enabled", "addr", cfg.RedisAddr)
	}

	var writer services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		writer = kw
		logger.Log.Infow("change feed enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	deps.pub = services.NewPublisher(writer)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(deps),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// connectPostgres opens the pool, checks it and applies the schema.
func connectPostgres(ctx context.Context, cfg *config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres migration failed: %w", err)
	}
	return db, nil
}
