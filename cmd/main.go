package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/autolens/autolens-api/internal/facades"
	"github.com/autolens/autolens-api/internal/handlers"
	"github.com/autolens/autolens-api/internal/logger"
	"github.com/autolens/autolens-api/internal/middlewares"
	"github.com/autolens/autolens-api/internal/models"
	"github.com/autolens/autolens-api/internal/repositories"
	"github.com/autolens/autolens-api/internal/services"
	"github.com/autolens/autolens-api/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title AutoLens API
// @version 1.0.0
// @description Service for identifying vehicles from photos, with a token ledger, identification history, games and simulated token purchases
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		recognitionURL, recognitionKey, fuelSearchURL,
		pgDSN, pgMaxOpenConns, pgMaxIdleConns,
		kafkaBrokers, kafkaTopic,
		paymentKey, paymentExpSecond,
		startingTokens,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		recognitionURL, recognitionKey, fuelSearchURL,
		pgDSN, pgMaxOpenConns, pgMaxIdleConns,
		kafkaBrokers, kafkaTopic,
		paymentKey, paymentExpSecond,
		startingTokens,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, Redis, external API, PostgreSQL, Kafka and payment
// configuration. PostgreSQL and Kafka are optional transaction sinks and stay
// disabled when their variables are empty.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	recognitionURL, recognitionKey, fuelSearchURL string,
	pgDSN string, pgMaxOpenConns, pgMaxIdleConns int,
	kafkaBrokers, kafkaTopic string,
	paymentKey string, paymentExpSecond int,
	startingTokens int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// External API config
	recognitionURL = getEnv("RECOGNITION_API_URL",
		"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent")
	recognitionKey = getEnv("RECOGNITION_API_KEY", "")
	fuelSearchURL = getEnv("FUEL_SEARCH_URL", "https://www.google.com/search")

	// Optional PostgreSQL transaction archive
	pgDSN = getEnv("POSTGRES_DSN", "")
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Optional Kafka transaction stream
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "token-transactions")

	// Payment config
	paymentKey = getEnv("PAYMENT_SIGNING_KEY", "my_super_secret_key")
	if paymentExpSecond, err = strconv.Atoi(getEnv("PAYMENT_SECRET_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Ledger config
	if startingTokens, err = strconv.Atoi(getEnv("STARTING_TOKENS", "5")); err != nil {
		return
	}

	return
}

// run initializes the logger, Redis, the optional transaction sinks, and the
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	recognitionURL, recognitionKey, fuelSearchURL string,
	pgDSN string, pgMaxOpenConns, pgMaxIdleConns int,
	kafkaBrokers, kafkaTopic string,
	paymentKey string, paymentExpSecond int,
	startingTokens int,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	store := storage.New(rdb)

	// Seed the token balance on first start
	if _, ok := store.GetRaw(ctx, models.KeyTokens); !ok {
		if err := store.Set(ctx, models.KeyTokens, int64(startingTokens)); err != nil {
			log.Errorw("failed to seed token balance", "error", err)
			return err
		}
		log.Infof("Seeded token balance with %d tokens", startingTokens)
	}

	// Optional PostgreSQL transaction archive
	var archive services.TransactionWriter
	if pgDSN != "" {
		db, err := sqlx.ConnectContext(ctx, "pgx", pgDSN)
		if err != nil {
			log.Errorw("PostgreSQL connection error", "error", err)
			return err
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)

		archive = repositories.NewTransactionWriterRepository(db)
		log.Info("Transaction archive enabled")
	}

	// Optional Kafka transaction stream
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()

		kafkaWriter = w
		log.Infof("Transaction stream enabled on topic %s", kafkaTopic)
	}

	// Initialize facades
	recognition := facades.NewRecognitionHTTPFacade(nil, recognitionURL, recognitionKey)
	fuelSearch := facades.NewFuelSearchHTTPFacade(nil, fuelSearchURL)

	// Initialize services
	ledgerService := services.NewLedgerService(store, archive, kafkaWriter)
	identifyService := services.NewIdentifyService(ledgerService, recognition, fuelSearch)
	historyService := services.NewHistoryService(store)
	gameService := services.NewGameService(store)
	paymentService := services.NewPaymentService(ledgerService, paymentKey,
		time.Duration(paymentExpSecond)*time.Second)

	// Initialize handlers
	identifyHandler := handlers.NewIdentifyHandler(identifyService, historyService, ledgerService)
	tokensHandler := handlers.NewTokensHandler(ledgerService)
	historyListHandler := handlers.NewHistoryListHandler(historyService)
	historyGetHandler := handlers.NewHistoryGetHandler(historyService)
	historyClearHandler := handlers.NewHistoryClearHandler(historyService)
	gameCreateHandler := handlers.NewGameCreateHandler(gameService)
	gameListHandler := handlers.NewGameListHandler(gameService)
	gameGetHandler := handlers.NewGameGetHandler(gameService)
	paymentCreateHandler := handlers.NewPaymentCreateHandler(paymentService)
	paymentConfirmHandler := handlers.NewPaymentConfirmHandler(paymentService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/identify", identifyHandler)
		r.Get("/tokens", tokensHandler)

		r.Get("/history", historyListHandler)
		r.Delete("/history", historyClearHandler)
		r.Get("/history/{id}", historyGetHandler)

		r.Post("/games", gameCreateHandler)
		r.Get("/games", gameListHandler)
		r.Get("/games/{id}", gameGetHandler)

		r.Post("/payments", paymentCreateHandler)
		r.Post("/payments/confirm", paymentConfirmHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
