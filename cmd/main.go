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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/investflow/investflow/internal/handlers"
	"github.com/investflow/investflow/internal/jwt"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/middlewares"
	"github.com/investflow/investflow/internal/models"
	"github.com/investflow/investflow/internal/repositories"
	"github.com/investflow/investflow/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all application configuration loaded from the
// environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBrokers string
	kafkaTopic   string

	jwtSecretKey string
	jwtExpSecond int

	schedulerInterval time.Duration
}

// @title investflow API
// @version 1.0.0
// @description Investment platform backend: wallets, deposit/withdrawal approval, fixed-term contracts with monthly profit accrual and a double-entry ledger
// @host localhost:8080
// @BasePath /api/v1
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

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, JWT and scheduler configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var cfg config
	var err error

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "investflow")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return nil, err
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return nil, err
	}

	// Kafka config; empty brokers disable event publishing
	cfg.kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "investflow.transactions")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return nil, err
	}

	// Scheduler config
	if cfg.schedulerInterval, err = time.ParseDuration(getEnv("SCHEDULER_INTERVAL", "24h")); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, starts the accrual scheduler
// and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka producer for transaction events, optional
	var events *services.EventPublisher
	if cfg.kafkaBrokers != "" {
		kafkaWriter := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.kafkaBrokers, ",")...),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		events = services.NewEventPublisher(kafkaWriter)
		logger.Log.Infof("Kafka producer initialized, topic %s", cfg.kafkaTopic)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(cfg.jwtSecretKey, time.Duration(cfg.jwtExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	walletWriteRepo := repositories.NewWalletWriterRepository(db, txGetter)
	walletReadRepo := repositories.NewWalletReaderRepository(db)
	txWriteRepo := repositories.NewTransactionWriterRepository(db, txGetter)
	txReadRepo := repositories.NewTransactionReaderRepository(db)
	contractWriteRepo := repositories.NewContractWriterRepository(db, txGetter)
	contractReadRepo := repositories.NewContractReaderRepository(db)
	profitWriteRepo := repositories.NewProfitWriterRepository(db, txGetter)
	ledgerWriteRepo := repositories.NewLedgerWriterRepository(db, txGetter)
	ledgerReadRepo := repositories.NewLedgerReaderRepository(db)
	settingsRepo := repositories.NewSettingsReaderRepository(db)
	statsRepo := repositories.NewStatsReaderRepository(db)
	limiter := repositories.NewRateLimitRepository(rdb)

	// Initialize services
	var publisher services.TransactionEventPublisher
	if events != nil {
		publisher = events
	}
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, limiter)
	walletService := services.NewWalletService(walletWriteRepo, walletReadRepo, ledgerWriteRepo)
	workflowService := services.NewWorkflowService(txWriteRepo, txReadRepo, walletService, settingsRepo, limiter, publisher)
	contractService := services.NewContractService(contractWriteRepo, contractReadRepo, profitWriteRepo, txWriteRepo, walletService, settingsRepo, publisher)
	schedulerService := services.NewSchedulerService(db, contractReadRepo, contractService)
	statsService := services.NewStatsService(statsRepo, ledgerReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	adminMiddleware := middlewares.AdminMiddleware()
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		// Authenticated user routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/transactions", handlers.NewListTransactionsHandler(workflowService))
			r.Get("/contracts", handlers.NewListContractsHandler(contractService))

			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)
				r.Get("/wallet", handlers.NewGetWalletHandler(walletService))
				r.Post("/wallet/deposit", handlers.NewDepositHandler(workflowService))
				r.Post("/wallet/withdraw", handlers.NewWithdrawHandler(workflowService))
				r.Post("/contracts", handlers.NewCreateContractHandler(contractService))
				r.Post("/contracts/{contractID}/refund", handlers.NewRequestRefundHandler(contractService))
			})
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(adminMiddleware)

			r.Get("/deposits/pending", handlers.NewListPendingHandler(workflowService, models.TransactionDeposit))
			r.Get("/withdrawals/pending", handlers.NewListPendingHandler(workflowService, models.TransactionWithdrawal))
			r.Get("/stats", handlers.NewAdminStatsHandler(statsService))
			r.Get("/profits/by-month", handlers.NewProfitsByMonthHandler(statsService))
			r.Get("/cash-flow", handlers.NewCashFlowHandler(statsService))
			r.Get("/ledger", handlers.NewLedgerHandler(statsService))

			// The sweep manages its own per-contract transactions.
			r.Post("/profits/run", handlers.NewRunProfitsHandler(schedulerService))

			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)
				r.Post("/deposits/{transactionID}/approve", handlers.NewApproveDepositHandler(workflowService))
				r.Post("/deposits/{transactionID}/reject", handlers.NewRejectDepositHandler(workflowService))
				r.Post("/deposits/approve-bulk", handlers.NewApproveDepositsBulkHandler(workflowService))
				r.Post("/deposits/reject-bulk", handlers.NewRejectDepositsBulkHandler(workflowService))
				r.Post("/withdrawals/{transactionID}/approve", handlers.NewApproveWithdrawalHandler(workflowService))
				r.Post("/withdrawals/{transactionID}/reject", handlers.NewRejectWithdrawalHandler(workflowService))
				r.Post("/users/{userID}/credit", handlers.NewAdminCreditHandler(workflowService))
				r.Post("/refunds/{contractID}/approve", handlers.NewApproveRefundHandler(contractService))
				r.Post("/refunds/{contractID}/reject", handlers.NewRejectRefundHandler(contractService))
				r.Post("/contracts/{contractID}/cancel", handlers.NewCancelContractHandler(contractService))
				r.Patch("/contracts/{contractID}", handlers.NewUpdateContractHandler(contractService))
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Background accrual scheduler
	go schedulerService.Run(ctxShutdown, cfg.schedulerInterval)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
