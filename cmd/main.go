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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-forum/internal/database"
	"github.com/sbilibin2017/gw-forum/internal/handlers"
	"github.com/sbilibin2017/gw-forum/internal/jwt"
	"github.com/sbilibin2017/gw-forum/internal/logger"
	"github.com/sbilibin2017/gw-forum/internal/middlewares"
	"github.com/sbilibin2017/gw-forum/internal/models"
	"github.com/sbilibin2017/gw-forum/internal/repositories"
	"github.com/sbilibin2017/gw-forum/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds the full application configuration.
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

	kafkaBroker string
	kafkaTopic  string

	siteName            string
	codeTTLSecond       int
	sweepIntervalSecond int
	sessionTTLSecond    int

	jwtSecretKey string
	jwtExpSecond int
}

// @title gw-forum API
// @version 1.0.0
// @description Forum service with email-confirmed accounts, categorized posts, comments and ratings
// @host localhost:8080
// @BasePath /
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
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "forum")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; an empty broker disables email dispatch
	cfg.kafkaBroker = getEnv("KAFKA_BROKER", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "forum-emails")

	// Email verification config
	cfg.siteName = getEnv("SITE_NAME", "Forum")
	if cfg.codeTTLSecond, err = strconv.Atoi(getEnv("CODE_TTL_SECOND", "300")); err != nil {
		return
	}
	if cfg.sweepIntervalSecond, err = strconv.Atoi(getEnv("SWEEP_INTERVAL_SECOND", "60")); err != nil {
		return
	}
	if cfg.sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "86400")); err != nil {
		return
	}

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
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
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

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

	if err := database.Migrate(ctx, db); err != nil {
		logger.Log.Fatal("migrations failed:", err)
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

	// Kafka writer for outgoing email messages
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Warn("KAFKA_BROKER not set, email dispatch disabled")
	}

	// Initialize JWT service
	tokener := jwt.New(cfg.jwtSecretKey, time.Duration(cfg.jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	codeReadRepo := repositories.NewEmailCodeReadRepository(db)
	codeWriteRepo := repositories.NewEmailCodeWriteRepository(db)
	postReadRepo := repositories.NewPostReadRepository(db)
	postWriteRepo := repositories.NewPostWriteRepository(db)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db)
	categoryReadRepo := repositories.NewCategoryReadRepository(db)
	categoryWriteRepo := repositories.NewCategoryWriteRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)
	sessionRepo := repositories.NewSessionRepository(rdb, time.Duration(cfg.sessionTTLSecond)*time.Second)

	// Initialize services
	codeIssuer := services.NewCodeIssuer(codeWriteRepo, kafkaWriter, cfg.siteName, time.Duration(cfg.codeTTLSecond)*time.Second)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener, codeIssuer)
	verificationService := services.NewVerificationService(codeReadRepo, codeWriteRepo, codeIssuer)
	signupConfirmation := services.NewSignupConfirmationService(userReadRepo, userWriteRepo, verificationService)
	emailChangeService := services.NewEmailChangeService(userReadRepo, userWriteRepo, sessionRepo, authService, codeIssuer, verificationService)
	contentService := services.NewContentService(userReadRepo, postReadRepo, postWriteRepo, commentReadRepo, commentWriteRepo, categoryReadRepo, categoryWriteRepo)
	ratingService := services.NewRatingService(ratingRepo)
	sweeper := services.NewSweeper(codeWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Get("/posts", handlers.NewPostListHandler(contentService))
	r.Get("/post/{id}", handlers.NewPostGetHandler(contentService))
	r.Get("/post/{id}/comments", handlers.NewCommentListHandler(contentService))
	r.Get("/categories", handlers.NewCategoryListHandler(contentService))
	r.Get("/category/{id}", handlers.NewCategoryPostsHandler(contentService))
	r.Get("/user/{username}/posts", handlers.NewUserPostsHandler(contentService))
	r.Get("/post/{id}/rating", handlers.NewRatingCountsHandler(ratingService, models.RatingKindPost))
	r.Get("/comment/{id}/rating", handlers.NewRatingCountsHandler(ratingService, models.RatingKindComment))

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Use(middlewares.SessionMiddleware())
		r.Use(middlewares.FlowStatePurgeMiddleware(sessionRepo))

		// Confirmation surfaces stay reachable for unconfirmed users
		r.Get("/email/{status}", handlers.NewEmailStatusHandler(signupConfirmation))
		r.Post("/email/confirm", handlers.NewEmailConfirmHandler(signupConfirmation))
		r.Post("/email/change/verify", handlers.NewEmailChangeVerifyHandler(emailChangeService))
		r.Post("/email/change/new", handlers.NewEmailChangeNewHandler(emailChangeService))
		r.Get("/email/change/{status}", handlers.NewEmailChangeStatusHandler(emailChangeService))
		r.Post("/email/change/confirm", handlers.NewEmailChangeConfirmHandler(emailChangeService))

		// Account deletion works for unconfirmed users too
		r.Delete("/user", handlers.NewUserDeleteHandler(authService))

		// Content mutations additionally require a confirmed email
		r.Group(func(r chi.Router) {
			r.Use(middlewares.EmailConfirmedMiddleware(userReadRepo))

			r.Post("/post", handlers.NewPostCreateHandler(contentService))
			r.Put("/post/{id}", handlers.NewPostUpdateHandler(contentService))
			r.Delete("/post/{id}", handlers.NewPostDeleteHandler(contentService))
			r.Post("/post/{id}/comment", handlers.NewCommentCreateHandler(contentService))
			r.Put("/comment/{id}", handlers.NewCommentUpdateHandler(contentService))
			r.Delete("/comment/{id}", handlers.NewCommentDeleteHandler(contentService))
			r.Post("/category", handlers.NewCategoryCreateHandler(contentService))
			r.Post("/post/{id}/{status}", handlers.NewRatingHandler(ratingService, models.RatingKindPost))
			r.Post("/comment/{id}/{status}", handlers.NewRatingHandler(ratingService, models.RatingKindComment))
		})
	})

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

	// Background sweep of expired confirmation codes
	go sweeper.Run(ctxShutdown, time.Duration(cfg.sweepIntervalSecond)*time.Second)

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
