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
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/Hafizfauzi02/fowra-backend/internal/handlers"
	fowrajwt "github.com/Hafizfauzi02/fowra-backend/internal/jwt"
	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/middlewares"
	"github.com/Hafizfauzi02/fowra-backend/internal/repositories"
	"github.com/Hafizfauzi02/fowra-backend/internal/services"

	_ "github.com/Hafizfauzi02/fowra-backend/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Fowra API
// @version 1.0.0
// @description Plant-care diary and classroom dashboard for agricultural education
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		rateLimitMax, rateLimitWindowSecond,
		kafkaAddr,
		jwtSecret, jwtExpSecond, adminToken,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		rateLimitMax, rateLimitWindowSecond,
		kafkaAddr,
		jwtSecret, jwtExpSecond, adminToken,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, JWT and operator configuration.
// In production mode the shared secrets must be supplied externally;
// the insecure defaults exist for development only.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	rateLimitMax, rateLimitWindowSecond int,
	kafkaAddr string,
	jwtSecret string, jwtExpSecond int, adminToken string,
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
	appEnv := getEnv("APP_ENV", "development")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "fowra")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config; the rate limiter is enabled only when REDIS_HOST is set
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if rateLimitMax, err = strconv.Atoi(getEnv("RATE_LIMIT_MAX", "20")); err != nil {
		return
	}
	if rateLimitWindowSecond, err = strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECOND", "60")); err != nil {
		return
	}

	// Kafka config; activity events are published only when KAFKA_ADDR is set
	kafkaAddr = getEnv("KAFKA_ADDR", "")

	// JWT and operator config; tokens are valid for 30 days by default
	jwtSecret = os.Getenv("JWT_SECRET_KEY")
	adminToken = os.Getenv("ADMIN_TOKEN")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "2592000")); err != nil {
		return
	}

	if appEnv == "production" {
		if jwtSecret == "" {
			err = errors.New("JWT_SECRET_KEY must be set in production")
			return
		}
		if adminToken == "" {
			err = errors.New("ADMIN_TOKEN must be set in production")
			return
		}
	}
	if jwtSecret == "" {
		jwtSecret = "fowra_super_secret_key_123"
	}
	if adminToken == "" {
		adminToken = "fowra_admin_token"
	}

	return
}

// run initializes the logger, database, optional Redis and Kafka clients,
// and the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	rateLimitMax, rateLimitWindowSecond int,
	kafkaAddr string,
	jwtSecret string, jwtExpSecond int, adminToken string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis when configured (rate limiting on the auth routes)
	var rdb *redis.Client
	if redisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
	}

	// Kafka writer when configured (best-effort activity events)
	var activityWriter services.KafkaWriter
	if kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    "fowra.activity",
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		activityWriter = kw
	}

	// Initialize JWT service
	jwt := fowrajwt.New(jwtSecret, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	plantReadRepo := repositories.NewPlantReadRepository(db)
	plantWriteRepo := repositories.NewPlantWriteRepository(db)
	diaryReadRepo := repositories.NewDiaryReadRepository(db)
	diaryWriteRepo := repositories.NewDiaryWriteRepository(db)
	adminReadRepo := repositories.NewAdminReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt)
	plantService := services.NewPlantService(plantReadRepo, plantWriteRepo, activityWriter)
	diaryService := services.NewDiaryService(diaryReadRepo, diaryWriteRepo, activityWriter)
	adminService := services.NewAdminService(adminReadRepo, userWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Fowra API is running"))
	})

	// Public auth routes, rate limited when Redis is available
	r.Route("/api/auth", func(r chi.Router) {
		if rdb != nil {
			r.Use(middlewares.RateLimitMiddleware(rdb, rateLimitMax,
				time.Duration(rateLimitWindowSecond)*time.Second))
		}
		r.Post("/signup", handlers.NewSignupHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
	})

	// Student routes, protected by the identity token
	authMiddleware := middlewares.AuthMiddleware(jwt)
	r.Route("/api/plants", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", handlers.NewListPlantsHandler(plantService))
		r.Post("/", handlers.NewCreatePlantHandler(plantService))
		r.Put("/{id}", handlers.NewUpdatePlantHandler(plantService))
		r.Delete("/{id}", handlers.NewDeletePlantHandler(plantService))
	})
	r.Route("/api/diary", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/{date}", handlers.NewListDiaryHandler(diaryService))
		r.Post("/", handlers.NewSaveDiaryHandler(diaryService))
		r.Delete("/{id}", handlers.NewDeleteDiaryHandler(diaryService))
	})

	// Teacher dashboard routes, gated by the operator token
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middlewares.AdminAuthMiddleware(adminToken))
		r.Get("/stats", handlers.NewAdminStatsHandler(adminService))
		r.Get("/students", handlers.NewAdminStudentsHandler(adminService))
		r.Get("/student/{id}/plants", handlers.NewAdminStudentPlantsHandler(adminService))
		r.Get("/student/{id}/diary", handlers.NewAdminStudentDiaryHandler(adminService))
		r.Delete("/student/{id}", handlers.NewAdminDeleteStudentHandler(adminService))
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
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
