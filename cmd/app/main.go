package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"commerce/cmd"
	httpadapter "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/postgres/itemrepo"
	"commerce/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "commerce/docs"
)

// @title Commerce API
// @version 1.0
// @description Order management and inventory backend.

// @BasePath /api/v1
func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	err := createDbIfNotExists(
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
	if err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if _, err = httpadapter.LoadContract(); err != nil {
		log.Fatalf("Failed to load OpenAPI contract: %v", err)
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer root.Close()

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// Values come from the environment; .env is a convenience for local runs
	_ = godotenv.Load(".env")

	window, err := time.ParseDuration(envOrDefault("PENDING_ORDER_WINDOW", "30m"))
	if err != nil {
		log.Fatalf("Invalid PENDING_ORDER_WINDOW: %v", err)
	}

	threshold, err := strconv.Atoi(envOrDefault("LOW_STOCK_THRESHOLD", "10"))
	if err != nil {
		log.Fatalf("Invalid LOW_STOCK_THRESHOLD: %v", err)
	}

	return cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBHost:             mustEnv("DB_HOST"),
		DBPort:             envOrDefault("DB_PORT", "5432"),
		DBUser:             mustEnv("DB_USER"),
		DBPassword:         mustEnv("DB_PASSWORD"),
		DBName:             mustEnv("DB_NAME"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		KafkaHost:          mustEnv("KAFKA_HOST"),
		KafkaOrdersTopic:   envOrDefault("KAFKA_ORDERS_TOPIC", "commerce.orders"),
		KafkaItemsTopic:    envOrDefault("KAFKA_ITEMS_TOPIC", "commerce.items"),
		PendingOrderWindow: window,
		LowStockThreshold:  threshold,
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	// TranslateError maps driver errors like unique violations onto gorm's
	// portable sentinels, which the repositories rely on.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(&itemrepo.ItemDTO{}, &orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(root *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	server := root.CreateHTTPServer()
	server.RegisterRoutes(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start web server: %v", err)
		}
	}()

	logger.Info("Web server started", "port", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down web server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Web server forced to shut down", "error", err)
	}
}
