package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	httpserver "payment-tracker/internal/app/http-server"
	"payment-tracker/internal/handlers"
	"payment-tracker/internal/lib/jwt"
	"payment-tracker/internal/middlewares"
	"payment-tracker/internal/repository/postgres"
	"payment-tracker/internal/repository/redis"
	"payment-tracker/internal/routes"
	"payment-tracker/internal/services"
)

type App struct {
	HTTPServer *httpserver.Server
}

func New(log *slog.Logger, serverPort, storagePath, secret string, accessTTL, refreshTTL int) *App {
	storage, err := postgres.NewPostgres(context.Background(), storagePath)
	if err != nil {
		panic(err)
	}

	jwtGen := jwt.NewGenerator(secret, time.Minute*time.Duration(accessTTL), time.Hour*time.Duration(refreshTTL))

	redisDB, err := redis.InitRedis(os.Getenv("REDIS_STORAGE_PATH"), os.Getenv("redis_password"), os.Getenv("DB_NUMBER"), time.Duration(refreshTTL)*24)
	if err != nil {
		panic(err)
	}

	authService := services.NewAuthService(log, storage, redisDB, jwtGen)
	catalogService := services.NewCatalogService(log, storage)
	paymentService := services.NewPaymentService(log, storage)

	authHandler := handlers.NewAuthHandler(log, authService)
	itemHandler := handlers.NewItemHandler(log, catalogService)
	paymentHandler := handlers.NewPaymentHandler(log, paymentService)

	authMiddleware := middlewares.NewAuthMiddleware(jwtGen)

	r := routes.InitRoutes(authHandler, itemHandler, paymentHandler, authMiddleware)

	server := httpserver.NewServer(log, serverPort, r)

	return &App{
		HTTPServer: server,
	}
}
