package main

import (
	"database/sql"
	"net/http"

	"ecowear-be/internal/config"
	"ecowear-be/internal/db"
	"ecowear-be/internal/impact"
	"ecowear-be/internal/logger"
	"ecowear-be/internal/order"
	"ecowear-be/internal/product"
	"ecowear-be/internal/review"
	"ecowear-be/internal/transport/rest"
	"ecowear-be/internal/user"

	"go.uber.org/zap"
)

// Seams for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(database)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

func newServer(database *sql.DB) http.Handler {
	userRepo := user.NewRepository(database)
	productRepo := product.NewRepository(database)
	reviewRepo := review.NewRepository(database)
	orderRepo := order.NewRepository(database)
	impactRepo := impact.NewRepository(database)

	return rest.NewRouter(rest.Services{
		User:    user.NewService(userRepo),
		Product: product.NewService(productRepo),
		Review:  review.NewService(reviewRepo),
		Order:   order.NewService(orderRepo),
		Impact:  impact.NewService(impactRepo),
	})
}
