package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/cache"
	"github.com/BruksfildServices01/barbershop-api/internal/clock"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-api/internal/db"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/logger"
	"github.com/BruksfildServices01/barbershop-api/internal/reminder"
	"github.com/BruksfildServices01/barbershop-api/internal/routes"
)

func main() {

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	defer dbpkg.Close(db)

	rdb := cache.NewRedis(cfg)
	defer rdb.Close()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, zlog)

	reminderWorker := reminder.NewWorker(
		infraRepo.NewReminderGormRepository(db),
		clock.System(),
		zlog,
	)
	if err := reminderWorker.Start(); err != nil {
		zlog.Fatal("failed to start reminder worker", zap.Error(err))
	}
	defer reminderWorker.Stop()

	zlog.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
