package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shrinkage-bot/internal/config"
	"shrinkage-bot/internal/handler"
	"shrinkage-bot/internal/metrics"
	"shrinkage-bot/internal/repository"
	"shrinkage-bot/internal/service"
	"shrinkage-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized...")

	// Инициализируем SQLite базу данных
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Создаем репозитории (store handle передается явно, без глобального состояния)
	attendanceRepo, err := repository.NewGormAttendanceRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create attendance repository")
	}

	leaveRepo, err := repository.NewGormLeaveRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create leave repository")
	}

	// Создаем сервисы
	attendanceService := service.NewAttendanceService(attendanceRepo)
	leaveService := service.NewLeaveService(leaveRepo)
	shrinkageService := service.NewShrinkageService(attendanceRepo, cfg.ShrinkageGoal)

	// Метрики
	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logrus.WithError(err).Error("Metrics server stopped")
			}
		}()
		logrus.Infof("Metrics available at %s/metrics", cfg.MetricsAddr)
	}

	// Создаем клиент Telegram
	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		attendanceService,
		leaveService,
		shrinkageService,
		cfg,
	)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
