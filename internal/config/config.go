package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	TelegramToken string
	AnalystChatID int64
	DatabaseURL   string
	ShrinkageGoal float64
	MetricsAddr   string
}

var instance *BotConfig
var once sync.Once

func GetBotConfig() *BotConfig {
	once.Do(func() {
		instance = &BotConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Fatalf("error loading env variables: %s", err.Error())
		}

		instance.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
		if instance.TelegramToken == "" {
			logrus.Fatal("could not get bot token")
		}

		// 0 = бот открыт для всех чатов
		instance.AnalystChatID = getEnvAsInt("ANALYST_CHAT_ID", 0)

		instance.DatabaseURL = getEnv("DATABASE_URL", "")
		if instance.DatabaseURL == "" {
			logrus.Fatal("could not get db url")
		}

		instance.ShrinkageGoal = getEnvAsFloat("SHRINKAGE_GOAL", 5.0)
		if instance.ShrinkageGoal < 0 || instance.ShrinkageGoal > 100 {
			logrus.Fatalf("shrinkage goal must be in [0,100], got %v", instance.ShrinkageGoal)
		}

		instance.MetricsAddr = getEnv("METRICS_ADDR", ":9090")
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseFloat(valStr, 64); err == nil {
		return val
	}

	return defaultVal
}
