package main

import (
	"os"
	"tonoffer/internal/config"
	"tonoffer/internal/database"
	"tonoffer/internal/services"
	"tonoffer/internal/tonapi"
	"tonoffer/internal/tonbot"
)

func main() {
	logger := config.InitLogger()
	if err := config.InitConfig(); err != nil {
		logger.Fatalf("Failed to init config: %v", err)
	}

	logger.Infoln("Config initialized")

	redisCli, err := database.InitRedisCli()
	if err != nil {
		logger.Fatal("Failed to connect to redis: ", err)
	}

	logger.Infoln("Redis initialized")

	rateService := services.NewRateService(tonapi.NewRatesClient(tonapi.DefaultBaseURL))
	if err := rateService.Start(); err != nil {
		logger.Fatal("Failed to start rate poller: ", err)
	}
	defer rateService.Stop()

	logger.Infoln("Rate poller started")

	tokenBot := os.Getenv("TELEGRAM_BOT_TOKEN")

	logger.Infoln("Telegram bot starting")
	tgbot := tonbot.NewTgBot(tokenBot, redisCli, rateService)
	if err := tgbot.StartBot(); err != nil {
		logger.Fatal("Failed to start bot: ", err)
	}
}
