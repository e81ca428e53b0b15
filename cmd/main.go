package main

import (
	"log"

	telegram "roadcheck/internal/api"
	"roadcheck/config"
	"roadcheck/internal/container"
	"roadcheck/internal/infrastructure/storage"
	"roadcheck/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}
	if cfg.DetectorURL == "" {
		log.Fatal("DETECTOR_URL is required")
	}

	// Создаём хранилище сеансов
	sessionRepo := storage.NewMemorySessionRepository()

	// Клиент внешней модели и отрисовщик рамок
	detector := vision.NewRemoteDetector(cfg.DetectorURL)
	highlighter := vision.NewGoCVHighlighter()

	// Собираем сервисы приложения
	appContainer := container.New(sessionRepo, detector, highlighter, cfg.IoUThreshold)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
