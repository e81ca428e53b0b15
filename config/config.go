package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	DetectorURL   string
	IoUThreshold  float64
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DetectorURL:   os.Getenv("DETECTOR_URL"),
		IoUThreshold:  0.5,
	}

	if raw := os.Getenv("IOU_THRESHOLD"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid IOU_THRESHOLD %q: %w", raw, err)
		}
		if threshold <= 0 || threshold > 1 {
			return nil, fmt.Errorf("IOU_THRESHOLD must be in (0,1], got %v", threshold)
		}
		cfg.IoUThreshold = threshold
	}

	return cfg, nil
}
