package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	ServerPort  string
	LogLevel    string
	AssetDir    string
	DexIndexURL string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		AssetDir:    getEnv("ASSET_DIR", "assets/sprites"),
		DexIndexURL: getEnv("DEX_INDEX_URL", "https://pogoapi.net/api/v1/pokemon_names.json"),
	}

	logger.Info().
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("asset_dir", cfg.AssetDir).
		Str("dex_index_url", cfg.DexIndexURL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
