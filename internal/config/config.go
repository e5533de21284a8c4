package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"runchart/internal/tracker"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Tracker tracker.Config

	DataPath  string
	LogDir    string
	CacheDir  string
	OutputDir string

	// Sports to sync and aggregate; the first one drives the weekly chart.
	Sports []string

	// Weeks is the trailing window length of the weekly chart.
	Weeks int

	GnuplotPath  string
	ChartTimeout time.Duration
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory first
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	cacheDir := filepath.Join(dataPath, "cache")
	outputDir := filepath.Join(dataPath, "public")

	for _, dir := range []string{logDir, cacheDir, outputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Warn().Err(err).Str("path", dir).Msg("Failed to create directory")
		}
	}

	delaySecs, _ := strconv.Atoi(getEnv("TRACKER_REQUEST_DELAY_SECONDS", "1"))
	timeoutSecs, _ := strconv.Atoi(getEnv("CHART_TIMEOUT_SECONDS", "30"))

	cfg := &AppConfig{
		Tracker: tracker.Config{
			BaseURL:      getEnv("TRACKER_URL", "https://www.strava.com/api/v3"),
			AccessToken:  getEnv("TRACKER_TOKEN", ""),
			PageSize:     getEnvInt("TRACKER_PAGE_SIZE", 100),
			RequestDelay: time.Duration(delaySecs) * time.Second,
		},
		DataPath:     dataPath,
		LogDir:       logDir,
		CacheDir:     cacheDir,
		OutputDir:    outputDir,
		Sports:       []string{getEnv("SPORT_TYPE", "Run")},
		Weeks:        getEnvInt("CHART_WEEKS", 52),
		GnuplotPath:  getEnv("GNUPLOT_BIN", "gnuplot"),
		ChartTimeout: time.Duration(timeoutSecs) * time.Second,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
