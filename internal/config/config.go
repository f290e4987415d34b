package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OutputDir    string
	UniqueSuffix string
	MarkedSuffix string

	IncludeExtensions []string
	IgnoreFiles       []string

	WatchDir         string
	WatchIntervalSec int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		OutputDir:    getEnv("DEDUP_OUTPUT_DIR", ""),
		UniqueSuffix: getEnv("DEDUP_UNIQUE_SUFFIX", "-UNIQUE"),
		MarkedSuffix: getEnv("DEDUP_MARKED_SUFFIX", "-MARKED"),

		IncludeExtensions: getEnvList("DEDUP_INCLUDE_EXTENSIONS", []string{".log", ".txt"}),
		IgnoreFiles:       getEnvList("DEDUP_IGNORE_FILES", []string{"*_MERGED_*.txt", "*-MARKED.*", "*-UNIQUE.*"}),

		WatchDir:         getEnv("DEDUP_WATCH_DIR", "."),
		WatchIntervalSec: getEnvInt("DEDUP_WATCH_INTERVAL_SEC", 30),
	}

	cfg.IncludeExtensions = NormalizeExtensions(cfg.IncludeExtensions)
	return cfg, nil
}

// NormalizeExtensions forces a leading dot and lower case so matching is
// uniform regardless of how extensions were given.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := getEnv(key, "")
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
