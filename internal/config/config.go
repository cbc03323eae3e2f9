package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Snowflake built at startup
	SideLength float64
	MaxDepth   int

	// Hard cap on any depth a caller may request. Node count grows as 4^depth.
	DepthLimit int

	// PNG output edge length in pixels
	ImageSize int

	// Logging
	LogLevel     slog.Level
	DebugLogPath string

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		SideLength: envFloat("KOCH_SIDE_LENGTH", 1),
		MaxDepth:   envInt("KOCH_MAX_DEPTH", 5),
		DepthLimit: envInt("KOCH_DEPTH_LIMIT", 9),

		ImageSize: envInt("KOCH_IMAGE_SIZE", 1024),

		LogLevel:     envLevel("LOG_LEVEL", slog.LevelInfo),
		DebugLogPath: os.Getenv("KOCH_DEBUG_LOG"),

		ReadTimeout:  envDuration("KOCH_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: envDuration("KOCH_WRITE_TIMEOUT", 60*time.Second),
	}

	if cfg.SideLength <= 0 {
		cfg.SideLength = 1
	}
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 5
	}
	if cfg.DepthLimit <= 0 {
		cfg.DepthLimit = 9
	}
	if cfg.ImageSize <= 0 {
		cfg.ImageSize = 1024
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 60 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if math.IsInf(c.SideLength*c.SideLength, 0) {
		return fmt.Errorf("KOCH_SIDE_LENGTH %g overflows the area", c.SideLength)
	}
	if c.MaxDepth > c.DepthLimit {
		return fmt.Errorf("KOCH_MAX_DEPTH %d exceeds KOCH_DEPTH_LIMIT %d", c.MaxDepth, c.DepthLimit)
	}
	if c.DepthLimit > 12 {
		return fmt.Errorf("KOCH_DEPTH_LIMIT %d is too large (max 12)", c.DepthLimit)
	}
	if c.ImageSize > 8192 {
		return fmt.Errorf("KOCH_IMAGE_SIZE %d is too large (max 8192)", c.ImageSize)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	var l slog.Level
	if v := os.Getenv(key); v != "" {
		if err := l.UnmarshalText([]byte(strings.ToUpper(v))); err == nil {
			return l
		}
	}
	return fallback
}
