// Package config provides configuration helpers for the arm sway commands.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for the simulator.
const (
	DefaultFPS        = 60
	DefaultDuration   = 10 * time.Second
	DefaultLogLevel   = "info"
	DefaultMultiplier = 50.0
	DefaultBob        = 0.02
	DefaultSway       = 0.01
)

// LoadEnv loads KEY=value pairs from the given files (".env" if none) into
// the environment. Variables already set win. Missing files are ignored.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// String returns the env var key, or def if unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Int returns the env var key parsed as an int, or def if unset or invalid.
func Int(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Float returns the env var key parsed as a float, or def if unset or invalid.
func Float(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// Duration returns the env var key parsed with time.ParseDuration, or def if
// unset or invalid.
func Duration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// Bool returns the env var key parsed with strconv.ParseBool, or def.
func Bool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// FPS returns the host frame rate from ARMSWAY_FPS. Non-positive values use the default.
func FPS() int {
	if n := Int("ARMSWAY_FPS", DefaultFPS); n > 0 {
		return n
	}
	return DefaultFPS
}

// FrameInterval returns the tick period for fps frames per second.
// Non-positive values fall back to FPS().
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = FPS()
	}
	return time.Second / time.Duration(fps)
}

// SimDuration returns how long the simulator runs, from ARMSWAY_DURATION.
// Zero means until interrupted.
func SimDuration() time.Duration {
	return Duration("ARMSWAY_DURATION", DefaultDuration)
}

// LogLevel returns ARMSWAY_LOG_LEVEL.
func LogLevel() string {
	return String("ARMSWAY_LOG_LEVEL", DefaultLogLevel)
}

// Multiplier returns the chest multiplier from ARMSWAY_MULTIPLIER.
func Multiplier() float64 {
	return Float("ARMSWAY_MULTIPLIER", DefaultMultiplier)
}

// BobAmplitude returns the simulated vertical chest amplitude from ARMSWAY_BOB.
func BobAmplitude() float64 {
	return Float("ARMSWAY_BOB", DefaultBob)
}

// SwayAmplitude returns the simulated horizontal chest amplitude from ARMSWAY_SWAY.
func SwayAmplitude() float64 {
	return Float("ARMSWAY_SWAY", DefaultSway)
}

// Legs reports whether leg sway is allowed, from ARMSWAY_LEGS.
func Legs() bool {
	return Bool("ARMSWAY_LEGS", false)
}
