package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the client reads from the environment.
type Config struct {
	APIBaseURL  string
	StateDir    string
	TokenPath   string
	HTTPTimeout time.Duration

	// Bundled demo backend.
	DemoAddr      string
	DemoJWTSecret string
}

// Load reads configuration from the environment, after best-effort loading
// a .env file from the working directory. Unset values fall back to local
// development defaults.
func Load() Config {
	_ = godotenv.Load()

	stateDir := getenv("ROLLCALL_STATE_DIR", defaultStateDir())
	return Config{
		APIBaseURL:    getenv("ROLLCALL_API_URL", "http://localhost:3000/api"),
		StateDir:      stateDir,
		TokenPath:     getenv("ROLLCALL_TOKEN_PATH", filepath.Join(stateDir, "token")),
		HTTPTimeout:   getenvDuration("ROLLCALL_HTTP_TIMEOUT", 10*time.Second),
		DemoAddr:      getenv("ROLLCALL_DEMO_ADDR", ":3000"),
		DemoJWTSecret: getenv("ROLLCALL_DEMO_JWT_SECRET", "rollcall-demo-secret"),
	}
}

// defaultStateDir returns ~/.rollcall, or a relative fallback when the home
// directory cannot be resolved.
func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rollcall"
	}
	return filepath.Join(home, ".rollcall")
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
