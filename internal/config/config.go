package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the bot and the admin API.
type Config struct {
	BotToken          string  `json:"bot_token"`
	AdminChatIDs      []int64 `json:"admin_chat_ids"`
	AdminListen       string  `json:"admin_listen"`
	AdminJWTSecret    string  `json:"admin_jwt_secret"`
	DatabasePath      string  `json:"database_path"`
	UploadDir         string  `json:"upload_dir"`
	PublicBaseURL     string  `json:"public_base_url"`
	LogLevel          string  `json:"log_level"`
	SessionTTLMinutes int     `json:"session_ttl_minutes"`
}

// Load reads the JSON config file and applies environment overrides.
// A .env file next to the process is honored if present (local development).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	_ = godotenv.Load() // missing .env is fine
	cfg.applyEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CAMPUSLINK_BOT_TOKEN"); v != "" {
		c.BotToken = v
	}
	if v := os.Getenv("CAMPUSLINK_ADMIN_LISTEN"); v != "" {
		c.AdminListen = v
	}
	if v := os.Getenv("CAMPUSLINK_ADMIN_JWT_SECRET"); v != "" {
		c.AdminJWTSecret = v
	}
	if v := os.Getenv("CAMPUSLINK_DATABASE_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("CAMPUSLINK_UPLOAD_DIR"); v != "" {
		c.UploadDir = v
	}
	if v := os.Getenv("CAMPUSLINK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CAMPUSLINK_SESSION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SessionTTLMinutes = n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.AdminListen == "" {
		c.AdminListen = ":8080"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "campuslink.db"
	}
	if c.UploadDir == "" {
		c.UploadDir = "uploads"
	}
	if c.SessionTTLMinutes <= 0 {
		c.SessionTTLMinutes = 120
	}
}
