package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Discord DiscordConfig `yaml:"discord"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Races   RacesConfig   `yaml:"races"`
	Web     WebConfig     `yaml:"web"`
}

// DiscordConfig holds the Discord bot settings.
type DiscordConfig struct {
	Token           string `yaml:"token"`
	BetaToken       string `yaml:"beta_token"` // used when running with -test
	Prefix          string `yaml:"prefix"`
	FlagChannelID   string `yaml:"flag_channel_id"`
	FlagRoleID      string `yaml:"flag_role_id"`
	LeaderboardSize int    `yaml:"leaderboard_size"`
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// RacesConfig holds the race timing settings.
type RacesConfig struct {
	RecordWindowMinutes int           `yaml:"record_window_minutes"`
	SubmissionCooldown  time.Duration `yaml:"submission_cooldown"`
	EditWindow          time.Duration `yaml:"edit_window"`
}

// WebConfig holds the HTTP server settings.
type WebConfig struct {
	Addr string `yaml:"addr"` // empty disables the web server
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("DISCORD_PROD_TOKEN"); v != "" {
		cfg.Discord.Token = v
	}
	if v := os.Getenv("DISCORD_BETA_TOKEN"); v != "" {
		cfg.Discord.BetaToken = v
	}
	if v := os.Getenv("COMMAND_PREFIX"); v != "" {
		cfg.Discord.Prefix = v
	}
	if v := os.Getenv("FLAG_CHANNEL_ID"); v != "" {
		cfg.Discord.FlagChannelID = v
	}
	if v := os.Getenv("FLAG_ROLE_ID"); v != "" {
		cfg.Discord.FlagRoleID = v
	}
	if v := os.Getenv("LEADERBOARD_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Discord.LeaderboardSize = n
		}
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("RECORD_WINDOW_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Races.RecordWindowMinutes = n
		}
	}
	if v := os.Getenv("SUBMISSION_COOLDOWN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Races.SubmissionCooldown = d
		}
	}
	if v := os.Getenv("EDIT_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Races.EditWindow = d
		}
	}
	if v := os.Getenv("WEB_ADDR"); v != "" {
		cfg.Web.Addr = v
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	cfg.Discord.Token = os.Getenv("DISCORD_PROD_TOKEN")
	cfg.Discord.BetaToken = os.Getenv("DISCORD_BETA_TOKEN")
	if cfg.Discord.Token == "" && cfg.Discord.BetaToken == "" {
		return nil, fmt.Errorf("DISCORD_PROD_TOKEN environment variable not set")
	}

	cfg.Mongo.URI = os.Getenv("MONGO_URI")
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGO_URI environment variable not set")
	}

	cfg.Discord.Prefix = os.Getenv("COMMAND_PREFIX")
	cfg.Discord.FlagChannelID = os.Getenv("FLAG_CHANNEL_ID")
	cfg.Discord.FlagRoleID = os.Getenv("FLAG_ROLE_ID")
	if v := os.Getenv("LEADERBOARD_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LEADERBOARD_SIZE value: %v", err)
		}
		cfg.Discord.LeaderboardSize = n
	}

	cfg.Mongo.Database = os.Getenv("MONGO_DATABASE")
	cfg.Web.Addr = os.Getenv("WEB_ADDR") // optional; empty disables the web server

	if v := os.Getenv("RECORD_WINDOW_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RECORD_WINDOW_MINUTES value: %v", err)
		}
		cfg.Races.RecordWindowMinutes = n
	}
	if v := os.Getenv("SUBMISSION_COOLDOWN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SUBMISSION_COOLDOWN value: %v", err)
		}
		cfg.Races.SubmissionCooldown = d
	}
	if v := os.Getenv("EDIT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid EDIT_WINDOW value: %v", err)
		}
		cfg.Races.EditWindow = d
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in the settings that have sensible defaults
func applyDefaults(cfg *Config) {
	if cfg.Discord.Prefix == "" {
		cfg.Discord.Prefix = "!"
	}
	if cfg.Discord.LeaderboardSize == 0 {
		cfg.Discord.LeaderboardSize = 15
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "flagbot"
	}
	if cfg.Races.RecordWindowMinutes == 0 {
		cfg.Races.RecordWindowMinutes = 15
	}
	if cfg.Races.SubmissionCooldown == 0 {
		cfg.Races.SubmissionCooldown = 30 * time.Minute
	}
	if cfg.Races.EditWindow == 0 {
		cfg.Races.EditWindow = 10 * time.Minute
	}
}
