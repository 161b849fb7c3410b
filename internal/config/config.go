package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Twitch    TwitchConfig    `yaml:"twitch"`
	Scan      ScanConfig      `yaml:"scan"`
	Sweep     SweepConfig     `yaml:"sweep"`
	API       APIConfig       `yaml:"api"`
	Relevance RelevanceConfig `yaml:"relevance"`
	LogLevel  string          `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type TwitchConfig struct {
	ClientID         string        `yaml:"client_id"`
	ClientSecret     string        `yaml:"client_secret"`
	APIBaseURL       string        `yaml:"api_base_url"`
	AuthURL          string        `yaml:"auth_url"`
	Timeout          time.Duration `yaml:"timeout"`
	PageDelay        time.Duration `yaml:"page_delay"`
	RateLimitBackoff time.Duration `yaml:"rate_limit_backoff"`
	GameID           string        `yaml:"game_id"`
}

type ScanConfig struct {
	PageSize          int `yaml:"page_size"`
	LookbackDays      int `yaml:"lookback_days"`
	MaxPagesPerEntity int `yaml:"max_pages_per_entity"`
}

type SweepConfig struct {
	Interval          time.Duration `yaml:"interval"`
	Size              int           `yaml:"size"`
	LookbackDays      int           `yaml:"lookback_days"`
	MaxPagesPerEntity int           `yaml:"max_pages_per_entity"`
}

type APIConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

type RelevanceConfig struct {
	Keywords []string `yaml:"keywords"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "clip_harvester"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "clips"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "community_clips"
	}
	if c.Twitch.APIBaseURL == "" {
		c.Twitch.APIBaseURL = "https://api.twitch.tv/helix"
	}
	if c.Twitch.AuthURL == "" {
		c.Twitch.AuthURL = "https://id.twitch.tv/oauth2/token"
	}
	if c.Twitch.Timeout == 0 {
		c.Twitch.Timeout = 15 * time.Second
	}
	if c.Twitch.PageDelay == 0 {
		c.Twitch.PageDelay = 333 * time.Millisecond
	}
	if c.Twitch.RateLimitBackoff == 0 {
		c.Twitch.RateLimitBackoff = 5 * time.Second
	}
	if c.Scan.PageSize == 0 {
		c.Scan.PageSize = 50
	}
	if c.Scan.LookbackDays == 0 {
		c.Scan.LookbackDays = 90
	}
	if c.Scan.MaxPagesPerEntity == 0 {
		c.Scan.MaxPagesPerEntity = 10
	}
	if c.Sweep.Interval == 0 {
		c.Sweep.Interval = 30 * time.Minute
	}
	if c.Sweep.Size == 0 {
		c.Sweep.Size = 25
	}
	if c.Sweep.LookbackDays == 0 {
		c.Sweep.LookbackDays = 2
	}
	if c.Sweep.MaxPagesPerEntity == 0 {
		c.Sweep.MaxPagesPerEntity = 2
	}
	if c.API.ListenAddr == "" {
		c.API.ListenAddr = ":8080"
	}
	if len(c.Relevance.Keywords) == 0 {
		c.Relevance.Keywords = []string{"chaserp", "chase rp", "chase-rp"}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
