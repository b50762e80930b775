package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 1780
	defaultMaxConnections  = 64
	defaultShutdownTimeout = 10
	defaultTableID         = "main"
	defaultSeatTTL         = 360
	defaultMessageLimit    = 20
	defaultClientServer    = "localhost:1780"
)

// Config 服务端与客户端共用的配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Table    TableConfig    `yaml:"table"`
	Security SecurityConfig `yaml:"security"`
	Client   ClientConfig   `yaml:"client"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	MaxConnections  int    `yaml:"max_connections"`
	ShutdownTimeout int    `yaml:"shutdown_timeout"` // 关闭等待（秒）
}

// RedisConfig Redis 配置，Addr 为空时座位记录保存在内存中
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// TableConfig 牌桌配置
type TableConfig struct {
	ID      string `yaml:"id"`
	SeatTTL int    `yaml:"seat_ttl"` // 座位记录过期时间（分钟）
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	AllowedOrigins []string           `yaml:"allowed_origins"`
	MessageLimit   MessageLimitConfig `yaml:"message_limit"`
}

// MessageLimitConfig 单连接消息速率限制
type MessageLimitConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
}

// ClientConfig 终端客户端配置
type ClientConfig struct {
	Server string `yaml:"server"` // host:port
	Name   string `yaml:"name"`
	Sound  bool   `yaml:"sound"`
}

// ShutdownTimeoutDuration 返回关闭等待时长
func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

// SeatTTLDuration 返回座位记录过期时长
func (c *TableConfig) SeatTTLDuration() time.Duration {
	return time.Duration(c.SeatTTL) * time.Minute
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

// Default 返回默认配置（同样应用环境变量覆盖）
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = defaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.MaxConnections == 0 {
		c.Server.MaxConnections = defaultMaxConnections
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.Table.ID == "" {
		c.Table.ID = defaultTableID
	}
	if c.Table.SeatTTL == 0 {
		c.Table.SeatTTL = defaultSeatTTL
	}
	if len(c.Security.AllowedOrigins) == 0 {
		c.Security.AllowedOrigins = []string{"*"}
	}
	if c.Security.MessageLimit.MaxPerSecond == 0 {
		c.Security.MessageLimit.MaxPerSecond = defaultMessageLimit
	}
	if c.Client.Server == "" {
		c.Client.Server = defaultClientServer
	}
}

// applyEnv 环境变量优先于配置文件
func (c *Config) applyEnv() {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("TABLE_ID"); v != "" {
		c.Table.ID = v
	}
	if v := os.Getenv("CLIENT_SERVER"); v != "" {
		c.Client.Server = v
	}
}
