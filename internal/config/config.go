package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultGatewayBaseURL = "https://ai.gateway.lovable.dev/v1"
	DefaultGatewayModel   = "google/gemini-2.5-flash"

	StorageDriverRedis  = "redis"
	StorageDriverOracle = "oracle"
	StorageDriverNone   = "none"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Gateway GatewayConfig
	Storage StorageConfig
	Redis   RedisConfig
	DB      DBConfig
	JWT     JWTConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Level string
	Env   string
}

// GatewayConfig holds everything the LLM gateway client needs. The API key
// is injected from here and never read from the environment by the client.
type GatewayConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	// Timeout of zero leaves the transport default in place.
	Timeout time.Duration
	Retry   RetryConfig
}

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

type StorageConfig struct {
	Driver string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type JWTConfig struct {
	SecretKey       string
	LearnerTokenTTL time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.body_limit", 1024*1024)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("gateway.base_url", DefaultGatewayBaseURL)
	v.SetDefault("gateway.model", DefaultGatewayModel)
	v.SetDefault("gateway.timeout", "0s")
	v.SetDefault("gateway.retry.max_attempts", 1)
	v.SetDefault("gateway.retry.initial_wait", "1s")
	v.SetDefault("gateway.retry.max_wait", "10s")
	v.SetDefault("gateway.retry.multiplier", 2.0)

	v.SetDefault("storage.driver", StorageDriverNone)

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("db.port", 1521)

	v.SetDefault("jwt.learner_token_ttl", "720h")
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Gateway: GatewayConfig{
			APIKey:  v.GetString("gateway.api_key"),
			BaseURL: v.GetString("gateway.base_url"),
			Model:   v.GetString("gateway.model"),
			Timeout: v.GetDuration("gateway.timeout"),
			Retry: RetryConfig{
				MaxAttempts: v.GetInt("gateway.retry.max_attempts"),
				InitialWait: v.GetDuration("gateway.retry.initial_wait"),
				MaxWait:     v.GetDuration("gateway.retry.max_wait"),
				Multiplier:  v.GetFloat64("gateway.retry.multiplier"),
			},
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString("storage.driver")),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		JWT: JWTConfig{
			SecretKey:       v.GetString("jwt.secret_key"),
			LearnerTokenTTL: v.GetDuration("jwt.learner_token_ttl"),
		},
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("LOVABLE_API_KEY"); apiKey != "" {
		config.Gateway.APIKey = apiKey
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the server cannot start with. A missing gateway
// key is not one of them: requests fail with a configuration error instead.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverRedis, StorageDriverOracle, StorageDriverNone:
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver != StorageDriverNone && len(c.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 bytes when learner storage is enabled")
	}
	if c.Gateway.Retry.MaxAttempts < 1 {
		return fmt.Errorf("gateway.retry.max_attempts must be >= 1, got %d", c.Gateway.Retry.MaxAttempts)
	}
	return nil
}

func (c *Config) GetDSN() string {
	// Oracle DSN format: user/password@host:port/service
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
