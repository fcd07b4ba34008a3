package config

import (
	"fmt"
	"strings"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Mongo    MongoConfig    `yaml:"mongo"    validate:"required"`
	Auth     AuthConfig     `yaml:"auth"     validate:"required"`
	Stripe   StripeConfig   `yaml:"stripe"`
	Telegram TelegramConfig `yaml:"telegram"`
	AMQP     AMQPConfig     `yaml:"amqp"`
	Tracing  TracingConfig  `yaml:"tracing"`
	CORS     CORSConfig     `yaml:"cors"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":3000" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// MongoConfig describes the document store. User and Password are optional
// and override any credentials embedded in URI.
type MongoConfig struct {
	URI                   string        `yaml:"uri"                    env:"MONGO_URI"                    env-default:"mongodb://localhost:27017" validate:"required"`
	User                  string        `yaml:"user"                   env:"DB_USER"`
	Password              string        `yaml:"password"               env:"DB_PASS"`
	Database              string        `yaml:"database"               env:"MONGO_DATABASE"               env-default:"styleDecorDB"              validate:"required"`
	ConnectTimeout        time.Duration `yaml:"connect_timeout"        env:"MONGO_CONNECT_TIMEOUT"        env-default:"10s"                       validate:"gt=0"`
	TransactionalPayments bool          `yaml:"transactional_payments" env:"MONGO_TRANSACTIONAL_PAYMENTS" env-default:"false"`
}

func (m MongoConfig) HasCredentials() bool {
	return m.User != ""
}

type AuthConfig struct {
	TokenSecret string        `yaml:"token_secret" env:"ACCESS_TOKEN_SECRET" validate:"required"`
	TokenTTL    time.Duration `yaml:"token_ttl"    env:"ACCESS_TOKEN_TTL"    env-default:"1h" validate:"gt=0"`
}

type StripeConfig struct {
	SecretKey string `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
	Currency  string `yaml:"currency"   env:"STRIPE_CURRENCY"   env-default:"usd" validate:"omitempty,len=3"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

type AMQPConfig struct {
	URL      string `yaml:"url"      env:"AMQP_URL"`
	Exchange string `yaml:"exchange" env:"AMQP_EXCHANGE" env-default:"styledecor.events"`
}

func (a AMQPConfig) Enabled() bool {
	return a.URL != ""
}

type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"     env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"styledecor"`
}

type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-default:"*"`
}

// Origins splits the comma separated allow list. A lone "*" allows any origin.
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c CORSConfig) AllowAll() bool {
	origins := c.Origins()
	return len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
