package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Promotion PromotionConfig
	DB        DBConfig
	Mongo     MongoConfig
	Kafka     KafkaConfig
	Cart      CartConfig
	CORS      CORSConfig
	Log       LogConfig
	Auth      AuthConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
	StoreMemory   = "memory"
)

type PromotionConfig struct {
	Store string `envconfig:"PROMOTION_STORE" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Paris"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type MongoConfig struct {
	URI        string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database   string        `envconfig:"MONGO_DATABASE" default:"storefront"`
	Collection string        `envconfig:"MONGO_PROMOTIONS_COLLECTION" default:"promotions"`
	Timeout    time.Duration `envconfig:"MONGO_TIMEOUT" default:"10s"`
}

// KafkaConfig: an empty broker list disables change events.
type KafkaConfig struct {
	Brokers    []string `envconfig:"KAFKA_BROKERS"`
	Topic      string   `envconfig:"KAFKA_PROMOTION_TOPIC" default:"promotions.changed"`
	InstanceID string   `envconfig:"KAFKA_INSTANCE_ID"`
	Partitions int32    `envconfig:"KAFKA_TOPIC_PARTITIONS" default:"1"`
	Replicas   int16    `envconfig:"KAFKA_REPLICATION_FACTOR" default:"1"`

	PublishTimeout time.Duration `envconfig:"KAFKA_PUBLISH_TIMEOUT" default:"5s"`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

type CartConfig struct {
	IdleTTL time.Duration `envconfig:"CART_IDLE_TTL" default:"2h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// AuthConfig describes how externally issued identity tokens are verified.
type AuthConfig struct {
	Secret   string `envconfig:"AUTH_TOKEN_SECRET" required:"true"`
	Issuer   string `envconfig:"AUTH_TOKEN_ISSUER"`
	Audience string `envconfig:"AUTH_TOKEN_AUDIENCE"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Promotion.Store {
	case StorePostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required when PROMOTION_STORE=%s", StorePostgres)
		}
	case StoreMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required when PROMOTION_STORE=%s", StoreMongo)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown PROMOTION_STORE %q", c.Promotion.Store)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Promotion: PromotionConfig{
			Store: StoreMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Paris",
			MaxConns: 4,
		},
		Kafka: KafkaConfig{
			Topic: "promotions.changed",
		},
		Cart: CartConfig{
			IdleTTL: 2 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Auth: AuthConfig{
			Secret: "test-secret",
		},
	}
}
