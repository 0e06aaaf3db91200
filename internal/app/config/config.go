package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"lexforge/internal/app/contract"
)

type Config struct {
	ServiceHost  string
	ServicePort  int
	LogLevel     string
	LogFormat    string
	Storage      StorageConfig
	JWT          JWTConfig
	Redis        RedisConfig
	MinIO        MinIOConfig
	PDF          PDFConfig
	Cessionnaire contract.Counterparty
	CORS         CORSConfig
}

// StorageConfig Driver: file, postgres или sqlite
type StorageConfig struct {
	Driver  string
	DataDir string
	DSN     string
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod `mapstructure:"-"`
}

// RedisConfig пустой Host отключает черный список токенов
type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// MinIOConfig пустой Endpoint отключает архив PDF
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type PDFConfig struct {
	RemoteURL string
	Timeout   time.Duration
	NoSandbox bool
}

type CORSConfig struct {
	AllowOrigins []string
}

const (
	envPrefix = "LEXFORGE"

	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

var defaults = map[string]any{
	"servicehost":                 "0.0.0.0",
	"serviceport":                 5000,
	"loglevel":                    "info",
	"logformat":                   "text",
	"storage.driver":              StorageFile,
	"storage.datadir":             "data",
	"storage.dsn":                 "",
	"jwt.token":                   "",
	"jwt.expiresin":               "24h",
	"redis.host":                  "",
	"redis.port":                  6379,
	"redis.user":                  "",
	"redis.password":              "",
	"redis.dialtimeout":           "10s",
	"redis.readtimeout":           "10s",
	"minio.endpoint":              "",
	"minio.accesskey":             "",
	"minio.secretkey":             "",
	"minio.bucket":                "contracts",
	"minio.usessl":                false,
	"pdf.remoteurl":               "",
	"pdf.timeout":                 "30s",
	"pdf.nosandbox":               false,
	"cessionnaire.name":           contract.Tellers.Name,
	"cessionnaire.legal_form":     contract.Tellers.LegalForm,
	"cessionnaire.capital":        contract.Tellers.Capital,
	"cessionnaire.registration":   contract.Tellers.Registration,
	"cessionnaire.seat":           contract.Tellers.Seat,
	"cessionnaire.representation": contract.Tellers.Representation,
	"cors.alloworigins":           []string{"*"},
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}
	return Load(configName, "config", ".")
}

// Load читает toml-файл name из первой найденной директории.
// Файл необязателен: всё можно задать через переменные LEXFORGE_*.
func Load(name string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Warnf("config %q not found, using defaults and environment", name)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.JWT.SigningMethod = jwt.SigningMethodHS256

	// переменные REDIS_* имеют приоритет
	if host := os.Getenv(envRedisHost); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv(envRedisPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("redis port must be int value: %w", err)
		}
		cfg.Redis.Port = p
	}
	if pass := os.Getenv(envRedisPass); pass != "" {
		cfg.Redis.Password = pass
	}
	if user := os.Getenv(envRedisUser); user != "" {
		cfg.Redis.User = user
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageFile:
		if c.Storage.DataDir == "" {
			return errors.New("storage.datadir is required for file storage")
		}
	case StoragePostgres, StorageSQLite:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for %s storage", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.ServicePort <= 0 || c.ServicePort > 65535 {
		return fmt.Errorf("invalid service port %d", c.ServicePort)
	}
	return nil
}

// SetupLogger применяет уровень и формат логов
func (c *Config) SetupLogger() {
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, using info", c.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
