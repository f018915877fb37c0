package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	EnvServerAddress   = "SERVER_ADDRESS"
	EnvDatabaseDSN     = "DATABASE_DSN"
	EnvSQLitePath      = "SQLITE_PATH"
	EnvStorage         = "STORAGE"
	EnvJWTSecretKey    = "JWT_SECRET_KEY"
	EnvJWTAccessExpire = "JWT_ACCESS_EXPIRE"
	EnvBcryptCost      = "BCRYPT_COST"
	EnvLogLevel        = "LOG_LEVEL"
	EnvCookieSecure    = "COOKIE_SECURE"
)

const (
	defaultServerAddress   = "localhost:8080"
	defaultSQLitePath      = "library.db"
	defaultJWTAccessExpire = 30 * time.Minute
	defaultLogLevel        = "info"

	minJWTSecretBytes = 32
)

// Типы хранилищ
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	ServerAddress   string
	DatabaseDSN     string // пусто - postgres не используется
	SQLitePath      string
	Storage         string // postgres | sqlite | memory
	JWTSecretKey    string // base64, минимум 32 байта после декодирования
	JWTAccessExpire time.Duration
	BcryptCost      int
	LogLevel        string
	CookieSecure    bool

	// Предупреждения, накопленные при загрузке. Логгер еще не создан, поэтому их выводит вызывающий.
	Warnings []string
}

// LoadDotEnv подгружает переменные из .env файлов, уже выставленные переменные не перетираются.
// Отсутствие файла - не ошибка.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

func NewConfig() (*Config, error) {
	return Load(flag.CommandLine, os.Args[1:])
}

// Load: значения по умолчанию, затем флаги, затем переменные окружения.
func Load(fset *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{
		ServerAddress:   defaultServerAddress,
		SQLitePath:      defaultSQLitePath,
		JWTAccessExpire: defaultJWTAccessExpire,
		BcryptCost:      bcrypt.DefaultCost,
		LogLevel:        defaultLogLevel,
	}

	fset.StringVar(&cfg.ServerAddress, "server-address", cfg.ServerAddress, "Server address")
	fset.StringVar(&cfg.DatabaseDSN, "database-dsn", cfg.DatabaseDSN, "Postgres DSN")
	fset.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite database file")
	fset.StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: postgres, sqlite or memory")
	fset.DurationVar(&cfg.JWTAccessExpire, "jwt-access-expire", cfg.JWTAccessExpire, "JWT access token expiration")
	fset.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt cost")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	fset.BoolVar(&cfg.CookieSecure, "cookie-secure", cfg.CookieSecure, "Set Secure flag on auth cookie")
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.applyEnv(EnvServerAddress, &cfg.ServerAddress)
	cfg.applyEnv(EnvDatabaseDSN, &cfg.DatabaseDSN)
	cfg.applyEnv(EnvSQLitePath, &cfg.SQLitePath)
	cfg.applyEnv(EnvStorage, &cfg.Storage)
	cfg.applyEnv(EnvJWTSecretKey, &cfg.JWTSecretKey)
	cfg.applyEnv(EnvLogLevel, &cfg.LogLevel)
	if err := cfg.applyEnvDuration(EnvJWTAccessExpire, &cfg.JWTAccessExpire); err != nil {
		return nil, err
	}
	if err := cfg.applyEnvInt(EnvBcryptCost, &cfg.BcryptCost); err != nil {
		return nil, err
	}
	if err := cfg.applyEnvBool(EnvCookieSecure, &cfg.CookieSecure); err != nil {
		return nil, err
	}

	if err := cfg.validateJWTSecret(); err != nil {
		return nil, err
	}
	if err := cfg.resolveStorage(); err != nil {
		return nil, err
	}
	if cfg.JWTAccessExpire <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, EnvJWTAccessExpire)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %s must be in [%d, %d]", ErrInvalidConfig, EnvBcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	cfg.SQLitePath = cfg.resolveFilePath()
	cfg.normalizeServerAddress()

	return cfg, nil
}

func (c *Config) applyEnv(key string, target *string) {
	if val, ok := os.LookupEnv(key); ok {
		*target = val
	}
}

func (c *Config) applyEnvDuration(key string, target *time.Duration) error {
	val, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	*target = d
	return nil
}

func (c *Config) applyEnvInt(key string, target *int) error {
	val, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	*target = n
	return nil
}

func (c *Config) applyEnvBool(key string, target *bool) error {
	val, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	*target = b
	return nil
}

func (c *Config) validateJWTSecret() error {
	if c.JWTSecretKey == "" {
		// Случайный ключ для разработки, токены не переживут рестарт
		key := make([]byte, minJWTSecretBytes)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("failed to generate JWT secret key: %w", err)
		}
		c.JWTSecretKey = base64.StdEncoding.EncodeToString(key)
		c.Warnings = append(c.Warnings,
			"using auto-generated JWT secret key, set "+EnvJWTSecretKey+" for production")
	}

	raw, err := base64.StdEncoding.DecodeString(c.JWTSecretKey)
	if err != nil || len(raw) < minJWTSecretBytes {
		return fmt.Errorf("%w: JWT secret key must be base64 of at least %d bytes", ErrInvalidConfig, minJWTSecretBytes)
	}
	return nil
}

func (c *Config) resolveStorage() error {
	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))

	switch c.Storage {
	case "":
		if c.DatabaseDSN != "" {
			c.Storage = StoragePostgres
		} else {
			c.Storage = StorageSQLite
		}
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("%w: storage %q requires %s", ErrInvalidConfig, StoragePostgres, EnvDatabaseDSN)
		}
	case StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, c.Storage)
	}
	return nil
}

func (c *Config) resolveFilePath() string {
	if filepath.IsAbs(c.SQLitePath) {
		return c.SQLitePath
	}

	absPath, err := filepath.Abs(c.SQLitePath)
	if err != nil {
		return filepath.Clean(c.SQLitePath)
	}
	return absPath
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}
