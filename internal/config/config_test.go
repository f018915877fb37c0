package config

import (
	"encoding/base64"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var validSecret = base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

// clearEnv сбрасывает все переменные, которые читает конфиг
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		EnvServerAddress, EnvDatabaseDSN, EnvSQLitePath, EnvStorage, EnvJWTSecretKey,
		EnvJWTAccessExpire, EnvBcryptCost, EnvLogLevel, EnvCookieSecure,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	return Load(flag.NewFlagSet("test", flag.ContinueOnError), args)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, defaultServerAddress, cfg.ServerAddress)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.True(t, filepath.IsAbs(cfg.SQLitePath))
	assert.Equal(t, defaultSQLitePath, filepath.Base(cfg.SQLitePath))
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpire)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.False(t, cfg.CookieSecure)

	require.Len(t, cfg.Warnings, 1, "без секрета генерируется ключ и пишется предупреждение")
	raw, err := base64.StdEncoding.DecodeString(cfg.JWTSecretKey)
	require.NoError(t, err)
	assert.Len(t, raw, minJWTSecretBytes)
}

func TestLoad_EnvOverridesFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvServerAddress, ":9090")
	t.Setenv(EnvJWTSecretKey, validSecret)
	t.Setenv(EnvJWTAccessExpire, "5m")
	t.Setenv(EnvCookieSecure, "true")

	cfg, err := load(t, "-server-address", "0.0.0.0:7000", "-storage", "memory")
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.ServerAddress)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 5*time.Minute, cfg.JWTAccessExpire)
	assert.True(t, cfg.CookieSecure)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_StorageSelection(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    string
		wantErr bool
	}{
		{
			name: "DSN выбирает postgres",
			env:  map[string]string{EnvDatabaseDSN: "postgres://localhost/library"},
			want: StoragePostgres,
		},
		{
			name:    "postgres без DSN",
			env:     map[string]string{EnvStorage: "postgres"},
			wantErr: true,
		},
		{
			name: "Явный sqlite при заданном DSN",
			env:  map[string]string{EnvStorage: "SQLite", EnvDatabaseDSN: "postgres://localhost/library"},
			want: StorageSQLite,
		},
		{
			name:    "Неизвестное хранилище",
			env:     map[string]string{EnvStorage: "mongo"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvJWTSecretKey, validSecret)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := load(t)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Storage)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "Короткий секрет", key: EnvJWTSecretKey, val: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "Секрет не base64", key: EnvJWTSecretKey, val: "!!!not-base64-at-all-but-long-enough!!!"},
		{name: "Кривая длительность", key: EnvJWTAccessExpire, val: "soon"},
		{name: "Нулевая длительность", key: EnvJWTAccessExpire, val: "0s"},
		{name: "Cost вне диапазона", key: EnvBcryptCost, val: "99"},
		{name: "Cost не число", key: EnvBcryptCost, val: "ten"},
		{name: "Кривой bool", key: EnvCookieSecure, val: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvJWTSecretKey, validSecret)
			t.Setenv(tt.key, tt.val)

			_, err := load(t)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE=memory\nLOG_LEVEL=debug\n"), 0o600))

	t.Setenv(EnvLogLevel, "warn")
	require.NoError(t, os.Unsetenv(EnvStorage))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "memory", os.Getenv(EnvStorage))
	assert.Equal(t, "warn", os.Getenv(EnvLogLevel), "уже выставленная переменная не перетирается")

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
