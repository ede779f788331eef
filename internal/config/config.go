package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Режимы хранения.
const (
	ModeDatabase = "database"
	ModeMemory   = "memory"
)

// Ключи конфигурации. Переменная окружения совпадает с ключом в верхнем регистре.
const (
	keyServerAddress   = "server_address"
	keyBaseURL         = "base_url"
	keyDatabaseDSN     = "database_dsn"
	keyRedisURL        = "redis_url"
	keyBlacklistKey    = "blacklist_key"
	keyBlacklistedKeys = "blacklisted_keys"
	keyGRPCAddress     = "grpc_address"
	keyEnableHTTPS     = "enable_https"
	keyTLSCertPath     = "tls_cert_path"
	keyTLSKeyPath      = "tls_key_path"
	keyBcryptCost      = "bcrypt_cost"
	keyShutdownTimeout = "shutdown_timeout"
	keyRequestLog      = "request_log"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress   string        `json:"server_address"`
	BaseURL         string        `json:"base_url"`
	DatabaseDSN     string        `json:"database_dsn"`
	RedisURL        string        `json:"redis_url"`
	BlacklistKey    string        `json:"blacklist_key"`
	BlacklistedKeys []string      `json:"blacklisted_keys"`
	GRPCAddress     string        `json:"grpc_address"`
	EnableHTTPS     bool          `json:"enable_https"`
	TLSCertPath     string        `json:"tls_cert_path"`
	TLSKeyPath      string        `json:"tls_key_path"`
	BcryptCost      int           `json:"bcrypt_cost"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	RequestLog      bool          `json:"request_log"`
	Mode            string        `json:"-"`
}

// флаг -> ключ конфигурации
var flagKeys = map[string]string{
	"address":      keyServerAddress,
	"base-url":     keyBaseURL,
	"database-dsn": keyDatabaseDSN,
	"redis-url":    keyRedisURL,
	"grpc-address": keyGRPCAddress,
	"https":        keyEnableHTTPS,
	"cert":         keyTLSCertPath,
	"key":          keyTLSKeyPath,
}

// BindFlags объявляет флаги командной строки. Значения по умолчанию задаются в Load.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP("address", "a", "", "server address")
	fs.StringP("base-url", "b", "", "base URL")
	fs.StringP("database-dsn", "d", "", "PostgreSQL DSN")
	fs.StringP("redis-url", "r", "", "Redis URL for the API key blacklist")
	fs.StringP("grpc-address", "g", "", "gRPC health server address")
	fs.BoolP("https", "s", false, "enable HTTPS")
	fs.String("cert", "", "path to TLS certificate")
	fs.String("key", "", "path to TLS key")
	fs.StringP("config", "c", "", "path to JSON config file")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyServerAddress, "localhost:8080") // Значения по умолчанию
	v.SetDefault(keyBaseURL, "http://localhost:8080")
	v.SetDefault(keyDatabaseDSN, "")
	v.SetDefault(keyRedisURL, "")
	v.SetDefault(keyBlacklistKey, "blacklist")
	v.SetDefault(keyBlacklistedKeys, []string{})
	v.SetDefault(keyGRPCAddress, "localhost:3200")
	v.SetDefault(keyEnableHTTPS, false)
	v.SetDefault(keyTLSCertPath, "cert.pem")
	v.SetDefault(keyTLSKeyPath, "key.pem")
	v.SetDefault(keyBcryptCost, 10)
	v.SetDefault(keyShutdownTimeout, 10*time.Second)
	v.SetDefault(keyRequestLog, true)
}

// Load собирает конфигурацию. Приоритет: флаг, окружение, файл, значение по умолчанию.
// fs может быть nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	configPath := os.Getenv("CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			configPath = f.Value.String()
		}
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", configPath, err)
		}
	} else {
		// Читаем .env, если есть (не переопределяет переменные окружения)
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		_ = v.ReadInConfig()
	}

	cfg := &Config{
		ServerAddress:   v.GetString(keyServerAddress),
		BaseURL:         strings.TrimSuffix(v.GetString(keyBaseURL), "/"),
		DatabaseDSN:     v.GetString(keyDatabaseDSN),
		RedisURL:        v.GetString(keyRedisURL),
		BlacklistKey:    v.GetString(keyBlacklistKey),
		BlacklistedKeys: splitList(v.GetStringSlice(keyBlacklistedKeys)),
		GRPCAddress:     v.GetString(keyGRPCAddress),
		EnableHTTPS:     v.GetBool(keyEnableHTTPS),
		TLSCertPath:     v.GetString(keyTLSCertPath),
		TLSKeyPath:      v.GetString(keyTLSKeyPath),
		BcryptCost:      v.GetInt(keyBcryptCost),
		ShutdownTimeout: v.GetDuration(keyShutdownTimeout),
		RequestLog:      v.GetBool(keyRequestLog),
	}

	// Определяем режим работы
	if cfg.DatabaseDSN != "" {
		cfg.Mode = ModeDatabase
	} else {
		cfg.Mode = ModeMemory
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList разбирает списки вида "a,b" из окружения и массивы из файла.
func splitList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return errors.New("адрес сервера не может быть пустым")
	}
	if cfg.BaseURL == "" {
		return errors.New("базовый URL не может быть пустым")
	}
	if cfg.EnableHTTPS && (cfg.TLSCertPath == "" || cfg.TLSKeyPath == "") {
		return errors.New("для HTTPS нужны пути к сертификату и ключу")
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.New("таймаут остановки должен быть положительным")
	}
	return nil
}
