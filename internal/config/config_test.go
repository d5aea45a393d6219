package config

import (
	"os"
	"testing"
	"time"
)

func setEnvVars(vars map[string]string) {
	for k, v := range vars {
		os.Setenv(k, v)
	}
}

func clearEnvVars(vars []string) {
	for _, k := range vars {
		os.Unsetenv(k)
	}
}

var allEnvVars = []string{
	"HOST", "PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT", "ENVIRONMENT",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE", "DB_PATH",
	"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_POOL_SIZE",
	"REDIS_MIN_IDLE_CONNS", "REDIS_MAX_RETRIES", "REDIS_DIAL_TIMEOUT", "REDIS_READ_TIMEOUT", "REDIS_WRITE_TIMEOUT",
	"CACHE_ENABLED", "CACHE_TASK_TTL", "CACHE_LIST_TTL", "CACHE_TYPES_TTL",
	"JWT_SECRET", "ACCESS_TOKEN_TTL", "BCRYPT_COST",
	"RATE_LIMIT_ENABLED", "RATE_LIMIT_RPM", "RATE_LIMIT_BURST", "RATE_LIMIT_CLEANUP",
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnvVars(allEnvVars)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error with default config, got: %v", err)
	}

	if config.Server.Host != "localhost" {
		t.Errorf("Expected default host 'localhost', got %s", config.Server.Host)
	}

	if config.Server.Port != "8080" {
		t.Errorf("Expected default port '8080', got %s", config.Server.Port)
	}

	if config.Server.Environment != "development" {
		t.Errorf("Expected default environment 'development', got %s", config.Server.Environment)
	}

	if config.Database.Driver != "postgres" {
		t.Errorf("Expected default DB driver 'postgres', got %s", config.Database.Driver)
	}

	if config.Database.Port != "5432" {
		t.Errorf("Expected default DB port '5432', got %s", config.Database.Port)
	}

	if config.Auth.AccessTokenTTL != 24*time.Hour {
		t.Errorf("Expected default access token TTL 24h, got %v", config.Auth.AccessTokenTTL)
	}

	if config.Auth.BCryptCost != 12 {
		t.Errorf("Expected default bcrypt cost 12, got %d", config.Auth.BCryptCost)
	}

	if config.Cache.Enabled {
		t.Error("Expected cache to be disabled by default")
	}

	if !config.RateLimit.Enabled {
		t.Error("Expected rate limiting to be enabled by default")
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearEnvVars(allEnvVars)
	setEnvVars(map[string]string{
		"HOST":             "0.0.0.0",
		"PORT":             "9090",
		"DB_DRIVER":        "sqlite",
		"ACCESS_TOKEN_TTL": "1h",
		"BCRYPT_COST":      "10",
		"CACHE_ENABLED":    "true",
	})
	defer clearEnvVars(allEnvVars)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if config.Server.Host != "0.0.0.0" {
		t.Errorf("Expected host '0.0.0.0', got %s", config.Server.Host)
	}

	if config.GetServerAddr() != "0.0.0.0:9090" {
		t.Errorf("Expected server addr '0.0.0.0:9090', got %s", config.GetServerAddr())
	}

	if config.Database.Driver != "sqlite" {
		t.Errorf("Expected DB driver 'sqlite', got %s", config.Database.Driver)
	}

	if config.Auth.AccessTokenTTL != time.Hour {
		t.Errorf("Expected access token TTL 1h, got %v", config.Auth.AccessTokenTTL)
	}

	if config.Auth.BCryptCost != 10 {
		t.Errorf("Expected bcrypt cost 10, got %d", config.Auth.BCryptCost)
	}

	if !config.Cache.Enabled {
		t.Error("Expected cache to be enabled")
	}
}

func TestLoadConfig_ProductionRequiresJWTSecret(t *testing.T) {
	clearEnvVars(allEnvVars)
	setEnvVars(map[string]string{
		"ENVIRONMENT": "production",
		"DB_PASSWORD": "supersecret",
	})
	defer clearEnvVars(allEnvVars)

	_, err := LoadConfig()
	if err == nil {
		t.Error("Expected error when JWT secret is unset in production")
	}
}

func TestLoadConfig_ProductionRequiresDBPassword(t *testing.T) {
	clearEnvVars(allEnvVars)
	setEnvVars(map[string]string{
		"ENVIRONMENT": "production",
		"JWT_SECRET":  "a-real-secret",
	})
	defer clearEnvVars(allEnvVars)

	_, err := LoadConfig()
	if err == nil {
		t.Error("Expected error when DB password is unset in production")
	}
}

func TestLoadConfig_SqliteSkipsPasswordGuard(t *testing.T) {
	clearEnvVars(allEnvVars)
	setEnvVars(map[string]string{
		"ENVIRONMENT": "production",
		"JWT_SECRET":  "a-real-secret",
		"DB_DRIVER":   "sqlite",
	})
	defer clearEnvVars(allEnvVars)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error for sqlite in production, got: %v", err)
	}

	if !config.IsProduction() {
		t.Error("Expected IsProduction to be true")
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	clearEnvVars(allEnvVars)
	setEnvVars(map[string]string{
		"DB_HOST":     "db.internal",
		"DB_PORT":     "5433",
		"DB_USER":     "tasks",
		"DB_PASSWORD": "pw",
		"DB_NAME":     "tasksdb",
	})
	defer clearEnvVars(allEnvVars)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := "host=db.internal port=5433 user=tasks password=pw dbname=tasksdb sslmode=disable"
	if dsn := config.GetDatabaseDSN(); dsn != expected {
		t.Errorf("Expected DSN %q, got %q", expected, dsn)
	}
}

func TestGetDatabaseDSN_Sqlite(t *testing.T) {
	clearEnvVars(allEnvVars)
	setEnvVars(map[string]string{
		"DB_DRIVER": "sqlite",
		"DB_PATH":   ":memory:",
	})
	defer clearEnvVars(allEnvVars)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if dsn := config.GetDatabaseDSN(); dsn != ":memory:" {
		t.Errorf("Expected DSN ':memory:', got %q", dsn)
	}
}

func TestGetRedisAddr(t *testing.T) {
	clearEnvVars(allEnvVars)
	setEnvVars(map[string]string{
		"REDIS_HOST": "cache.internal",
		"REDIS_PORT": "6380",
	})
	defer clearEnvVars(allEnvVars)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if addr := config.GetRedisAddr(); addr != "cache.internal:6380" {
		t.Errorf("Expected redis addr 'cache.internal:6380', got %s", addr)
	}
}
