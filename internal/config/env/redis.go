package env

import (
	"fmt"
	"os"
	"strconv"

	"lucky_casino/internal/config"
)

const (
	redisAddrEnvName     = "REDIS_ADDR"
	redisPasswordEnvName = "REDIS_PASSWORD"
	redisDBEnvName       = "REDIS_DB"
)

type redisConfig struct {
	addr     string
	password string
	db       int
}

func NewRedisConfig() (config.RedisConfig, error) {
	cfg := &redisConfig{
		addr:     os.Getenv(redisAddrEnvName),
		password: os.Getenv(redisPasswordEnvName),
	}

	if raw := os.Getenv(redisDBEnvName); len(raw) != 0 {
		db, err := strconv.Atoi(raw)
		if err != nil || db < 0 {
			return nil, fmt.Errorf("invalid %s: %q", redisDBEnvName, raw)
		}
		cfg.db = db
	}

	return cfg, nil
}

func (cfg *redisConfig) Addr() string {
	return cfg.addr
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}

func (cfg *redisConfig) DB() int {
	return cfg.db
}
