package config

import (
	"time"

	"github.com/joho/godotenv"

	"lucky_casino/internal/game/classic"
	"lucky_casino/internal/game/doghouse"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// DogHouseSettings движок и ограничения ставок Dog House
type DogHouseSettings struct {
	Engine      doghouse.Config
	MinBet      int
	MaxBet      int
	DefaultBet  int
	RevealDelay time.Duration
}

// ClassicSettings движок и ограничения ставок классического слота
type ClassicSettings struct {
	Engine classic.Config
	MinBet int
	MaxBet int
}

type GameConfig interface {
	StartingBalance() int
	SpinLatchTTL() time.Duration
	DogHouse() DogHouseSettings
	Classic() ClassicSettings
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// RedisConfig пустой Addr означает работу без Redis
type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

// AMQPConfig пустой URL означает отправку исходов только в лог
type AMQPConfig interface {
	URL() string
	Exchange() string
}

type LogConfig interface {
	Level() string
	File() string
	Development() bool
}
