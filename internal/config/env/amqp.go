package env

import (
	"os"

	"lucky_casino/internal/config"
)

const (
	amqpURLEnvName      = "AMQP_URL"
	amqpExchangeEnvName = "AMQP_EXCHANGE"

	defaultExchange = "casino.outcomes"
)

type amqpConfig struct {
	url      string
	exchange string
}

func NewAMQPConfig() (config.AMQPConfig, error) {
	exchange := os.Getenv(amqpExchangeEnvName)
	if len(exchange) == 0 {
		exchange = defaultExchange
	}

	return &amqpConfig{
		url:      os.Getenv(amqpURLEnvName),
		exchange: exchange,
	}, nil
}

func (cfg *amqpConfig) URL() string {
	return cfg.url
}

func (cfg *amqpConfig) Exchange() string {
	return cfg.exchange
}
