package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"lucky_casino/internal/model"
)

// publisher узкая часть amqp.Channel, нужная для отправки
type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPReporter публикует исходы в fanout exchange. Ошибки публикации только логируются
type AMQPReporter struct {
	mtx      sync.Mutex
	conn     *amqp.Connection
	ch       publisher
	exchange string
	log      *zap.Logger
}

func NewAMQPReporter(url, exchange string, log *zap.Logger) (*AMQPReporter, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &AMQPReporter{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		log:      log,
	}, nil
}

func (r *AMQPReporter) Report(_ context.Context, outcome model.Outcome) {
	if outcome.ID == "" {
		outcome.ID = uuid.NewString()
	}

	body, err := json.Marshal(outcome)
	if err != nil {
		r.log.Error("marshal outcome", zap.Error(err))
		return
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    outcome.ID,
		Timestamp:    outcome.PlayedAt,
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	// amqp.Channel нельзя использовать из нескольких горутин
	r.mtx.Lock()
	err = r.ch.Publish(r.exchange, outcome.Game, false, false, msg)
	r.mtx.Unlock()

	if err != nil {
		r.log.Warn("publish outcome",
			zap.String("outcome_id", outcome.ID),
			zap.Int("user_id", outcome.UserID),
			zap.Error(err),
		)
	}
}

func (r *AMQPReporter) Close() error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	err := r.ch.Close()
	if r.conn != nil {
		if cerr := r.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
