package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"lucky_casino/internal/model"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	closed    bool
}

func (c *fakeChannel) Publish(_, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.keys = append(c.keys, key)
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestAMQPReporterPublishes(t *testing.T) {
	ch := &fakeChannel{}
	r := &AMQPReporter{ch: ch, exchange: "casino.outcomes", log: zaptest.NewLogger(t)}

	r.Report(context.Background(), model.Outcome{
		UserID:   3,
		Game:     model.GameDogHouse,
		Bet:      10,
		Win:      150,
		Balance:  1140,
		PlayedAt: time.Unix(1700000000, 0),
	})

	if len(ch.published) != 1 {
		t.Fatalf("published %d messages", len(ch.published))
	}
	msg := ch.published[0]
	if msg.MessageId == "" || ch.keys[0] != model.GameDogHouse {
		t.Fatalf("message id %q, key %q", msg.MessageId, ch.keys[0])
	}

	var got model.Outcome
	if err := json.Unmarshal(msg.Body, &got); err != nil {
		t.Fatal(err)
	}
	if got.Win != 150 || got.Balance != 1140 || got.ID != msg.MessageId {
		t.Fatalf("body = %+v", got)
	}

	if err := r.Close(); err != nil || !ch.closed {
		t.Fatalf("Close() = %v, closed %v", err, ch.closed)
	}
}

func TestAMQPReporterLogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := &AMQPReporter{
		ch:       &fakeChannel{err: errors.New("channel closed")},
		exchange: "casino.outcomes",
		log:      zap.New(core),
	}

	r.Report(context.Background(), model.Outcome{UserID: 1, Game: model.GameClassic})

	if logs.FilterMessage("publish outcome").Len() != 1 {
		t.Fatal("publish failure not logged")
	}
}

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	NewLogReporter(zap.New(core)).Report(context.Background(), model.Outcome{
		UserID: 5, Game: model.GameClassic, Bet: 2, Win: 20, Balance: 118,
	})

	entries := logs.FilterMessage("game outcome").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	if f := entries[0].ContextMap(); f["win"] != int64(20) || f["game"] != model.GameClassic {
		t.Fatalf("fields = %v", f)
	}
}
