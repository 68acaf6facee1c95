package notify

import (
	"context"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"lucky_casino/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LogReporter пишет исходы в лог, когда брокер не настроен
type LogReporter struct {
	log *zap.Logger
}

func NewLogReporter(log *zap.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) Report(_ context.Context, outcome model.Outcome) {
	if outcome.ID == "" {
		outcome.ID = uuid.NewString()
	}

	r.log.Info("game outcome",
		zap.String("outcome_id", outcome.ID),
		zap.Int("user_id", outcome.UserID),
		zap.String("game", outcome.Game),
		zap.Int("bet", outcome.Bet),
		zap.Int("win", outcome.Win),
		zap.Int("balance", outcome.Balance),
	)
}
