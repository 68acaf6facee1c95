package doghouse

import (
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"lucky_casino/internal/config"
	"lucky_casino/internal/game/doghouse"
	"lucky_casino/internal/repository"
	"lucky_casino/internal/service"
)

// Engine часть движка, которой пользуется сервис
type Engine interface {
	Config() doghouse.Config
	Spin(s doghouse.Session) (doghouse.Session, doghouse.Outcome)
}

type serv struct {
	engine    Engine
	settings  config.DogHouseSettings
	latchTTL  time.Duration
	repo      repository.DogHouseRepository
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	latch     repository.SpinLatch
	reporter  service.OutcomeReporter
	txManager trm.Manager
	log       *zap.Logger
}

type Deps struct {
	Engine    Engine
	Settings  config.DogHouseSettings
	LatchTTL  time.Duration
	Repo      repository.DogHouseRepository
	UserRepo  repository.UserRepository
	StatsRepo repository.StatsRepository
	Latch     repository.SpinLatch
	Reporter  service.OutcomeReporter
	TxManager trm.Manager
	Log       *zap.Logger
}

// NewDogHouseService сервис Dog House Megaways поверх движка
func NewDogHouseService(deps Deps) service.DogHouseService {
	return &serv{
		engine:    deps.Engine,
		settings:  deps.Settings,
		latchTTL:  deps.LatchTTL,
		repo:      deps.Repo,
		userRepo:  deps.UserRepo,
		statsRepo: deps.StatsRepo,
		latch:     deps.Latch,
		reporter:  deps.Reporter,
		txManager: deps.TxManager,
		log:       deps.Log.Named("doghouse"),
	}
}
