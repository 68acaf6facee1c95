package doghouse

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"lucky_casino/internal/config"
	"lucky_casino/internal/game/doghouse"
	"lucky_casino/internal/game/rng"
	"lucky_casino/internal/model"
	"lucky_casino/internal/repository"
	"lucky_casino/internal/repository/latch_repo"
	"lucky_casino/internal/repository/stats_repo"
)

const userID = 1

type fixture struct {
	serv     *serv
	users    *fakeUserRepo
	states   *fakeStateRepo
	stats    *stats_repo.StatsRepo
	latch    repository.SpinLatch
	reporter *fakeReporter
	engine   *scriptedEngine
}

func newFixture(t *testing.T, balance int, grids ...doghouse.Grid) *fixture {
	t.Helper()

	e, err := doghouse.NewEngine(doghouse.DefaultConfig(), rng.NewSeeded(1))
	if err != nil {
		t.Fatal(err)
	}

	f := &fixture{
		users:    newFakeUserRepo(map[int]int{userID: balance}),
		states:   &fakeStateRepo{states: make(map[int]model.DogHouseState)},
		stats:    stats_repo.NewStatsRepository(10),
		latch:    latch_repo.NewMemoryLatch(),
		reporter: &fakeReporter{},
		engine:   &scriptedEngine{engine: e, grids: grids},
	}

	f.serv = NewDogHouseService(Deps{
		Engine: f.engine,
		Settings: config.DogHouseSettings{
			Engine:     doghouse.DefaultConfig(),
			MinBet:     1,
			MaxBet:     1000,
			DefaultBet: 10,
		},
		LatchTTL:  time.Minute,
		Repo:      f.states,
		UserRepo:  f.users,
		StatsRepo: f.stats,
		Latch:     f.latch,
		Reporter:  f.reporter,
		TxManager: fakeTx{},
		Log:       zaptest.NewLogger(t),
	}).(*serv)

	return f
}

func (f *fixture) spin(t *testing.T, bet int) *model.DogHouseSpinResult {
	t.Helper()
	res, err := f.serv.Spin(context.Background(), model.DogHouseSpin{UserID: userID, Bet: bet})
	if err != nil {
		t.Fatalf("Spin() error = %v", err)
	}
	return res
}

func TestSpinPaid(t *testing.T) {
	f := newFixture(t, 1000, diamondGrid())

	res := f.spin(t, 10)

	if res.Win != 5000 || res.Balance != 1000-10+5000 || res.FreeSpin {
		t.Fatalf("result = %+v", res)
	}
	if len(res.WinningLines) != 1 || res.WinningLines[0].Payout != 5000 {
		t.Fatalf("lines = %+v", res.WinningLines)
	}
	if len(res.Reels) != 6 || len(res.Reels[0]) != 7 || res.Reels[0][0] != "💎" {
		t.Fatalf("reels = %v", res.Reels)
	}

	u, _ := f.users.GetUserByID(context.Background(), userID)
	if u.Balance != 5990 || u.GamesPlayed != 1 || u.TotalWinnings != 5000 {
		t.Fatalf("user = %+v", u)
	}
	if st := f.states.states[userID].Session; st.Bet != 10 || st.BonusActive {
		t.Fatalf("saved session = %+v", st)
	}

	stats := f.stats.Game(model.GameDogHouse)
	if stats.TotalSpins != 1 || stats.TotalBet != 10 || stats.TotalPayout != 5000 {
		t.Fatalf("stats = %+v", stats)
	}

	if len(f.reporter.outcomes) != 1 {
		t.Fatalf("reported %d outcomes", len(f.reporter.outcomes))
	}
	if o := f.reporter.outcomes[0]; o.Game != model.GameDogHouse || o.Bet != 10 || o.Win != 5000 || o.Balance != 5990 {
		t.Fatalf("outcome = %+v", o)
	}
}

func TestSpinBonusFlow(t *testing.T) {
	f := newFixture(t, 1000, scatterGrid(), diamondGrid())

	trigger := f.spin(t, 10)
	if !trigger.BonusActive || trigger.FreeSpinsLeft != 50 || trigger.AwardedFreeSpins != 50 {
		t.Fatalf("trigger = %+v", trigger)
	}
	if trigger.Multiplier != doghouse.NormalMultiplier || trigger.Balance != 990 {
		t.Fatalf("trigger spin must be paid at x1: %+v", trigger)
	}

	free := f.spin(t, 10)
	if !free.FreeSpin || free.FreeSpinsLeft != 49 || free.Multiplier != doghouse.BonusMultiplier {
		t.Fatalf("free spin = %+v", free)
	}
	if free.Win != 15000 || free.Balance != 990+15000 {
		t.Fatalf("free spin payout = %d balance = %d", free.Win, free.Balance)
	}

	if o := f.reporter.outcomes[1]; o.Bet != 0 {
		t.Fatalf("free spin reported with bet %d", o.Bet)
	}
	if stats := f.stats.Game(model.GameDogHouse); stats.TotalBet != 10 || stats.TotalSpins != 2 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestFreeSpinKeepsTriggerBet(t *testing.T) {
	f := newFixture(t, 1000, scatterGrid(), diamondGrid())

	trigger := f.spin(t, 1)
	if !trigger.BonusActive || trigger.Balance != 999 {
		t.Fatalf("trigger = %+v", trigger)
	}

	free := f.spin(t, 1000)
	if !free.FreeSpin || free.Bet != 1 {
		t.Fatalf("free spin = %+v", free)
	}
	// 💎 x5: 100 * 5 * ставка 1 * x3
	if free.Win != 1500 || free.Balance != 999+1500 {
		t.Fatalf("free spin win = %d balance = %d, want 1500 / %d", free.Win, free.Balance, 999+1500)
	}
	if st := f.states.states[userID].Session; st.Bet != 1 || st.FreeSpins != 49 {
		t.Fatalf("saved session = %+v", st)
	}
}

func TestSpinLastFreeSpinEndsBonus(t *testing.T) {
	f := newFixture(t, 100, losingGrid())
	f.states.states[userID] = model.DogHouseState{
		UserID:  userID,
		Session: doghouse.Session{Bet: 10, FreeSpins: 1, Multiplier: 3, BonusActive: true},
	}

	res := f.spin(t, 10)

	if !res.FreeSpin || res.BonusActive || res.FreeSpinsLeft != 0 || res.Balance != 100 {
		t.Fatalf("result = %+v", res)
	}
	if st := f.states.states[userID].Session; st.BonusActive || st.Multiplier != doghouse.NormalMultiplier {
		t.Fatalf("saved session = %+v", st)
	}
}

func TestSpinExhaustedBonusIsPaidAtNormalMultiplier(t *testing.T) {
	f := newFixture(t, 100, diamondGrid())
	f.states.states[userID] = model.DogHouseState{
		UserID:  userID,
		Session: doghouse.Session{Bet: 10, Multiplier: 3, BonusActive: true},
	}

	res := f.spin(t, 10)
	if res.FreeSpin || res.Win != 5000 || res.Multiplier != 1 || res.Balance != 90+5000 {
		t.Fatalf("result = %+v", res)
	}
}

func TestSpinErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("bet out of range", func(t *testing.T) {
		f := newFixture(t, 1000, losingGrid())
		for _, bet := range []int{0, -5, 1001} {
			_, err := f.serv.Spin(ctx, model.DogHouseSpin{UserID: userID, Bet: bet})
			if !errors.Is(err, model.ErrInvalidBet) {
				t.Fatalf("bet %d: error = %v", bet, err)
			}
		}
	})

	t.Run("insufficient balance", func(t *testing.T) {
		f := newFixture(t, 5, losingGrid())
		_, err := f.serv.Spin(ctx, model.DogHouseSpin{UserID: userID, Bet: 10})
		if !errors.Is(err, model.ErrInsufficientBalance) {
			t.Fatalf("error = %v", err)
		}
		if len(f.reporter.outcomes) != 0 || f.stats.Game(model.GameDogHouse).TotalSpins != 0 {
			t.Fatal("rejected spin was recorded")
		}
		if b, _ := f.users.GetBalance(ctx, userID); b != 5 {
			t.Fatalf("balance = %d", b)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t, 1000, losingGrid())
		_, err := f.serv.Spin(ctx, model.DogHouseSpin{UserID: 99, Bet: 10})
		if !errors.Is(err, model.ErrUserNotFound) {
			t.Fatalf("error = %v", err)
		}
	})

	t.Run("spin in progress", func(t *testing.T) {
		f := newFixture(t, 1000, losingGrid())
		if _, ok, _ := f.latch.Acquire(ctx, "doghouse:1", time.Minute); !ok {
			t.Fatal("could not pre-acquire latch")
		}
		_, err := f.serv.Spin(ctx, model.DogHouseSpin{UserID: userID, Bet: 10})
		if !errors.Is(err, model.ErrSpinInProgress) {
			t.Fatalf("error = %v", err)
		}
	})
}

func TestSpinReleasesLatch(t *testing.T) {
	f := newFixture(t, 1000, losingGrid())
	f.spin(t, 10)
	f.spin(t, 10)

	if b, _ := f.users.GetBalance(context.Background(), userID); b != 980 {
		t.Fatalf("balance = %d", b)
	}
}

func TestSpinRevealDelayStopsOnCancel(t *testing.T) {
	f := newFixture(t, 1000, losingGrid())
	f.serv.settings.RevealDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := f.serv.Spin(ctx, model.DogHouseSpin{UserID: userID, Bet: 10}); err != nil {
			t.Errorf("Spin() error = %v", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Spin waited for the full reveal delay")
	}
}

func TestStateSetBetEndBonus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1000, losingGrid())

	st, err := f.serv.State(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if st.Session.Bet != 10 || st.Session.Multiplier != 1 || st.Session.BonusActive {
		t.Fatalf("default state = %+v", st)
	}

	if _, err := f.serv.SetBet(ctx, model.DogHouseSpin{UserID: userID, Bet: 2000}); !errors.Is(err, model.ErrInvalidBet) {
		t.Fatalf("SetBet(2000) error = %v", err)
	}

	f.states.states[userID] = model.DogHouseState{
		UserID:  userID,
		Session: doghouse.Session{Bet: 10, FreeSpins: 12, Multiplier: 3, BonusActive: true},
	}

	if _, err := f.serv.SetBet(ctx, model.DogHouseSpin{UserID: userID, Bet: 50}); !errors.Is(err, model.ErrBonusActive) {
		t.Fatalf("SetBet during bonus error = %v", err)
	}
	if saved := f.states.states[userID].Session; saved.Bet != 10 || saved.FreeSpins != 12 {
		t.Fatalf("session changed by rejected SetBet: %+v", saved)
	}

	st, err = f.serv.EndBonus(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if st.Session.BonusActive || st.Session.FreeSpins != 0 || st.Session.Multiplier != 1 || st.Session.Bet != 10 {
		t.Fatalf("EndBonus state = %+v", st)
	}
	if saved := f.states.states[userID]; saved.Session != st.Session {
		t.Fatalf("saved = %+v", saved)
	}

	st, err = f.serv.SetBet(ctx, model.DogHouseSpin{UserID: userID, Bet: 50})
	if err != nil {
		t.Fatal(err)
	}
	if st.Session.Bet != 50 {
		t.Fatalf("SetBet state = %+v", st)
	}
}
