package doghouse

import (
	"context"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"lucky_casino/internal/game/doghouse"
	"lucky_casino/internal/model"
)

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTx) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	mtx   sync.Mutex
	users map[int]*model.User
}

func newFakeUserRepo(balances map[int]int) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int]*model.User)}
	for id, b := range balances {
		r.users[id] = &model.User{ID: id, Balance: b, IsActive: true}
	}
	return r
}

func (r *fakeUserRepo) user(id int) (*model.User, error) {
	u, ok := r.users[id]
	if !ok || !u.IsActive {
		return nil, model.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) CreateUser(context.Context, *model.User) (int, error) { return 0, nil }

func (r *fakeUserRepo) GetUserByEmail(context.Context, string) (*model.User, error) {
	return nil, model.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int) (*model.User, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	u, err := r.user(id)
	if err != nil {
		return nil, err
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetBalance(_ context.Context, id int) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	u, err := r.user(id)
	if err != nil {
		return 0, err
	}
	return u.Balance, nil
}

func (r *fakeUserRepo) UpdateBalance(_ context.Context, id int, amount int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	u, err := r.user(id)
	if err != nil {
		return err
	}
	u.Balance = amount
	return nil
}

func (r *fakeUserRepo) RecordGame(_ context.Context, id int, win int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	u, err := r.user(id)
	if err != nil {
		return err
	}
	u.GamesPlayed++
	u.TotalWinnings += win
	return nil
}

func (r *fakeUserRepo) TopPlayers(context.Context, int) ([]model.Player, error) { return nil, nil }

func (r *fakeUserRepo) Deactivate(context.Context, int) error { return nil }

type fakeStateRepo struct {
	states map[int]model.DogHouseState
}

func (r *fakeStateRepo) GetState(_ context.Context, userID int) (model.DogHouseState, bool, error) {
	st, ok := r.states[userID]
	return st, ok, nil
}

func (r *fakeStateRepo) SaveState(_ context.Context, state model.DogHouseState) error {
	r.states[state.UserID] = state
	return nil
}

type fakeReporter struct {
	outcomes []model.Outcome
}

func (r *fakeReporter) Report(_ context.Context, o model.Outcome) {
	r.outcomes = append(r.outcomes, o)
}

// scriptedEngine рассчитывает заранее заданные поля по очереди, последнее повторяется
type scriptedEngine struct {
	engine *doghouse.Engine
	grids  []doghouse.Grid
}

func (e *scriptedEngine) Config() doghouse.Config { return e.engine.Config() }

func (e *scriptedEngine) Spin(s doghouse.Session) (doghouse.Session, doghouse.Outcome) {
	g := e.grids[0]
	if len(e.grids) > 1 {
		e.grids = e.grids[1:]
	}
	return e.engine.Settle(s, g)
}

var pool = []doghouse.Symbol{
	doghouse.SymbolWildDog, doghouse.SymbolPoodle, doghouse.SymbolRetriever, doghouse.SymbolServiceDog,
	doghouse.SymbolBone, doghouse.SymbolBall, doghouse.SymbolMeat, doghouse.SymbolSeven,
}

// losingGrid 6x7 без серий и скаттеров
func losingGrid() doghouse.Grid {
	g := make(doghouse.Grid, 6)
	for i := range g {
		g[i] = make(doghouse.Reel, 7)
		for j := range g[i] {
			g[i][j] = pool[(i+j)%len(pool)]
		}
	}
	return g
}

// diamondGrid пять бриллиантов в строке 0: 100 * 5 * bet * mult
func diamondGrid() doghouse.Grid {
	g := losingGrid()
	for i := 0; i < 5; i++ {
		g[i][0] = doghouse.SymbolDiamond
	}
	return g
}

// scatterGrid пять скаттеров, 50 фриспинов
func scatterGrid() doghouse.Grid {
	g := losingGrid()
	g[0][1], g[2][1], g[4][1] = doghouse.SymbolHouse, doghouse.SymbolHouse, doghouse.SymbolHouse
	g[1][3], g[3][3] = doghouse.SymbolHouse, doghouse.SymbolHouse
	return g
}
