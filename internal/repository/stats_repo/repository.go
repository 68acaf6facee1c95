package stats_repo

import (
	"sort"
	"sync"

	"lucky_casino/internal/model"
)

// DefaultWindowSize сколько последних спинов входит в оконный RTP
const DefaultWindowSize = 500

type spinResult struct {
	bet    int
	payout int
}

// gameState накопленная статистика одной игры
type gameState struct {
	totalSpins  int
	totalBet    int
	totalPayout int

	// кольцевой буфер последних спинов
	window       []spinResult
	next         int
	windowBet    int
	windowPayout int
}

// StatsRepo хранит RTP по играм в памяти процесса
type StatsRepo struct {
	mtx        sync.RWMutex
	windowSize int
	games      map[string]*gameState
}

func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StatsRepo{
		windowSize: windowSize,
		games:      make(map[string]*gameState),
	}
}

// Record учитывает спин. Бесплатный спин приходит с bet == 0
func (r *StatsRepo) Record(game string, bet, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.games[game]
	if !ok {
		st = &gameState{window: make([]spinResult, 0, r.windowSize)}
		r.games[game] = st
	}

	st.totalSpins++
	st.totalBet += bet
	st.totalPayout += payout

	spin := spinResult{bet: bet, payout: payout}
	if len(st.window) < r.windowSize {
		st.window = append(st.window, spin)
	} else {
		old := st.window[st.next]
		st.windowBet -= old.bet
		st.windowPayout -= old.payout
		st.window[st.next] = spin
		st.next = (st.next + 1) % r.windowSize
	}
	st.windowBet += bet
	st.windowPayout += payout
}

// Game снимок по одной игре. Для неизвестной игры все счётчики нулевые
func (r *StatsRepo) Game(game string) model.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.snapshot(game)
}

// Snapshot снимки по всем играм в алфавитном порядке
func (r *StatsRepo) Snapshot() []model.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, 0, len(r.games))
	for name := range r.games {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]model.GameStats, 0, len(names))
	for _, name := range names {
		out = append(out, r.snapshot(name))
	}
	return out
}

func (r *StatsRepo) snapshot(game string) model.GameStats {
	stats := model.GameStats{Game: game, WindowSize: r.windowSize}

	st, ok := r.games[game]
	if !ok {
		return stats
	}

	stats.TotalSpins = st.totalSpins
	stats.TotalBet = st.totalBet
	stats.TotalPayout = st.totalPayout
	stats.CurrentRTP = rtp(st.totalPayout, st.totalBet)
	stats.WindowRTP = rtp(st.windowPayout, st.windowBet)

	return stats
}

func rtp(payout, bet int) float64 {
	if bet <= 0 {
		return 0
	}
	return float64(payout) / float64(bet) * 100
}
