package doghouse

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"lucky_casino/internal/game/rng"
)

func TestPayout(t *testing.T) {
	pt := DefaultPaytable()

	tests := []struct {
		name  string
		lines []WinningLine
		bet   int
		mult  int
		want  int
	}{
		{"no lines", nil, 10, 1, 0},
		{"diamond five", []WinningLine{{Symbol: SymbolDiamond, Count: 5}}, 10, 1, 5000},
		{"diamond six", []WinningLine{{Symbol: SymbolDiamond, Count: 6}}, 10, 1, 10000},
		{"bonus multiplier", []WinningLine{{Symbol: SymbolMeat, Count: 3}}, 10, 3, 150},
		{"length eight defaults to one", []WinningLine{{Symbol: SymbolSeven, Count: 8}}, 2, 1, 400},
		{"unknown symbol defaults to one", []WinningLine{{Symbol: "🃏", Count: 4}}, 5, 1, 10},
		{
			name: "lines stack",
			lines: []WinningLine{
				{Symbol: SymbolBone, Count: 3},
				{Symbol: SymbolBone, Count: 7},
			},
			bet:  1,
			mult: 1,
			want: 10 + 250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pt.Payout(tt.lines, tt.bet, tt.mult); got != tt.want {
				t.Errorf("Payout() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPayoutFloorsAfterSum(t *testing.T) {
	pt := DefaultPaytable()
	pt.Values["🪙"] = decimal.RequireFromString("0.5")

	one := []WinningLine{{Symbol: "🪙", Count: 3}}
	if got := pt.Payout(one, 3, 1); got != 1 {
		t.Errorf("single line = %d, want 1 (1.5 floored)", got)
	}

	two := []WinningLine{{Symbol: "🪙", Count: 3}, {Symbol: "🪙", Count: 3}}
	if got := pt.Payout(two, 3, 1); got != 3 {
		t.Errorf("two lines = %d, want 3", got)
	}
}

func TestSpinsForCount(t *testing.T) {
	pt := DefaultPaytable()
	want := map[int]int{0: 0, 2: 0, 3: 15, 4: 25, 5: 50, 6: 100, 7: 0, 12: 0}
	for count, spins := range want {
		if got := pt.SpinsForCount(count); got != spins {
			t.Errorf("SpinsForCount(%d) = %d, want %d", count, got, spins)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"default", func(*Config) {}, nil},
		{"empty alphabet", func(c *Config) { c.Alphabet = nil }, ErrEmptyAlphabet},
		{"no reels", func(c *Config) { c.Reels = 0 }, ErrInvalidReels},
		{"inverted rows", func(c *Config) { c.MinRows, c.MaxRows = 7, 5 }, ErrInvalidRows},
		{"zero row cap", func(c *Config) { c.RowCap = 0 }, ErrInvalidRows},
		{"min run one", func(c *Config) { c.MinRun = 1 }, ErrInvalidMinRun},
		{"foreign scatter", func(c *Config) { c.Scatter = "🐈" }, ErrScatterNotInAlphabet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := NewEngine(cfg, rng.NewSeeded(1))
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewEngine() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func newTestEngine(t *testing.T, seed uint64) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), rng.NewSeeded(seed))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// fiveScatters поле без серий с пятью скаттерами
func fiveScatters() Grid {
	g := staggered(
		[]Symbol{SymbolWildDog, SymbolPoodle, SymbolRetriever, SymbolServiceDog, SymbolBone, SymbolBall},
		heights(5, 5, 5, 5, 5, 5),
	)
	g[0][1], g[2][1], g[4][1] = SymbolHouse, SymbolHouse, SymbolHouse
	g[1][3], g[3][3] = SymbolHouse, SymbolHouse
	return g
}

func TestSettleBonusTransition(t *testing.T) {
	e := newTestEngine(t, 1)
	s := NewSession(10)

	s, out := e.Settle(s, fiveScatters())

	if out.ScatterCount != 5 {
		t.Fatalf("ScatterCount = %d, want 5", out.ScatterCount)
	}
	if out.AwardedFreeSpins != 50 || s.FreeSpins != 50 {
		t.Fatalf("free spins awarded=%d session=%d, want 50", out.AwardedFreeSpins, s.FreeSpins)
	}
	if !out.BonusTriggered || !s.BonusActive || s.Multiplier != BonusMultiplier {
		t.Fatalf("session not in bonus: %+v", s)
	}
	if out.Multiplier != NormalMultiplier || out.Win != 0 || len(out.Lines) != 0 {
		t.Fatalf("unexpected outcome: %+v", out)
	}

	// повторный триггер накапливает
	s, _ = e.Settle(s, fiveScatters())
	if s.FreeSpins != 100 {
		t.Fatalf("FreeSpins = %d, want 100", s.FreeSpins)
	}

	s = s.EndBonus()
	if s.BonusActive || s.Multiplier != NormalMultiplier || s.FreeSpins != 0 {
		t.Fatalf("EndBonus() = %+v", s)
	}
}

func TestSettleAppliesSessionMultiplier(t *testing.T) {
	e := newTestEngine(t, 1)
	dm := SymbolDiamond
	g := staggered([]Symbol{dm, dm, dm, dm, dm, SymbolBone}, heights(7, 7, 7, 7, 7, 7))

	normal, out := e.Settle(NewSession(10), g)
	if out.Win != 5000 || normal.TotalWinnings != 5000 {
		t.Fatalf("normal win = %d / %d, want 5000", out.Win, normal.TotalWinnings)
	}

	bonus, out := e.Settle(NewSession(10).StartBonus(), g)
	if out.Win != 15000 || out.Multiplier != BonusMultiplier || bonus.TotalWinnings != 15000 {
		t.Fatalf("bonus outcome = %+v", out)
	}
}

func TestSettleResetsTotalWinnings(t *testing.T) {
	e := newTestEngine(t, 1)
	s := NewSession(10)
	s.TotalWinnings = 777

	s, _ = e.Settle(s, staggered(
		[]Symbol{SymbolPoodle, SymbolBone, SymbolPoodle, SymbolBone, SymbolPoodle, SymbolBone},
		heights(6, 6, 6, 6, 6, 6),
	))
	if s.TotalWinnings != 0 {
		t.Fatalf("TotalWinnings = %d, want 0", s.TotalWinnings)
	}
}

func TestScatterAboveTableEntersBonusWithoutSpins(t *testing.T) {
	e := newTestEngine(t, 1)
	g := fiveScatters()
	g[5][2], g[5][4] = SymbolHouse, SymbolHouse

	s, out := e.Settle(NewSession(10), g)
	if out.ScatterCount != 7 {
		t.Fatalf("ScatterCount = %d, want 7", out.ScatterCount)
	}
	if out.AwardedFreeSpins != 0 || s.FreeSpins != 0 {
		t.Fatalf("awarded %d, want 0", out.AwardedFreeSpins)
	}
	if !s.BonusActive {
		t.Fatal("bonus should be active at 7 scatters")
	}
}

func TestSpinIsDeterministicForSeed(t *testing.T) {
	a, b := newTestEngine(t, 42), newTestEngine(t, 42)
	sa, sb := NewSession(5), NewSession(5)
	for i := 0; i < 200; i++ {
		var oa, ob Outcome
		sa, oa = a.Spin(sa)
		sb, ob = b.Spin(sb)
		if !reflect.DeepEqual(oa, ob) || sa != sb {
			t.Fatalf("spin %d diverged", i)
		}
	}
}

func TestSessionWithBet(t *testing.T) {
	s := NewSession(10)
	if _, err := s.WithBet(0); !errors.Is(err, ErrInvalidBet) {
		t.Fatalf("WithBet(0) error = %v", err)
	}
	s, err := s.WithBet(25)
	if err != nil || s.Bet != 25 {
		t.Fatalf("WithBet(25) = %+v, %v", s, err)
	}
}

func TestGenerateProperties(t *testing.T) {
	alphabet := DefaultAlphabet()
	inAlphabet := make(map[Symbol]bool, len(alphabet))
	for _, s := range alphabet {
		inAlphabet[s] = true
	}

	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		reels := rapid.IntRange(1, 10).Draw(t, "reels")

		g := Generate(rng.NewSeeded(seed), reels, 5, 7, alphabet)
		if len(g) != reels {
			t.Fatalf("len(grid) = %d, want %d", len(g), reels)
		}
		for i, r := range g {
			if len(r) < 5 || len(r) > 7 {
				t.Fatalf("reel %d has %d rows", i, len(r))
			}
			for _, s := range r {
				if !inAlphabet[s] {
					t.Fatalf("symbol %q not in alphabet", s)
				}
			}
		}
	})
}

func TestScatterAndEvaluateProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		e, err := NewEngine(DefaultConfig(), rng.NewSeeded(seed))
		if err != nil {
			t.Fatal(err)
		}
		g := e.Generate()

		literal := 0
		for _, r := range g {
			for _, s := range r {
				if s == SymbolHouse {
					literal++
				}
			}
		}
		count := e.CountScatter(g)
		if count != literal || count > g.Cells() {
			t.Fatalf("CountScatter = %d, literal %d, cells %d", count, literal, g.Cells())
		}

		first := e.Evaluate(g)
		if second := e.Evaluate(g); !reflect.DeepEqual(first, second) {
			t.Fatal("Evaluate is not idempotent")
		}
		for _, l := range first {
			if l.Count < 3 {
				t.Fatalf("line shorter than 3: %+v", l)
			}
			for reel := l.StartReel; reel < l.StartReel+l.Count; reel++ {
				if g.At(reel, l.Row) != l.Symbol {
					t.Fatalf("line %+v does not match grid at reel %d", l, reel)
				}
			}
		}
	})
}
