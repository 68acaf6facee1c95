package doghouse

import (
	"reflect"
	"testing"
)

// pool символы без скаттера и без бриллианта
var pool = []Symbol{
	SymbolWildDog, SymbolPoodle, SymbolRetriever, SymbolServiceDog,
	SymbolBone, SymbolBall, SymbolMeat, SymbolSeven,
}

// staggered строит поле без серий в строках 1..: соседние барабаны
// в одной строке всегда различаются. first задаёт строку 0
func staggered(first []Symbol, heights []int) Grid {
	g := make(Grid, len(first))
	for i := range g {
		reel := make(Reel, heights[i])
		reel[0] = first[i]
		for j := 1; j < len(reel); j++ {
			reel[j] = pool[(i+j)%len(pool)]
		}
		g[i] = reel
	}
	return g
}

func heights(h ...int) []int { return h }

func TestEvaluate(t *testing.T) {
	dm, s7 := SymbolDiamond, SymbolSeven
	p, r, sv := SymbolPoodle, SymbolRetriever, SymbolServiceDog

	fallback := staggered([]Symbol{p, r, sv, dm, dm, dm}, heights(7, 7, 7, 5, 5, 5))
	fallback[0][6], fallback[1][6], fallback[2][6] = dm, dm, dm

	tests := []struct {
		name string
		grid Grid
		want []WinningLine
	}{
		{
			name: "no runs",
			grid: staggered([]Symbol{p, r, p, r, p, r}, heights(7, 7, 7, 7, 7, 7)),
			want: nil,
		},
		{
			name: "pairs only",
			grid: staggered([]Symbol{p, p, r, r, sv, sv}, heights(7, 7, 7, 7, 7, 7)),
			want: nil,
		},
		{
			name: "run closed mid row",
			grid: staggered([]Symbol{p, dm, dm, dm, r, r}, heights(7, 7, 7, 7, 7, 7)),
			want: []WinningLine{
				{Kind: PatternHorizontal, Symbol: dm, Count: 3, StartReel: 1, Row: 0},
			},
		},
		{
			name: "two runs in one row",
			grid: staggered([]Symbol{dm, dm, dm, s7, s7, s7}, heights(7, 7, 7, 7, 7, 7)),
			want: []WinningLine{
				{Kind: PatternHorizontal, Symbol: dm, Count: 3, StartReel: 0, Row: 0},
				{Kind: PatternHorizontal, Symbol: s7, Count: 3, StartReel: 3, Row: 0},
			},
		},
		{
			name: "full row of six",
			grid: staggered([]Symbol{dm, dm, dm, dm, dm, dm}, heights(7, 7, 7, 7, 7, 7)),
			want: []WinningLine{
				{Kind: PatternHorizontal, Symbol: dm, Count: 6, StartReel: 0, Row: 0},
			},
		},
		{
			name: "short reels repeat row zero",
			grid: staggered([]Symbol{dm, dm, dm, dm, dm, dm}, heights(5, 5, 5, 5, 5, 5)),
			want: []WinningLine{
				{Kind: PatternHorizontal, Symbol: dm, Count: 6, StartReel: 0, Row: 0},
				{Kind: PatternHorizontal, Symbol: dm, Count: 6, StartReel: 0, Row: 5},
				{Kind: PatternHorizontal, Symbol: dm, Count: 6, StartReel: 0, Row: 6},
			},
		},
		{
			name: "fallback joins a run",
			grid: fallback,
			want: []WinningLine{
				{Kind: PatternHorizontal, Symbol: dm, Count: 3, StartReel: 3, Row: 0},
				{Kind: PatternHorizontal, Symbol: dm, Count: 3, StartReel: 3, Row: 5},
				{Kind: PatternHorizontal, Symbol: dm, Count: 6, StartReel: 0, Row: 6},
			},
		},
		{
			name: "empty grid",
			grid: Grid{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.grid, 7, 3)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate() = %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	dm := SymbolDiamond
	g := staggered([]Symbol{dm, dm, dm, dm, SymbolBone, SymbolBone}, heights(5, 6, 7, 5, 6, 7))
	before := make(Grid, len(g))
	for i, r := range g {
		before[i] = append(Reel(nil), r...)
	}

	first := Evaluate(g, 7, 3)
	second := Evaluate(g, 7, 3)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second call differs: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(g, before) {
		t.Fatal("grid was mutated")
	}
}

func TestGridAt(t *testing.T) {
	g := Grid{{SymbolBone, SymbolMeat}, {}}
	if got := g.At(0, 1); got != SymbolMeat {
		t.Errorf("At(0,1) = %q", got)
	}
	if got := g.At(0, 5); got != SymbolBone {
		t.Errorf("At(0,5) = %q, want row 0 fallback", got)
	}
	if got := g.At(1, 0); got != "" {
		t.Errorf("At on empty reel = %q", got)
	}
}
