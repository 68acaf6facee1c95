package doghouse

import (
	"github.com/shopspring/decimal"
)

// Symbol символ на барабане
type Symbol string

const (
	SymbolWildDog    Symbol = "🐕"
	SymbolPoodle     Symbol = "🐩"
	SymbolRetriever  Symbol = "🦮"
	SymbolServiceDog Symbol = "🐕‍🦺"
	SymbolBone       Symbol = "🦴"
	SymbolHouse      Symbol = "🏠"
	SymbolBall       Symbol = "🎾"
	SymbolMeat       Symbol = "🥩"
	SymbolDiamond    Symbol = "💎"
	SymbolSeven      Symbol = "7️⃣"
)

// Paytable таблицы выплат. Отсутствующие ключи не ошибка:
// для них берутся DefaultSymbolValue и DefaultLengthMultiplier
type Paytable struct {
	Values                  map[Symbol]decimal.Decimal
	LengthMultipliers       map[int]int
	FreeSpins               map[int]int // кол-во скаттеров -> фриспины
	DefaultSymbolValue      decimal.Decimal
	DefaultLengthMultiplier int
}

// DefaultAlphabet алфавит в порядке отображения
func DefaultAlphabet() []Symbol {
	return []Symbol{
		SymbolWildDog, SymbolPoodle, SymbolRetriever, SymbolServiceDog, SymbolBone,
		SymbolHouse, SymbolBall, SymbolMeat, SymbolDiamond, SymbolSeven,
	}
}

// DefaultPaytable таблицы Dog House Megaways
func DefaultPaytable() Paytable {
	return Paytable{
		Values: map[Symbol]decimal.Decimal{
			SymbolWildDog:    decimal.NewFromInt(50),
			SymbolPoodle:     decimal.NewFromInt(25),
			SymbolRetriever:  decimal.NewFromInt(20),
			SymbolServiceDog: decimal.NewFromInt(15),
			SymbolBone:       decimal.NewFromInt(10),
			SymbolHouse:      decimal.NewFromInt(8),
			SymbolBall:       decimal.NewFromInt(6),
			SymbolMeat:       decimal.NewFromInt(5),
			SymbolDiamond:    decimal.NewFromInt(100),
			SymbolSeven:      decimal.NewFromInt(200),
		},
		LengthMultipliers:       map[int]int{3: 1, 4: 2, 5: 5, 6: 10, 7: 25},
		FreeSpins:               map[int]int{3: 15, 4: 25, 5: 50, 6: 100},
		DefaultSymbolValue:      decimal.NewFromInt(1),
		DefaultLengthMultiplier: 1,
	}
}

// SymbolValue ценность символа
func (p Paytable) SymbolValue(s Symbol) decimal.Decimal {
	if v, ok := p.Values[s]; ok {
		return v
	}
	return p.DefaultSymbolValue
}

// LengthMultiplier множитель за длину серии
func (p Paytable) LengthMultiplier(length int) int {
	if m, ok := p.LengthMultipliers[length]; ok {
		return m
	}
	return p.DefaultLengthMultiplier
}

// SpinsForCount сколько фриспинов дают count скаттеров. Вне таблицы 0
func (p Paytable) SpinsForCount(count int) int {
	return p.FreeSpins[count]
}

// LineValue выплата одной линии без округления
func (p Paytable) LineValue(line WinningLine, bet, multiplier int) decimal.Decimal {
	return p.SymbolValue(line.Symbol).
		Mul(decimal.NewFromInt(int64(p.LengthMultiplier(line.Count)))).
		Mul(decimal.NewFromInt(int64(bet))).
		Mul(decimal.NewFromInt(int64(multiplier)))
}

// Payout суммарная выплата по линиям.
// Дробная часть отбрасывается после суммирования, ограничения сверху нет
func (p Paytable) Payout(lines []WinningLine, bet, multiplier int) int {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(p.LineValue(l, bet, multiplier))
	}
	return int(total.Floor().IntPart())
}
