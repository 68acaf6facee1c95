package doghouse

// PatternHorizontal единственный вид выигрышной комбинации
const PatternHorizontal = "horizontal"

// WinningLine серия одинаковых символов в строке
type WinningLine struct {
	Kind      string
	Symbol    Symbol
	Count     int
	StartReel int
	Row       int
}

// Evaluate ищет серии длиной от minRun по строкам 0..rowCap-1 слева направо.
// Порядок результата: по строкам, внутри строки по барабанам.
// Поле не изменяется, повторный вызов даёт тот же результат
func Evaluate(g Grid, rowCap, minRun int) []WinningLine {
	var lines []WinningLine
	if len(g) == 0 {
		return lines
	}

	reels := len(g)
	for row := 0; row < rowCap; row++ {
		current := g.At(0, row)
		count := 1

		for reel := 1; reel < reels; reel++ {
			symbol := g.At(reel, row)
			if symbol == current {
				count++
				continue
			}

			// серия закрылась на барабане reel
			if count >= minRun && current != "" {
				lines = append(lines, WinningLine{
					Kind:      PatternHorizontal,
					Symbol:    current,
					Count:     count,
					StartReel: reel - count,
					Row:       row,
				})
			}
			current = symbol
			count = 1
		}

		// хвостовая серия
		if count >= minRun && current != "" {
			lines = append(lines, WinningLine{
				Kind:      PatternHorizontal,
				Symbol:    current,
				Count:     count,
				StartReel: reels - count,
				Row:       row,
			})
		}
	}

	return lines
}
