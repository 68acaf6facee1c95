package doghouse

import "strings"

// Reel один барабан, сверху вниз
type Reel []Symbol

// Grid игровое поле, барабаны слева направо. Высота барабанов различается
type Grid []Reel

// Cells общее число ячеек
func (g Grid) Cells() int {
	n := 0
	for _, r := range g {
		n += len(r)
	}
	return n
}

// At символ для строки row на барабане reel.
// Если барабан короче, берётся его строка 0. Пустой барабан даёт пустой символ
func (g Grid) At(reel, row int) Symbol {
	r := g[reel]
	switch {
	case row < len(r):
		return r[row]
	case len(r) > 0:
		return r[0]
	}
	return ""
}

// Rows барабаны строками, символы через пробел
func (g Grid) Rows() []string {
	out := make([]string, len(g))
	for i, r := range g {
		parts := make([]string, len(r))
		for j, s := range r {
			parts[j] = string(s)
		}
		out[i] = strings.Join(parts, " ")
	}
	return out
}

// CountScatter число символов scatter на всём поле
func CountScatter(g Grid, scatter Symbol) int {
	count := 0
	for _, r := range g {
		for _, s := range r {
			if s == scatter {
				count++
			}
		}
	}
	return count
}
