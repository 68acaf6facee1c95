package doghouse

import "lucky_casino/internal/game/rng"

// Generate заполняет reelCount барабанов. Высота каждого равновероятна
// в [minRows, maxRows], символы берутся из alphabet с возвращением
func Generate(src rng.Source, reelCount, minRows, maxRows int, alphabet []Symbol) Grid {
	g := make(Grid, reelCount)
	for i := range g {
		rows := minRows + src.IntN(maxRows-minRows+1)
		reel := make(Reel, rows)
		for j := range reel {
			reel[j] = alphabet[src.IntN(len(alphabet))]
		}
		g[i] = reel
	}
	return g
}
