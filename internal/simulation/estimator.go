package simulation

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// CI доверительный интервал
type CI struct {
	Lo float64
	Hi float64
}

// proportionCI точечная оценка k/n и интервал Клоппера-Пирсона
func proportionCI(k, n int, confidence float64) (float64, CI) {
	if n == 0 {
		return 0, CI{0, 1}
	}
	alpha := 1 - confidence
	pHat := float64(k) / float64(n)

	var ci CI
	if k == 0 {
		ci.Lo = 0
	} else {
		b := distuv.Beta{Alpha: float64(k), Beta: float64(n - k + 1)}
		ci.Lo = b.Quantile(alpha / 2)
	}
	if k == n {
		ci.Hi = 1
	} else {
		b := distuv.Beta{Alpha: float64(k + 1), Beta: float64(n - k)}
		ci.Hi = b.Quantile(1 - alpha/2)
	}
	return pHat, ci
}

// meanCI нормальное приближение для среднего по n наблюдениям
func meanCI(mean, std float64, n int, confidence float64) CI {
	if n < 2 {
		return CI{mean, mean}
	}
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
	half := z * std / math.Sqrt(float64(n))
	lo := mean - half
	if lo < 0 {
		lo = 0
	}
	return CI{Lo: lo, Hi: mean + half}
}
