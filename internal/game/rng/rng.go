package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Source абстракция генератора случайных чисел для игровых движков
type Source interface {
	IntN(n int) int   // [0, n)
	Float64() float64 // [0, 1)
}

// cryptoSource источник по умолчанию, читает из crypto/rand
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// fallback на math/rand/v2
		return rand.Uint64()
	}
	return binary.BigEndian.Uint64(buf[:])
}

func (c cryptoSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.New(c).IntN(n)
}

func (c cryptoSource) Float64() float64 {
	// 53 бита мантиссы
	return float64(c.Uint64()>>11) / (1 << 53)
}

// Default возвращает криптостойкий источник
func Default() Source { return cryptoSource{} }

// seededSource воспроизводимый источник (тесты, симуляция RTP)
type seededSource struct {
	mtx sync.Mutex
	r   *rand.Rand
}

// NewSeeded создаёт детерминированный источник на PCG
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.IntN(n)
}

func (s *seededSource) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.Float64()
}
