package doghouse

import "fmt"

const (
	// NormalMultiplier множитель вне бонуса
	NormalMultiplier = 1
	// BonusMultiplier множитель в режиме фриспинов
	BonusMultiplier = 3
)

// Session состояние игровой сессии одного игрока.
// Значение принадлежит вызывающему, движок возвращает обновлённую копию
type Session struct {
	Bet           int
	TotalWinnings int // выигрыш последнего спина, не накапливается
	FreeSpins     int // накапливается до EndBonus
	Multiplier    int
	BonusActive   bool
}

// NewSession сессия в обычном режиме
func NewSession(bet int) Session {
	return Session{Bet: bet, Multiplier: NormalMultiplier}
}

// WithBet меняет ставку
func (s Session) WithBet(bet int) (Session, error) {
	if bet <= 0 {
		return s, fmt.Errorf("%w: %d", ErrInvalidBet, bet)
	}
	s.Bet = bet
	return s, nil
}

// StartBonus переход Normal -> BonusActive. Фриспины сохраняются
func (s Session) StartBonus() Session {
	s.BonusActive = true
	s.Multiplier = BonusMultiplier
	return s
}

// EndBonus переход BonusActive -> Normal, оставшиеся фриспины сгорают
func (s Session) EndBonus() Session {
	s.BonusActive = false
	s.Multiplier = NormalMultiplier
	s.FreeSpins = 0
	return s
}

// EffectiveMultiplier множитель, применяемый к выплате
func (s Session) EffectiveMultiplier() int {
	if s.Multiplier <= 0 {
		return NormalMultiplier
	}
	return s.Multiplier
}
