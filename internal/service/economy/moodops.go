package economy

import (
	"context"
	"time"

	"moodcasino/internal/model"
)

// ActivateMoodBoost Временно форсирует hot для всех расчетов.
// Пока буст не истек, effectiveMood читается как hot независимо
// от сессионного настроения
func (s *serv) ActivateMoodBoost(ctx context.Context, d time.Duration) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	until := s.clk.Now().Add(d)
	s.boostUntil = &until

	// Срок буста в хранилище не попадает, живет только в сессии
	return s.persist(ctx)
}

// RerollMood Перебрасывает сессионное настроение.
// Не трогает буст: он продолжает перекрывать новое значение
func (s *serv) RerollMood(ctx context.Context) (model.Mood, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.currentMood = s.selector.Select()

	err := s.persist(ctx)
	if err != nil {
		return s.currentMood, err
	}
	return s.currentMood, nil
}
