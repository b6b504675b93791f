package economy

import (
	"context"
	"time"
)

// GrantDailyBonus Начисляет ежедневный бонус, если игрок на мели.
// Условия: баланс ниже порога И бонус еще не выдавался сегодня
// (по локальному календарному дню). Неподходящий вызов - no-op
func (s *serv) GrantDailyBonus(ctx context.Context) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.balance >= s.cfg.DailyBonusThreshold() {
		return false, nil
	}

	now := s.clk.Now()
	if s.lastDailyBonus != nil && sameCalendarDay(*s.lastDailyBonus, now) {
		return false, nil
	}

	// Бонус плоский, без множителя настроения и без счетчика побед
	s.balance += s.cfg.DailyBonusAmount()
	s.lastDailyBonus = &now

	err := s.persist(ctx)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Сравнение по локальному календарному дню
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
