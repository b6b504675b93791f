package economy

import "context"

// CanAfford Хватает ли баланса на ставку
func (s *serv) CanAfford(amount float64) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.balance >= amount
}

// Debit Безусловно списывает сумму с баланса.
// Достаточность средств НЕ проверяется: вызывающий обязан
// сначала проверить CanAfford, иначе баланс уйдет в минус
func (s *serv) Debit(ctx context.Context, amount float64) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.balance -= amount

	return s.persist(ctx)
}

// Credit Начисляет базовую выплату с бонусом за настроение:
// moodBonus = base * (multiplier - 1).
// Множитель читается в момент начисления, не в момент ставки
func (s *serv) Credit(ctx context.Context, baseAmount float64) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	moodBonus := baseAmount * (s.effectiveMood().Multiplier() - 1)
	s.balance += baseAmount + moodBonus
	s.sessionWins++

	return s.persist(ctx)
}
