package economy

import (
	"context"
	"strconv"
	"time"

	"moodcasino/internal/model"
	"moodcasino/internal/repository"
)

// Load Загружает состояние экономики из хранилища.
// Битые и отсутствующие значения тихо деградируют к значениям
// по умолчанию, ошибкой считаются только отказы самого хранилища
func (s *serv) Load(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	raw, found, err := s.repo.Get(ctx, repository.KeyBalance)
	if err != nil {
		return err
	}
	balance := 0.0
	if found {
		balance, _ = strconv.ParseFloat(raw, 64)
	}
	// Сохраненный ноль неотличим от отсутствия значения:
	// в обоих случаях берем дефолтный баланс
	if balance == 0 {
		balance = s.cfg.DefaultBalance()
	}
	s.balance = balance

	raw, found, err = s.repo.Get(ctx, repository.KeyCurrentMood)
	if err != nil {
		return err
	}
	if found {
		s.currentMood = model.ParseMood(raw)
	} else {
		s.currentMood = s.selector.Select()
	}

	raw, found, err = s.repo.Get(ctx, repository.KeySessionWins)
	if err != nil {
		return err
	}
	s.sessionWins = 0
	if found {
		s.sessionWins, _ = strconv.Atoi(raw)
	}

	raw, found, err = s.repo.Get(ctx, repository.KeyLastDailyBonus)
	if err != nil {
		return err
	}
	s.lastDailyBonus = nil
	if found {
		secs, convErr := strconv.ParseInt(raw, 10, 64)
		if convErr == nil && secs > 0 {
			t := time.Unix(secs, 0)
			s.lastDailyBonus = &t
		}
	}

	return nil
}

// persist Пишет все ключи состояния одной транзакцией.
// Вызывается под мьютексом после каждой мутации
func (s *serv) persist(ctx context.Context) error {
	return s.withTx(ctx, func(txCtx context.Context) error {
		err := s.repo.Set(txCtx, repository.KeyBalance, strconv.FormatFloat(s.balance, 'f', -1, 64))
		if err != nil {
			return err
		}

		err = s.repo.Set(txCtx, repository.KeyCurrentMood, string(s.currentMood))
		if err != nil {
			return err
		}

		err = s.repo.Set(txCtx, repository.KeySessionWins, strconv.Itoa(s.sessionWins))
		if err != nil {
			return err
		}

		bonusSecs := int64(0)
		if s.lastDailyBonus != nil {
			bonusSecs = s.lastDailyBonus.Unix()
		}
		return s.repo.Set(txCtx, repository.KeyLastDailyBonus, strconv.FormatInt(bonusSecs, 10))
	})
}
