package app

import (
	"context"
	"log"
	"strconv"

	"moodcasino/internal/repository"
)

// bootstrapFirstLaunch Самый первый запуск: один раз сеет
// стартовый баланс. Охраняется отдельным одноразовым флагом,
// не зависящим от обычной загрузки состояния экономики
func (s *App) bootstrapFirstLaunch(ctx context.Context) error {
	repo := s.ServiceProvider.StateRepository(ctx)

	_, found, err := repo.Get(ctx, repository.KeyFirstLaunch)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	seed := s.ServiceProvider.EconomyCfg().FirstLaunchBalance()
	log.Printf("first launch, seeding balance %v", seed)

	err = repo.Set(ctx, repository.KeyBalance, strconv.FormatFloat(seed, 'f', -1, 64))
	if err != nil {
		return err
	}
	return repo.Set(ctx, repository.KeyFirstLaunch, "1")
}
