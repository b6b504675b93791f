package app

import (
	"context"
	"log"
	"net/http"

	"moodcasino/internal/config"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	ctx := context.Background()

	// Одноразовый посев баланса первого запуска должен
	// отработать до загрузки состояния экономики
	if err := s.bootstrapFirstLaunch(ctx); err != nil {
		return err
	}

	if err := s.ServiceProvider.EconomyService(ctx).Load(ctx); err != nil {
		return err
	}

	r := s.ServiceProvider.Router(ctx)

	log.Printf("starting server at %s", s.ServiceProvider.HTTPCfg().Address())
	err = http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}
