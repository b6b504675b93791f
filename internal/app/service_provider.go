package app

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	crashAPI "moodcasino/internal/api/crash"
	dropAPI "moodcasino/internal/api/drop"
	economyAPI "moodcasino/internal/api/economy"
	handAPI "moodcasino/internal/api/hand"
	slotsAPI "moodcasino/internal/api/slots"
	wheelAPI "moodcasino/internal/api/wheel"
	"moodcasino/internal/config"
	"moodcasino/internal/config/env"
	"moodcasino/internal/repository"
	"moodcasino/internal/repository/kv_mem_repo"
	"moodcasino/internal/repository/kv_repo"
	"moodcasino/internal/service"
	"moodcasino/internal/service/crash"
	"moodcasino/internal/service/drop"
	"moodcasino/internal/service/economy"
	"moodcasino/internal/service/hand"
	"moodcasino/internal/service/mood"
	"moodcasino/internal/service/slots"
	"moodcasino/internal/service/wheel"
	"moodcasino/pkg/clock"
	"moodcasino/pkg/sched"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

const configYAMLPath = "config.yaml"

type ServiceProvider struct {
	// TXManager (nil при in-memory хранилище)
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Общая инфраструктура движков
	stateRepo repository.StateRepository
	clk       clock.Clock
	scheduler sched.Scheduler

	// Economy bits
	economyCfg  config.EconomyConfig
	selector    *mood.Selector
	economyServ service.EconomyService
	economyHand *economyAPI.Handler

	// Slots bits
	slotsCfg  config.SlotsConfig
	slotsServ service.SlotsService
	slotsHand *slotsAPI.Handler

	// Wheel bits
	wheelCfg  config.WheelConfig
	wheelServ service.WheelService
	wheelHand *wheelAPI.Handler

	// Crash bits
	crashCfg  config.CrashConfig
	crashServ service.CrashService
	crashHand *crashAPI.Handler

	// Drop bits
	dropCfg  config.DropConfig
	dropServ service.DropService
	dropHand *dropAPI.Handler

	// Hand bits
	handCfg  config.HandConfig
	handServ service.HandService
	handHand *handAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

// StateRepository Хранилище состояния: Postgres при заданном
// PG_DSN, иначе in-memory фолбек на время процесса
func (sp *ServiceProvider) StateRepository(ctx context.Context) repository.StateRepository {
	if sp.stateRepo == nil {
		if len(os.Getenv("PG_DSN")) == 0 {
			log.Println("PG_DSN not set, state will live in memory only")
			sp.stateRepo = kv_mem_repo.NewStateRepository()
			return sp.stateRepo
		}

		dbc := sp.DBClient(ctx)
		if err := kv_repo.EnsureSchema(ctx, dbc); err != nil {
			panic("failed to ensure state schema: " + err.Error())
		}
		sp.stateRepo = kv_repo.NewStateRepository(dbc)
	}
	return sp.stateRepo
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if len(os.Getenv("PG_DSN")) == 0 {
			// In-memory режим живет без транзакций
			return nil
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) Clock() clock.Clock {
	if sp.clk == nil {
		sp.clk = clock.New()
	}
	return sp.clk
}

func (sp *ServiceProvider) Scheduler() sched.Scheduler {
	if sp.scheduler == nil {
		sp.scheduler = sched.New()
	}
	return sp.scheduler
}

// newRNG Отдельный генератор на каждого потребителя.
// *rand.Rand не потокобезопасен, а chi обслуживает игры
// параллельно: общий экземпляр между движками недопустим
func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano() + rand.Int63()))
}

func (sp *ServiceProvider) MoodSelector() *mood.Selector {
	if sp.selector == nil {
		sp.selector = mood.NewSelector(newRNG())
	}
	return sp.selector
}

func (sp *ServiceProvider) EconomyCfg() config.EconomyConfig {
	if sp.economyCfg == nil {
		cfg, err := env.NewEconomyConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get economy config: " + err.Error())
		}
		sp.economyCfg = cfg
	}
	return sp.economyCfg
}

func (sp *ServiceProvider) EconomyService(ctx context.Context) service.EconomyService {
	if sp.economyServ == nil {
		sp.economyServ = economy.NewEconomyService(
			sp.EconomyCfg(),
			sp.StateRepository(ctx),
			sp.TXManager(ctx),
			sp.MoodSelector(),
			sp.Clock(),
		)
	}
	return sp.economyServ
}

func (sp *ServiceProvider) EconomyHandler(ctx context.Context) *economyAPI.Handler {
	if sp.economyHand == nil {
		sp.economyHand = economyAPI.NewHandler(economyAPI.HandlerDeps{
			Serv: sp.EconomyService(ctx),
		})
	}
	return sp.economyHand
}

func (sp *ServiceProvider) SlotsCfg() config.SlotsConfig {
	if sp.slotsCfg == nil {
		cfg, err := env.NewSlotsConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get slots config: " + err.Error())
		}
		sp.slotsCfg = cfg
	}
	return sp.slotsCfg
}

func (sp *ServiceProvider) SlotsService(ctx context.Context) service.SlotsService {
	if sp.slotsServ == nil {
		sp.slotsServ = slots.NewSlotsService(sp.SlotsCfg(), sp.EconomyService(ctx), newRNG(), sp.Scheduler())
	}
	return sp.slotsServ
}

func (sp *ServiceProvider) SlotsHandler(ctx context.Context) *slotsAPI.Handler {
	if sp.slotsHand == nil {
		sp.slotsHand = slotsAPI.NewHandler(slotsAPI.HandlerDeps{
			Serv:    sp.SlotsService(ctx),
			Economy: sp.EconomyService(ctx),
		})
	}
	return sp.slotsHand
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(sp.WheelCfg(), sp.EconomyService(ctx), newRNG(), sp.Scheduler())
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv:    sp.WheelService(ctx),
			Economy: sp.EconomyService(ctx),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) CrashCfg() config.CrashConfig {
	if sp.crashCfg == nil {
		cfg, err := env.NewCrashConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get crash config: " + err.Error())
		}
		sp.crashCfg = cfg
	}
	return sp.crashCfg
}

func (sp *ServiceProvider) CrashService(ctx context.Context) service.CrashService {
	if sp.crashServ == nil {
		sp.crashServ = crash.NewCrashService(sp.CrashCfg(), sp.EconomyService(ctx), newRNG(), sp.Scheduler())
	}
	return sp.crashServ
}

func (sp *ServiceProvider) CrashHandler(ctx context.Context) *crashAPI.Handler {
	if sp.crashHand == nil {
		sp.crashHand = crashAPI.NewHandler(crashAPI.HandlerDeps{
			Serv:    sp.CrashService(ctx),
			Economy: sp.EconomyService(ctx),
		})
	}
	return sp.crashHand
}

func (sp *ServiceProvider) DropCfg() config.DropConfig {
	if sp.dropCfg == nil {
		cfg, err := env.NewDropConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get drop config: " + err.Error())
		}
		sp.dropCfg = cfg
	}
	return sp.dropCfg
}

func (sp *ServiceProvider) DropService(ctx context.Context) service.DropService {
	if sp.dropServ == nil {
		sp.dropServ = drop.NewDropService(sp.DropCfg(), sp.EconomyService(ctx), newRNG(), sp.Scheduler())
	}
	return sp.dropServ
}

func (sp *ServiceProvider) DropHandler(ctx context.Context) *dropAPI.Handler {
	if sp.dropHand == nil {
		sp.dropHand = dropAPI.NewHandler(dropAPI.HandlerDeps{
			Serv:    sp.DropService(ctx),
			Economy: sp.EconomyService(ctx),
		})
	}
	return sp.dropHand
}

func (sp *ServiceProvider) HandCfg() config.HandConfig {
	if sp.handCfg == nil {
		cfg, err := env.NewHandConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get hand config: " + err.Error())
		}
		sp.handCfg = cfg
	}
	return sp.handCfg
}

func (sp *ServiceProvider) HandService(ctx context.Context) service.HandService {
	if sp.handServ == nil {
		sp.handServ = hand.NewHandService(sp.HandCfg(), sp.EconomyService(ctx), newRNG(), sp.Scheduler())
	}
	return sp.handServ
}

func (sp *ServiceProvider) HandHandler(ctx context.Context) *handAPI.Handler {
	if sp.handHand == nil {
		sp.handHand = handAPI.NewHandler(handAPI.HandlerDeps{
			Serv:    sp.HandService(ctx),
			Economy: sp.EconomyService(ctx),
		})
	}
	return sp.handHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Economy endpoints
		economyHandler := sp.EconomyHandler(ctx)
		r.Route("/economy", func(rr chi.Router) {
			rr.Get("/state", economyHandler.State)
			rr.Post("/daily-bonus", economyHandler.DailyBonus)
			rr.Post("/mood/reroll", economyHandler.RerollMood)
			rr.Post("/mood/boost", economyHandler.ActivateBoost)
		})

		// Slots endpoints
		slotsHandler := sp.SlotsHandler(ctx)
		r.Route("/slots", func(rr chi.Router) {
			rr.Post("/spin", slotsHandler.Spin)
			rr.Get("/state", slotsHandler.State)
		})

		// Wheel endpoints
		wheelHandler := sp.WheelHandler(ctx)
		r.Route("/wheel", func(rr chi.Router) {
			rr.Post("/spin", wheelHandler.Spin)
			rr.Get("/state", wheelHandler.State)
		})

		// Crash endpoints
		crashHandler := sp.CrashHandler(ctx)
		r.Route("/crash", func(rr chi.Router) {
			rr.Post("/start", crashHandler.Start)
			rr.Post("/cashout", crashHandler.CashOut)
			rr.Post("/stop", crashHandler.Stop)
			rr.Get("/state", crashHandler.State)
		})

		// Drop endpoints
		dropHandler := sp.DropHandler(ctx)
		r.Route("/drop", func(rr chi.Router) {
			rr.Post("/drop", dropHandler.Drop)
			rr.Get("/state", dropHandler.State)
		})

		// Hand endpoints
		handHandler := sp.HandHandler(ctx)
		r.Route("/hand", func(rr chi.Router) {
			rr.Post("/deal", handHandler.Deal)
			rr.Get("/state", handHandler.State)
		})

		sp.router = r
	}

	return sp.router
}
