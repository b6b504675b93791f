package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// chi обслуживает игры параллельно: одновременные запросы к
// разным движкам не должны делить состояние генератора.
// Под -race ловит общий *rand.Rand между движками
func TestProviderEnginesPlayConcurrently(t *testing.T) {
	t.Setenv("PG_DSN", "")

	sp := newServiceProvider()
	ctx := context.Background()

	eco := sp.EconomyService(ctx)
	if err := eco.Load(ctx); err != nil {
		t.Fatalf("load economy: %v", err)
	}

	slotsServ := sp.SlotsService(ctx)
	wheelServ := sp.WheelService(ctx)
	crashServ := sp.CrashService(ctx)
	dropServ := sp.DropService(ctx)
	handServ := sp.HandService(ctx)
	t.Cleanup(crashServ.Stop)

	var wg sync.WaitGroup
	play := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				t.Errorf("%s: %v", name, err)
			}
		}()
	}

	play("slots", func() error { _, err := slotsServ.Spin(ctx, 10); return err })
	play("wheel", func() error { _, err := wheelServ.Spin(ctx, 10); return err })
	play("crash", func() error { _, err := crashServ.Start(ctx, 10); return err })
	play("drop", func() error { _, err := dropServ.Drop(ctx, 10); return err })
	play("hand", func() error { _, err := handServ.Deal(ctx, 10); return err })

	wg.Wait()

	// Все пять ставок списаны, расчеты еще не успели пройти
	if b := eco.Snapshot().Balance; b != 950 {
		t.Errorf("balance = %v, want 950 after five concurrent bets", b)
	}
}

func TestRouterGameRoutes(t *testing.T) {
	t.Setenv("PG_DSN", "")

	sp := newServiceProvider()
	ctx := context.Background()
	if err := sp.EconomyService(ctx).Load(ctx); err != nil {
		t.Fatalf("load economy: %v", err)
	}
	t.Cleanup(sp.CrashService(ctx).Stop)

	r := sp.Router(ctx)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/economy/state", ""},
		{http.MethodPost, "/slots/spin", `{"bet": 10}`},
		{http.MethodPost, "/wheel/spin", `{"bet": 10}`},
		{http.MethodPost, "/crash/start", `{"bet": 10}`},
		{http.MethodPost, "/drop/drop", `{"bet": 10}`},
		{http.MethodPost, "/hand/deal", `{"bet": 10}`},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s %s: status = %d, want 200", c.method, c.path, rec.Code)
		}
	}
}
