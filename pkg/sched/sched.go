package sched

import (
	"sync"
	"time"
)

// Cancel Токен отмены запланированной задачи.
// Stop возвращает false, если задача уже выполнилась или отменена
type Cancel interface {
	Stop() bool
}

// Scheduler Планировщик отложенных задач.
// Игровые движки планируют через него расчет раундов, чтобы
// в тестах можно было продвигать время вручную
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Cancel
}

type timerScheduler struct{}

// New Планировщик на системных таймерах
func New() Scheduler { return timerScheduler{} }

func (timerScheduler) AfterFunc(d time.Duration, fn func()) Cancel {
	return time.AfterFunc(d, fn)
}

// Manual Детерминированный планировщик для тестов: задачи
// выполняются только явными вызовами RunNext
type Manual struct {
	mtx   sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	mtx      sync.Mutex
	fn       func()
	canceled bool
	done     bool
}

func (t *manualTask) Stop() bool {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.done || t.canceled {
		return false
	}
	t.canceled = true
	return true
}

func NewManual() *Manual { return &Manual{} }

func (m *Manual) AfterFunc(_ time.Duration, fn func()) Cancel {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	t := &manualTask{fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// RunNext Выполняет первую неотмененную задачу из очереди.
// Возвращает false, если выполнять нечего
func (m *Manual) RunNext() bool {
	for {
		m.mtx.Lock()
		if len(m.tasks) == 0 {
			m.mtx.Unlock()
			return false
		}
		t := m.tasks[0]
		m.tasks = m.tasks[1:]
		m.mtx.Unlock()

		t.mtx.Lock()
		if t.canceled {
			t.mtx.Unlock()
			continue
		}
		t.done = true
		fn := t.fn
		t.mtx.Unlock()

		fn()
		return true
	}
}

// Pending Количество задач в очереди (включая отмененные)
func (m *Manual) Pending() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return len(m.tasks)
}
