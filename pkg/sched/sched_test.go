package sched

import (
	"testing"
	"time"
)

func TestManualRunsTasksInOrder(t *testing.T) {
	m := NewManual()

	var order []int
	m.AfterFunc(time.Second, func() { order = append(order, 1) })
	m.AfterFunc(time.Second, func() { order = append(order, 2) })

	if !m.RunNext() || !m.RunNext() {
		t.Fatal("scheduled tasks did not run")
	}
	if m.RunNext() {
		t.Error("RunNext returned true on empty queue")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("execution order = %v, want [1 2]", order)
	}
}

func TestManualSkipsCanceledTasks(t *testing.T) {
	m := NewManual()

	ran := false
	cancel := m.AfterFunc(time.Second, func() { ran = true })
	m.AfterFunc(time.Second, func() {})

	if !cancel.Stop() {
		t.Fatal("Stop returned false for a pending task")
	}
	if cancel.Stop() {
		t.Error("second Stop returned true")
	}

	// Первый RunNext пропускает отмененную и выполняет следующую
	if !m.RunNext() {
		t.Fatal("RunNext skipped past the whole queue")
	}
	if ran {
		t.Error("canceled task ran")
	}
	if m.Pending() != 0 {
		t.Errorf("pending = %d, want 0", m.Pending())
	}
}

func TestManualStopAfterRun(t *testing.T) {
	m := NewManual()

	cancel := m.AfterFunc(time.Second, func() {})
	if !m.RunNext() {
		t.Fatal("task did not run")
	}
	if cancel.Stop() {
		t.Error("Stop returned true for an already executed task")
	}
}
