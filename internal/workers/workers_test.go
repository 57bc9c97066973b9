// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Start and Stop were called.
type mockWorker struct {
	id     int
	starts int
	stops  int
	order  *[]int
}

func (m *mockWorker) Start(context.Context) {
	m.starts++
	if m.order != nil {
		*m.order = append(*m.order, m.id)
	}
}

func (m *mockWorker) Stop() {
	m.stops++
	if m.order != nil {
		*m.order = append(*m.order, -m.id)
	}
}

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := New(w1, w2, w3)
	ws.Start(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.starts != 1 {
			t.Errorf("worker[%d]: expected starts=1, got %d", i, w.starts)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := New()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_ZeroValue(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_SkipsNil(t *testing.T) {
	w := &mockWorker{}
	ws := New(nil, w)
	ws.Start(context.Background())

	if w.starts != 1 {
		t.Errorf("expected starts=1, got %d", w.starts)
	}
}

func TestWorkers_Order(t *testing.T) {
	order := []int{}

	ws := New(
		&mockWorker{id: 1, order: &order},
		&mockWorker{id: 2, order: &order},
		&mockWorker{id: 3, order: &order},
	)
	ws.Start(context.Background())
	ws.Stop()

	// start in order, stop in reverse
	expected := []int{1, 2, 3, -3, -2, -1}
	if len(order) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}
