package report

import (
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	run := &Run{
		Model:    "scalar",
		Order:    8,
		Cores:    3,
		Parallel: true,
		Dt:       0.01,
		Duration: 1.0,
		ISBn:     0.5799,
		Times:    []float64{0, 0.01, 0.02},
		States:   [][]float64{{1.0}, {1.01}, {1.0201}},
		Metrics:  map[string]float64{"final_error": 1e-10},
	}

	id, err := s.Save(run)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	meta, err := s.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Model != "scalar" || meta.Order != 8 || meta.Cores != 3 {
		t.Errorf("metadata mismatch: %+v", meta)
	}

	states, times, err := s.LoadStates(id)
	if err != nil {
		t.Fatalf("LoadStates: %v", err)
	}
	if len(states) != 3 || len(times) != 3 {
		t.Fatalf("got %d states, %d times, want 3 each", len(states), len(times))
	}
	if states[1][0] != 1.01 {
		t.Errorf("states[1][0] = %v, want 1.01", states[1][0])
	}
}

func TestListIncludesSavedRuns(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	s.Init()

	run := &Run{Model: "lorenz", Order: 8, Cores: 6, Times: []float64{0}, States: [][]float64{{1, 0, 0}}}
	id, err := s.Save(run)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	found := false
	for _, r := range runs {
		if r.ID == id {
			found = true
		}
	}
	if !found {
		t.Errorf("List did not include saved run %s", id)
	}
}

func TestListOnEmptyStoreIsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List on nonexistent dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}
