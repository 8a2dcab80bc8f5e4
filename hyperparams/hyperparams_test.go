package hyperparams

import (
	"encoding/json"
	"testing"
)

func TestConstant(t *testing.T) {
	c := Constant(0.25)
	for _, iter := range []int{0, 1, 1000000} {
		if c.Value(iter) != 0.25 {
			t.Errorf("Constant changed at iteration %d (%v)", iter, c.Value(iter))
		}
	}
}

func TestStepSchedule(t *testing.T) {
	s := Step(0.1).Add(100, 0.01).Add(1000, 0.001)

	checks := map[int]float64{
		0:    0.1,
		99:   0.1,
		100:  0.01,
		999:  0.01,
		1000: 0.001,
		5000: 0.001,
	}

	for iter, want := range checks {
		if got := s.Value(iter); got != want {
			t.Errorf("Value(%d): got %v, want %v", iter, got, want)
		}
	}
}

func TestStepRoundTripsJSON(t *testing.T) {
	s := Step(0.1).Add(50, 0.02)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	blank := Step(0)
	if err = json.Unmarshal(data, blank); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for _, iter := range []int{0, 49, 50, 100} {
		if blank.Value(iter) != s.Value(iter) {
			t.Errorf("Value(%d) differs after round trip (%v != %v)", iter, blank.Value(iter), s.Value(iter))
		}
	}
}
