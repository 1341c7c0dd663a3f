package gpio

import (
	"errors"
	"testing"

	"esp32hal/gpiosim"
)

func setup(t *testing.T) (*gpiosim.Sim, *Peripheral, Parts) {
	t.Helper()
	sim := gpiosim.New()
	p := New(sim)
	return sim, p, p.Split()
}

func mustPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Errorf("panic = %v, want %v", r, want)
		}
	}()
	fn()
}

// token returns the live ownership token of a pin, for tests that iterate
// over the registry instead of the typed Parts fields.
func token(p *Peripheral, index uint8) pin {
	return p.issue(index)
}

var allModes = []Mode{
	ModeFloatingInput, ModePullUpInput, ModePullDownInput,
	ModePushPullOutput, ModeOpenDrainOutput,
	ModeAlternate1, ModeAlternate2, ModeAlternate4, ModeAlternate5, ModeAlternate6,
	ModeAnalog,
}

var inputOnlyModes = []Mode{ModeFloatingInput, ModeAnalog}

func modesFor(d Descriptor) []Mode {
	if d.Output {
		return allModes
	}
	return inputOnlyModes
}
