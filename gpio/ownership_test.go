package gpio

import "testing"

func TestStaleHandlePanics(t *testing.T) {
	_, _, parts := setup(t)

	old := parts.Gpio4
	out := old.IntoPushPullOutput()
	out.SetHigh()

	mustPanic(t, ErrStaleHandle, func() { old.IsHigh() })
	mustPanic(t, ErrStaleHandle, func() { old.IntoFloatingInput() })
	mustPanic(t, ErrStaleHandle, func() { parts.Gpio4.Index() })
}

func TestCopiedHandleGoesStale(t *testing.T) {
	_, _, parts := setup(t)

	a := parts.Gpio16.IntoOpenDrainOutput()
	b := a
	a.IntoPullUpInput()

	mustPanic(t, ErrStaleHandle, func() { b.SetLow() })
	mustPanic(t, ErrStaleHandle, func() { b.IsSetHigh() })
}

func TestZeroHandlePanics(t *testing.T) {
	var out Output[Gpio2, PushPull]
	mustPanic(t, ErrNotSplit, func() { out.SetHigh() })

	var in InputOnly[Gpio36]
	mustPanic(t, ErrNotSplit, func() { in.IsHigh() })
	mustPanic(t, ErrNotSplit, func() { in.IntoAnalog() })
}

func TestHandlesOfOtherPinsStayValid(t *testing.T) {
	_, _, parts := setup(t)

	parts.Gpio2.IntoPushPullOutput()
	if !parts.Gpio0.IsHigh() {
		t.Error("GPIO0 with reset pull-up should read high")
	}
}

func TestChainedTransitionsOwnThePin(t *testing.T) {
	_, p, parts := setup(t)

	a := parts.Gpio33.IntoAlternate6().IntoAnalog().IntoPullDownInput()
	if a.Mode() != ModePullDownInput || a.Index() != 33 {
		t.Errorf("got GPIO%d in %v", a.Index(), a.Mode())
	}
	if m, _ := p.Mode(33); m != ModePullDownInput {
		t.Errorf("peripheral tracks %v", m)
	}
}
