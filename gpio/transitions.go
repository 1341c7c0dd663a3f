package gpio

// into reconfigures the pad and returns the token of the new handle. The
// receiver and every copy of it become stale.
func (h pin) into(m Mode) pin {
	c := h.owned()
	c.periph.apply(c, m)
	return pin{c: c, gen: c.gen}
}

func intoInput[P IOPin, B Bias](h pin) Input[P, B] {
	var b B
	return Input[P, B]{bidi[P]{h.into(b.mode())}}
}

func intoOutput[P IOPin, D Drive](h pin) Output[P, D] {
	var d D
	return Output[P, D]{bidi[P]{h.into(d.mode())}}
}

func intoAlternate[P IOPin, F Function](h pin) Alternate[P, F] {
	var f F
	return Alternate[P, F]{bidi[P]{h.into(f.mode())}}
}

// IntoFloatingInput makes the pin an input with both pulls off.
func (b bidi[P]) IntoFloatingInput() Input[P, Floating] { return intoInput[P, Floating](b.pin) }

// IntoPullUpInput makes the pin an input with the internal pull-up on.
func (b bidi[P]) IntoPullUpInput() Input[P, PullUp] { return intoInput[P, PullUp](b.pin) }

// IntoPullDownInput makes the pin an input with the internal pull-down on.
func (b bidi[P]) IntoPullDownInput() Input[P, PullDown] { return intoInput[P, PullDown](b.pin) }

// IntoPushPullOutput makes the pin an output that drives both levels.
func (b bidi[P]) IntoPushPullOutput() Output[P, PushPull] { return intoOutput[P, PushPull](b.pin) }

// IntoOpenDrainOutput makes the pin an output that only drives low.
func (b bidi[P]) IntoOpenDrainOutput() Output[P, OpenDrain] { return intoOutput[P, OpenDrain](b.pin) }

// IntoAlternate1 hands the pad to IO_MUX function 1.
func (b bidi[P]) IntoAlternate1() Alternate[P, AF1] { return intoAlternate[P, AF1](b.pin) }

// IntoAlternate2 hands the pad to IO_MUX function 2.
func (b bidi[P]) IntoAlternate2() Alternate[P, AF2] { return intoAlternate[P, AF2](b.pin) }

// IntoAlternate4 hands the pad to IO_MUX function 4.
func (b bidi[P]) IntoAlternate4() Alternate[P, AF4] { return intoAlternate[P, AF4](b.pin) }

// IntoAlternate5 hands the pad to IO_MUX function 5.
func (b bidi[P]) IntoAlternate5() Alternate[P, AF5] { return intoAlternate[P, AF5](b.pin) }

// IntoAlternate6 hands the pad to IO_MUX function 6.
func (b bidi[P]) IntoAlternate6() Alternate[P, AF6] { return intoAlternate[P, AF6](b.pin) }

// IntoAnalog disconnects the digital input and pulls for ADC or DAC use.
func (b bidi[P]) IntoAnalog() Analog[P] { return Analog[P]{bidi[P]{b.into(ModeAnalog)}} }

// IntoFloatingInput makes the input-only pin a digital input.
func (s sense[P]) IntoFloatingInput() InputOnly[P] {
	return InputOnly[P]{sense[P]{s.into(ModeFloatingInput)}}
}

// IntoAnalog disconnects the digital input of the input-only pin for ADC use.
func (s sense[P]) IntoAnalog() InputOnlyAnalog[P] {
	return InputOnlyAnalog[P]{sense[P]{s.into(ModeAnalog)}}
}
