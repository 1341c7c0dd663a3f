package gpio

// pin is the ownership token embedded in every handle.
type pin struct {
	c   *claim
	gen uint32
}

// owned returns the pin's claim, panicking if this handle does not own it.
func (h pin) owned() *claim {
	if h.c == nil {
		panic(ErrNotSplit)
	}
	if h.c.gen != h.gen {
		panic(ErrStaleHandle)
	}
	return h.c
}

// Index returns the GPIO number of the pin.
func (h pin) Index() uint8 { return h.owned().desc.Index }

// Descriptor returns the registry entry of the pin.
func (h pin) Descriptor() Descriptor { return *h.owned().desc }

// bidi carries the transitions of pads with an output driver.
type bidi[P IOPin] struct{ pin }

// sense carries the transitions of input-only pads.
type sense[P InputOnlyPin] struct{ pin }

// Input is a digital input with bias B.
type Input[P IOPin, B Bias] struct{ bidi[P] }

// Output is a digital output with drive D.
type Output[P IOPin, D Drive] struct{ bidi[P] }

// Alternate is a pad routed to IO_MUX function F.
type Alternate[P IOPin, F Function] struct{ bidi[P] }

// Analog is a pad with its digital input and output disabled.
type Analog[P IOPin] struct{ bidi[P] }

// InputOnly is a floating digital input on GPIO34..GPIO39.
type InputOnly[P InputOnlyPin] struct{ sense[P] }

// InputOnlyAnalog is an input-only pad with its digital input disabled.
type InputOnlyAnalog[P InputOnlyPin] struct{ sense[P] }

// Mode returns the mode encoded in the handle's type.
func (in Input[P, B]) Mode() Mode {
	in.owned()
	var b B
	return b.mode()
}

// Mode returns the mode encoded in the handle's type.
func (o Output[P, D]) Mode() Mode {
	o.owned()
	var d D
	return d.mode()
}

// Mode returns the mode encoded in the handle's type.
func (a Alternate[P, F]) Mode() Mode {
	a.owned()
	var f F
	return f.mode()
}

// Mode returns the mode encoded in the handle's type.
func (a Analog[P]) Mode() Mode {
	a.owned()
	return ModeAnalog
}

// Mode returns the mode encoded in the handle's type.
func (in InputOnly[P]) Mode() Mode {
	in.owned()
	return ModeFloatingInput
}

// Mode returns the mode encoded in the handle's type.
func (a InputOnlyAnalog[P]) Mode() Mode {
	a.owned()
	return ModeAnalog
}
