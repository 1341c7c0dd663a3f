package gpio

// OutputPin is anything that can drive a line high or low.
type OutputPin interface {
	SetHigh()
	SetLow()
}

// StatefulOutputPin can report the level it was last commanded to.
type StatefulOutputPin interface {
	OutputPin
	IsSetHigh() bool
	IsSetLow() bool
}

// ToggleableOutputPin can invert its commanded level.
type ToggleableOutputPin interface {
	OutputPin
	Toggle()
}

// InputPin reads the level present on a line.
type InputPin interface {
	IsHigh() bool
	IsLow() bool
}

// IOLine is a line that can be both driven and sensed, such as an open-drain
// bus line.
type IOLine interface {
	OutputPin
	InputPin
}

var (
	_ StatefulOutputPin   = Output[Gpio2, PushPull]{}
	_ ToggleableOutputPin = Output[Gpio32, OpenDrain]{}
	_ InputPin            = Input[Gpio0, PullUp]{}
	_ InputPin            = InputOnly[Gpio34]{}
	_ IOLine              = Line[Gpio21]{}
)

func (h pin) write(high bool) {
	c := h.owned()
	regs := &banks[c.desc.Bank]
	if high {
		c.periph.bus.Store(regs.outSet, c.desc.mask())
	} else {
		c.periph.bus.Store(regs.outClear, c.desc.mask())
	}
}

func (h pin) commanded() bool {
	c := h.owned()
	return c.periph.bus.Load(banks[c.desc.Bank].out)&c.desc.mask() != 0
}

func (h pin) level() bool {
	c := h.owned()
	return c.periph.bus.Load(banks[c.desc.Bank].in)&c.desc.mask() != 0
}

// SetHigh drives the pin high. An open-drain output releases the line.
func (o Output[P, D]) SetHigh() { o.write(true) }

// SetLow drives the pin low.
func (o Output[P, D]) SetLow() { o.write(false) }

// IsSetHigh reports whether the output latch is high. It does not read the pad.
func (o Output[P, D]) IsSetHigh() bool { return o.commanded() }

// IsSetLow reports whether the output latch is low.
func (o Output[P, D]) IsSetLow() bool { return !o.commanded() }

// Toggle inverts the output latch. The read and the write are separate bus
// accesses; nothing else may drive this pin meanwhile.
func (o Output[P, D]) Toggle() {
	if o.commanded() {
		o.write(false)
	} else {
		o.write(true)
	}
}

// IsHigh reads the pad level.
func (in Input[P, B]) IsHigh() bool { return in.level() }

// IsLow reads the pad level.
func (in Input[P, B]) IsLow() bool { return !in.level() }

// IsHigh reads the pad level.
func (in InputOnly[P]) IsHigh() bool { return in.level() }

// IsLow reads the pad level.
func (in InputOnly[P]) IsLow() bool { return !in.level() }

// Level reads the resolved level of an open-drain line, which may be held
// low by another device while the output is released.
func Level[P IOPin](o Output[P, OpenDrain]) bool { return o.level() }

// Line is an open-drain output used as a shared wired-AND line. SetHigh
// releases it and IsHigh reads what the bus settles to.
type Line[P IOPin] struct {
	Output[P, OpenDrain]
}

// NewLine wraps an open-drain output.
func NewLine[P IOPin](o Output[P, OpenDrain]) Line[P] {
	return Line[P]{o}
}

// IsHigh reports whether the line is released and no device holds it low.
func (l Line[P]) IsHigh() bool { return Level(l.Output) }

// IsLow reports whether the line is held low by this pin or another device.
func (l Line[P]) IsLow() bool { return !Level(l.Output) }
