package gpio

import (
	"errors"
	"strconv"

	"esp32hal/debug"
	"esp32hal/esp32"
	"esp32hal/irq"
	"esp32hal/mmio"
)

// Ownership misuse panics with one of these.
var (
	ErrNotSplit     = errors.New("gpio: pin handle not obtained from Split")
	ErrStaleHandle  = errors.New("gpio: pin handle used after a transition consumed it")
	ErrAlreadySplit = errors.New("gpio: peripheral already split")
)

// splitBuses holds every bus that has been split, so two peripherals over the
// same registers cannot both hand out pins. Guarded by an irq section.
var splitBuses = make(map[mmio.Bus]struct{})

// Peripheral is the GPIO block behind a register bus.
type Peripheral struct {
	bus    mmio.Bus
	split  bool
	claims [esp32.NumPins]claim
}

// claim is the ownership cell of one pin. Only the handle whose generation
// matches gen may use the pin.
type claim struct {
	periph *Peripheral
	desc   *Descriptor
	mode   Mode
	gen    uint32
}

// New returns a peripheral that accesses its registers through bus. The bus
// value must be comparable; peripherals over equal buses share one Split.
func New(bus mmio.Bus) *Peripheral {
	return &Peripheral{bus: bus}
}

// Split returns the handle of every pin, each typed to its reset mode.
// It performs no register access. It panics with ErrAlreadySplit if this
// peripheral, or any other over the same bus, was split before.
func (p *Peripheral) Split() Parts {
	p.take()
	debug.Println("[GPIO] split " + strconv.Itoa(len(registry)) + " pins")

	return Parts{
		Gpio0:  input[Gpio0, PullUp](p, 0),
		Gpio1:  input[Gpio1, PullUp](p, 1),
		Gpio2:  input[Gpio2, PullDown](p, 2),
		Gpio3:  input[Gpio3, PullUp](p, 3),
		Gpio4:  input[Gpio4, PullDown](p, 4),
		Gpio5:  input[Gpio5, PullUp](p, 5),
		Gpio6:  input[Gpio6, PullUp](p, 6),
		Gpio7:  input[Gpio7, PullUp](p, 7),
		Gpio8:  input[Gpio8, PullUp](p, 8),
		Gpio9:  input[Gpio9, PullUp](p, 9),
		Gpio10: input[Gpio10, PullUp](p, 10),
		Gpio11: input[Gpio11, PullUp](p, 11),
		Gpio12: input[Gpio12, PullDown](p, 12),
		Gpio13: input[Gpio13, Floating](p, 13),
		Gpio14: input[Gpio14, Floating](p, 14),
		Gpio15: input[Gpio15, PullUp](p, 15),
		Gpio16: input[Gpio16, Floating](p, 16),
		Gpio17: input[Gpio17, Floating](p, 17),
		Gpio18: input[Gpio18, Floating](p, 18),
		Gpio19: input[Gpio19, Floating](p, 19),
		Gpio20: input[Gpio20, Floating](p, 20),
		Gpio21: input[Gpio21, Floating](p, 21),
		Gpio22: input[Gpio22, Floating](p, 22),
		Gpio23: input[Gpio23, Floating](p, 23),
		Gpio25: input[Gpio25, Floating](p, 25),
		Gpio26: input[Gpio26, Floating](p, 26),
		Gpio27: input[Gpio27, Floating](p, 27),
		Gpio32: input[Gpio32, Floating](p, 32),
		Gpio33: input[Gpio33, Floating](p, 33),
		Gpio34: inputOnly[Gpio34](p, 34),
		Gpio35: inputOnly[Gpio35](p, 35),
		Gpio36: inputOnly[Gpio36](p, 36),
		Gpio37: inputOnly[Gpio37](p, 37),
		Gpio38: inputOnly[Gpio38](p, 38),
		Gpio39: inputOnly[Gpio39](p, 39),
	}
}

// Mode returns the current mode of a pin. It reports false before Split and
// for indices without a pad.
func (p *Peripheral) Mode(index uint8) (Mode, bool) {
	if _, ok := Lookup(index); !ok {
		return 0, false
	}
	state := irq.Disable()
	defer irq.Restore(state)
	if !p.split {
		return 0, false
	}
	return p.claims[index].mode, true
}

func (p *Peripheral) take() {
	state := irq.Disable()
	defer irq.Restore(state)

	if _, taken := splitBuses[p.bus]; taken || p.split {
		panic(ErrAlreadySplit)
	}
	splitBuses[p.bus] = struct{}{}
	p.split = true
	for i := range registry {
		d := &registry[i]
		p.claims[d.Index] = claim{periph: p, desc: d, mode: d.Reset}
	}
	debug.Record(debug.EvtSplit, 0, 0, uint32(len(registry)))
}

func (p *Peripheral) issue(index uint8) pin {
	c := &p.claims[index]
	return pin{c: c, gen: c.gen}
}

func input[P IOPin, B Bias](p *Peripheral, index uint8) Input[P, B] {
	return Input[P, B]{bidi[P]{p.issue(index)}}
}

func inputOnly[P InputOnlyPin](p *Peripheral, index uint8) InputOnly[P] {
	return InputOnly[P]{sense[P]{p.issue(index)}}
}

// Parts holds one handle per implemented pin, in its reset mode.
type Parts struct {
	Gpio0  Input[Gpio0, PullUp]
	Gpio1  Input[Gpio1, PullUp]
	Gpio2  Input[Gpio2, PullDown]
	Gpio3  Input[Gpio3, PullUp]
	Gpio4  Input[Gpio4, PullDown]
	Gpio5  Input[Gpio5, PullUp]
	Gpio6  Input[Gpio6, PullUp]
	Gpio7  Input[Gpio7, PullUp]
	Gpio8  Input[Gpio8, PullUp]
	Gpio9  Input[Gpio9, PullUp]
	Gpio10 Input[Gpio10, PullUp]
	Gpio11 Input[Gpio11, PullUp]
	Gpio12 Input[Gpio12, PullDown]
	Gpio13 Input[Gpio13, Floating]
	Gpio14 Input[Gpio14, Floating]
	Gpio15 Input[Gpio15, PullUp]
	Gpio16 Input[Gpio16, Floating]
	Gpio17 Input[Gpio17, Floating]
	Gpio18 Input[Gpio18, Floating]
	Gpio19 Input[Gpio19, Floating]
	Gpio20 Input[Gpio20, Floating]
	Gpio21 Input[Gpio21, Floating]
	Gpio22 Input[Gpio22, Floating]
	Gpio23 Input[Gpio23, Floating]
	Gpio25 Input[Gpio25, Floating]
	Gpio26 Input[Gpio26, Floating]
	Gpio27 Input[Gpio27, Floating]
	Gpio32 Input[Gpio32, Floating]
	Gpio33 Input[Gpio33, Floating]
	Gpio34 InputOnly[Gpio34]
	Gpio35 InputOnly[Gpio35]
	Gpio36 InputOnly[Gpio36]
	Gpio37 InputOnly[Gpio37]
	Gpio38 InputOnly[Gpio38]
	Gpio39 InputOnly[Gpio39]
}
