package gpio

import "esp32hal/esp32"

// Bank selects which half of the GPIO data and enable registers holds a pin.
type Bank uint8

const (
	BankA Bank = iota // GPIO0..GPIO31: OUT, ENABLE, IN
	BankB             // GPIO32..GPIO39: OUT1, ENABLE1, IN1
)

// Descriptor is the static description of one implemented pin.
type Descriptor struct {
	Index  uint8
	Bank   Bank
	Bit    uint8 // bit position within the bank's registers
	Pulls  bool  // pad has WPU/WPD
	Output bool  // pad has an output driver
	Reset  Mode  // documented mode after reset

	// ResetUnverified is set when the pad's reset IO_MUX value has input
	// disabled although the documented reset mode is an input.
	ResetUnverified bool

	Pad esp32.Pad
}

func (d *Descriptor) mask() uint32 { return 1 << d.Bit }

func describe(index uint8, reset Mode) Descriptor {
	pad := esp32.Pads[index]
	d := Descriptor{
		Index:  index,
		Bit:    index % 32,
		Pulls:  index < 34,
		Output: index < 34,
		Reset:  reset,
		Pad:    pad,
	}
	if index >= 32 {
		d.Bank = BankB
	}
	d.ResetUnverified = reset.IsInput() && pad.Reset&esp32.IO_MUX_FUN_IE == 0
	return d
}

// Reset modes from the TRM IO_MUX pad summary.
var registry = [...]Descriptor{
	describe(0, ModePullUpInput),
	describe(1, ModePullUpInput),
	describe(2, ModePullDownInput),
	describe(3, ModePullUpInput),
	describe(4, ModePullDownInput),
	describe(5, ModePullUpInput),
	describe(6, ModePullUpInput),
	describe(7, ModePullUpInput),
	describe(8, ModePullUpInput),
	describe(9, ModePullUpInput),
	describe(10, ModePullUpInput),
	describe(11, ModePullUpInput),
	describe(12, ModePullDownInput),
	describe(13, ModeFloatingInput),
	describe(14, ModeFloatingInput),
	describe(15, ModePullUpInput),
	describe(16, ModeFloatingInput),
	describe(17, ModeFloatingInput),
	describe(18, ModeFloatingInput),
	describe(19, ModeFloatingInput),
	describe(20, ModeFloatingInput),
	describe(21, ModeFloatingInput),
	describe(22, ModeFloatingInput),
	describe(23, ModeFloatingInput),
	describe(25, ModeFloatingInput),
	describe(26, ModeFloatingInput),
	describe(27, ModeFloatingInput),
	describe(32, ModeFloatingInput),
	describe(33, ModeFloatingInput),
	describe(34, ModeFloatingInput),
	describe(35, ModeFloatingInput),
	describe(36, ModeFloatingInput),
	describe(37, ModeFloatingInput),
	describe(38, ModeFloatingInput),
	describe(39, ModeFloatingInput),
}

var byIndex [esp32.NumPins]*Descriptor

func init() {
	for i := range registry {
		byIndex[registry[i].Index] = &registry[i]
	}
}

// Lookup returns the descriptor of a GPIO index. It reports false for
// indices that have no pad (24, 28..31) or are out of range.
func Lookup(index uint8) (Descriptor, bool) {
	if int(index) >= len(byIndex) || byIndex[index] == nil {
		return Descriptor{}, false
	}
	return *byIndex[index], true
}

// Registry returns every implemented pin in index order.
func Registry() []Descriptor {
	return append([]Descriptor(nil), registry[:]...)
}
