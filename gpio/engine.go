package gpio

import (
	"strconv"

	"esp32hal/debug"
	"esp32hal/esp32"
	"esp32hal/irq"
)

// bankRegs are the data and enable registers of one bank.
type bankRegs struct {
	out, outSet, outClear  uintptr
	enableSet, enableClear uintptr
	in                     uintptr
}

var banks = [...]bankRegs{
	BankA: {
		out: esp32.GPIO_OUT, outSet: esp32.GPIO_OUT_W1TS, outClear: esp32.GPIO_OUT_W1TC,
		enableSet: esp32.GPIO_ENABLE_W1TS, enableClear: esp32.GPIO_ENABLE_W1TC,
		in: esp32.GPIO_IN,
	},
	BankB: {
		out: esp32.GPIO_OUT1, outSet: esp32.GPIO_OUT1_W1TS, outClear: esp32.GPIO_OUT1_W1TC,
		enableSet: esp32.GPIO_ENABLE1_W1TS, enableClear: esp32.GPIO_ENABLE1_W1TC,
		in: esp32.GPIO_IN1,
	},
}

// padMask covers the IO_MUX fields a transition owns. FUN_DRV is left alone.
const padMask = esp32.IO_MUX_MCU_SEL_Msk | esp32.IO_MUX_FUN_IE |
	esp32.IO_MUX_FUN_WPU | esp32.IO_MUX_FUN_WPD

// padBits returns the IO_MUX field values for mode m.
func padBits(m Mode) uint32 {
	sel := esp32.MCU_SEL_GPIO
	var bits uint32
	switch m {
	case ModeFloatingInput, ModeOpenDrainOutput:
		bits = esp32.IO_MUX_FUN_IE
	case ModePullUpInput:
		bits = esp32.IO_MUX_FUN_IE | esp32.IO_MUX_FUN_WPU
	case ModePullDownInput:
		bits = esp32.IO_MUX_FUN_IE | esp32.IO_MUX_FUN_WPD
	case ModeAlternate1, ModeAlternate2:
		sel = uint32(m - ModeAlternate1)
		bits = esp32.IO_MUX_FUN_IE
	case ModeAlternate4, ModeAlternate5, ModeAlternate6:
		// function 3 is the GPIO matrix, so AF4 is selector 3
		sel = uint32(m-ModeAlternate4) + 3
		bits = esp32.IO_MUX_FUN_IE
	}
	return esp32.MCUSel(sel) | bits
}

// apply moves a pin to mode m. The register sequence runs with interrupts
// masked: direction enable, then function routing, then the IO_MUX pad.
func (p *Peripheral) apply(c *claim, m Mode) {
	from := p.program(c, m)
	if debug.Enabled() {
		debug.Println("[GPIO] pin " + strconv.Itoa(int(c.desc.Index)) + " " + from.String() + " -> " + m.String())
	}
}

// program writes the registers for mode m and returns the previous mode.
func (p *Peripheral) program(c *claim, m Mode) Mode {
	d := c.desc
	regs := &banks[d.Bank]

	state := irq.Disable()
	defer irq.Restore(state)

	if d.Output {
		if m.IsOutput() || m.IsAlternate() {
			p.bus.Store(regs.enableSet, d.mask())
		} else {
			p.bus.Store(regs.enableClear, d.mask())
		}
	}

	if !m.IsAlternate() {
		if m.IsOutput() {
			p.bus.Store(esp32.GPIO_FUNC_OUT_SEL_CFG(d.Index), esp32.FUNC_SEL_GPIO)
		} else {
			p.bus.Store(esp32.GPIO_FUNC_IN_SEL_CFG(d.Index), esp32.FUNC_SEL_GPIO)
		}
		if d.Output {
			var drv uint32
			if m == ModeOpenDrainOutput {
				drv = esp32.GPIO_PIN_PAD_DRIVER
			}
			p.modify(esp32.GPIO_PIN(d.Index), esp32.GPIO_PIN_PAD_DRIVER, drv)
		}
	}

	p.modify(d.Pad.Addr(), padMask, padBits(m))

	from := c.mode
	c.mode = m
	c.gen++

	debug.Record(debug.EvtTransition, d.Index, uint32(from), uint32(m))
	return from
}

// modify read-modify-writes a register. Callers hold an irq section.
func (p *Peripheral) modify(addr uintptr, mask, bits uint32) {
	p.bus.Store(addr, p.bus.Load(addr)&^mask|bits)
}

func init() {
	debug.Names = func(evt debug.Event) (string, string) {
		if evt.Type == debug.EvtTransition {
			return Mode(evt.From).String(), Mode(evt.To).String()
		}
		return strconv.FormatUint(uint64(evt.From), 10), strconv.FormatUint(uint64(evt.To), 10)
	}
}
