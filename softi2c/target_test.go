package softi2c

import "esp32hal/gpiosim"

const (
	pinSCL = 22
	pinSDA = 21
)

const (
	stIdle = iota
	stRecv
	stXmit
)

// target emulates a register-file I2C device on the simulated pads. It
// follows the bus from store and load hooks, the way a real device follows
// the wires.
type target struct {
	sim  *gpiosim.Sim
	addr uint8
	regs [256]byte
	ptr  uint8

	nackAfter    int // NACK data bytes beyond this count; 0 accepts all
	stretchPolls int // hold SCL low for this many input reads after each falling edge
	holding      int

	prevSCL, prevSDA bool
	state            int
	isAddr, read     bool
	gotPtr           bool
	n                int
	shift            byte
	acking           bool
	ackClocked, nack bool

	starts, stops int
	written       []byte
}

func attachTarget(sim *gpiosim.Sim, addr uint8) *target {
	tg := &target{sim: sim, addr: addr}
	tg.prevSCL = sim.Line(pinSCL)
	tg.prevSDA = sim.Line(pinSDA)
	sim.OnStore(func(uintptr, uint32) { tg.step() })
	sim.OnLoad(func(uintptr) {
		if tg.holding > 0 {
			tg.holding--
			if tg.holding == 0 {
				sim.Drive(pinSCL, gpiosim.High)
				tg.step()
			}
		}
	})
	return tg
}

func (tg *target) pullSDA(low bool) {
	if low {
		tg.sim.Drive(pinSDA, gpiosim.Low)
	} else {
		tg.sim.Drive(pinSDA, gpiosim.High)
	}
}

func (tg *target) step() {
	scl, sda := tg.sim.Line(pinSCL), tg.sim.Line(pinSDA)
	switch {
	case tg.prevSCL && scl && tg.prevSDA && !sda:
		tg.starts++
		tg.state, tg.isAddr, tg.gotPtr = stRecv, true, false
		tg.n, tg.shift, tg.acking = 0, 0, false
	case tg.prevSCL && scl && !tg.prevSDA && sda:
		tg.stops++
		tg.state = stIdle
		tg.pullSDA(false)
	case !tg.prevSCL && scl:
		tg.rise(sda)
	case tg.prevSCL && !scl:
		tg.fall()
	}
	tg.prevSCL = tg.sim.Line(pinSCL)
	tg.prevSDA = tg.sim.Line(pinSDA)
}

func (tg *target) rise(sda bool) {
	switch tg.state {
	case stRecv:
		if tg.n < 8 {
			tg.shift <<= 1
			if sda {
				tg.shift |= 1
			}
			tg.n++
		}
	case stXmit:
		if tg.n == 8 {
			tg.nack = sda
			tg.ackClocked = true
		}
	}
}

func (tg *target) fall() {
	if tg.state != stIdle && tg.stretchPolls > 0 {
		tg.holding = tg.stretchPolls
		tg.sim.Drive(pinSCL, gpiosim.Low)
	}

	switch tg.state {
	case stRecv:
		if tg.n < 8 {
			return
		}
		if !tg.acking {
			if !tg.accept() {
				tg.state = stIdle
				return
			}
			tg.pullSDA(true)
			tg.acking = true
			return
		}
		tg.acking = false
		tg.pullSDA(false)
		tg.n, tg.shift = 0, 0
		if tg.isAddr && tg.read {
			tg.state = stXmit
			tg.present()
		}
		tg.isAddr = false
	case stXmit:
		if tg.n < 8 {
			tg.n++
			if tg.n < 8 {
				tg.present()
			} else {
				tg.pullSDA(false)
			}
			return
		}
		if tg.ackClocked {
			tg.ackClocked = false
			if tg.nack {
				tg.state = stIdle
				tg.pullSDA(false)
				return
			}
			tg.ptr++
			tg.n = 0
			tg.present()
		}
	}
}

// accept handles a completed byte and reports whether to ACK it.
func (tg *target) accept() bool {
	if tg.isAddr {
		if tg.shift>>1 != tg.addr {
			return false
		}
		tg.read = tg.shift&1 == 1
		return true
	}
	tg.written = append(tg.written, tg.shift)
	if tg.nackAfter > 0 && len(tg.written) > tg.nackAfter {
		return false
	}
	if !tg.gotPtr {
		tg.ptr, tg.gotPtr = tg.shift, true
	} else {
		tg.regs[tg.ptr] = tg.shift
		tg.ptr++
	}
	return true
}

func (tg *target) present() {
	bit := tg.regs[tg.ptr] >> (7 - tg.n) & 1
	tg.pullSDA(bit == 0)
}
