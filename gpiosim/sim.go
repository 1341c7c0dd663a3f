// Package gpiosim simulates the ESP32 GPIO and IO_MUX register blocks.
//
// A Sim implements mmio.Bus. Stores to the W1TS/W1TC aliases update the
// underlying OUT and ENABLE registers, and loads of IN/IN1 are computed from
// a wire model: what the pad drives, what an external source drives, and the
// pad's pull resistors. Hooks run on every access so tests can inject
// interrupts between the load and store of a read-modify-write.
package gpiosim

import (
	"sync"

	"esp32hal/esp32"
)

// Level is what an external source applies to a pad.
type Level uint8

const (
	Float Level = iota // nothing external drives the line
	Low
	High
)

// Op distinguishes loads from stores in the access log.
type Op uint8

const (
	OpLoad Op = iota
	OpStore
)

func (o Op) String() string {
	if o == OpStore {
		return "store"
	}
	return "load"
}

// Access is one recorded bus access.
type Access struct {
	Op    Op
	Addr  uintptr
	Value uint32
}

// Sim is a register-level model of the GPIO and IO_MUX blocks.
type Sim struct {
	mu      sync.Mutex
	regs    map[uintptr]uint32
	ext     [esp32.NumPins]Level
	logging bool
	log     []Access
	onLoad  []func(addr uintptr)
	onStore []func(addr uintptr, value uint32)
}

// New returns a simulator in the documented reset state.
func New() *Sim {
	s := &Sim{regs: make(map[uintptr]uint32)}
	s.Reset()
	return s
}

// Reset restores every register to its reset value and releases external drivers.
// Hooks and the access log are kept.
func (s *Sim) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.regs)
	for _, p := range esp32.Pads {
		if p.Implemented() {
			s.regs[p.Addr()] = p.Reset
		}
	}
	for i := range s.ext {
		s.ext[i] = Float
	}
}

// Load implements mmio.Bus.
func (s *Sim) Load(addr uintptr) uint32 {
	s.mu.Lock()
	v := s.read(addr)
	if s.logging {
		s.log = append(s.log, Access{Op: OpLoad, Addr: addr, Value: v})
	}
	hooks := s.onLoad
	s.mu.Unlock()

	for _, h := range hooks {
		h(addr)
	}
	return v
}

// Store implements mmio.Bus.
func (s *Sim) Store(addr uintptr, value uint32) {
	s.mu.Lock()
	s.write(addr, value)
	if s.logging {
		s.log = append(s.log, Access{Op: OpStore, Addr: addr, Value: value})
	}
	hooks := s.onStore
	s.mu.Unlock()

	for _, h := range hooks {
		h(addr, value)
	}
}

// Peek reads a register without logging or running hooks.
func (s *Sim) Peek(addr uintptr) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(addr)
}

// Poke sets the raw backing value of a register, bypassing alias semantics,
// logging and hooks.
func (s *Sim) Poke(addr uintptr, value uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regs[addr] = value
}

// Drive applies an external level to a pad. Float releases it.
func (s *Sim) Drive(pin uint8, l Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ext[pin] = l
}

// Line returns the resolved electrical level of a pad.
func (s *Sim) Line(pin uint8) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.line(pin)
}

// OnLoad registers a hook called after every Load, outside the simulator lock.
func (s *Sim) OnLoad(h func(addr uintptr)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLoad = append(s.onLoad, h)
}

// OnStore registers a hook called after every Store, outside the simulator lock.
func (s *Sim) OnStore(h func(addr uintptr, value uint32)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onStore = append(s.onStore, h)
}

// ClearHooks removes all hooks.
func (s *Sim) ClearHooks() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLoad = nil
	s.onStore = nil
}

// Record turns the access log on or off. Turning it on discards earlier entries.
func (s *Sim) Record(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logging = on
	if on {
		s.log = nil
	}
}

// Accesses returns a copy of the access log.
func (s *Sim) Accesses() []Access {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Access(nil), s.log...)
}

// Stores returns the logged stores only.
func (s *Sim) Stores() []Access {
	var out []Access
	for _, a := range s.Accesses() {
		if a.Op == OpStore {
			out = append(out, a)
		}
	}
	return out
}

func (s *Sim) read(addr uintptr) uint32 {
	switch addr {
	case esp32.GPIO_IN:
		return s.inputs(0)
	case esp32.GPIO_IN1:
		return s.inputs(32)
	case esp32.GPIO_OUT_W1TS, esp32.GPIO_OUT_W1TC,
		esp32.GPIO_OUT1_W1TS, esp32.GPIO_OUT1_W1TC,
		esp32.GPIO_ENABLE_W1TS, esp32.GPIO_ENABLE_W1TC,
		esp32.GPIO_ENABLE1_W1TS, esp32.GPIO_ENABLE1_W1TC:
		return 0
	}
	return s.regs[addr]
}

func (s *Sim) write(addr uintptr, v uint32) {
	switch addr {
	case esp32.GPIO_OUT_W1TS:
		s.regs[esp32.GPIO_OUT] |= v
	case esp32.GPIO_OUT_W1TC:
		s.regs[esp32.GPIO_OUT] &^= v
	case esp32.GPIO_OUT1_W1TS:
		s.regs[esp32.GPIO_OUT1] |= v & esp32.Bank1Mask
	case esp32.GPIO_OUT1_W1TC:
		s.regs[esp32.GPIO_OUT1] &^= v
	case esp32.GPIO_ENABLE_W1TS:
		s.regs[esp32.GPIO_ENABLE] |= v
	case esp32.GPIO_ENABLE_W1TC:
		s.regs[esp32.GPIO_ENABLE] &^= v
	case esp32.GPIO_ENABLE1_W1TS:
		s.regs[esp32.GPIO_ENABLE1] |= v & esp32.Bank1Mask
	case esp32.GPIO_ENABLE1_W1TC:
		s.regs[esp32.GPIO_ENABLE1] &^= v
	case esp32.GPIO_OUT1, esp32.GPIO_ENABLE1:
		s.regs[addr] = v & esp32.Bank1Mask
	case esp32.GPIO_IN, esp32.GPIO_IN1:
		// read-only
	default:
		s.regs[addr] = v
	}
}
