package gpiosim

import "esp32hal/esp32"

// PinState is the decoded configuration of one pad.
type PinState struct {
	MCUSel       uint32
	InputEnable  bool
	PullUp       bool
	PullDown     bool
	OutputEnable bool
	OpenDrain    bool
	Out          bool
	OutSel       uint32
	InSel        uint32
}

// State decodes the registers that configure pin.
func (s *Sim) State(pin uint8) PinState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(pin)
}

func (s *Sim) state(pin uint8) PinState {
	pad := s.regs[esp32.Pads[pin].Addr()]
	outReg, enReg, bit := esp32.GPIO_OUT, esp32.GPIO_ENABLE, uint(pin)
	if pin >= 32 {
		outReg, enReg, bit = esp32.GPIO_OUT1, esp32.GPIO_ENABLE1, uint(pin-32)
	}
	return PinState{
		MCUSel:       (pad & esp32.IO_MUX_MCU_SEL_Msk) >> esp32.IO_MUX_MCU_SEL_Pos,
		InputEnable:  pad&esp32.IO_MUX_FUN_IE != 0,
		PullUp:       pad&esp32.IO_MUX_FUN_WPU != 0,
		PullDown:     pad&esp32.IO_MUX_FUN_WPD != 0,
		OutputEnable: s.regs[enReg]>>bit&1 != 0,
		OpenDrain:    s.regs[esp32.GPIO_PIN(pin)]&esp32.GPIO_PIN_PAD_DRIVER != 0,
		Out:          s.regs[outReg]>>bit&1 != 0,
		OutSel:       s.regs[esp32.GPIO_FUNC_OUT_SEL_CFG(pin)],
		InSel:        s.regs[esp32.GPIO_FUNC_IN_SEL_CFG(pin)],
	}
}

// drives reports whether the pad's output driver is active and, if so, the
// level it forces. An open-drain driver only ever forces low.
func (st PinState) drives() (active, level bool) {
	if !st.OutputEnable || st.MCUSel != esp32.MCU_SEL_GPIO || st.OutSel != esp32.FUNC_SEL_GPIO {
		return false, false
	}
	if st.OpenDrain {
		return !st.Out, false
	}
	return true, st.Out
}

func (s *Sim) line(pin uint8) bool {
	st := s.state(pin)
	if active, level := st.drives(); active {
		return level
	}
	switch s.ext[pin] {
	case Low:
		return false
	case High:
		return true
	}
	if st.PullUp {
		return true
	}
	// pulled down or floating both settle low
	return false
}

// inputs builds IN (base 0) or IN1 (base 32). Pads with FUN_IE clear read 0.
func (s *Sim) inputs(base uint8) uint32 {
	var v uint32
	for bit := uint8(0); bit < 32 && base+bit < esp32.NumPins; bit++ {
		pin := base + bit
		if !esp32.Pads[pin].Implemented() {
			continue
		}
		st := s.state(pin)
		if st.InputEnable && s.line(pin) {
			v |= 1 << bit
		}
	}
	return v
}
