// Package softspi is a bit-banged SPI controller over GPIO handles.
package softspi

import (
	"errors"
	"strconv"
	"time"

	"tinygo.org/x/drivers"

	"esp32hal/debug"
	"esp32hal/gpio"
)

// Mode represents SPI clock polarity and phase (0-3)
// Mode 0: CPOL=0, CPHA=0 (clock idle low, sample on rising edge)
// Mode 1: CPOL=0, CPHA=1 (clock idle low, sample on falling edge)
// Mode 2: CPOL=1, CPHA=0 (clock idle high, sample on falling edge)
// Mode 3: CPOL=1, CPHA=1 (clock idle high, sample on rising edge)
type Mode uint8

const (
	Mode0 Mode = iota
	Mode1
	Mode2
	Mode3
)

// DefaultFrequency is used when Config.Frequency is zero.
const DefaultFrequency = 100_000

var (
	ErrInvalidMode    = errors.New("softspi: invalid SPI mode")
	ErrBufferMismatch = errors.New("softspi: tx and rx buffer lengths must match")
)

// Config holds the configuration for a software SPI bus
type Config struct {
	Mode      Mode
	Frequency uint32 // SCK rate in Hz

	// Delay waits between clock edges. Defaults to time.Sleep.
	Delay func(time.Duration)
}

func (c *Config) applyDefaults() {
	if c.Frequency == 0 {
		c.Frequency = DefaultFrequency
	}
	if c.Delay == nil {
		c.Delay = time.Sleep
	}
}

// Bus is a software SPI controller. It implements drivers.SPI.
type Bus struct {
	sck, sdo gpio.OutputPin
	sdi      gpio.InputPin

	cpol bool // Clock polarity: false = idle low, true = idle high
	cpha bool // Clock phase: false = sample on first edge, true = sample on second edge

	halfPeriod time.Duration
	delay      func(time.Duration)
}

var _ drivers.SPI = (*Bus)(nil)

// New configures a bus on the given pins and parks SCK at its idle level.
// sdi may be nil for a transmit-only bus, in which case reads return zeros.
func New(sck, sdo gpio.OutputPin, sdi gpio.InputPin, cfg Config) (*Bus, error) {
	cfg.applyDefaults()
	if cfg.Mode > Mode3 {
		return nil, ErrInvalidMode
	}

	b := &Bus{
		sck:   sck,
		sdo:   sdo,
		sdi:   sdi,
		cpol:  cfg.Mode == Mode2 || cfg.Mode == Mode3,
		cpha:  cfg.Mode == Mode1 || cfg.Mode == Mode3,
		delay: cfg.Delay,
		// we toggle clock twice per bit, so half period is 1 / (2 * rate)
		halfPeriod: time.Duration(500_000_000/min(cfg.Frequency, 500_000_000)) * time.Nanosecond,
	}
	b.clock(false)
	b.sdo.SetLow()

	debug.Println("[SPI] soft bus mode=" + strconv.Itoa(int(cfg.Mode)) +
		" rate=" + strconv.FormatUint(uint64(cfg.Frequency), 10))
	return b, nil
}

// clock drives SCK to its active (true) or idle (false) level.
func (b *Bus) clock(active bool) {
	if active != b.cpol {
		b.sck.SetHigh()
	} else {
		b.sck.SetLow()
	}
}

func (b *Bus) out(bit bool) {
	if bit {
		b.sdo.SetHigh()
	} else {
		b.sdo.SetLow()
	}
}

func (b *Bus) in() bool {
	return b.sdi != nil && b.sdi.IsHigh()
}

// Transfer exchanges one byte, MSB first.
func (b *Bus) Transfer(w byte) (byte, error) {
	var r byte
	for bit := 7; bit >= 0; bit-- {
		if !b.cpha {
			// data valid before the leading edge, sampled on it
			b.out(w&(1<<bit) != 0)
			b.delay(b.halfPeriod)
			b.clock(true)
			if b.in() {
				r |= 1 << bit
			}
			b.delay(b.halfPeriod)
			b.clock(false)
		} else {
			// shifted on the leading edge, sampled on the trailing edge
			b.clock(true)
			b.out(w&(1<<bit) != 0)
			b.delay(b.halfPeriod)
			b.clock(false)
			if b.in() {
				r |= 1 << bit
			}
			b.delay(b.halfPeriod)
		}
	}
	return r, nil
}

// Tx writes w while reading into r. A nil r discards input, a nil w sends
// zeros; otherwise both must have the same length.
func (b *Bus) Tx(w, r []byte) error {
	switch {
	case r == nil:
		for _, v := range w {
			b.Transfer(v)
		}
	case w == nil:
		for i := range r {
			r[i], _ = b.Transfer(0)
		}
	default:
		if len(w) != len(r) {
			return ErrBufferMismatch
		}
		for i, v := range w {
			r[i], _ = b.Transfer(v)
		}
	}
	return nil
}
