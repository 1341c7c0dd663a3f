// Package softi2c is a bit-banged I2C controller over open-drain GPIO lines.
//
// Both lines must be open-drain outputs with an external or internal pull-up;
// SetHigh releases a line and IsHigh reads what the bus settled to. Only 7-bit
// addressing and a single controller are supported.
package softi2c

import (
	"errors"
	"strconv"
	"time"

	"tinygo.org/x/drivers"

	"esp32hal/debug"
	"esp32hal/gpio"
	"esp32hal/irq"
)

// DefaultFrequency is used when Config.Frequency is zero.
const DefaultFrequency = 100_000

var (
	ErrNack           = errors.New("softi2c: no acknowledge")
	ErrBusStuck       = errors.New("softi2c: SDA held low by another device")
	ErrStretchTimeout = errors.New("softi2c: SCL held low past clock stretch limit")
	ErrAddress        = errors.New("softi2c: address out of 7-bit range")
)

// Config holds the configuration for a software I2C bus
type Config struct {
	Frequency uint32 // SCL rate in Hz

	// Delay waits between bus phases. Defaults to time.Sleep.
	Delay func(time.Duration)

	// ClockStretch is how long a target may hold SCL low. Zero means
	// targets never stretch and SCL is not read back.
	ClockStretch time.Duration
}

func (c *Config) applyDefaults() {
	if c.Frequency == 0 {
		c.Frequency = DefaultFrequency
	}
	if c.Delay == nil {
		c.Delay = time.Sleep
	}
}

// Bus is a software I2C controller. It implements drivers.I2C.
type Bus struct {
	scl, sda   gpio.IOLine
	halfPeriod time.Duration
	delay      func(time.Duration)
	stretch    int // SCL polls allowed while a target stretches
}

var _ drivers.I2C = (*Bus)(nil)

// New returns a bus on the given lines and releases both.
func New(scl, sda gpio.IOLine, cfg Config) *Bus {
	cfg.applyDefaults()
	b := &Bus{
		scl:        scl,
		sda:        sda,
		halfPeriod: halfPeriod(cfg.Frequency),
		delay:      cfg.Delay,
	}
	if cfg.ClockStretch > 0 {
		b.stretch = int(cfg.ClockStretch/b.halfPeriod) + 1
	}
	sda.SetHigh()
	scl.SetHigh()
	return b
}

// halfPeriod is half an SCL cycle, at least 1ns.
func halfPeriod(freq uint32) time.Duration {
	if freq > 500_000_000 {
		return time.Nanosecond
	}
	return time.Duration(500_000_000/freq) * time.Nanosecond
}

// Tx performs a write of w followed by a read into r, joined by a repeated
// start. Either may be empty; with both empty Tx probes the address.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7F {
		return ErrAddress
	}
	err := b.tx(uint8(addr), w, r)
	if stopErr := b.stop(); err == nil {
		err = stopErr
	}
	if err != nil {
		state := irq.Disable()
		debug.Record(debug.EvtBusError, uint8(addr), uint32(len(w)), uint32(len(r)))
		irq.Restore(state)
		debug.Println("[I2C] 0x" + strconv.FormatUint(uint64(addr), 16) + ": " + err.Error())
	}
	return err
}

func (b *Bus) tx(addr uint8, w, r []byte) error {
	if err := b.start(); err != nil {
		return err
	}
	if len(w) > 0 || len(r) == 0 {
		if err := b.writeByte(addr << 1); err != nil {
			return err
		}
		for _, v := range w {
			if err := b.writeByte(v); err != nil {
				return err
			}
		}
		if len(r) == 0 {
			return nil
		}
		if err := b.repeatedStart(); err != nil {
			return err
		}
	}
	if err := b.writeByte(addr<<1 | 1); err != nil {
		return err
	}
	for i := range r {
		v, err := b.readByte(i < len(r)-1)
		if err != nil {
			return err
		}
		r[i] = v
	}
	return nil
}

func (b *Bus) wait() { b.delay(b.halfPeriod) }

// releaseSCL lets SCL rise and waits out any clock stretching.
func (b *Bus) releaseSCL() error {
	b.scl.SetHigh()
	if b.stretch == 0 {
		return nil
	}
	for i := 0; b.scl.IsLow(); i++ {
		if i >= b.stretch {
			return ErrStretchTimeout
		}
		b.wait()
	}
	return nil
}

func (b *Bus) start() error {
	b.sda.SetHigh()
	if err := b.releaseSCL(); err != nil {
		return err
	}
	b.wait()
	if b.sda.IsLow() {
		return ErrBusStuck
	}
	b.sda.SetLow()
	b.wait()
	b.scl.SetLow()
	return nil
}

func (b *Bus) repeatedStart() error {
	b.sda.SetHigh()
	b.wait()
	return b.start()
}

func (b *Bus) stop() error {
	b.scl.SetLow()
	b.sda.SetLow()
	b.wait()
	err := b.releaseSCL()
	b.wait()
	b.sda.SetHigh()
	b.wait()
	return err
}

func (b *Bus) writeBit(bit bool) error {
	if bit {
		b.sda.SetHigh()
	} else {
		b.sda.SetLow()
	}
	b.wait()
	if err := b.releaseSCL(); err != nil {
		return err
	}
	b.wait()
	b.scl.SetLow()
	return nil
}

func (b *Bus) readBit() (bool, error) {
	b.sda.SetHigh()
	b.wait()
	if err := b.releaseSCL(); err != nil {
		return false, err
	}
	b.wait()
	bit := b.sda.IsHigh()
	b.scl.SetLow()
	return bit, nil
}

// writeByte sends v MSB first and reports ErrNack if the target does not
// pull SDA low in the ninth clock.
func (b *Bus) writeByte(v byte) error {
	for bit := 7; bit >= 0; bit-- {
		if err := b.writeBit(v&(1<<bit) != 0); err != nil {
			return err
		}
	}
	nack, err := b.readBit()
	if err != nil {
		return err
	}
	if nack {
		return ErrNack
	}
	return nil
}

func (b *Bus) readByte(ack bool) (byte, error) {
	var v byte
	for i := 0; i < 8; i++ {
		bit, err := b.readBit()
		if err != nil {
			return 0, err
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v, b.writeBit(!ack)
}

// ReadRegister reads len(buf) bytes starting at register reg.
func (b *Bus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{reg}, buf)
}

// WriteRegister writes data starting at register reg.
func (b *Bus) WriteRegister(addr uint8, reg uint8, data []byte) error {
	w := make([]byte, 0, len(data)+1)
	w = append(w, reg)
	return b.Tx(uint16(addr), append(w, data...), nil)
}
