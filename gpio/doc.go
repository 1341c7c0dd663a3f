// Package gpio exposes the ESP32 GPIO pins as typed, individually owned
// handles.
//
// A pin's electrical mode is part of its handle's type. Split hands out one
// handle per pin in its reset mode; each Into* method reconfigures the pad
// and returns a new handle typed to the new mode, invalidating the old one.
// Operations that make no sense for a mode are simply absent:
//
//	parts := gpio.GPIO.Split()
//	led := parts.Gpio2.IntoPushPullOutput()
//	led.SetHigh()
//
//	btn := parts.Gpio0.IntoPullUpInput()
//	if btn.IsLow() {
//		led.Toggle()
//	}
//
// Pins 34 to 39 have no output driver and no pull resistors, so their handles
// only offer IntoFloatingInput and IntoAnalog.
//
// # Ownership
//
// Go cannot prevent a handle value from being copied. Every transition
// advances the pin's generation, and any handle issued before it panics with
// ErrStaleHandle on its next use. Handles that did not come from Split panic
// with ErrNotSplit. Split may be called once per register bus, so a second
// Peripheral over the same bus panics with ErrAlreadySplit.
//
// # Concurrency
//
// Handles for different pins may be used from different goroutines or
// interrupt handlers. A single handle must not be used concurrently. Output
// writes and input reads are single register accesses. Transitions
// read-modify-write registers shared with other pins and run inside an
// irq critical section; any other code that read-modify-writes the IO_MUX or
// GPIO function-select registers must do the same.
package gpio
