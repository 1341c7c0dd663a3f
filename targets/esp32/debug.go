//go:build tinygo && esp32

package main

import (
	"machine"

	"esp32hal/debug"
)

// InitDebug routes HAL diagnostics to the console UART (UART0 on GPIO1/GPIO3,
// already configured by the runtime).
func InitDebug() {
	debug.SetWriter(func(s string) {
		machine.Serial.Write([]byte(s))
		machine.Serial.Write([]byte("\r\n"))
	})
	debug.SetEnabled(true)
	debug.Println("=== ESP32 GPIO HAL ===")
}
