//go:build tinygo && esp32

package gpio

import "esp32hal/mmio"

// GPIO is the chip's GPIO block.
var GPIO = New(mmio.Direct{})
