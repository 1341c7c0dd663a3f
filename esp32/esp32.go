// Package esp32 is the register map of the ESP32 GPIO and IO_MUX blocks.
//
// Addresses and bit layouts come from the ESP32 Technical Reference Manual
// (chapter 4, IO_MUX and GPIO Matrix) and the ESP-IDF io_mux_reg.h /
// gpio_reg.h headers. Nothing in this package touches memory; see package
// mmio for access.
package esp32

// NumPins is the size of the GPIO index space, including unimplemented indices.
const NumPins = 40

// Peripheral base addresses.
const (
	GPIOBase  uintptr = 0x3FF44000
	IOMUXBase uintptr = 0x3FF49000
)

// GPIO block registers. The _W1TS and _W1TC aliases set or clear the bits
// written as 1 in the underlying register and ignore bits written as 0.
const (
	GPIO_OUT          = GPIOBase + 0x04
	GPIO_OUT_W1TS     = GPIOBase + 0x08
	GPIO_OUT_W1TC     = GPIOBase + 0x0C
	GPIO_OUT1         = GPIOBase + 0x10
	GPIO_OUT1_W1TS    = GPIOBase + 0x14
	GPIO_OUT1_W1TC    = GPIOBase + 0x18
	GPIO_ENABLE       = GPIOBase + 0x20
	GPIO_ENABLE_W1TS  = GPIOBase + 0x24
	GPIO_ENABLE_W1TC  = GPIOBase + 0x28
	GPIO_ENABLE1      = GPIOBase + 0x2C
	GPIO_ENABLE1_W1TS = GPIOBase + 0x30
	GPIO_ENABLE1_W1TC = GPIOBase + 0x34
	GPIO_IN           = GPIOBase + 0x3C
	GPIO_IN1          = GPIOBase + 0x40

	gpioPin0        = GPIOBase + 0x88
	gpioFuncInSel0  = GPIOBase + 0x130
	gpioFuncOutSel0 = GPIOBase + 0x530
)

// Bank B registers only implement the low 8 bits (GPIO32..GPIO39).
const Bank1Mask uint32 = 0xFF

// GPIO_PINn fields.
const (
	GPIO_PIN_PAD_DRIVER uint32 = 1 << 2 // open drain
)

// GPIO_FUNCn_OUT_SEL_CFG / GPIO_FUNCn_IN_SEL_CFG value that routes the pad
// through the GPIO matrix as a plain software-controlled signal.
const FUNC_SEL_GPIO uint32 = 0x100

// IO_MUX pad register fields.
const (
	IO_MUX_MCU_SEL_Pos        = 12
	IO_MUX_MCU_SEL_Msk uint32 = 0x7 << IO_MUX_MCU_SEL_Pos
	IO_MUX_FUN_DRV_Pos        = 10
	IO_MUX_FUN_DRV_Msk uint32 = 0x3 << IO_MUX_FUN_DRV_Pos
	IO_MUX_FUN_IE      uint32 = 1 << 9
	IO_MUX_FUN_WPU     uint32 = 1 << 8
	IO_MUX_FUN_WPD     uint32 = 1 << 7
)

// MCU_SEL value selecting the GPIO matrix (pad function 3).
const MCU_SEL_GPIO uint32 = 2

// GPIO_PIN returns the address of GPIO_PINn_REG.
func GPIO_PIN(n uint8) uintptr { return gpioPin0 + 4*uintptr(n) }

// GPIO_FUNC_IN_SEL_CFG returns the address of the input-select register for pin n.
func GPIO_FUNC_IN_SEL_CFG(n uint8) uintptr { return gpioFuncInSel0 + 4*uintptr(n) }

// GPIO_FUNC_OUT_SEL_CFG returns the address of GPIO_FUNCn_OUT_SEL_CFG_REG.
func GPIO_FUNC_OUT_SEL_CFG(n uint8) uintptr { return gpioFuncOutSel0 + 4*uintptr(n) }

// MCUSel encodes an MCU_SEL field value.
func MCUSel(sel uint32) uint32 { return (sel << IO_MUX_MCU_SEL_Pos) & IO_MUX_MCU_SEL_Msk }
