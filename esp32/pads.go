package esp32

// Pad describes the IO_MUX register of one GPIO pad.
type Pad struct {
	Name   string  // IO_MUX register name, e.g. "MTDI" for GPIO12
	Offset uintptr // offset from IOMUXBase; 0 for unimplemented indices
	Reset  uint32  // register value after reset
}

// Addr returns the absolute address of the pad register.
func (p Pad) Addr() uintptr { return IOMUXBase + p.Offset }

// Implemented reports whether the index has a pad on this die.
func (p Pad) Implemented() bool { return p.Offset != 0 }

// Reset values from the TRM IO_MUX pad summary: every pad resets to MCU_SEL 0 with drive
// strength 2, the IE/WPU/WPD bits vary per pad.
const (
	resetDrv   = 2 << IO_MUX_FUN_DRV_Pos
	resetOff   = resetDrv
	resetIE    = resetDrv | IO_MUX_FUN_IE
	resetIEWPU = resetIE | IO_MUX_FUN_WPU
	resetIEWPD = resetIE | IO_MUX_FUN_WPD
)

// Pads is indexed by GPIO number.
var Pads = [NumPins]Pad{
	0:  {"GPIO0", 0x44, resetIEWPU},
	1:  {"U0TXD", 0x88, resetIEWPU},
	2:  {"GPIO2", 0x40, resetIEWPD},
	3:  {"U0RXD", 0x84, resetIEWPU},
	4:  {"GPIO4", 0x48, resetIEWPD},
	5:  {"GPIO5", 0x6C, resetIEWPU},
	6:  {"SD_CLK", 0x60, resetIEWPU},
	7:  {"SD_DATA0", 0x64, resetIEWPU},
	8:  {"SD_DATA1", 0x68, resetIEWPU},
	9:  {"SD_DATA2", 0x54, resetIEWPU},
	10: {"SD_DATA3", 0x58, resetIEWPU},
	11: {"SD_CMD", 0x5C, resetIEWPU},
	12: {"MTDI", 0x34, resetIEWPD},
	13: {"MTCK", 0x38, resetIE},
	14: {"MTMS", 0x30, resetIE},
	15: {"MTDO", 0x3C, resetIEWPU},
	16: {"GPIO16", 0x4C, resetIE},
	17: {"GPIO17", 0x50, resetIE},
	18: {"GPIO18", 0x70, resetIE},
	19: {"GPIO19", 0x74, resetIE},
	20: {"GPIO20", 0x78, resetIE},
	21: {"GPIO21", 0x7C, resetIE},
	22: {"GPIO22", 0x80, resetIE},
	23: {"GPIO23", 0x8C, resetIE},
	25: {"GPIO25", 0x24, resetOff},
	26: {"GPIO26", 0x28, resetOff},
	27: {"GPIO27", 0x2C, resetIE},
	32: {"GPIO32", 0x1C, resetOff},
	33: {"GPIO33", 0x20, resetOff},
	34: {"GPIO34", 0x14, resetOff},
	35: {"GPIO35", 0x18, resetOff},
	36: {"GPIO36", 0x04, resetOff},
	37: {"GPIO37", 0x08, resetOff},
	38: {"GPIO38", 0x0C, resetOff},
	39: {"GPIO39", 0x10, resetOff},
}
