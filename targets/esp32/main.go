//go:build tinygo && esp32

// Firmware exercising the GPIO HAL on an ESP32 DevKit:
//   - GPIO2: on-board LED
//   - GPIO0: BOOT button, dumps the pin event ring when pressed
//   - GPIO18/23/5: 74HC595 shift register (SCK, SER, RCLK) over software SPI
//   - GPIO22/21: ADXL345 accelerometer (SCL, SDA) over software I2C,
//     4.7k pull-ups to 3.3V
package main

import (
	"strconv"
	"time"

	"tinygo.org/x/drivers/adxl345"

	"esp32hal/debug"
	"esp32hal/gpio"
	"esp32hal/softi2c"
	"esp32hal/softspi"
)

func main() {
	InitDebug()

	parts := gpio.GPIO.Split()

	led := parts.Gpio2.IntoPushPullOutput()
	button := parts.Gpio0.IntoPullUpInput()

	latch := parts.Gpio5.IntoPushPullOutput()
	spi, err := softspi.New(
		parts.Gpio18.IntoPushPullOutput(),
		parts.Gpio23.IntoPushPullOutput(),
		nil,
		softspi.Config{Mode: softspi.Mode0, Frequency: 1_000_000},
	)
	if err != nil {
		debug.Println("spi: " + err.Error())
		return
	}

	i2c := softi2c.New(
		gpio.NewLine(parts.Gpio22.IntoOpenDrainOutput()),
		gpio.NewLine(parts.Gpio21.IntoOpenDrainOutput()),
		softi2c.Config{Frequency: 400_000, ClockStretch: time.Millisecond},
	)
	accel := adxl345.New(i2c)
	accel.Configure()
	accel.SetRange(adxl345.RANGE_16G)

	pattern := byte(0x01)
	for {
		led.Toggle()

		latch.SetLow()
		spi.Tx([]byte{pattern}, nil)
		latch.SetHigh()
		pattern = pattern<<1 | pattern>>7

		x, y, z := accel.ReadRawAcceleration()
		debug.Println("accel x=" + strconv.Itoa(int(x)) +
			" y=" + strconv.Itoa(int(y)) +
			" z=" + strconv.Itoa(int(z)))

		if button.IsLow() {
			debug.Dump()
		}
		time.Sleep(250 * time.Millisecond)
	}
}
