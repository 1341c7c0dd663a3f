package gpio

// Pin identities. Each implemented GPIO has its own type so that a handle's
// type names the physical pin it controls.
type (
	Gpio0  struct{}
	Gpio1  struct{}
	Gpio2  struct{}
	Gpio3  struct{}
	Gpio4  struct{}
	Gpio5  struct{}
	Gpio6  struct{}
	Gpio7  struct{}
	Gpio8  struct{}
	Gpio9  struct{}
	Gpio10 struct{}
	Gpio11 struct{}
	Gpio12 struct{}
	Gpio13 struct{}
	Gpio14 struct{}
	Gpio15 struct{}
	Gpio16 struct{}
	Gpio17 struct{}
	Gpio18 struct{}
	Gpio19 struct{}
	Gpio20 struct{}
	Gpio21 struct{}
	Gpio22 struct{}
	Gpio23 struct{}
	Gpio25 struct{}
	Gpio26 struct{}
	Gpio27 struct{}
	Gpio32 struct{}
	Gpio33 struct{}
	Gpio34 struct{}
	Gpio35 struct{}
	Gpio36 struct{}
	Gpio37 struct{}
	Gpio38 struct{}
	Gpio39 struct{}
)

// IOPin is satisfied by pins with an output driver and pull resistors.
type IOPin interface {
	Gpio0 | Gpio1 | Gpio2 | Gpio3 | Gpio4 | Gpio5 | Gpio6 | Gpio7 |
		Gpio8 | Gpio9 | Gpio10 | Gpio11 | Gpio12 | Gpio13 | Gpio14 | Gpio15 |
		Gpio16 | Gpio17 | Gpio18 | Gpio19 | Gpio20 | Gpio21 | Gpio22 | Gpio23 |
		Gpio25 | Gpio26 | Gpio27 | Gpio32 | Gpio33
}

// InputOnlyPin is satisfied by GPIO34..GPIO39.
type InputOnlyPin interface {
	Gpio34 | Gpio35 | Gpio36 | Gpio37 | Gpio38 | Gpio39
}
