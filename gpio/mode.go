package gpio

// Mode names a pin configuration at runtime. Handle types carry the same
// information statically.
type Mode uint8

const (
	ModeFloatingInput Mode = iota
	ModePullUpInput
	ModePullDownInput
	ModePushPullOutput
	ModeOpenDrainOutput
	ModeAlternate1
	ModeAlternate2
	ModeAlternate4
	ModeAlternate5
	ModeAlternate6
	ModeAnalog
)

var modeNames = [...]string{
	ModeFloatingInput:   "FloatingInput",
	ModePullUpInput:     "PullUpInput",
	ModePullDownInput:   "PullDownInput",
	ModePushPullOutput:  "PushPullOutput",
	ModeOpenDrainOutput: "OpenDrainOutput",
	ModeAlternate1:      "Alternate1",
	ModeAlternate2:      "Alternate2",
	ModeAlternate4:      "Alternate4",
	ModeAlternate5:      "Alternate5",
	ModeAlternate6:      "Alternate6",
	ModeAnalog:          "Analog",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Mode(?)"
}

// IsInput reports whether m is a digital input mode.
func (m Mode) IsInput() bool { return m <= ModePullDownInput }

// IsOutput reports whether m is a GPIO-driven output mode.
func (m Mode) IsOutput() bool { return m == ModePushPullOutput || m == ModeOpenDrainOutput }

// IsAlternate reports whether the pad is routed to a peripheral function.
func (m Mode) IsAlternate() bool { return m >= ModeAlternate1 && m <= ModeAlternate6 }

// Input bias markers.
type (
	Floating struct{}
	PullUp   struct{}
	PullDown struct{}
)

func (Floating) mode() Mode { return ModeFloatingInput }
func (PullUp) mode() Mode   { return ModePullUpInput }
func (PullDown) mode() Mode { return ModePullDownInput }

// Bias is the type parameter constraint of Input handles.
type Bias interface {
	Floating | PullUp | PullDown
	mode() Mode
}

// Output drive markers.
type (
	PushPull  struct{}
	OpenDrain struct{}
)

func (PushPull) mode() Mode  { return ModePushPullOutput }
func (OpenDrain) mode() Mode { return ModeOpenDrainOutput }

// Drive is the type parameter constraint of Output handles.
type Drive interface {
	PushPull | OpenDrain
	mode() Mode
}

// Alternate function markers. Pad function 3 is the GPIO matrix itself and
// has no marker.
type (
	AF1 struct{}
	AF2 struct{}
	AF4 struct{}
	AF5 struct{}
	AF6 struct{}
)

func (AF1) mode() Mode { return ModeAlternate1 }
func (AF2) mode() Mode { return ModeAlternate2 }
func (AF4) mode() Mode { return ModeAlternate4 }
func (AF5) mode() Mode { return ModeAlternate5 }
func (AF6) mode() Mode { return ModeAlternate6 }

// Function is the type parameter constraint of Alternate handles.
type Function interface {
	AF1 | AF2 | AF4 | AF5 | AF6
	mode() Mode
}
