// Package debug is the HAL's diagnostic output and pin event trace.
package debug

import "strconv"

// Writer is a function type for writing debug messages
type Writer func(string)

// Event captures a pin configuration change for post-mortem analysis
type Event struct {
	Type  uint8  // Event type code
	Pin   uint8  // GPIO index
	From  uint32 // Context-dependent value, the previous mode for transitions
	To    uint32 // Context-dependent value, the new mode for transitions
	Stamp uint32 // Sequence number assigned by Record
}

// Event type codes
const (
	EvtSplit      = 1 // peripheral split into pin handles
	EvtTransition = 2 // pin changed mode
	EvtBusError   = 3 // software bus reported an error
)

const (
	RingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// writer is the global debug print function (can be set by platform code)
	writer Writer = func(s string) {}

	// enabled controls whether Println output is active.
	// Disabled by default so transitions cost nothing but the ring write.
	enabled bool

	ring     [RingSize]Event
	ringHead uint8
	stamp    uint32

	// Names formats From/To values in Dump. Packages that record events set it.
	Names func(evt Event) (from, to string)
)

// SetWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetWriter(w Writer) {
	writer = w
}

// SetEnabled enables or disables debug output
func SetEnabled(on bool) {
	enabled = on
}

// Enabled returns whether debug output is enabled
func Enabled() bool {
	return enabled
}

// Println writes a debug message using the platform-specific writer
func Println(msg string) {
	if enabled && writer != nil {
		writer(msg)
	}
}

// Record captures an event in the ring buffer. It never blocks or allocates.
// Callers serialize Record with their own critical section.
func Record(evtType, pin uint8, from, to uint32) {
	stamp++
	idx := ringHead
	ring[idx] = Event{
		Type:  evtType,
		Pin:   pin,
		From:  from,
		To:    to,
		Stamp: stamp,
	}
	ringHead = (idx + 1) % RingSize
}

// Events returns the recorded events, oldest first.
func Events() []Event {
	out := make([]Event, 0, RingSize)
	start := ringHead
	for i := uint8(0); i < RingSize; i++ {
		evt := ring[(start+i)%RingSize]
		if evt.Type == 0 {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// Dump outputs the event ring through the writer, regardless of SetEnabled.
func Dump() {
	if writer == nil {
		return
	}

	writer("[GPIO] === Event Ring Dump ===")
	for _, evt := range Events() {
		var name string
		switch evt.Type {
		case EvtSplit:
			name = "SPLIT"
		case EvtTransition:
			name = "TRANSITION"
		case EvtBusError:
			name = "BUS_ERROR"
		default:
			name = "UNKNOWN"
		}

		from := strconv.FormatUint(uint64(evt.From), 10)
		to := strconv.FormatUint(uint64(evt.To), 10)
		if Names != nil {
			from, to = Names(evt)
		}
		writer("[GPIO] #" + strconv.FormatUint(uint64(evt.Stamp), 10) +
			" " + name +
			" pin=" + strconv.Itoa(int(evt.Pin)) +
			" from=" + from +
			" to=" + to)
	}
	writer("[GPIO] === End Dump ===")
}

// Clear clears the event ring
func Clear() {
	for i := range ring {
		ring[i] = Event{}
	}
	ringHead = 0
	stamp = 0
}
