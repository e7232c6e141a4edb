//go:build tinygo && !rtos

package polltimer

// BuildTarget names the clock target compiled into this binary.
const BuildTarget = SourceTick

// defaultClock reads the counter registered with SetTickFunc, or the Go
// clock when board code registered none.
func defaultClock() Clock {
	return NewTickClock(registeredTicks())
}
