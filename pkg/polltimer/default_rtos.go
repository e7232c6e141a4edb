//go:build rtos

package polltimer

// BuildTarget names the clock target compiled into this binary.
const BuildTarget = SourceHardware

// defaultClock reads the timer registered with SetHardwareTimer, or a
// SoftwareTimer when board code registered none.
func defaultClock() Clock {
	return NewHardwareClock(registeredHardwareTimer())
}
