//go:build !tinygo && !rtos

package polltimer

// BuildTarget names the clock target compiled into this binary.
const BuildTarget = SourceHost

func defaultClock() Clock {
	return HostClock()
}
