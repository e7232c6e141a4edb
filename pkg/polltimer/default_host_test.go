//go:build !tinygo && !rtos

package polltimer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultClockIsHost(t *testing.T) {
	assert.Equal(t, SourceHost, BuildTarget)

	timer := New(nil)
	assert.Equal(t, time.Nanosecond, timer.Clock().Resolution())

	clock, err := ClockFor(SourceDefault)
	assert.NoError(t, err)
	assert.Equal(t, HostClock(), clock)
}
