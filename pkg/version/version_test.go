package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type target string

func (t target) String() string { return string(t) }

func TestString(t *testing.T) {
	assert.Equal(t, "dev", GetVersion())
	assert.Equal(t, "dev (build: dev, clock: tick)", String(target("tick")))
}
