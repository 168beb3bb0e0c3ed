package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235000001))
	assert.Equal(t, 100.0, Round2(100))
	assert.Equal(t, -2.5, Round2(-2.499))
	assert.Equal(t, 0.0, Round2(0.004))

	// exact halves go to the even neighbour
	assert.Equal(t, 0.12, Round2(0.125))
	assert.Equal(t, 0.38, Round2(0.375))
	assert.Equal(t, -0.12, Round2(-0.125))
}

func TestConversions(t *testing.T) {
	assert.Equal(t, 12.345, MetersToKm(12345))
	assert.Equal(t, 1.5, KgToTonnes(1500))
}
