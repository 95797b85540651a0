package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, 0.0, Map(0, 0))
	assert.Equal(t, 1.0, Map(math.MaxUint16, math.MaxUint16))
	assert.Equal(t, 1/float64(math.MaxUint32), Map(1, 0))
	assert.Equal(t, 2/float64(math.MaxUint32), Map(0, 1))
	assert.Equal(t, 0b1110/float64(math.MaxUint32), Map(0b10, 0b11))
}

func TestReversible(t *testing.T) {
	for x := 0; x <= math.MaxUint16; x += 132 {
		for y := 0; y <= math.MaxUint16; y += 45 {
			n := Map(uint16(x), uint16(y))
			if n < 0 || n > 1 {
				t.Fatalf("Map(%d, %d) = %f is out of bounds", x, y, n)
			}
			rx, ry := ReverseMap(n)
			if int(rx) != x || int(ry) != y {
				t.Fatalf("ReverseMap(Map(%d, %d)) = (%d, %d)", x, y, rx, ry)
			}
		}
	}
}
