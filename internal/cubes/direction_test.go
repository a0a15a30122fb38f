package cubes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionDeltas(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, -1, 0},
		{Right, 0, 1},
		{Down, 1, 0},
		{Left, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			assert.Equal(t, tc.dx, tc.dir.DX())
			assert.Equal(t, tc.dy, tc.dir.DY())

			got, err := DirectionOf(tc.dx, tc.dy)
			require.NoError(t, err)
			assert.Equal(t, tc.dir, got)
		})
	}
}

func TestDirectionOfInvalid(t *testing.T) {
	invalid := [][2]int{{0, 0}, {1, 1}, {-1, -1}, {2, 0}, {0, -2}}
	for _, v := range invalid {
		_, err := DirectionOf(v[0], v[1])
		assert.ErrorIs(t, err, ErrInvalidValue, "DirectionOf(%d, %d)", v[0], v[1])
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions() {
		opp := d.Opposite()
		assert.NotEqual(t, d, opp)
		assert.Equal(t, d, opp.Opposite())
		assert.Equal(t, -d.DX(), opp.DX())
		assert.Equal(t, -d.DY(), opp.DY())
	}
}
