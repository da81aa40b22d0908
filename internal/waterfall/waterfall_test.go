// Public domain.

package waterfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetAzEl(t *testing.T) {
	az, el, err := ParseTargetAzEl("Az: 123.4 degrees; El: 45.6 degrees")
	require.NoError(t, err)
	assert.InDelta(t, 123.4, az.Deg(), 1e-9)
	assert.InDelta(t, 45.6, el.Deg(), 1e-9)

	// genweave rounds to a tenth of a degree
	az, el, err = ParseTargetAzEl("Az: 0.6 degrees; El: 83.3 degrees")
	require.NoError(t, err)
	assert.InDelta(t, 0.6, az.Deg(), 1e-9)
	assert.InDelta(t, 83.3, el.Deg(), 1e-9)

	for _, bad := range []string{"", "CygA", "Az: x degrees; El: 45.6 degrees"} {
		if _, _, err := ParseTargetAzEl(bad); err == nil {
			t.Errorf("ParseTargetAzEl(%q): expected error", bad)
		}
	}
}

func TestTuningCenterFreq(t *testing.T) {
	tn := Tuning{Freq: []float64{73e6, 74e6, 75e6}}
	assert.Equal(t, 74e6, tn.CenterFreq())
}

func TestReduce(t *testing.T) {
	o := Observation{Time: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}}
	rt := rawTuning{freq: make([]float64, 8), rows: 10, cols: 8}
	rt.i = make([]float64, 80)
	for r := 0; r < 10; r++ {
		for c := 0; c < 8; c++ {
			rt.i[r*8+c] = float64(r + 1)
		}
	}
	// row 0 has no timestamp, row 3 was never recorded
	for c := 0; c < 8; c++ {
		rt.i[3*8+c] = 0
	}

	o.reduce([]rawTuning{rt})

	// rows 0 and 3 dropped, plus the trailing partial integration
	require.Equal(t, []float64{1, 2, 4, 5, 6, 7, 8}, o.Time)
	require.Len(t, o.Tunings, 1)
	for k, ti := range o.Time {
		// inner 75% of 8 channels is 6, each carrying row+1
		assert.InDelta(t, 6*(ti+1), o.Tunings[0].I[k], 1e-12)
	}
}
