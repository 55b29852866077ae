package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hclust/dtw"
)

// TestValidation covers every rejected input.
func TestValidation(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, err := dtw.Distance(nil, []float64{1}, opts)
	assert.ErrorIs(t, err, dtw.ErrEmptySequence)
	_, _, err = dtw.Path([]float64{1}, []float64{}, opts)
	assert.ErrorIs(t, err, dtw.ErrEmptySequence)

	opts.Window = -2
	_, err = dtw.Distance([]float64{1}, []float64{1}, opts)
	assert.ErrorIs(t, err, dtw.ErrBadWindow)

	opts = dtw.DefaultOptions()
	opts.SlopePenalty = -1
	_, err = dtw.Distance([]float64{1}, []float64{1}, opts)
	assert.ErrorIs(t, err, dtw.ErrBadPenalty)
	opts.SlopePenalty = math.NaN()
	_, _, err = dtw.Path([]float64{1}, []float64{1}, opts)
	assert.ErrorIs(t, err, dtw.ErrBadPenalty)
}

// TestHandTraced checks values computed by hand from the recurrence.
func TestHandTraced(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []float64
		penalty float64
		want    float64
	}{
		{"identical", []float64{0, 1, 2}, []float64{0, 1, 2}, 0, 0},
		{"stretched", []float64{1, 2, 3}, []float64{1, 2, 2, 3}, 0, 0},
		{"two to one", []float64{0, 0}, []float64{1}, 0, 2},
		{"two to one penalized", []float64{0, 0}, []float64{1}, 0.5, 2.5},
		{"reversed", []float64{0, 1, 2}, []float64{2, 1, 0}, 0, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := dtw.DefaultOptions()
			opts.SlopePenalty = tc.penalty

			got, err := dtw.Distance(tc.a, tc.b, opts)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)

			swapped, err := dtw.Distance(tc.b, tc.a, opts)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, swapped, 1e-12, "DTW is symmetric")

			viaPath, _, err := dtw.Path(tc.a, tc.b, opts)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, viaPath, 1e-12)
		})
	}
}

// TestPath checks endpoints, monotonicity and cost of the warping path.
func TestPath(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}

	dist, path, err := dtw.Path(a, b, dtw.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	require.Len(t, path, 4)
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, path[0])
	assert.Equal(t, dtw.Coord{I: 2, J: 3}, path[len(path)-1])

	for k := 1; k < len(path); k++ {
		di, dj := path[k].I-path[k-1].I, path[k].J-path[k-1].J
		assert.True(t, (di == 1 || di == 0) && (dj == 1 || dj == 0) && di+dj > 0,
			"step %d: (%d, %d)", k, di, dj)
	}

	sum := 0.0
	for _, c := range path {
		sum += math.Abs(a[c.I] - b[c.J])
	}
	assert.Equal(t, dist, sum)
}

// TestWindow verifies the Sakoe-Chiba band.
func TestWindow(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3, 4}
	opts := dtw.DefaultOptions()

	opts.Window = 0
	d, err := dtw.Distance(a, b, opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1), "band narrower than the length gap")

	d, path, err := dtw.Path(a, b, opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
	assert.Nil(t, path)

	opts.Window = 1
	d, err = dtw.Distance(a, b, opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}
