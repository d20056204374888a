package cuffbp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func series(t *testing.T, readings ...Reading) *tSeries {
	t.Helper()
	s := newTSeries(len(readings))
	for _, r := range readings {
		require.NoError(t, s.add(r))
	}
	return s
}

func TestHeartRate(t *testing.T) {
	s := series(t,
		Reading{138, 0},
		Reading{139.5, 1},
		Reading{127, 2},
		Reading{133, 3},
		Reading{116, 4},
		Reading{118, 5},
		Reading{106, 6},
		Reading{110.5, 7},
	)

	hr := heartRate(s, bounds{systolic: 1, diastolic: 7}, hrBias)
	require.True(t, hr.Valid)
	// 4 rising slopes over 6 seconds.
	require.InDelta(t, 60/(4.0/6+0.5), hr.Value, 1e-9)

	hr = heartRate(s, bounds{systolic: 1, diastolic: 7}, 0)
	require.InDelta(t, 90, hr.Value, 1e-9)
}

func TestHeartRateZeroTime(t *testing.T) {
	s := series(t,
		Reading{130, 2},
		Reading{131, 3},
		Reading{120, 3},
		Reading{125, 3},
	)

	hr := heartRate(s, bounds{systolic: 1, diastolic: 3}, hrBias)
	require.False(t, hr.Valid)
	require.False(t, math.IsNaN(hr.Value))
	require.Zero(t, hr.Value)
}

func TestHeartRateNoRise(t *testing.T) {
	s := series(t,
		Reading{130, 0},
		Reading{125, 1},
		Reading{120, 2},
		Reading{115, 3},
	)

	require.False(t, heartRate(s, bounds{systolic: 1, diastolic: 3}, hrBias).Valid)
}

func TestHeartRateIndeterminateBounds(t *testing.T) {
	s := series(t, Reading{130, 0}, Reading{131, 1}, Reading{125, 2})

	tests := []bounds{
		{systolic: -1, diastolic: 2},
		{systolic: 1, diastolic: -1},
		{systolic: 0, diastolic: 2},
		{systolic: 1, diastolic: 9},
	}
	for _, b := range tests {
		require.False(t, heartRate(s, b, hrBias).Valid, "%+v", b)
	}
}
