package cuffbp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTSeriesCapacity(t *testing.T) {
	s := newTSeries(5)

	for i := 0; i < 20; i++ {
		err := s.add(Reading{Pressure: 130 - float64(i), Time: float64(i)})
		if i < 5 {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, ErrCapacityExceeded)
		}
		require.LessOrEqual(t, s.len(), 5)
		require.Len(t, s.slopes, max(s.len()-1, 0))
	}
	require.True(t, s.full())
}

func TestTSeriesLinearRamp(t *testing.T) {
	const (
		p0 = 139.0
		k  = 3.7
		dt = 0.079
	)

	s := newTSeries(100)
	for i := 0; i < 100; i++ {
		tm := float64(i) * dt
		require.NoError(t, s.add(Reading{Pressure: p0 - k*tm, Time: tm}))
	}

	require.Len(t, s.slopes, 99)
	for i, sl := range s.slopes {
		require.True(t, sl.ok, "slope %d", i)
		require.InDelta(t, -k, sl.value, 1e-9, "slope %d", i)
	}

	m, err := extremum(s.slopes)
	require.NoError(t, err)
	require.InDelta(t, -k, m.value, 1e-9)
}

func TestTSeriesZeroTimeDelta(t *testing.T) {
	s := newTSeries(10)
	require.NoError(t, s.add(Reading{Pressure: 130, Time: 1}))
	require.NoError(t, s.add(Reading{Pressure: 128, Time: 1}))
	require.False(t, s.lastDefined())
	require.NoError(t, s.add(Reading{Pressure: 129, Time: 2}))
	require.True(t, s.lastDefined())

	require.Equal(t, []slope{{}, {value: 1, ok: true}}, s.slopes)
}

func TestTSeriesDefaultSize(t *testing.T) {
	s := newTSeries(0)
	require.Equal(t, defaultCapacity, cap(s.readings))
	require.True(t, s.lastDefined())
}
