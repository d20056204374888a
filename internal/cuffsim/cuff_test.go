package cuffsim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cgxeiji/cuffbp"
)

func TestCuffTrace(t *testing.T) {
	c := New()

	peak := 0.0
	for i := 0; i < 1000; i++ {
		p := c.Next()
		if p > peak {
			peak = p
		}
		if c.released && p < 30 {
			break
		}
	}

	require.True(t, c.released)
	require.Greater(t, peak, c.Peak)
	require.Less(t, c.base, 31.0)
}

func TestCuffIsDeterministic(t *testing.T) {
	a, b := New(), New()
	for i := 0; i < 500; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestCuffCount(t *testing.T) {
	c := New()
	c.InvalidEvery = 3

	for i := 1; i <= 9; i++ {
		count, valid, err := c.Count()
		require.NoError(t, err)
		require.Equal(t, i%3 != 0, valid)
		require.InDelta(t, c.base, cuffbp.Pressure(float64(count)), 1e-3)
	}
}

func TestCuffClock(t *testing.T) {
	c := New()
	t0 := c.Now()
	c.Next()
	c.Next()
	require.Equal(t, 2*c.Interval, c.Now().Sub(t0))
	require.Equal(t, 200*time.Millisecond, c.Now().Sub(t0))
}
