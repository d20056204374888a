package cuffbp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhase(t *testing.T) {
	tests := []struct {
		pressure float64
		step     step
		state    State
	}{
		{20, stepInflating, Idle},
		{149, stepInflating, Idle},
		{150, stepInflating, Idle},
		{151, stepInflating, Inflating},
		{149, stepCapture, Deflating},
		{120, stepCapture, Deflating},
		{30.5, stepCapture, Deflating},
		{30, stepComplete, Complete},
		{200, stepDone, Complete},
		{10, stepDone, Complete},
	}

	p := newPhase(startPressure, endPressure)
	for i, test := range tests {
		require.Equal(t, test.step, p.advance(test.pressure), "sample %d", i)
		require.Equal(t, test.state, p.state, "sample %d", i)
	}
}

func TestPhaseHysteresis(t *testing.T) {
	p := newPhase(startPressure, endPressure)

	require.Equal(t, stepInflating, p.advance(180))
	require.True(t, p.pendingDeflation)
	require.Equal(t, Inflating, p.state)

	// Still above the start pressure, but the cuff is now deflating.
	require.Equal(t, stepCapture, p.advance(175))
	require.False(t, p.pendingDeflation)
	require.Equal(t, Deflating, p.state)
}

func TestPhaseCompleteRightAfterCrossing(t *testing.T) {
	p := newPhase(startPressure, endPressure)

	require.Equal(t, stepInflating, p.advance(155))
	require.Equal(t, stepComplete, p.advance(12))
	require.Equal(t, Complete, p.state)
}

func TestPhaseCompletesOnce(t *testing.T) {
	traces := [][]float64{
		{0, 50, 100, 151, 140, 100, 60, 30, 20, 160, 10},
		{200, 190, 25, 180, 25},
		{151, 151, 151, 29, 151, 29},
	}

	for _, trace := range traces {
		p := newPhase(startPressure, endPressure)
		completed := 0
		for _, v := range trace {
			if p.advance(v) == stepComplete {
				completed++
			}
			if completed > 0 {
				require.Equal(t, Complete, p.state)
			}
		}
		require.Equal(t, 1, completed, "trace %v", trace)
	}
}

func TestPhaseNeverStarts(t *testing.T) {
	p := newPhase(startPressure, endPressure)
	for _, v := range []float64{0, 100, 150, 20, 10} {
		require.Equal(t, stepInflating, p.advance(v))
	}
	require.Equal(t, Idle, p.state)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "idle", Idle.String())
	require.Equal(t, "inflating", Inflating.String())
	require.Equal(t, "deflating", Deflating.String())
	require.Equal(t, "complete", Complete.String())
	require.Equal(t, "unknown", State(42).String())
}
