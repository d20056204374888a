package stream

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cgxeiji/cuffbp"
)

type msg struct {
	subject string
	data    []byte
}

type fakePub struct {
	msgs []msg
	err  error
}

func (f *fakePub) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msg{subject, data})
	return nil
}

func newTestPublisher() (*Publisher, *fakePub) {
	f := &fakePub{}
	p := newPublisher(f)
	p.nowFunc = func() time.Time { return time.UnixMilli(1000) }
	return p, f
}

func TestPublishPace(t *testing.T) {
	p, f := newTestPublisher()

	require.NoError(t, p.Publish(cuffbp.Event{
		Kind:     cuffbp.Capturing,
		Pressure: 120,
		Pace:     cuffbp.PaceTooFast,
	}))
	require.Len(t, f.msgs, 1)
	require.Equal(t, PaceSubject, f.msgs[0].subject)

	var got PaceMsg
	require.NoError(t, json.Unmarshal(f.msgs[0].data, &got))
	require.Equal(t, PaceMsg{
		Ts:       1000,
		Pressure: 120,
		Pace:     "too fast",
		Advice:   "Slow down! Releasing too fast",
	}, got)
}

func TestPublishResult(t *testing.T) {
	p, f := newTestPublisher()

	r := &cuffbp.Result{
		Systolic:  cuffbp.Estimate{Value: 142, Valid: true},
		Diastolic: cuffbp.Estimate{Value: 95, Valid: true},
		Category:  cuffbp.Hypertension2,
		Samples:   40,
	}
	require.NoError(t, p.Publish(cuffbp.Event{Kind: cuffbp.SessionComplete, Result: r}))
	require.Len(t, f.msgs, 1)
	require.Equal(t, ResultSubject, f.msgs[0].subject)

	var got map[string]any
	require.NoError(t, json.Unmarshal(f.msgs[0].data, &got))
	require.Equal(t, "Consult a physician", got["advice"])

	res := got["result"].(map[string]any)
	require.Equal(t, 142.0, res["systolic"])
	require.Equal(t, 95.0, res["diastolic"])
	require.Nil(t, res["heart_rate"])
	require.Equal(t, "Hypertension Stage 2", res["category"])
	require.Equal(t, false, res["degraded"])
}

func TestPublishSkipsInflation(t *testing.T) {
	p, f := newTestPublisher()

	require.NoError(t, p.Publish(cuffbp.Event{Kind: cuffbp.StillInflating, Pressure: 80}))
	require.NoError(t, p.Publish(cuffbp.Event{Kind: cuffbp.Capturing, Pressure: 149}))
	require.Empty(t, f.msgs)
}

func TestPublishError(t *testing.T) {
	p, f := newTestPublisher()
	f.err = errors.New("disconnected")

	err := p.Publish(cuffbp.Event{Kind: cuffbp.Capturing, Pace: cuffbp.PaceNominal})
	require.ErrorIs(t, err, f.err)
}
