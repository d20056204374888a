package log

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNilLogger(t *testing.T) {
	l := Wrap(nil)
	require.NotPanics(t, func() {
		l.Info("nothing")
		l.Err(errors.New("nothing"))
	})
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := Wrap(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	})))

	l.Debug("hidden")
	l.Info("shown", slog.Int("n", 3))
	l.Warn("careful")
	l.Err(errors.New("broken"))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown n=3")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "msg=careful")
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "msg=broken")
	require.Contains(t, out, "logger_test.go")
}
