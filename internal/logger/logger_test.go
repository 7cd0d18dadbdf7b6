package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l, err := New(false)
	require.NoError(t, err)
	require.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Desugar().Core().Enabled(zapcore.WarnLevel))

	l, err = New(true)
	require.NoError(t, err)
	require.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
}
