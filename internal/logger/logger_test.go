package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("loud", "production")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	l, err := New("debug", "development")
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapLogger(zap.New(core).Sugar())

	l.With("request_id", "abc").Infof("saved %d entries", 2)
	l.Debug("dropped")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "saved 2 entries", entries[0].Message)
	require.Equal(t, "abc", entries[0].ContextMap()["request_id"])
}
