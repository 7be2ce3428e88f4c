package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		debug   bool
		warn    bool
	}{
		{"Quiet", false, false, true},
		{"Verbose", true, true, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			logger, err := New(tt.verbose)
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.Equal(t, tt.debug, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.warn, logger.Core().Enabled(zapcore.WarnLevel))
			assert.False(t, logger.Core().Enabled(zapcore.InfoLevel) && !tt.verbose)
		})
	}
}

func TestLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zapcore.DebugLevel, Level(true))
	assert.Equal(t, zapcore.WarnLevel, Level(false))
}
