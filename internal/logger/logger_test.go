package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidLevels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		t.Run(lvl, func(t *testing.T) {
			log, err := New(lvl, false)
			require.NoError(t, err)
			assert.NotPanics(t, func() {
				log.Infow("test log", "level", lvl)
			})
		})
	}
}

func TestNew_Development(t *testing.T) {
	log, err := New("debug", true)
	require.NoError(t, err)
	assert.True(t, log.Desugar().Core().Enabled(-1))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("not-a-level", false)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Errorw("discarded", "k", "v")
	})
}
