package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		err := Initialize(level)
		assert.NoError(t, err)
		assert.NotNil(t, Log)
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize("not-a-level")
	assert.Error(t, err)
}

func TestNew_ReturnsGlobal(t *testing.T) {
	log, err := New("info")
	assert.NoError(t, err)
	assert.Equal(t, Log, log)
}
