package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	err := Initialize("debug")
	assert.NoError(t, err)
	assert.NotNil(t, Log)
}

func TestInitializeInvalidLevel(t *testing.T) {
	err := Initialize("loud")
	assert.Error(t, err)
}

func TestSyncDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, Sync)
}
