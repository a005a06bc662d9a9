package runner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSuccess(t *testing.T) {
	result, diagnostics := Run(func() (int, error) { return 42, nil }, false)
	assert.Equal(t, 42, result)
	assert.Nil(t, diagnostics)
}

func TestRunError(t *testing.T) {
	result, diagnostics := Run(func() (string, error) {
		return "partial", errors.New("loft failed between floors 2 and 3")
	}, false)
	assert.Empty(t, result, "no partial result on failure")
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "loft failed between floors 2 and 3", diagnostics[0])
}

func TestRunErrorDebugAddsStack(t *testing.T) {
	_, diagnostics := Run(func() (int, error) { return 0, errors.New("boom") }, true)
	require.Len(t, diagnostics, 2)
	assert.Equal(t, "boom", diagnostics[0])
	assert.Contains(t, diagnostics[1], "goroutine", "debug mode appends a stack trace")
}

func TestRunRecoversPanic(t *testing.T) {
	result, diagnostics := Run(func() (*int, error) {
		panic("unexpected kernel state")
	}, false)
	assert.Nil(t, result)
	require.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0], "unexpected kernel state")
}

func TestRunRecoversPanicWithDebug(t *testing.T) {
	_, diagnostics := Run(func() (int, error) { panic("boom") }, true)
	require.Len(t, diagnostics, 2)
	assert.Contains(t, diagnostics[1], "goroutine")
}
