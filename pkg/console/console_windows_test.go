//go:build windows

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Windows(t *testing.T) {
	_, ok := New().(windowsConsole)
	assert.True(t, ok)
}

func TestWindowsProcsResolve(t *testing.T) {
	require.NoError(t, procGetConsoleWindow.Find())
	require.NoError(t, procShowWindow.Find())
}
