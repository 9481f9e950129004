package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"enter", "\n"},
		{"line of text", "ok\nleftover\n"},
		{"closed input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			err := WaitForKey(strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			assert.Contains(t, out.String(), "Press any key to close...")
		})
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestWaitForKey_ReadError(t *testing.T) {
	err := WaitForKey(brokenReader{}, &bytes.Buffer{})
	assert.EqualError(t, err, "read failed")
}

func TestNoop(t *testing.T) {
	var v Visibility = Noop{}
	assert.NoError(t, v.Show())
}
