package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes long", "yes\n", true},
		{"yes upper", "Y\n", true},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"anything else", "maybe\n", false},
		{"several words", "yes please\n", false},
		{"padded yes", "  yes  \n", true},
		{"no trailing newline", "y", true},
		{"only first line counts", "n\ny\n", false},
		{"closed input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewLineConfirmer(strings.NewReader(tt.input), &out)

			got, err := c.Confirm("Continue?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasPrefix(out.String(), "Continue? [y/N]: "))
		})
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestLineConfirmerReadError(t *testing.T) {
	c := NewLineConfirmer(failingReader{err: errors.New("disk on fire")}, io.Discard)
	got, err := c.Confirm("Continue?")
	assert.False(t, got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestStaticConfirmer(t *testing.T) {
	yes, err := StaticConfirmer(true).Confirm("anything")
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := StaticConfirmer(false).Confirm("anything")
	require.NoError(t, err)
	assert.False(t, no)
}

func TestNormalizeAbort(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"huh abort", huh.ErrUserAborted, ErrUserAborted},
		{"eof", io.EOF, ErrUserAborted},
		{"canceled", context.Canceled, ErrUserAborted},
		{"other", assert.AnError, assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAbort(tt.err))
		})
	}
}

func TestDeclineOnAbort(t *testing.T) {
	ok, err := declineOnAbort(ErrUserAborted)
	assert.False(t, ok)
	assert.NoError(t, err)

	ok, err = declineOnAbort(assert.AnError)
	assert.False(t, ok)
	assert.Equal(t, assert.AnError, err)
}
