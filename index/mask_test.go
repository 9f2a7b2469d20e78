package index

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskOf(t *testing.T) {
	tests := []struct {
		word    string
		letters string
		wantErr bool
	}{
		{"apple", "aelp", false},
		{"zoola", "aloz", false},
		{"", "", false},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrstuvwxyz", false},
		{"Apple", "", true},
		{"ap-le", "", true},
		{"café", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			m, err := MaskOf(tt.word)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.letters, m.Letters())
			assert.Equal(t, len(tt.letters), m.Count())
		})
	}
}

func TestMaskOf_ErrorDetails(t *testing.T) {
	_, err := MaskOf("cafés")

	var iie *InvalidInputError
	require.True(t, errors.As(err, &iie))
	assert.Equal(t, 3, iie.Offset)
	assert.Equal(t, 'é', iie.Char)
	assert.Equal(t, -1, iie.WordID)
	assert.Contains(t, iie.Error(), "unsupported character")
}

func TestMask_Has(t *testing.T) {
	m, err := MaskOf("bytea")
	require.NoError(t, err)

	for _, r := range "abety" {
		assert.True(t, m.Has(r), "letter %c", r)
	}
	for _, r := range "cdlpz" {
		assert.False(t, m.Has(r), "letter %c", r)
	}
	assert.False(t, m.Has('A'))
	assert.False(t, m.Has('!'))
}

func TestMask_String(t *testing.T) {
	m, err := MaskOf("az")
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000000000001", m.String())
	assert.Len(t, Mask(0).String(), AlphabetSize)
}

func TestLetterOffset(t *testing.T) {
	off, ok := LetterOffset('a')
	assert.True(t, ok)
	assert.Equal(t, 0, off)

	off, ok = LetterOffset('z')
	assert.True(t, ok)
	assert.Equal(t, 25, off)

	_, ok = LetterOffset('{')
	assert.False(t, ok)
	_, ok = LetterOffset('`')
	assert.False(t, ok)
}
