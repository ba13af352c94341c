package passgen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Shape(t *testing.T) {
	require.Len(t, Pool, 94)
	require.Equal(t, byte('!'), Pool[0])
	require.Equal(t, byte('~'), Pool[93])

	seen := make(map[rune]bool, len(Pool))
	for _, c := range Pool {
		require.False(t, seen[c], "duplicate %q", c)
		seen[c] = true
	}
	for _, want := range "AZaz09#@~!" {
		require.True(t, seen[want], "missing %q", want)
	}
	require.NotContains(t, Pool, " ")
}

func TestGenerate_Zero(t *testing.T) {
	s, err := Generate(0)
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestGenerate_LengthLawAndMembership(t *testing.T) {
	for _, n := range []uint{1, 2, 12, 94, 500} {
		s, err := Generate(n)
		require.NoError(t, err)
		require.Len(t, s, int(n))
		for _, c := range s {
			require.Contains(t, Pool, string(c))
		}
	}
}

func TestGenerate_Twelve_ThousandTimes(t *testing.T) {
	for i := 0; i < 1000; i++ {
		s, err := Generate(12)
		require.NoError(t, err)
		require.Len(t, s, 12)
		require.Empty(t, strings.Trim(s, Pool), "result %q has characters outside the pool", s)
	}
}

func TestGenerate_Coverage(t *testing.T) {
	const draws = 94 * 2000
	s, err := Generate(draws)
	require.NoError(t, err)

	counts := make(map[byte]int, len(Pool))
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	require.Len(t, counts, len(Pool), "every pool character must appear")

	// Expected 2000 per character; ±25% is far outside normal variation.
	for c, n := range counts {
		assert.InDelta(t, 2000, n, 500, "character %q drawn %d times", c, n)
	}
}

func TestGenerator_DiscardsBiasedBytes(t *testing.T) {
	// 188 is the first rejected byte value; 0 and 93 map to '!' and '~'.
	src := bytes.Repeat([]byte{188, 255, 0, 93, 94}, 64)
	g := New(bytes.NewReader(src))

	s, err := g.Generate(3)
	require.NoError(t, err)
	require.Equal(t, "!~!", s)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerator_SourceError(t *testing.T) {
	_, err := New(errReader{}).Generate(4)
	require.ErrorContains(t, err, "entropy exhausted")
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    uint
		wantErr bool
	}{
		{"12", 12, false},
		{"0", 0, false},
		{" 16 ", 16, false},
		{"4096", 4096, false},
		{"4097", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"0x10", 0, true},
		{"99999999999999999999999", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLength(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidLength)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
