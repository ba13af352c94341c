// Package passgen generates random passwords from the printable, non-space
// ASCII characters '!' (0x21) through '~' (0x7E).
package passgen

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/common"
)

// MaxLength is the longest password ParseLength accepts.
const MaxLength = 4096

// Pool holds the 94 candidate characters in ascending byte order.
var Pool = buildPool()

func buildPool() string {
	var b strings.Builder
	for c := byte(0x21); c <= 0x7e; c++ {
		b.WriteByte(c)
	}
	return b.String()
}

// limit is the largest multiple of len(Pool) that fits in a byte; bytes at or
// above it are discarded so every pool index is equally likely.
var limit = 256 - 256%len(Pool)

// Generator draws pool characters from an entropy source.
type Generator struct {
	src io.Reader
}

// New returns a Generator reading from src. A nil src means crypto/rand.
func New(src io.Reader) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{src: bufio.NewReader(src)}
}

var defaultGenerator = New(nil)

// Generate returns n characters, each chosen independently and uniformly from
// Pool. Generate(0) returns "".
func (g *Generator) Generate(n uint) (string, error) {
	if n == 0 {
		return "", nil
	}

	out := make([]byte, 0, n)
	buf := make([]byte, 64)
	for uint(len(out)) < n {
		if _, err := io.ReadFull(g.src, buf); err != nil {
			return "", fmt.Errorf("read entropy: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, Pool[int(b)%len(Pool)])
			if uint(len(out)) == n {
				break
			}
		}
	}
	return string(out), nil
}

// Generate uses the package's crypto/rand backed generator.
func Generate(n uint) (string, error) {
	return defaultGenerator.Generate(n)
}

// ParseLength parses user-entered text as a password length. Anything that is
// not a base-10 unsigned integer no greater than MaxLength fails with
// common.ErrInvalidLength.
func ParseLength(s string) (uint, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a non-negative whole number", common.ErrInvalidLength, s)
	}
	if n > MaxLength {
		return 0, fmt.Errorf("%w: %d exceeds maximum of %d", common.ErrInvalidLength, n, MaxLength)
	}
	return uint(n), nil
}
