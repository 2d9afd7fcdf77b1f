// Package idgen draws random identifiers that must be unique in some store.
//
// The store is consulted through a caller supplied probe. Candidates are
// redrawn while the probe reports them as taken, up to MaxAttempts times;
// after that Generate gives up with common.ErrExhaustedRetries rather than
// spinning. Member ids, wallet identifiers, token codes and one-time codes
// all go through here and differ only in Options.
package idgen

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
)

// MaxAttempts is the number of taken candidates tolerated before giving up.
const MaxAttempts = 100

// Alphabet is the set of characters candidates are drawn from.
type Alphabet string

const (
	Digits       Alphabet = "0123456789"
	Alphanumeric Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Probe reports whether candidate is already in use.
type Probe func(ctx context.Context, candidate string) (bool, error)

type Options struct {
	Length   int
	Alphabet Alphabet
	IsTaken  Probe
}

var ErrInvalidOptions = errors.New("idgen: invalid options")

// randReader is swapped in tests.
var randReader io.Reader = rand.Reader

// Generate returns a candidate the probe accepted. A probe error aborts at once
// and is returned as is.
func Generate(ctx context.Context, opts Options) (string, error) {
	if opts.Length <= 0 || len(opts.Alphabet) == 0 || opts.IsTaken == nil {
		return "", ErrInvalidOptions
	}

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate, err := draw(opts.Length, opts.Alphabet)
		if err != nil {
			return "", fmt.Errorf("idgen: random source: %w", err)
		}

		taken, err := opts.IsTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: no free value of length %d after %d attempts", common.ErrExhaustedRetries, opts.Length, MaxAttempts)
}

// GenerateInt is Generate over Digits, parsed back to an integer. The result
// always has exactly length digits.
func GenerateInt(ctx context.Context, length int, isTaken func(ctx context.Context, candidate int64) (bool, error)) (int64, error) {
	if length <= 0 || length > 18 || isTaken == nil {
		return 0, ErrInvalidOptions
	}

	s, err := Generate(ctx, Options{
		Length:   length,
		Alphabet: Digits,
		IsTaken: func(ctx context.Context, candidate string) (bool, error) {
			n, err := strconv.ParseInt(candidate, 10, 64)
			if err != nil {
				return false, err
			}
			return isTaken(ctx, n)
		},
	})
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(s, 10, 64)
}

func draw(length int, alphabet Alphabet) (string, error) {
	buf := make([]byte, length)
	for i := range buf {
		chars := string(alphabet)
		// a leading zero would shorten the number once parsed
		if i == 0 && alphabet == Digits {
			chars = chars[1:]
		}
		n, err := rand.Int(randReader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		buf[i] = chars[n.Int64()]
	}
	return string(buf), nil
}
