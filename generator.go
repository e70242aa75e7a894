package prefixid

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand/v2"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// alphabet is the unique-part character set. Matching is case-sensitive, so
// the effective space is 62^length.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generator produces the unique part of an identifier. It receives the exact
// length the registry resolved for the type being created and must return
// that many ASCII alphanumeric characters. Create validates the output on
// every call, so generators are free to be wrappers around third-party
// libraries without the registry trusting them.
type Generator func(length int) (string, error)

// NewRandomGenerator returns the generator used when Build receives no
// WithGenerator option. It draws from crypto/rand with rejection sampling to
// keep the 62-character distribution uniform, and degrades to math/rand/v2
// only when the crypto source fails (e.g. in restricted sandboxes). The
// degraded output is still well-formed but must not be treated as
// unguessable.
func NewRandomGenerator() Generator {
	return func(length int) (string, error) {
		b := make([]byte, length)
		if err := cryptoFill(b); err != nil {
			for i := range b {
				b[i] = alphabet[mrand.IntN(len(alphabet))]
			}
		}
		return string(b), nil
	}
}

// cryptoFill fills b with alphabet characters from crypto/rand. 248 is the
// largest multiple of 62 not exceeding 256; source bytes at or above it are
// discarded so the modulo stays unbiased.
func cryptoFill(b []byte) error {
	const limit = 248
	buf := make([]byte, len(b)+len(b)/8+1)
	filled := 0
	for filled < len(b) {
		if _, err := rand.Read(buf); err != nil {
			return err
		}
		for _, c := range buf {
			if c >= limit {
				continue
			}
			b[filled] = alphabet[int(c)%len(alphabet)]
			filled++
			if filled == len(b) {
				break
			}
		}
	}
	return nil
}

// NewNanoIDGenerator returns a Generator backed by NanoID, constrained to the
// alphanumeric alphabet so its output always satisfies identifier validation.
func NewNanoIDGenerator() Generator {
	return func(length int) (string, error) {
		return gonanoid.Generate(alphabet, length)
	}
}

// NewUUIDGenerator returns a Generator that derives the unique part from
// random (v4) UUIDs. Each UUID contributes 32 hex characters; longer requests
// concatenate further UUIDs and the result is truncated to the requested
// length. Hex is a subset of the alphanumeric charset, so the output is
// always valid, but it uses only 16 of the 62 characters per position —
// prefer the default generator unless UUID-derived identifiers are required
// for compatibility.
func NewUUIDGenerator() Generator {
	return func(length int) (string, error) {
		var sb strings.Builder
		sb.Grow(length + 32)
		for sb.Len() < length {
			u, err := uuid.NewRandom()
			if err != nil {
				return "", err
			}
			sb.WriteString(hex.EncodeToString(u[:]))
		}
		return sb.String()[:length], nil
	}
}
