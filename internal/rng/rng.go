// Package rng implements the provably-fair, HMAC-chained deterministic
// random generator (spec §4.1). It is the sole permitted source of
// entropy in the simulation core: no other package may import math/rand,
// math/rand/v2, or crypto/rand except to generate fresh seed material
// (GenerateServerSeed/GenerateClientSeed below).
package rng

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/proofplay/gridiron/internal/simerr"
)

// RNG is a single-threaded deterministic generator parameterised by two
// byte strings and a monotonically increasing nonce. It is not safe for
// concurrent use — the spec's concurrency model is "one RNG per game,
// one game per goroutine" (§5).
type RNG struct {
	serverSeed []byte
	clientSeed []byte
	nonce      uint64
}

// New constructs an RNG from raw seed bytes and a starting nonce. Callers
// that accept seeds as hex strings should decode them first (see
// DecodeHex) so the determinism contract is over raw bytes, not string
// encodings.
func New(serverSeed, clientSeed []byte, startNonce uint64) *RNG {
	return &RNG{serverSeed: serverSeed, clientSeed: clientSeed, nonce: startNonce}
}

// Nonce returns the number of primitive draws performed so far (I8, P5).
func (r *RNG) Nonce() uint64 { return r.nonce }

// random draws one float in [0,1) via HMAC-SHA256(serverSeed,
// clientSeed ":" nonce), taking the first 4 bytes big-endian as an
// unsigned 32-bit integer and dividing by 2^32. It is the only place
// nonce is incremented; every other method in this package and every
// caller in the simulation core must route through it (directly or via
// the derived primitives below) to preserve I8.
func (r *RNG) random() float64 {
	mac := hmac.New(sha256.New, r.serverSeed)
	fmt.Fprintf(mac, "%s:%d", r.clientSeed, r.nonce)
	sum := mac.Sum(nil)
	r.nonce++

	n := binary.BigEndian.Uint32(sum[:4])
	return float64(n) / 4294967296.0 // 2^32
}

// RandomInt returns an integer in [min,max], inclusive both ends, via one
// draw.
func (r *RNG) RandomInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	span := float64(max-min) + 1
	return int(math.Floor(r.random()*span)) + min
}

// RandomFloat returns a float in [min,max) via one draw.
func (r *RNG) RandomFloat(min, max float64) float64 {
	return r.random()*(max-min) + min
}

// Probability returns true with probability p, clamped trivially at the
// boundaries (p<=0 always false, p>=1 always true) without consuming a
// draw, matching the spec's short-circuit.
func (r *RNG) Probability(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.random() < p
}

// WeightedOption is one candidate for WeightedChoice.
type WeightedOption[T any] struct {
	Value  T
	Weight float64
}

// WeightedChoice performs a one-draw linear cumulative scan over options,
// scaled by the total weight. The last option is returned on the
// floating-point edge where the cumulative scan never strictly exceeds
// the draw (spec §4.1).
func WeightedChoice[T any](r *RNG, options []WeightedOption[T]) (T, error) {
	var zero T
	if len(options) == 0 {
		return zero, fmt.Errorf("weighted choice: no options: %w", simerr.ErrWeightedChoice)
	}

	total := 0.0
	for _, o := range options {
		if o.Weight < 0 {
			return zero, fmt.Errorf("weighted choice: negative weight %v: %w", o.Weight, simerr.ErrWeightedChoice)
		}
		total += o.Weight
	}
	if total <= 0 {
		return zero, fmt.Errorf("weighted choice: non-positive total weight: %w", simerr.ErrWeightedChoice)
	}

	target := r.random() * total
	cumulative := 0.0
	for _, o := range options {
		cumulative += o.Weight
		if target < cumulative {
			return o.Value, nil
		}
	}
	return options[len(options)-1].Value, nil
}

// Shuffle returns a new slice containing a Fisher-Yates shuffle of in,
// drawing from index n-1 down to 1. The input slice is not mutated.
func Shuffle[T any](r *RNG, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := r.RandomInt(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Gaussian draws a normally-distributed value via Box-Muller, using two
// draws (redrawing u1 only if it lands exactly on zero, to avoid log(0)).
// When min/max are supplied (minOk/maxOk true) the result is clamped
// after the transform, never before.
func (r *RNG) Gaussian(mean, stdDev float64, minOk bool, min float64, maxOk bool, max float64) float64 {
	u1 := r.random()
	for u1 == 0 {
		u1 = r.random()
	}
	u2 := r.random()

	z0 := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	v := mean + z0*stdDev

	if minOk && v < min {
		v = min
	}
	if maxOk && v > max {
		v = max
	}
	return v
}

// GenerateServerSeed returns 32 random bytes, hex-encoded, read from the
// OS CSPRNG. This is the only place crypto/rand is used to mint fresh
// entropy — everything downstream of a chosen seed pair is deterministic.
func GenerateServerSeed() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate server seed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// GenerateClientSeed returns 16 random bytes, hex-encoded.
func GenerateClientSeed() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate client seed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashServerSeed returns the SHA-256 hex digest of a server seed, to be
// published before the game runs (commit-reveal protocol, spec §6).
func HashServerSeed(serverSeedHex string) string {
	sum := sha256.Sum256([]byte(serverSeedHex))
	return hex.EncodeToString(sum[:])
}

// VerifyServerSeed reports whether serverSeedHex hashes to wantHashHex.
func VerifyServerSeed(serverSeedHex, wantHashHex string) bool {
	return HashServerSeed(serverSeedHex) == wantHashHex
}

// DecodeHex decodes a hex-encoded seed string, validating it is non-empty.
func DecodeHex(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("decode seed: empty: %w", simerr.ErrInvalidSeed)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode seed %q: %w", s, simerr.ErrInvalidSeed)
	}
	return b, nil
}
