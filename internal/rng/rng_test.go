package rng

import (
	"strings"
	"testing"
)

func TestDeterminismAcrossRuns(t *testing.T) {
	server := []byte(strings.Repeat("00", 32))
	client := []byte(strings.Repeat("00", 16))

	r1 := New(server, client, 0)
	r2 := New(server, client, 0)

	for i := 0; i < 50; i++ {
		a := r1.RandomFloat(0, 1)
		b := r2.RandomFloat(0, 1)
		if a != b {
			t.Fatalf("draw %d diverged: %v != %v", i, a, b)
		}
	}
	if r1.Nonce() != r2.Nonce() {
		t.Fatalf("nonce diverged: %d != %d", r1.Nonce(), r2.Nonce())
	}
}

func TestNonceMonotonic(t *testing.T) {
	r := New([]byte("server"), []byte("client"), 0)
	prev := r.Nonce()
	for i := 0; i < 100; i++ {
		r.random()
		if r.Nonce() != prev+1 {
			t.Fatalf("nonce did not increase by exactly 1: prev=%d now=%d", prev, r.Nonce())
		}
		prev = r.Nonce()
	}
}

func TestRandomFloatRange(t *testing.T) {
	r := New([]byte("s"), []byte("c"), 0)
	for i := 0; i < 1000; i++ {
		v := r.RandomFloat(0, 1)
		if v < 0 || v >= 1 {
			t.Fatalf("RandomFloat(0, 1) out of [0,1): %v", v)
		}
	}
}

func TestRandomIntInclusive(t *testing.T) {
	r := New([]byte("s"), []byte("c"), 0)
	seenMin, seenMax := false, false
	for i := 0; i < 5000; i++ {
		v := r.RandomInt(1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("RandomInt(1,3) out of range: %d", v)
		}
		if v == 1 {
			seenMin = true
		}
		if v == 3 {
			seenMax = true
		}
	}
	if !seenMin || !seenMax {
		t.Fatalf("RandomInt(1,3) never hit an endpoint: min=%v max=%v", seenMin, seenMax)
	}
}

func TestProbabilityBoundaries(t *testing.T) {
	r := New([]byte("s"), []byte("c"), 0)
	before := r.Nonce()
	if r.Probability(0) {
		t.Fatal("Probability(0) must be false")
	}
	if !r.Probability(1) {
		t.Fatal("Probability(1) must be true")
	}
	if r.Nonce() != before {
		t.Fatal("Probability at boundaries must not consume a draw")
	}
}

func TestWeightedChoiceErrors(t *testing.T) {
	r := New([]byte("s"), []byte("c"), 0)

	if _, err := WeightedChoice(r, []WeightedOption[string]{}); err == nil {
		t.Fatal("expected error for empty options")
	}
	if _, err := WeightedChoice(r, []WeightedOption[string]{{Value: "a", Weight: 0}}); err == nil {
		t.Fatal("expected error for non-positive total weight")
	}
	if _, err := WeightedChoice(r, []WeightedOption[string]{{Value: "a", Weight: -1}, {Value: "b", Weight: 5}}); err == nil {
		t.Fatal("expected error for negative weight")
	}
}

func TestWeightedChoiceDistribution(t *testing.T) {
	r := New([]byte("s"), []byte("c"), 0)
	options := []WeightedOption[string]{
		{Value: "a", Weight: 1},
		{Value: "b", Weight: 99},
	}
	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		v, err := WeightedChoice(r, options)
		if err != nil {
			t.Fatal(err)
		}
		counts[v]++
	}
	if counts["b"] <= counts["a"] {
		t.Fatalf("expected b to dominate: got %v", counts)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	r := New([]byte("s"), []byte("c"), 0)
	in := []int{1, 2, 3, 4, 5}
	out := Shuffle(r, in)

	if len(out) != len(in) {
		t.Fatalf("length mismatch: %d != %d", len(out), len(in))
	}
	sumIn, sumOut := 0, 0
	for i := range in {
		sumIn += in[i]
		sumOut += out[i]
	}
	if sumIn != sumOut {
		t.Fatalf("shuffle changed the multiset: %v -> %v", in, out)
	}
	// Input slice must not be mutated.
	if in[0] != 1 || in[4] != 5 {
		t.Fatalf("Shuffle mutated its input: %v", in)
	}
}

func TestGaussianClamp(t *testing.T) {
	r := New([]byte("s"), []byte("c"), 0)
	for i := 0; i < 500; i++ {
		v := r.Gaussian(0, 50, true, -5, true, 5)
		if v < -5 || v > 5 {
			t.Fatalf("Gaussian not clamped: %v", v)
		}
	}
}

func TestSeedHashing(t *testing.T) {
	seed := strings.Repeat("00", 32)
	hash := HashServerSeed(seed)
	if !VerifyServerSeed(seed, hash) {
		t.Fatal("VerifyServerSeed must accept its own hash")
	}
	if VerifyServerSeed(seed, "deadbeef") {
		t.Fatal("VerifyServerSeed must reject a mismatched hash")
	}
}

func TestGenerateSeeds(t *testing.T) {
	ss, err := GenerateServerSeed()
	if err != nil {
		t.Fatal(err)
	}
	if len(ss) != 64 {
		t.Fatalf("server seed should be 64 hex chars, got %d", len(ss))
	}
	cs, err := GenerateClientSeed()
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 32 {
		t.Fatalf("client seed should be 32 hex chars, got %d", len(cs))
	}
}

func TestDecodeHexRejectsEmpty(t *testing.T) {
	if _, err := DecodeHex(""); err == nil {
		t.Fatal("expected error for empty seed")
	}
}
