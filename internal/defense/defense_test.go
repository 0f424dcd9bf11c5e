package defense

import (
	"testing"

	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
)

func newRNG() *rng.RNG {
	return rng.New([]byte("server"), []byte("client"), 0)
}

func TestSelectProducesValidCoverage(t *testing.T) {
	r := newRNG()
	call := Select(r, model.CallPassDeep, 3, 9, 85)
	valid := map[Coverage]bool{
		CoverTwo: true, CoverThree: true, CoverOneMan: true,
		Nickel: true, Dime: true, CoverZeroBlitz: true,
	}
	if !valid[call.Coverage] {
		t.Fatalf("unexpected coverage: %v", call.Coverage)
	}
}

func TestCoverZeroBlitzImpliesBlitz(t *testing.T) {
	r := newRNG()
	seen := false
	for i := 0; i < 200; i++ {
		call := Select(r, model.CallPassDeep, 3, 9, 85)
		if call.Coverage != CoverZeroBlitz {
			continue
		}
		seen = true
		if !call.Blitz {
			t.Fatalf("cover-0 blitz selected without Blitz set: %+v", call)
		}
	}
	if !seen {
		t.Fatal("cover-0 blitz was never selected in 200 calls")
	}
}

func TestSackRateAdjustmentOnlyWhenBlitzing(t *testing.T) {
	blitzing := Call{Coverage: CoverZeroBlitz, Blitz: true}
	notBlitzing := Call{Coverage: CoverTwo, Blitz: false}
	if blitzing.SackRateAdjustment() <= notBlitzing.SackRateAdjustment() {
		t.Fatal("a blitzing call should raise the sack rate adjustment")
	}
}

func TestBigPlayAdjustmentHighestOnCoverZero(t *testing.T) {
	zero := Call{Coverage: CoverZeroBlitz}
	two := Call{Coverage: CoverTwo}
	if zero.BigPlayAdjustment() <= two.BigPlayAdjustment() {
		t.Fatal("cover-0 blitz should concede more big-play risk than cover-2")
	}
}
