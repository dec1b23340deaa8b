package montecarlo

import "testing"

// TestTrialSeed_ZeroMeansDefault checks the zero-seed policy.
func TestTrialSeed_ZeroMeansDefault(t *testing.T) {
	for i := uint64(0); i < 4; i++ {
		if trialSeed(0, i) != trialSeed(defaultSeed, i) {
			t.Errorf("trialSeed(0,%d) differs from the default seed", i)
		}
	}
}

// TestTrialSeed_DistinctStreams checks that nearby trials get distinct seeds.
func TestTrialSeed_DistinctStreams(t *testing.T) {
	seen := make(map[int64]uint64)
	for i := uint64(0); i < 1000; i++ {
		s := trialSeed(42, i)
		if j, dup := seen[s]; dup {
			t.Fatalf("trials %d and %d share seed %d", j, i, s)
		}
		seen[s] = i
	}
}

// TestTrialRNG_Repeatable checks the same (seed, trial) replays a stream.
func TestTrialRNG_Repeatable(t *testing.T) {
	a, b := trialRNG(9, 3), trialRNG(9, 3)
	for k := 0; k < 16; k++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", k, x, y)
		}
	}
}

// TestZScore checks the fixed 95% value and a computed 99% one.
func TestZScore(t *testing.T) {
	if z := zScore(0.95); z != 1.96 {
		t.Errorf("zScore(0.95) = %v; want 1.96", z)
	}
	if z := zScore(0.99); z < 2.575 || z > 2.576 {
		t.Errorf("zScore(0.99) = %v; want ≈2.5758", z)
	}
	if z := zScore(0.90); z < 1.644 || z > 1.645 {
		t.Errorf("zScore(0.90) = %v; want ≈1.6449", z)
	}
}
