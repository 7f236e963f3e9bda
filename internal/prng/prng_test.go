package prng

import "testing"

func TestGoldenVector(t *testing.T) {
	want := []uint32{
		1199382711, 2384302402, 3129746520, 4276113467, 1745748808,
		2760751131, 1649732188, 486387635, 2289630710, 1862841525,
	}
	rng := New(0xDEADBEEF)
	for i, w := range want {
		if got := rng.Next(); got != w {
			t.Fatalf("draw %d: got %d, want %d", i, got, w)
		}
	}
	if rng.State() != want[len(want)-1] {
		t.Errorf("final state = %d, want %d", rng.State(), want[len(want)-1])
	}
}

func TestZeroSeedDefaults(t *testing.T) {
	rng := New(0)
	if rng.State() != defaultSeed {
		t.Errorf("zero seed should default to %d, got %d", defaultSeed, rng.State())
	}
}

func TestNextRangeBounds(t *testing.T) {
	rng := New(42)
	for i := 0; i < 1000; i++ {
		v := rng.NextRange(-10, 10)
		if v < -10 || v >= 10 {
			t.Fatalf("NextRange out of bounds: %d", v)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := New(12345)
	b := New(12345)
	for i := 0; i < 1000; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}
