package sim

import "testing"

func TestNewSpawnsShipAndWave(t *testing.T) {
	s := New(1)
	snap := s.Snapshot()
	if !snap.Ship.Alive {
		t.Fatal("ship should be alive at start")
	}
	if len(snap.Asteroids) != int(InitialWaveAsteroids) {
		t.Errorf("expected %d starting asteroids, got %d", InitialWaveAsteroids, len(snap.Asteroids))
	}
	if snap.Lives != StartingLives {
		t.Errorf("expected %d lives, got %d", StartingLives, snap.Lives)
	}
}

func TestStepIncrementsFrameCount(t *testing.T) {
	s := New(1)
	for i := uint32(1); i <= 10; i++ {
		s.Step(Input{})
		if s.FrameCount() != i {
			t.Fatalf("frame %d: FrameCount() = %d", i, s.FrameCount())
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	inputs := []Input{
		{Thrust: true}, {Left: true}, {Right: true}, {Fire: true}, {},
		{Thrust: true, Left: true}, {Fire: true}, {}, {}, {Thrust: true},
	}
	run := func() Result {
		s := New(42)
		for i := 0; i < 300; i++ {
			s.Step(inputs[i%len(inputs)])
		}
		return s.Result()
	}
	a := run()
	b := run()
	if a != b {
		t.Fatalf("non-deterministic replay: %+v vs %+v", a, b)
	}
}

func TestIdleRunNeverCrashes(t *testing.T) {
	s := New(7)
	for i := 0; i < 5000; i++ {
		s.Step(Input{})
	}
	if s.Score() != 0 {
		t.Errorf("idle ship should never score, got %d", s.Score())
	}
}

// TestIdleRunMatchesGoldenRNGState pins the simulator's output against
// the reference implementation's documented anchor for an idle run: seed
// 0xDEADBEEF, 500 frames of the zero input, landing on RNG state
// 0xDDEC443F. A self-consistency check alone cannot catch a reordered
// RNG draw or collision phase; this can.
func TestIdleRunMatchesGoldenRNGState(t *testing.T) {
	s := New(0xDEADBEEF)
	for i := 0; i < 500; i++ {
		s.Step(Input{})
	}
	const wantRNGState = 0xDDEC443F
	if got := s.Result().RNGState; got != wantRNGState {
		t.Errorf("idle run RNG state = 0x%08X, want 0x%08X", got, wantRNGState)
	}
	if s.Score() != 0 {
		t.Errorf("idle ship should never score, got %d", s.Score())
	}
}

func TestStepStrictRejectsFireDuringCooldown(t *testing.T) {
	s := New(3)
	if err := s.StepStrict(Input{Fire: true}); err != nil {
		t.Fatalf("first shot should be legal: %v", err)
	}
	err := s.StepStrict(Input{Fire: true})
	if err == nil {
		t.Fatal("expected a rule violation while the cooldown is active")
	}
	rv, ok := err.(*RuleViolation)
	if !ok {
		t.Fatalf("expected *RuleViolation, got %T", err)
	}
	if rv.Rule != RuleFireDuringCooldown {
		t.Errorf("expected RuleFireDuringCooldown, got %v", rv.Rule)
	}
}

func TestStepStrictRejectsInputWhileDead(t *testing.T) {
	s := New(9)
	killShip(&s.world)
	if err := s.StepStrict(Input{Thrust: true}); err == nil {
		t.Fatal("expected a rule violation for input while uncontrollable")
	}
}

func TestStepLeniencyIgnoresIllegalFire(t *testing.T) {
	s := New(5)
	s.Step(Input{Fire: true})
	before := s.Snapshot()
	s.Step(Input{Fire: true}) // still on cooldown, should be silently dropped
	after := s.Snapshot()
	if len(after.Bullets) != len(before.Bullets) {
		t.Errorf("expected fire during cooldown to be dropped, bullets %d -> %d",
			len(before.Bullets), len(after.Bullets))
	}
}

func TestAsteroidCapNeverExceeded(t *testing.T) {
	s := New(11)
	for i := 0; i < 20000; i++ {
		s.Step(Input{Fire: true})
		if len(s.world.Asteroids) > AsteroidCap {
			t.Fatalf("frame %d: asteroid count %d exceeds cap %d", i, len(s.world.Asteroids), AsteroidCap)
		}
	}
}

func TestShipBulletLimitNeverExceeded(t *testing.T) {
	s := New(11)
	for i := 0; i < 2000; i++ {
		s.Step(Input{Fire: true})
		if len(s.world.Bullets) > ShipBulletLimit {
			t.Fatalf("frame %d: bullet count %d exceeds limit %d", i, len(s.world.Bullets), ShipBulletLimit)
		}
	}
}

func TestAngleWrapsWithinBAMRange(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		s.Step(Input{Left: true})
	}
	// uint8 wraps by construction; this just documents the invariant.
	_ = s.Snapshot().Ship.Angle
}
