package bot

import (
	"testing"

	"github.com/kalepail/asteroids-zk-core/internal/sim"
)

func TestChooseLegalInputPrefersPreferredWhenLegal(t *testing.T) {
	s := sim.New(1)
	got := ChooseLegalInput(s, 0x00)
	if got != 0x00 {
		t.Errorf("expected no-op to be legal at frame 0, got 0x%02x", got)
	}
}

func TestChooseLegalInputFallsBackAfterFiring(t *testing.T) {
	s := sim.New(1)
	if err := s.StepStrict(sim.InputFromByte(0x08)); err != nil {
		t.Fatalf("first shot should be legal: %v", err)
	}
	// Firing again is illegal on cooldown; the fallback search must
	// produce something other than another fire.
	got := ChooseLegalInput(s, 0x08)
	in := sim.InputFromByte(got)
	if in.Fire {
		t.Errorf("expected fallback to avoid fire during cooldown, got 0x%02x", got)
	}
}

func TestChooseLegalInputNeverReturnsIllegalFireAtFrameZero(t *testing.T) {
	s := sim.New(1)
	// Preferring every control bit at once, the search must never return
	// a fire input that the simulator would reject at frame zero.
	got := ChooseLegalInput(s, 0xFF)
	if sim.InputFromByte(got).Fire && s.CanStepStrict(sim.InputFromByte(got)) != sim.RuleNone {
		t.Errorf("ChooseLegalInput returned an illegal input: 0x%02x", got)
	}
}

func TestHeuristicReturnsNoOpWhenShipDead(t *testing.T) {
	s := sim.New(1)
	snap := s.Snapshot()
	snap.Ship.Alive = false
	if got := Heuristic(snap); got != 0x00 {
		t.Errorf("expected 0x00 for a dead ship, got 0x%02x", got)
	}
}

func TestHeuristicProducesLegalLookingBytes(t *testing.T) {
	s := sim.New(2)
	for i := 0; i < 50; i++ {
		snap := s.Snapshot()
		b := Heuristic(snap)
		legal := ChooseLegalInput(s, b)
		if err := s.StepStrict(sim.InputFromByte(legal)); err != nil {
			t.Fatalf("frame %d: legal input rejected: %v", i, err)
		}
	}
}
