// Package sim implements the deterministic, integer-only Asteroids
// simulator: given a seed and a sequence of per-frame inputs, it produces
// exactly one sequence of world states on every host and Go version,
// which is what lets a replay be checked bit-for-bit inside a zkVM guest.
package sim

import "github.com/kalepail/asteroids-zk-core/internal/prng"

// Simulator owns one game's mutable state and its PRNG stream. The zero
// value is not usable; construct one with New.
type Simulator struct {
	world World
	rng   *prng.Xorshift32
}

// New creates a simulator seeded with seed (0 substitutes the fixed
// fallback seed, per prng.New) and an initial wave already spawned.
func New(seed uint32) *Simulator {
	s := &Simulator{rng: prng.New(seed)}
	s.world.Lives = StartingLives
	s.world.NextLifeAt = ExtraLifeScoreStep
	s.world.Wave = 1
	spawnShip(&s.world)
	spawnWave(&s.world, s.rng)
	s.world.SaucerSpawnIn = s.rng.NextRange(SaucerSpawnMinFrames, SaucerSpawnMaxFrames)
	return s
}

// Step advances the simulation by one frame, applying in. Illegal
// inputs (firing over the limit, firing during cooldown, any input
// while the ship is uncontrollable) are silently ignored rather than
// rejected — this is the lenient entry point for interactive or
// best-effort callers. Use StepStrict to reject them instead.
func (s *Simulator) Step(in Input) {
	step(&s.world, s.rng, sanitize(&s.world, in))
}

// CanStepStrict reports the rule in would violate against the current
// state, or RuleNone if in is legal to apply as-is.
func (s *Simulator) CanStepStrict(in Input) RuleCode {
	return violationFor(&s.world, in)
}

// StepStrict advances the simulation by one frame, applying in exactly
// as given. It returns a *RuleViolation, and leaves the world
// unmodified, if in breaks an invariant rather than silently sanitizing
// it — this is the entry point tape verification must use, since a
// dishonest tape that depends on silent correction would otherwise
// replay cleanly.
func (s *Simulator) StepStrict(in Input) error {
	if rule := violationFor(&s.world, in); rule != RuleNone {
		return &RuleViolation{Frame: s.world.FrameCount + 1, Rule: rule}
	}
	step(&s.world, s.rng, in)
	return nil
}

// sanitize clears any bits of in that would be illegal to apply, so
// Step never needs to special-case rule violations.
func sanitize(w *World, in Input) Input {
	if violationFor(w, in) == RuleNone {
		return in
	}
	if !w.Ship.Alive {
		return Input{}
	}
	out := in
	if in.Fire && (w.Ship.FireCooldown > 0 || len(w.Bullets) >= ShipBulletLimit) {
		out.Fire = false
	}
	return out
}

// FrameCount returns the number of frames simulated so far.
func (s *Simulator) FrameCount() uint32 { return s.world.FrameCount }

// Score returns the current score.
func (s *Simulator) Score() uint32 { return s.world.Score }

// RNGState returns the PRNG's current internal state word.
func (s *Simulator) RNGState() uint32 { return s.rng.State() }

// GameOver reports whether the ship has exhausted all lives.
func (s *Simulator) GameOver() bool { return s.world.GameOver }

// Result holds the terminal values a replay is checked against.
type Result struct {
	FrameCount uint32
	Score      uint32
	RNGState   uint32
}

// Result returns the simulator's current terminal values, suitable for
// comparison against a tape's footer.
func (s *Simulator) Result() Result {
	return Result{
		FrameCount: s.world.FrameCount,
		Score:      s.world.Score,
		RNGState:   s.rng.State(),
	}
}

// Snapshot returns a read-only view of the current world, for autopilot
// consumers and for inspection tooling. It copies all slice fields so
// the caller cannot mutate simulator-internal state.
func (s *Simulator) Snapshot() Snapshot {
	return newSnapshot(&s.world)
}
