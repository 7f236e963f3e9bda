package sim

import "fmt"

// RuleCode identifies a specific invariant a frame's input is not allowed
// to violate. Strict replay (StepStrict) refuses to apply an input that
// would trigger one of these, rather than silently clamping it, so a
// dishonest tape is caught at the exact frame it diverges.
type RuleCode uint8

const (
	// RuleNone is the zero value, returned on a legal step.
	RuleNone RuleCode = iota
	// RuleBulletLimitExceeded: fire requested while ShipBulletLimit live
	// ship bullets are already outstanding.
	RuleBulletLimitExceeded
	// RuleFireDuringCooldown: fire requested before FireCooldown reached 0.
	RuleFireDuringCooldown
	// RuleInputWhileUncontrollable: thrust/turn/fire requested while the
	// ship is not alive and controllable (mid-respawn delay).
	RuleInputWhileUncontrollable
	// RuleAsteroidCapExceeded: a split or spawn would exceed AsteroidCap.
	RuleAsteroidCapExceeded
)

func (c RuleCode) String() string {
	switch c {
	case RuleNone:
		return "none"
	case RuleBulletLimitExceeded:
		return "bullet_limit_exceeded"
	case RuleFireDuringCooldown:
		return "fire_during_cooldown"
	case RuleInputWhileUncontrollable:
		return "input_while_uncontrollable"
	case RuleAsteroidCapExceeded:
		return "asteroid_cap_exceeded"
	default:
		return "unknown"
	}
}

// RuleViolation reports that a frame's input, if applied, would break an
// invariant the strict-replay contract enforces. Frame is the 1-based
// index of the offending frame (the frame about to be stepped when the
// violation was detected).
type RuleViolation struct {
	Frame uint32
	Rule  RuleCode
}

func (e *RuleViolation) Error() string {
	return fmt.Sprintf("frame %d: rule violation: %s", e.Frame, e.Rule)
}
