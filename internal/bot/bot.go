// Package bot implements a simple heuristic autopilot and the strict-
// legal input search a recorder falls back to when the heuristic's
// preferred action would violate a rule.
package bot

import (
	"github.com/kalepail/asteroids-zk-core/internal/fixedpoint"
	"github.com/kalepail/asteroids-zk-core/internal/sim"
)

// legalFallbacks lists 12 of the 16 four-bit inputs in a fixed priority
// order: the no-op first, then the single-bit inputs, then two- and
// three-bit combinations. Grounded on the autopilot runner's strict
// legality search.
var legalFallbacks = [12]byte{
	0x00, 0x04, 0x01, 0x02, 0x08, 0x05, 0x06, 0x09, 0x0A, 0x0C, 0x03, 0x0E,
}

// ChooseLegalInput returns preferred if s reports it as legal via
// CanStepStrict, and otherwise the first entry of legalFallbacks that is
// legal. The list starts with 0x00 (no-op), which is legal in every
// state, so the search always ends there at the latest.
func ChooseLegalInput(s *sim.Simulator, preferred byte) byte {
	if s.CanStepStrict(sim.InputFromByte(preferred)) == sim.RuleNone {
		return preferred
	}
	for _, b := range legalFallbacks {
		if s.CanStepStrict(sim.InputFromByte(b)) == sim.RuleNone {
			return b
		}
	}
	return 0x00
}

// Heuristic picks an input from a world snapshot by steering toward the
// nearest asteroid and firing when roughly aligned with it, the way a
// minimal always-be-shooting bot would play. It does not itself check
// legality; pass its result through ChooseLegalInput before recording.
func Heuristic(snap sim.Snapshot) byte {
	if !snap.Ship.Alive {
		return 0x00
	}

	target, ok := nearestAsteroid(snap)
	if !ok {
		return boolToByte(true, false, false, false) // drift forward, nothing to shoot at
	}

	dx := fixedpoint.ShortestDelta(snap.Ship.X, target.X, sim.WorldWidthQ12_4)
	dy := fixedpoint.ShortestDelta(snap.Ship.Y, target.Y, sim.WorldHeightQ12_4)
	aim := fixedpoint.Atan2BAM(dy, dx)

	delta := int8(aim - snap.Ship.Angle)
	const alignedTolerance = 6

	var left, right, fire, thrust bool
	switch {
	case delta > alignedTolerance:
		right = true
	case delta < -alignedTolerance:
		left = true
	default:
		fire = snap.Ship.FireCooldown == 0
	}
	thrust = delta > -32 && delta < 32

	return boolToByte(thrust, left, right, fire)
}

func nearestAsteroid(snap sim.Snapshot) (sim.AsteroidView, bool) {
	if len(snap.Asteroids) == 0 {
		return sim.AsteroidView{}, false
	}
	best := snap.Asteroids[0]
	bestDistSq := distSq(snap.Ship, best)
	for _, a := range snap.Asteroids[1:] {
		if d := distSq(snap.Ship, a); d < bestDistSq {
			best, bestDistSq = a, d
		}
	}
	return best, true
}

func distSq(ship sim.ShipView, a sim.AsteroidView) int64 {
	dx := int64(fixedpoint.ShortestDelta(ship.X, a.X, sim.WorldWidthQ12_4))
	dy := int64(fixedpoint.ShortestDelta(ship.Y, a.Y, sim.WorldHeightQ12_4))
	return dx*dx + dy*dy
}

func boolToByte(thrust, left, right, fire bool) byte {
	return sim.Input{Thrust: thrust, Left: left, Right: right, Fire: fire}.ToByte()
}
