package sim

import (
	"github.com/kalepail/asteroids-zk-core/internal/fixedpoint"
	"github.com/kalepail/asteroids-zk-core/internal/prng"
)

// spawnShip places the ship at the world center, facing up, at rest.
// Mirrors the teacher's SpawnPlayer, moved onto the Q12.4/Q8.8 grid.
func spawnShip(w *World) {
	w.Ship = Ship{
		X:               WorldWidthQ12_4 / 2,
		Y:               WorldHeightQ12_4 / 2,
		Angle:           fixedpoint.FacingUpBAM,
		Alive:           true,
		InvulnerableFor: ShipInvulnerableFrames,
	}
}

// spawnAsteroidAt creates one asteroid of the given size at a position,
// with a uniformly random heading and a speed drawn from that size's
// range, and a small random spin. Grounded on the teacher's
// SpawnAsteroid, generalized across sizes via AsteroidSpeedRange.
func spawnAsteroidAt(rng *prng.Xorshift32, size AsteroidSize, x, y int32) Asteroid {
	angle := uint8(rng.NextRange(0, int32(fixedpoint.BAMFull)))
	speedRange := AsteroidSpeedRange(size)
	speed := rng.NextRange(speedRange[0], speedRange[1])
	vx, vy := fixedpoint.VelocityFromAngle(angle, speed)
	spin := rng.NextRange(-3, 4)
	return Asteroid{
		X: x, Y: y,
		VX: vx, VY: vy,
		Spin: spin,
		Size: size,
	}
}

// isSpawnSafe reports whether a candidate spawn point is far enough from
// the ship (toroidal distance) to not spawn an asteroid on top of the
// player.
func isSpawnSafe(w *World, x, y int32) bool {
	dx := fixedpoint.ShortestDelta(w.Ship.X, x, WorldWidthQ12_4)
	dy := fixedpoint.ShortestDelta(w.Ship.Y, y, WorldHeightQ12_4)
	distSq := dx*dx + dy*dy
	safe := SpawnSafeDistanceQ12_4
	return distSq >= safe*safe
}

// spawnWave populates w with InitialWaveAsteroids + 2*(wave-1) large
// asteroids (capped at AsteroidCap). Each position is redrawn (consuming
// further RNG draws) until clear of the ship, for at most 16 attempts;
// after that the last candidate is used even if it is not clear. This
// follows the teacher's spawnWave safe-distance retry loop.
func spawnWave(w *World, rng *prng.Xorshift32) {
	count := InitialWaveAsteroids + 2*(w.Wave-1)
	if count > int32(AsteroidCap) {
		count = int32(AsteroidCap)
	}
	for i := int32(0); i < count; i++ {
		if len(w.Asteroids) >= AsteroidCap {
			break
		}
		var x, y int32
		for attempt := 0; attempt < 16; attempt++ {
			x = rng.NextRange(0, WorldWidthQ12_4)
			y = rng.NextRange(0, WorldHeightQ12_4)
			if isSpawnSafe(w, x, y) {
				break
			}
		}
		w.Asteroids = append(w.Asteroids, spawnAsteroidAt(rng, SizeLarge, x, y))
	}
}

// splitAsteroid replaces a destroyed asteroid with two children of the
// next size down, inheriting its position and each getting an
// independent random heading/speed/spin. Returns the children, or nil if
// size was already the smallest.
func splitAsteroid(rng *prng.Xorshift32, a Asteroid) []Asteroid {
	child, ok := a.Size.Child()
	if !ok {
		return nil
	}
	return []Asteroid{
		spawnAsteroidAt(rng, child, a.X, a.Y),
		spawnAsteroidAt(rng, child, a.X, a.Y),
	}
}

// chooseSaucerSize picks small vs large with a probability that grows
// with wave number: wave<=2 always large, then +10% small per wave
// thereafter up to 90%. A deterministic stand-in for the spec's
// "wave-dependent probability", documented as an Open Question
// resolution since the upstream implementation was not recovered.
func chooseSaucerSize(rng *prng.Xorshift32, wave int32) SaucerSize {
	pct := wave - 2
	if pct < 0 {
		pct = 0
	}
	if pct > 9 {
		pct = 9
	}
	if int32(rng.NextInt(10)) < pct {
		return SaucerSmall
	}
	return SaucerLarge
}

// spawnSaucer places a new saucer entering from a random vertical
// position at either horizontal edge, heading across the screen.
func spawnSaucer(w *World, rng *prng.Xorshift32) {
	size := chooseSaucerSize(rng, w.Wave)
	y := rng.NextRange(0, WorldHeightQ12_4)

	speed := SaucerSpeedLargeQ8_8
	if size == SaucerSmall {
		speed = SaucerSpeedSmallQ8_8
	}
	var x int32
	if rng.NextInt(2) == 0 {
		x = 0
	} else {
		x = WorldWidthQ12_4 - 1
		speed = -speed
	}

	w.Saucer = &Saucer{
		X: x, Y: y,
		VX: speed, VY: 0,
		Size:         size,
		FireCooldown: rng.NextRange(SaucerFireCooldownMin, SaucerFireCooldownMax),
		DriftTimer:   rng.NextRange(SaucerDriftTimerMin, SaucerDriftTimerMax),
	}
}

// fireShipBullet appends a new bullet from the ship's nose in its facing
// direction, inheriting the ship's velocity (matching the teacher's
// SpawnBullet vector addition).
func fireShipBullet(w *World) {
	dx, dy := fixedpoint.Displace(w.Ship.Angle, int32(ShipRadiusPx))
	bvx, bvy := fixedpoint.VelocityFromAngle(w.Ship.Angle, ShipBulletSpeedQ8_8)
	w.Bullets = append(w.Bullets, Bullet{
		X: w.Ship.X + dx, Y: w.Ship.Y + dy,
		VX: w.Ship.VX + bvx, VY: w.Ship.VY + bvy,
		LifeLeft: ShipBulletLifetimeFrames,
	})
	w.Ship.FireCooldown = ShipBulletCooldownFrames
}

// fireSaucerBullet appends a new saucer bullet aimed at the ship if
// small, or in a uniformly random direction if large — matching the
// teacher's SaucerAISystem aiming behavior.
func fireSaucerBullet(w *World, rng *prng.Xorshift32) {
	s := w.Saucer
	var angle uint8
	if s.Size == SaucerSmall {
		dx := fixedpoint.ShortestDelta(s.X, w.Ship.X, WorldWidthQ12_4)
		dy := fixedpoint.ShortestDelta(s.Y, w.Ship.Y, WorldHeightQ12_4)
		angle = fixedpoint.Atan2BAM(dy, dx)
	} else {
		angle = uint8(rng.NextRange(0, int32(fixedpoint.BAMFull)))
	}
	vx, vy := fixedpoint.VelocityFromAngle(angle, SaucerBulletSpeedQ8_8)
	w.SaucerBullets = append(w.SaucerBullets, Bullet{
		X: s.X, Y: s.Y,
		VX: vx, VY: vy,
		LifeLeft: SaucerBulletLifetime,
	})
	s.FireCooldown = rng.NextRange(SaucerFireCooldownMin, SaucerFireCooldownMax)
}
