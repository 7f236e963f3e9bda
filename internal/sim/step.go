package sim

import (
	"github.com/kalepail/asteroids-zk-core/internal/fixedpoint"
	"github.com/kalepail/asteroids-zk-core/internal/prng"
)

// violationFor reports the first rule an input would break against the
// current world state, or RuleNone if applying it is legal. It never
// mutates w.
func violationFor(w *World, in Input) RuleCode {
	if !w.Ship.Alive {
		if in.Thrust || in.Left || in.Right || in.Fire {
			return RuleInputWhileUncontrollable
		}
		return RuleNone
	}
	if in.Fire {
		if w.Ship.FireCooldown > 0 {
			return RuleFireDuringCooldown
		}
		if len(w.Bullets) >= ShipBulletLimit {
			return RuleBulletLimitExceeded
		}
	}
	return RuleNone
}

// step advances the world by exactly one frame, applying in. The
// numbered phases below (8-10 run inside the collision helpers; rule
// checks run before step, in violationFor) are never reordered: their sequence,
// and the exact points at which rng is consulted, is the replay
// contract — any change here is a breaking rules change and must bump
// RulesDigest.
func step(w *World, rng *prng.Xorshift32, in Input) {
	if w.GameOver {
		return
	}

	// 1. Frame counter and per-entity timer decrements.
	w.FrameCount++
	if w.Ship.InvulnerableFor > 0 {
		w.Ship.InvulnerableFor--
	}
	if w.Ship.FireCooldown > 0 {
		w.Ship.FireCooldown--
	}
	if !w.Ship.Alive && w.Ship.RespawnIn > 0 {
		w.Ship.RespawnIn--
	}
	for i := range w.Bullets {
		w.Bullets[i].LifeLeft--
	}
	for i := range w.SaucerBullets {
		w.SaucerBullets[i].LifeLeft--
	}
	if w.Saucer != nil && w.Saucer.FireCooldown > 0 {
		w.Saucer.FireCooldown--
	}
	if w.Saucer != nil && w.Saucer.DriftTimer > 0 {
		w.Saucer.DriftTimer--
	}
	if w.SaucerSpawnIn > 0 {
		w.SaucerSpawnIn--
	}

	// 2. Respawn logic.
	if !w.Ship.Alive && w.Ship.RespawnIn == 0 && w.Lives > 0 {
		spawnShip(w)
	}

	// 3. Apply ship input while controllable: rotate, thrust, fire, drag,
	// clamp — in that order, so a bullet fired this frame inherits the
	// ship's velocity before drag and speed clamping are applied to it.
	if w.Ship.Alive {
		if in.Left {
			w.Ship.Angle -= uint8(ShipTurnSpeedBAM)
		}
		if in.Right {
			w.Ship.Angle += uint8(ShipTurnSpeedBAM)
		}
		if in.Thrust {
			tx, ty := fixedpoint.VelocityFromAngle(w.Ship.Angle, ShipThrustQ8_8)
			w.Ship.VX += tx
			w.Ship.VY += ty
		}
		if in.Fire && w.Ship.FireCooldown == 0 && len(w.Bullets) < ShipBulletLimit {
			fireShipBullet(w)
		}
		w.Ship.VX = fixedpoint.ApplyDrag(w.Ship.VX)
		w.Ship.VY = fixedpoint.ApplyDrag(w.Ship.VY)
		w.Ship.VX, w.Ship.VY = fixedpoint.ClampSpeed(w.Ship.VX, w.Ship.VY, ShipMaxSpeedSqQ16_16)
	}

	// 4. Integrate positions: ship and all projectiles.
	if w.Ship.Alive {
		w.Ship.X = fixedpoint.WrapX(w.Ship.X+velToPos(w.Ship.VX), WorldWidthQ12_4)
		w.Ship.Y = fixedpoint.WrapY(w.Ship.Y+velToPos(w.Ship.VY), WorldHeightQ12_4)
	}
	for i := range w.Bullets {
		b := &w.Bullets[i]
		b.X = fixedpoint.WrapX(b.X+velToPos(b.VX), WorldWidthQ12_4)
		b.Y = fixedpoint.WrapY(b.Y+velToPos(b.VY), WorldHeightQ12_4)
	}
	for i := range w.SaucerBullets {
		b := &w.SaucerBullets[i]
		b.X = fixedpoint.WrapX(b.X+velToPos(b.VX), WorldWidthQ12_4)
		b.Y = fixedpoint.WrapY(b.Y+velToPos(b.VY), WorldHeightQ12_4)
	}

	// 5. Advance asteroids, then saucers (spawn, fire, move).
	for i := range w.Asteroids {
		a := &w.Asteroids[i]
		a.X = fixedpoint.WrapX(a.X+velToPos(a.VX), WorldWidthQ12_4)
		a.Y = fixedpoint.WrapY(a.Y+velToPos(a.VY), WorldHeightQ12_4)
		a.Angle = uint8(int32(a.Angle) + a.Spin)
	}
	if w.Saucer == nil && w.SaucerSpawnIn <= 0 {
		spawnSaucer(w, rng)
	}
	if w.Saucer != nil {
		s := w.Saucer
		if s.FireCooldown == 0 {
			fireSaucerBullet(w, rng)
		}
		if s.DriftTimer == 0 {
			s.VY = rng.NextRange(-1, 2) * SaucerDriftSpeedQ8_8
			s.DriftTimer = rng.NextRange(SaucerDriftTimerMin, SaucerDriftTimerMax)
		}
		s.X += velToPos(s.VX)
		s.Y = fixedpoint.WrapY(s.Y+velToPos(s.VY), WorldHeightQ12_4)
		if s.X < -32*fixedpoint.PosScale || s.X > WorldWidthQ12_4+32*fixedpoint.PosScale {
			w.Saucer = nil
			w.SaucerSpawnIn = rng.NextRange(SaucerSpawnMinFrames, SaucerSpawnMaxFrames)
		}
	}

	// 6. Drop expired projectiles.
	w.Bullets = compactBullets(w.Bullets)
	w.SaucerBullets = compactBullets(w.SaucerBullets)

	// 7. Collision resolution, in fixed order.
	resolveShipBulletsVsAsteroids(w, rng)
	resolveShipBulletsVsSaucer(w, rng)
	resolveSaucerBulletsVsShip(w)
	resolveSaucerVsShip(w)
	resolveAsteroidsVsShip(w)

	// 11. Extra life check.
	for w.Score >= w.NextLifeAt {
		w.Lives++
		w.NextLifeAt += ExtraLifeScoreStep
	}

	// 12. Wave transition.
	if len(w.Asteroids) == 0 && w.Saucer == nil {
		w.Wave++
		spawnWave(w, rng)
	}

	// 13. Anti-lurk.
	w.LurkTimer++
	if w.LurkTimer >= LurkTimeThresholdFrames && w.SaucerSpawnIn > LurkSaucerSpawnFastFrames {
		w.SaucerSpawnIn = LurkSaucerSpawnFastFrames
	}
}

// velToPos converts a Q8.8 velocity into a Q12.4 per-frame displacement.
func velToPos(vQ8_8 int32) int32 {
	return (vQ8_8 * fixedpoint.PosScale) / fixedpoint.VelScale
}

func compactBullets(bs []Bullet) []Bullet {
	out := bs[:0]
	for _, b := range bs {
		if b.LifeLeft > 0 {
			out = append(out, b)
		}
	}
	return out
}

// resolveShipBulletsVsAsteroids destroys any asteroid hit by a ship
// bullet, consuming the bullet, awarding score, and splitting the
// asteroid (steps 7 and 8 combined for this pair).
func resolveShipBulletsVsAsteroids(w *World, rng *prng.Xorshift32) {
	survivingBullets := w.Bullets[:0]
bullets:
	for _, b := range w.Bullets {
		for ai := 0; ai < len(w.Asteroids); ai++ {
			a := w.Asteroids[ai]
			if overlaps(b.X, b.Y, ShipBulletRadiusPx, a.X, a.Y, AsteroidRadiusPx(a.Size)) {
				w.Score += AsteroidScore(a.Size)
				children := splitAsteroid(rng, a)
				w.Asteroids = append(w.Asteroids[:ai], w.Asteroids[ai+1:]...)
				if len(w.Asteroids)+len(children) <= AsteroidCap {
					w.Asteroids = append(w.Asteroids, children...)
				}
				w.LurkTimer = 0
				continue bullets
			}
		}
		survivingBullets = append(survivingBullets, b)
	}
	w.Bullets = survivingBullets
}

// resolveShipBulletsVsSaucer destroys the saucer if a ship bullet hits
// it, consuming the bullet, awarding score, and resetting the spawn
// timer (steps 7 and 9 combined for this pair).
func resolveShipBulletsVsSaucer(w *World, rng *prng.Xorshift32) {
	if w.Saucer == nil {
		return
	}
	s := w.Saucer
	survivingBullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		if w.Saucer != nil && overlaps(b.X, b.Y, ShipBulletRadiusPx, s.X, s.Y, saucerRadiusPx(s.Size)) {
			if s.Size == SaucerSmall {
				w.Score += ScoreSmallSaucer
			} else {
				w.Score += ScoreLargeSaucer
			}
			w.Saucer = nil
			w.SaucerSpawnIn = rng.NextRange(SaucerSpawnMinFrames, SaucerSpawnMaxFrames)
			w.LurkTimer = 0
			continue
		}
		survivingBullets = append(survivingBullets, b)
	}
	w.Bullets = survivingBullets
}

// resolveSaucerBulletsVsShip kills the ship if an invulnerable-free ship
// is hit by a saucer bullet (step 7, ship destruction deferred to the
// shared killShip helper which implements step 10).
func resolveSaucerBulletsVsShip(w *World) {
	if !w.Ship.Alive || w.Ship.InvulnerableFor > 0 {
		return
	}
	survivors := w.SaucerBullets[:0]
	hit := false
	for _, b := range w.SaucerBullets {
		if !hit && overlaps(b.X, b.Y, ShipBulletRadiusPx, w.Ship.X, w.Ship.Y, ShipRadiusPx) {
			hit = true
			continue
		}
		survivors = append(survivors, b)
	}
	w.SaucerBullets = survivors
	if hit {
		killShip(w)
	}
}

// resolveSaucerVsShip destroys both the ship and the saucer on direct
// contact.
func resolveSaucerVsShip(w *World) {
	if w.Saucer == nil || !w.Ship.Alive || w.Ship.InvulnerableFor > 0 {
		return
	}
	s := w.Saucer
	if overlaps(w.Ship.X, w.Ship.Y, ShipRadiusPx, s.X, s.Y, saucerRadiusPx(s.Size)) {
		w.Saucer = nil
		killShip(w)
	}
}

// resolveAsteroidsVsShip destroys the ship on contact with any
// asteroid. The asteroid itself survives the collision (only bullets
// destroy asteroids), matching classic Asteroids behavior.
func resolveAsteroidsVsShip(w *World) {
	if !w.Ship.Alive || w.Ship.InvulnerableFor > 0 {
		return
	}
	for _, a := range w.Asteroids {
		if overlaps(w.Ship.X, w.Ship.Y, ShipRadiusPx, a.X, a.Y, AsteroidRadiusPx(a.Size)) {
			killShip(w)
			return
		}
	}
}

// killShip implements step 10: the ship is destroyed, a life is spent,
// and either a respawn timer starts or the game ends.
func killShip(w *World) {
	w.Ship.Alive = false
	w.Ship.VX, w.Ship.VY = 0, 0
	w.Lives--
	if w.Lives > 0 {
		w.Ship.RespawnIn = ShipRespawnFrames
	} else {
		w.GameOver = true
	}
}
