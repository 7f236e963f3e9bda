package sim

// Snapshot is a read-only, defensively-copied view of one frame's world
// state, for autopilot and inspection consumers. It mirrors the shape of
// the teacher's observation extraction, generalized from floats to the
// simulator's native fixed-point units rather than flattened into a
// neural-net input vector.
type Snapshot struct {
	FrameCount uint32
	Score      uint32
	Lives      int32
	Wave       int32
	GameOver   bool

	Ship ShipView

	Asteroids     []AsteroidView
	Bullets       []BulletView
	SaucerBullets []BulletView
	Saucer        *SaucerView
}

// ShipView is the ship's public state.
type ShipView struct {
	X, Y            int32
	VX, VY          int32
	Angle           uint8
	Alive           bool
	InvulnerableFor int32
	FireCooldown    int32
}

// AsteroidView is one asteroid's public state.
type AsteroidView struct {
	X, Y   int32
	VX, VY int32
	Size   AsteroidSize
}

// BulletView is one projectile's public state.
type BulletView struct {
	X, Y     int32
	VX, VY   int32
	LifeLeft int32
}

// SaucerView is the active saucer's public state, if any.
type SaucerView struct {
	X, Y   int32
	VX, VY int32
	Size   SaucerSize
}

func newSnapshot(w *World) Snapshot {
	snap := Snapshot{
		FrameCount: w.FrameCount,
		Score:      w.Score,
		Lives:      w.Lives,
		Wave:       w.Wave,
		GameOver:   w.GameOver,
		Ship: ShipView{
			X: w.Ship.X, Y: w.Ship.Y,
			VX: w.Ship.VX, VY: w.Ship.VY,
			Angle:           w.Ship.Angle,
			Alive:           w.Ship.Alive,
			InvulnerableFor: w.Ship.InvulnerableFor,
			FireCooldown:    w.Ship.FireCooldown,
		},
	}

	if len(w.Asteroids) > 0 {
		snap.Asteroids = make([]AsteroidView, len(w.Asteroids))
		for i, a := range w.Asteroids {
			snap.Asteroids[i] = AsteroidView{X: a.X, Y: a.Y, VX: a.VX, VY: a.VY, Size: a.Size}
		}
	}
	if len(w.Bullets) > 0 {
		snap.Bullets = make([]BulletView, len(w.Bullets))
		for i, b := range w.Bullets {
			snap.Bullets[i] = BulletView{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, LifeLeft: b.LifeLeft}
		}
	}
	if len(w.SaucerBullets) > 0 {
		snap.SaucerBullets = make([]BulletView, len(w.SaucerBullets))
		for i, b := range w.SaucerBullets {
			snap.SaucerBullets[i] = BulletView{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, LifeLeft: b.LifeLeft}
		}
	}
	if w.Saucer != nil {
		snap.Saucer = &SaucerView{X: w.Saucer.X, Y: w.Saucer.Y, VX: w.Saucer.VX, VY: w.Saucer.VY, Size: w.Saucer.Size}
	}

	return snap
}
