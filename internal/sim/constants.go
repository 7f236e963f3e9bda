package sim

import "github.com/kalepail/asteroids-zk-core/internal/fixedpoint"

// RulesDigest identifies the exact semantics implemented by this package —
// entity order, arithmetic, collision order, PRNG draw order, spawn rules,
// and scoring tables. It must change whenever any of those change; it is
// carried unmodified into the verification journal.
const RulesDigest uint32 = 0x41535431 // "AST1"

// World dimensions, pixels and Q12.4.
const (
	WorldWidthPx  int32 = 960
	WorldHeightPx int32 = 720

	WorldWidthQ12_4  int32 = WorldWidthPx * fixedpoint.PosScale
	WorldHeightQ12_4 int32 = WorldHeightPx * fixedpoint.PosScale
)

// Game bookkeeping.
const (
	StartingLives          int32  = 3
	ExtraLifeScoreStep     uint32 = 10_000
	MaxFramesDefault       uint32 = 18_000 // five minutes at 60fps
	InitialWaveAsteroids   int32  = 4
	SpawnSafeDistanceQ12_4 int32  = 120 * fixedpoint.PosScale
)

// Ship.
const (
	ShipRadiusPx             int32 = 14
	ShipTurnSpeedBAM         int32 = 3
	ShipThrustQ8_8           int32 = 20
	ShipMaxSpeedQ8_8         int32 = 1451
	ShipMaxSpeedSqQ16_16     int32 = ShipMaxSpeedQ8_8 * ShipMaxSpeedQ8_8
	ShipRespawnFrames        int32 = 75
	ShipInvulnerableFrames   int32 = 120
	ShipBulletLimit          int   = 4
	ShipBulletCooldownFrames int32 = 10
	ShipBulletLifetimeFrames int32 = 51
	ShipBulletSpeedQ8_8      int32 = 2219
	ShipBulletRadiusPx       int32 = 2
)

// Asteroids.
const (
	AsteroidCap int = 27

	AsteroidRadiusLargePx  int32 = 48
	AsteroidRadiusMediumPx int32 = 28
	AsteroidRadiusSmallPx  int32 = 16
)

// Asteroid speed ranges, Q8.8, [min, max).
var (
	AsteroidSpeedLargeQ8_8  = [2]int32{145, 248}
	AsteroidSpeedMediumQ8_8 = [2]int32{265, 401}
	AsteroidSpeedSmallQ8_8  = [2]int32{418, 606}
)

// Saucers.
const (
	MaxActiveSaucers        int   = 1
	SaucerBulletCap         int   = 8
	SaucerRadiusLargePx     int32 = 22
	SaucerRadiusSmallPx     int32 = 16
	SaucerBulletLifetime    int32 = 84
	SaucerBulletSpeedQ8_8   int32 = 1195
	SaucerSpeedSmallQ8_8    int32 = 405
	SaucerSpeedLargeQ8_8    int32 = 299
	SaucerSpawnMinFrames    int32 = 420
	SaucerSpawnMaxFrames    int32 = 840
	SaucerFireCooldownMin   int32 = 60
	SaucerFireCooldownMax   int32 = 150
	SaucerDriftTimerMin     int32 = 60
	SaucerDriftTimerMax     int32 = 180
	SaucerDriftSpeedQ8_8    int32 = 205 // ~0.8 px/frame in Q8.8
)

// Scoring.
const (
	ScoreLargeAsteroid  uint32 = 20
	ScoreMediumAsteroid uint32 = 50
	ScoreSmallAsteroid  uint32 = 100
	ScoreLargeSaucer    uint32 = 200
	ScoreSmallSaucer    uint32 = 1000
)

// Anti-lurk.
const (
	LurkTimeThresholdFrames   int32 = 360
	LurkSaucerSpawnFastFrames int32 = 180
)

// AsteroidSpeedRange returns the [min, max) Q8.8 speed range for a size.
func AsteroidSpeedRange(size AsteroidSize) [2]int32 {
	switch size {
	case SizeLarge:
		return AsteroidSpeedLargeQ8_8
	case SizeMedium:
		return AsteroidSpeedMediumQ8_8
	default:
		return AsteroidSpeedSmallQ8_8
	}
}

// AsteroidRadiusPx returns the pixel radius for a size.
func AsteroidRadiusPx(size AsteroidSize) int32 {
	switch size {
	case SizeLarge:
		return AsteroidRadiusLargePx
	case SizeMedium:
		return AsteroidRadiusMediumPx
	default:
		return AsteroidRadiusSmallPx
	}
}

// AsteroidScore returns the score awarded for destroying an asteroid of
// the given size.
func AsteroidScore(size AsteroidSize) uint32 {
	switch size {
	case SizeLarge:
		return ScoreLargeAsteroid
	case SizeMedium:
		return ScoreMediumAsteroid
	default:
		return ScoreSmallAsteroid
	}
}
