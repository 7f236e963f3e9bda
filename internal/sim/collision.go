package sim

import "github.com/kalepail/asteroids-zk-core/internal/fixedpoint"

// overlaps reports whether two circles at Q12.4 centers with pixel radii
// intersect, measuring the toroidal (wrap-aware) distance between them so
// entities colliding across the screen edge are still detected.
func overlaps(x1, y1 int32, r1Px int32, x2, y2 int32, r2Px int32) bool {
	dx := fixedpoint.ShortestDelta(x1, x2, WorldWidthQ12_4)
	dy := fixedpoint.ShortestDelta(y1, y2, WorldHeightQ12_4)
	r := (r1Px + r2Px) * fixedpoint.PosScale
	distSq := dx*dx + dy*dy
	return distSq <= r*r
}

func saucerRadiusPx(size SaucerSize) int32 {
	if size == SaucerSmall {
		return SaucerRadiusSmallPx
	}
	return SaucerRadiusLargePx
}
