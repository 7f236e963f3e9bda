package fixedpoint

// Scale constants for the fixed-point formats used throughout the
// simulator. Names mirror the Q-notation used in the spec: PosScale turns
// a pixel coordinate into Q12.4, VelScale turns px/frame into Q8.8.
const (
	PosScale = 16  // Q12.4: 1 px = 16 units
	VelScale = 256 // Q8.8: 1 px/frame = 256 units

	// BAMFull is the number of BAM units in one full turn.
	BAMFull = 256

	// FacingUpBAM is the BAM angle pointing straight up (-90 degrees).
	FacingUpBAM uint8 = 192
)

// SinBAM returns sin(angle) in Q0.14, looked up from a precomputed table.
func SinBAM(angle uint8) int32 {
	return sinTable[angle]
}

// CosBAM returns cos(angle) in Q0.14, looked up from a precomputed table.
func CosBAM(angle uint8) int32 {
	return cosTable[angle]
}

// Atan2BAM computes the BAM angle of the vector (dx, dy), in [0, 256).
// It never touches floating point: octant decomposition plus a 33-entry
// lookup over round(atan(i/32) * 128/pi).
func Atan2BAM(dy, dx int32) uint8 {
	if dx == 0 && dy == 0 {
		return 0
	}

	absDx := abs32(dx)
	absDy := abs32(dy)

	var ratio int32
	var swapped bool
	if absDx >= absDy {
		if absDx != 0 {
			ratio = (absDy * 32) / absDx
		}
		swapped = false
	} else {
		if absDy != 0 {
			ratio = (absDx * 32) / absDy
		}
		swapped = true
	}
	if ratio > 32 {
		ratio = 32
	}

	angle := atanTable[ratio]
	if swapped {
		angle = 64 - angle
	}
	if dx < 0 {
		angle = 128 - angle
	}
	if dy < 0 {
		angle = (256 - angle) & 0xFF
	}

	return uint8(angle & 0xFF)
}

// VelocityFromAngle returns the Q8.8 velocity components for a BAM angle
// and a Q8.8 speed: (cos*s)>>14, (sin*s)>>14.
func VelocityFromAngle(angle uint8, speedQ8_8 int32) (vx, vy int32) {
	vx = (CosBAM(angle) * speedQ8_8) >> 14
	vy = (SinBAM(angle) * speedQ8_8) >> 14
	return vx, vy
}

// Displace returns the Q12.4 displacement for a BAM angle and a pixel
// distance: (cos*dist)>>10, (sin*dist)>>10.
func Displace(angle uint8, distPx int32) (dx, dy int32) {
	dx = (CosBAM(angle) * distPx) >> 10
	dy = (SinBAM(angle) * distPx) >> 10
	return dx, dy
}

// ApplyDrag returns v - (v>>7) using an arithmetic right shift, so it
// behaves correctly for negative v as well as positive.
func ApplyDrag(v int32) int32 {
	return v - (v >> 7)
}

// ClampSpeed clamps (vx, vy) so that vx*vx+vy*vy <= maxSqQ16_16, by
// iteratively scaling both components by 3/4 until within bound.
// (v*3)>>2 shrinks every positive component to 0 and every negative one
// down to a value in [-3, -1], where it stays; the loop therefore
// terminates whenever maxSqQ16_16 >= 18 (true for ShipMaxSpeedSqQ16_16).
func ClampSpeed(vx, vy, maxSqQ16_16 int32) (int32, int32) {
	speedSq := vx*vx + vy*vy
	for speedSq > maxSqQ16_16 {
		vx = (vx * 3) >> 2
		vy = (vy * 3) >> 2
		speedSq = vx*vx + vy*vy
	}
	return vx, vy
}

// WrapX wraps a Q12.4 x coordinate into [0, widthQ12_4).
func WrapX(x, widthQ12_4 int32) int32 {
	return wrapMod(x, widthQ12_4)
}

// WrapY wraps a Q12.4 y coordinate into [0, heightQ12_4).
func WrapY(y, heightQ12_4 int32) int32 {
	return wrapMod(y, heightQ12_4)
}

func wrapMod(v, size int32) int32 {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// ShortestDelta returns the signed delta in (-size/2, +size/2] from `from`
// to `to` on a toroidal axis of the given size: the shortest of the two
// ways around the wrap point.
func ShortestDelta(from, to, size int32) int32 {
	d := (to - from) % size
	if d < 0 {
		d += size
	}
	if d > size/2 {
		d -= size
	}
	return d
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
