package sim

// Input is a single frame's decoded control input. The wire form is one
// byte per frame, low nibble only; ToByte/InputFromByte round-trip it.
// ToByte never sets the reserved high nibble and InputFromByte ignores it.
type Input struct {
	Thrust bool
	Left   bool
	Right  bool
	Fire   bool
}

const (
	bitThrust byte = 1 << 0
	bitLeft   byte = 1 << 1
	bitRight  byte = 1 << 2
	bitFire   byte = 1 << 3
)

// ToByte packs the input into the low nibble of a tape byte.
func (in Input) ToByte() byte {
	var b byte
	if in.Thrust {
		b |= bitThrust
	}
	if in.Left {
		b |= bitLeft
	}
	if in.Right {
		b |= bitRight
	}
	if in.Fire {
		b |= bitFire
	}
	return b
}

// InputFromByte unpacks a tape byte into an Input. It does not check the
// reserved high nibble; callers that must enforce that (tape parsing)
// check it separately so the error can carry the tape-specific context.
func InputFromByte(b byte) Input {
	return Input{
		Thrust: b&bitThrust != 0,
		Left:   b&bitLeft != 0,
		Right:  b&bitRight != 0,
		Fire:   b&bitFire != 0,
	}
}

// Legal enumerates every combination of the four control bits in a fixed,
// deterministic order. Index i corresponds to byte value i for i in
// [0,16), since the four bits are exactly the low nibble.
var Legal = func() [16]byte {
	var all [16]byte
	for i := range all {
		all[i] = byte(i)
	}
	return all
}()
