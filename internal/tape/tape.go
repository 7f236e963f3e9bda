// Package tape implements the binary container format a play session is
// recorded into: a fixed header, one input byte per simulated frame, and
// a footer carrying the claimed final state and a CRC-32 over the header
// and input body (the footer's score and RNG fields are not covered).
// Parse and Serialize are exact inverses.
package tape

import "encoding/binary"

// Magic is the four-byte format tag, read and written as a little-endian
// uint32.
const Magic uint32 = 0x5A4B5450

// Version identifies the header layout. V1 has no claimant address; V2
// appends one. Parsing V1 is rejected unless AllowV1 is set — see
// Options — per the spec's guidance to target V2 by default.
const (
	V1 uint16 = 1
	V2 uint16 = 2
)

const (
	headerBaseSize = 4 + 1 + 3 + 4 + 4 // magic, version, reserved[3], seed, frame_count
	claimantSize   = 56
	headerV2Size   = headerBaseSize + claimantSize
	footerSize     = 4 + 4 + 4 // final_score, final_rng_state, crc32
)

// Header is the parsed fixed-size prefix of a tape.
type Header struct {
	Version     uint16
	Seed        uint32
	FrameCount  uint32
	Claimant    [claimantSize]byte // zero value for V1
	HasClaimant bool
}

// Footer is the parsed fixed-size suffix of a tape.
type Footer struct {
	FinalScore    uint32
	FinalRNGState uint32
	CRC32         uint32
}

// Tape is a fully parsed and structurally validated tape: header, one
// decoded input byte per frame, and footer.
type Tape struct {
	Header Header
	Inputs []byte // len == Header.FrameCount, low nibble only
	Footer Footer
}

// ClaimantString returns the claimant address as a string, or "" if the
// tape carries no claimant (V1, or a V2 tape with an all-zero field).
func (t *Tape) ClaimantString() string {
	if !t.Header.HasClaimant || t.Header.Claimant == [claimantSize]byte{} {
		return ""
	}
	return string(t.Header.Claimant[:])
}

func putHeaderBase(buf []byte, h Header) {
	binary.LittleEndian.PutUint32(buf[0:4], Magic)
	buf[4] = byte(h.Version)
	buf[5], buf[6], buf[7] = 0, 0, 0
	binary.LittleEndian.PutUint32(buf[8:12], h.Seed)
	binary.LittleEndian.PutUint32(buf[12:16], h.FrameCount)
}
