package tape

import (
	"encoding/binary"
	"hash/crc32"
)

// AbsoluteMaxFrameCount bounds FrameCount against a structurally
// nonsensical value before any game-specific frame budget is applied by
// a caller (that check happens one layer up, in verify, against the
// caller-supplied max_frames).
const AbsoluteMaxFrameCount = 1_000_000

// Options controls how lenient Parse is.
type Options struct {
	// AllowV1 permits parsing a V1 (no claimant) tape. Per the format's
	// own guidance, implementations should target V2 and reject V1
	// unless a caller opts in explicitly.
	AllowV1 bool
}

// Parse validates and decodes a tape's binary representation. It
// performs every structural check the format defines, including the
// CRC-32 over the header and input body (the score/rng footer fields
// are not covered by the checksum), before returning a Tape whose
// fields can be trusted by a caller that does not want to re-validate
// them.
func Parse(data []byte, opts Options) (*Tape, error) {
	if len(data) < headerBaseSize+footerSize {
		return nil, newErr(ErrTapeTooShort, "shorter than the minimum header+footer size")
	}

	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != Magic {
		return nil, newErr(ErrInvalidMagic, "magic does not match")
	}

	version := uint16(data[4])
	if data[5] != 0 || data[6] != 0 || data[7] != 0 {
		return nil, newErr(ErrHeaderReservedNonZero, "header reserved bytes must be zero")
	}

	var headerSize int
	hasClaimant := false
	switch version {
	case V1:
		if !opts.AllowV1 {
			return nil, newErr(ErrUnsupportedVersion, "v1 tapes are rejected unless AllowV1 is set")
		}
		headerSize = headerBaseSize
	case V2:
		headerSize = headerV2Size
		hasClaimant = true
	default:
		return nil, newErr(ErrUnsupportedVersion, "unrecognized version")
	}

	if len(data) < headerSize+footerSize {
		return nil, newErr(ErrTapeTooShort, "shorter than header+footer for this version")
	}

	seed := binary.LittleEndian.Uint32(data[8:12])
	frameCount := binary.LittleEndian.Uint32(data[12:16])
	if frameCount == 0 || frameCount > AbsoluteMaxFrameCount {
		return nil, newErr(ErrFrameCountOutOfRange, "frame count is zero or implausibly large")
	}

	expectedLen := headerSize + int(frameCount) + footerSize
	if len(data) != expectedLen {
		return nil, newErr(ErrTapeLengthMismatch, "tape length does not match header+body+footer")
	}

	header := Header{Version: version, Seed: seed, FrameCount: frameCount, HasClaimant: hasClaimant}
	if hasClaimant {
		copy(header.Claimant[:], data[headerBaseSize:headerV2Size])
		if err := ValidateClaimant(header.Claimant); err != nil {
			return nil, newErr(ErrInvalidClaimantAddress, err.Error())
		}
	}

	bodyStart := headerSize
	bodyEnd := bodyStart + int(frameCount)
	body := data[bodyStart:bodyEnd]
	inputs := make([]byte, frameCount)
	for i, b := range body {
		if b&0xF0 != 0 {
			return nil, newFrameErr(ErrReservedInputBitsNonZero, i, "high nibble of input byte must be zero")
		}
		inputs[i] = b
	}

	footerStart := bodyEnd
	finalScore := binary.LittleEndian.Uint32(data[footerStart : footerStart+4])
	finalRNG := binary.LittleEndian.Uint32(data[footerStart+4 : footerStart+8])
	storedCRC := binary.LittleEndian.Uint32(data[footerStart+8 : footerStart+12])

	computedCRC := crc32.ChecksumIEEE(data[:footerStart])
	if computedCRC != storedCRC {
		return nil, newErr(ErrCrcMismatch, "crc-32 does not match tape contents")
	}

	return &Tape{
		Header: header,
		Inputs: inputs,
		Footer: Footer{FinalScore: finalScore, FinalRNGState: finalRNG, CRC32: storedCRC},
	}, nil
}
