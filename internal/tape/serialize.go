package tape

import (
	"encoding/binary"
	"hash/crc32"
)

// Serialize encodes a V1 tape (no claimant). seed and inputs (low
// nibble only; the high nibble is always written as zero regardless of
// what the caller passes) determine the header and body; finalScore and
// finalRNGState are written into the footer alongside a freshly computed
// CRC-32.
func Serialize(seed uint32, inputs []byte, finalScore, finalRNGState uint32) []byte {
	h := Header{Version: V1, Seed: seed, FrameCount: uint32(len(inputs))}
	return serialize(h, inputs, finalScore, finalRNGState)
}

// SerializeV2 encodes a V2 tape carrying a claimant address. claimant
// must be exactly 56 bytes (use ValidateClaimant first to check it).
func SerializeV2(seed uint32, inputs []byte, finalScore, finalRNGState uint32, claimant [56]byte) []byte {
	h := Header{Version: V2, Seed: seed, FrameCount: uint32(len(inputs)), Claimant: claimant, HasClaimant: true}
	return serialize(h, inputs, finalScore, finalRNGState)
}

func serialize(h Header, inputs []byte, finalScore, finalRNGState uint32) []byte {
	headerSize := headerBaseSize
	if h.HasClaimant {
		headerSize = headerV2Size
	}

	buf := make([]byte, headerSize+len(inputs)+footerSize)
	putHeaderBase(buf, h)
	if h.HasClaimant {
		copy(buf[headerBaseSize:headerV2Size], h.Claimant[:])
	}

	body := buf[headerSize : headerSize+len(inputs)]
	for i, in := range inputs {
		body[i] = in & 0x0F
	}

	footerStart := headerSize + len(inputs)
	// CRC-32 covers only the header and the input body — bytes [0, footerStart) —
	// matching the reference tape.rs, which checksums up to inputs_end and
	// excludes the score/rng footer fields from the covered range.
	crc := crc32.ChecksumIEEE(buf[:footerStart])
	binary.LittleEndian.PutUint32(buf[footerStart:footerStart+4], finalScore)
	binary.LittleEndian.PutUint32(buf[footerStart+4:footerStart+8], finalRNGState)
	binary.LittleEndian.PutUint32(buf[footerStart+8:footerStart+12], crc)

	return buf
}
