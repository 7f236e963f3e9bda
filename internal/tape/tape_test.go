package tape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripV1(t *testing.T) {
	inputs := []byte{0x01, 0x02, 0x00, 0x0F, 0x08}
	raw := Serialize(12345, inputs, 4200, 0xCAFEBABE)

	tp, err := Parse(raw, Options{AllowV1: true})
	require.NoError(t, err)
	require.Equal(t, V1, tp.Header.Version)
	require.Equal(t, uint32(12345), tp.Header.Seed)
	require.Equal(t, inputs, tp.Inputs)
	require.Equal(t, uint32(4200), tp.Footer.FinalScore)
	require.Equal(t, uint32(0xCAFEBABE), tp.Footer.FinalRNGState)
	require.False(t, tp.Header.HasClaimant)
}

func TestV1RejectedByDefault(t *testing.T) {
	raw := Serialize(1, []byte{0x00}, 0, 0)
	_, err := Parse(raw, Options{})
	require.Error(t, err)
	var tErr *Error
	require.ErrorAs(t, err, &tErr)
	require.Equal(t, ErrUnsupportedVersion, tErr.Code)
}

func TestRoundTripV2WithClaimant(t *testing.T) {
	var claimant [56]byte
	copy(claimant[:], "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF")
	inputs := []byte{0x04, 0x04, 0x02}
	raw := SerializeV2(99, inputs, 10, 555, claimant)

	tp, err := Parse(raw, Options{})
	require.NoError(t, err)
	require.Equal(t, V2, tp.Header.Version)
	require.True(t, tp.Header.HasClaimant)
	require.Equal(t, string(claimant[:]), tp.ClaimantString())
}

func TestCorruptedByteFailsCRC(t *testing.T) {
	raw := Serialize(1, []byte{0x01, 0x02, 0x04}, 100, 7)
	raw[len(raw)-footerSize-1] ^= 0x01 // flip a body byte after CRC was computed

	_, err := Parse(raw, Options{AllowV1: true})
	require.Error(t, err)
	var tErr *Error
	require.ErrorAs(t, err, &tErr)
	require.Equal(t, ErrCrcMismatch, tErr.Code)
}

func TestReservedInputBitsRejected(t *testing.T) {
	raw := Serialize(1, []byte{0x01}, 0, 0)
	raw[headerBaseSize] = 0xF1 // set the reserved high nibble directly

	_, err := Parse(raw, Options{AllowV1: true})
	require.Error(t, err)
	var tErr *Error
	require.ErrorAs(t, err, &tErr)
	require.Equal(t, ErrReservedInputBitsNonZero, tErr.Code)
	require.Equal(t, 0, tErr.Frame)
}

func TestTruncatedTapeRejected(t *testing.T) {
	raw := Serialize(1, []byte{0x01, 0x02, 0x03}, 0, 0)
	_, err := Parse(raw[:len(raw)-2], Options{AllowV1: true})
	require.Error(t, err)
}

func TestInvalidMagicRejected(t *testing.T) {
	raw := Serialize(1, []byte{0x01}, 0, 0)
	raw[0] ^= 0xFF
	_, err := Parse(raw, Options{AllowV1: true})
	require.Error(t, err)
	var tErr *Error
	require.ErrorAs(t, err, &tErr)
	require.Equal(t, ErrInvalidMagic, tErr.Code)
}

func TestZeroFrameCountRejected(t *testing.T) {
	raw := Serialize(1, nil, 0, 0)
	_, err := Parse(raw, Options{AllowV1: true})
	require.Error(t, err)
	var tErr *Error
	require.ErrorAs(t, err, &tErr)
	require.Equal(t, ErrFrameCountOutOfRange, tErr.Code)
}

func TestValidateClaimantRejectsBadPrefix(t *testing.T) {
	var c [56]byte
	copy(c[:], "XAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF")
	err := ValidateClaimant(c)
	require.Error(t, err)
	var cErr *ClaimantError
	require.ErrorAs(t, err, &cErr)
	require.Equal(t, ClaimantInvalidPrefix, cErr.Kind)
}

func TestValidateClaimantAcceptsAllZero(t *testing.T) {
	var c [56]byte
	require.NoError(t, ValidateClaimant(c))
}
