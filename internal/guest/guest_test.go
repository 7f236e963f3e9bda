package guest

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalepail/asteroids-zk-core/internal/sim"
	"github.com/kalepail/asteroids-zk-core/internal/tape"
)

func frameInput(maxFrames uint32, raw []byte) []byte {
	var buf bytes.Buffer
	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], maxFrames)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(raw)))
	buf.Write(header[:])
	buf.Write(raw)
	if pad := (4 - len(raw)%4) % 4; pad != 0 {
		buf.Write(make([]byte, pad))
	}
	return buf.Bytes()
}

func TestRunCommitsJournalForHonestTape(t *testing.T) {
	s := sim.New(77)
	inputs := make([]byte, 30)
	for i := range inputs {
		require.NoError(t, s.StepStrict(sim.Input{}))
	}
	result := s.Result()
	var noClaimant [56]byte
	raw := tape.SerializeV2(77, inputs, result.Score, result.RNGState, noClaimant)

	journal, err := Run(bytes.NewReader(frameInput(sim.MaxFramesDefault, raw)))
	require.NoError(t, err)
	require.Equal(t, uint32(77), journal.Seed)
	require.Equal(t, uint32(30), journal.FrameCount)
}

func TestRunRejectsTruncatedHeader(t *testing.T) {
	_, err := Run(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestRunRejectsBadTape(t *testing.T) {
	_, err := Run(bytes.NewReader(frameInput(sim.MaxFramesDefault, []byte{0xDE, 0xAD})))
	require.Error(t, err)
}
