package verify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalepail/asteroids-zk-core/internal/sim"
	"github.com/kalepail/asteroids-zk-core/internal/tape"
)

// recordRun drives a simulator for the given inputs and returns a
// serialized tape claiming its actual terminal state, so these tests
// exercise verify.Tape against a self-consistent recording rather than
// hand-computed magic numbers.
func recordRun(t *testing.T, seed uint32, frameCount int) []byte {
	t.Helper()
	s := sim.New(seed)
	inputs := make([]byte, frameCount)
	pattern := []sim.Input{
		{Thrust: true}, {Left: true}, {}, {Fire: true}, {Right: true},
		// Cooldown is 10 frames and a bullet lives 51 frames: one shot
		// every 13 frames keeps at most ShipBulletLimit (4) in flight.
		{}, {}, {}, {}, {}, {}, {}, {},
	}
	for i := range inputs {
		in := pattern[i%len(pattern)]
		require.NoError(t, s.StepStrict(in))
		inputs[i] = in.ToByte()
	}
	result := s.Result()
	return tape.Serialize(seed, inputs, result.Score, result.RNGState)
}

// TestTapeVerifiesIdleGoldenRecording pins the verify pipeline against
// the documented idle-run anchor (seed 0xDEADBEEF, 500 zero-input
// frames, final RNG state 0xDDEC443F) so a divergence in simulation
// order, tape encoding, or the journal's derived fields is caught here
// even if it happens to stay self-consistent.
func TestTapeVerifiesIdleGoldenRecording(t *testing.T) {
	const (
		seed           = 0xDEADBEEF
		frameCount     = 500
		wantRNGState   = 0xDDEC443F
		wantFinalScore = 0
	)
	s := sim.New(seed)
	inputs := make([]byte, frameCount)
	for i := range inputs {
		require.NoError(t, s.StepStrict(sim.Input{}))
		inputs[i] = 0
	}
	result := s.Result()
	require.Equal(t, uint32(wantRNGState), result.RNGState)
	require.Equal(t, uint32(wantFinalScore), result.Score)

	raw := tape.Serialize(seed, inputs, result.Score, result.RNGState)
	journal, err := Tape(raw, Options{AllowV1: true})
	require.NoError(t, err)
	require.Equal(t, uint32(seed), journal.Seed)
	require.Equal(t, uint32(frameCount), journal.FrameCount)
	require.Equal(t, uint32(wantFinalScore), journal.FinalScore)
	require.Equal(t, uint32(wantRNGState), journal.FinalRNGState)
}

// TestTapeVerifiesConsistentRecording exercises the same pipeline
// against a self-consistent (not golden) recording; the scenario-3
// "medium fixture" anchor from the documented test matrix (final_score
// 90, final_rng_state 0xEB0719CE) is not covered here because its raw
// tape bytes were not available to construct the fixture.
func TestTapeVerifiesConsistentRecording(t *testing.T) {
	raw := recordRun(t, 123, 200)
	journal, err := Tape(raw, Options{AllowV1: true})
	require.NoError(t, err)
	require.Equal(t, uint32(123), journal.Seed)
	require.Equal(t, uint32(200), journal.FrameCount)
	require.Equal(t, sim.RulesDigest, journal.RulesDigest)
}

func TestTapeRejectsScoreTampering(t *testing.T) {
	raw := recordRun(t, 5, 50)
	tampered, err := tape.Parse(raw, tape.Options{AllowV1: true})
	require.NoError(t, err)
	forged := tape.Serialize(tampered.Header.Seed, tampered.Inputs, tampered.Footer.FinalScore+1, tampered.Footer.FinalRNGState)

	_, err = Tape(forged, Options{AllowV1: true})
	require.Error(t, err)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, MismatchScore, mismatch.Kind)
}

func TestTapeRejectsFrameCountOverMax(t *testing.T) {
	raw := recordRun(t, 8, 100)
	_, err := Tape(raw, Options{AllowV1: true, MaxFrames: 10})
	require.Error(t, err)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, MismatchFrameCount, mismatch.Kind)
}

func TestTapePropagatesParseErrors(t *testing.T) {
	_, err := Tape([]byte{0x00, 0x01}, Options{})
	require.Error(t, err)
}

func TestTapeRejectsRuleViolatingReplay(t *testing.T) {
	// Two fires back to back violates the cooldown rule; a tape claiming
	// this sequence cannot have been produced by honest play.
	inputs := []byte{0x08, 0x08}
	raw := tape.Serialize(1, inputs, 0, 0)
	_, err := Tape(raw, Options{AllowV1: true})
	require.Error(t, err)
}
