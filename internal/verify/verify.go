// Package verify replays a parsed tape against the simulator and checks
// the claimed terminal state, producing a Journal on success or a
// tagged error identifying exactly what diverged.
package verify

import (
	"fmt"

	"github.com/kalepail/asteroids-zk-core/internal/sim"
	"github.com/kalepail/asteroids-zk-core/internal/tape"
)

// Journal is the public record of a verified run, the payload a zkVM
// guest commits and a host or contract checks against an on-chain claim.
type Journal struct {
	Seed            uint32
	FrameCount      uint32
	FinalScore      uint32
	FinalRNGState   uint32
	TapeChecksum    uint32
	RulesDigest     uint32
	ClaimantAddress string
}

// MismatchKind distinguishes which claimed terminal value failed to
// match the replay.
type MismatchKind uint8

const (
	MismatchFrameCount MismatchKind = iota
	MismatchScore
	MismatchRNGState
)

func (k MismatchKind) String() string {
	switch k {
	case MismatchFrameCount:
		return "frame_count"
	case MismatchScore:
		return "score"
	case MismatchRNGState:
		return "rng_state"
	default:
		return "unknown"
	}
}

// MismatchError reports that the tape's claimed footer value does not
// match what replaying its inputs actually produced.
type MismatchError struct {
	Kind     MismatchKind
	Claimed  uint32
	Computed uint32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: claimed %d, computed %d", e.Kind, e.Claimed, e.Computed)
}

// Options configures a verification run.
type Options struct {
	// MaxFrames bounds how many frames a tape may claim, independent of
	// tape.AbsoluteMaxFrameCount's structural sanity bound. Zero means
	// sim.MaxFramesDefault.
	MaxFrames uint32
	// AllowV1 is forwarded to tape.Parse.
	AllowV1 bool
}

// Tape parses raw, replays it frame by frame under strict rule
// enforcement, and checks the replay's terminal state against the
// tape's claimed footer. On success it returns the Journal a guest
// would commit.
func Tape(raw []byte, opts Options) (*Journal, error) {
	maxFrames := opts.MaxFrames
	if maxFrames == 0 {
		maxFrames = sim.MaxFramesDefault
	}

	tp, err := tape.Parse(raw, tape.Options{AllowV1: opts.AllowV1})
	if err != nil {
		return nil, err
	}

	if tp.Header.FrameCount > maxFrames {
		return nil, &MismatchError{Kind: MismatchFrameCount, Claimed: tp.Header.FrameCount, Computed: maxFrames}
	}

	s := sim.New(tp.Header.Seed)
	for i, b := range tp.Inputs {
		in := sim.InputFromByte(b)
		if err := s.StepStrict(in); err != nil {
			return nil, fmt.Errorf("replay diverged: %w", annotateFrame(err, i))
		}
	}

	result := s.Result()
	if result.FrameCount != tp.Header.FrameCount {
		return nil, &MismatchError{Kind: MismatchFrameCount, Claimed: tp.Header.FrameCount, Computed: result.FrameCount}
	}
	if result.Score != tp.Footer.FinalScore {
		return nil, &MismatchError{Kind: MismatchScore, Claimed: tp.Footer.FinalScore, Computed: result.Score}
	}
	if result.RNGState != tp.Footer.FinalRNGState {
		return nil, &MismatchError{Kind: MismatchRNGState, Claimed: tp.Footer.FinalRNGState, Computed: result.RNGState}
	}

	return &Journal{
		Seed:            tp.Header.Seed,
		FrameCount:      result.FrameCount,
		FinalScore:      result.Score,
		FinalRNGState:   result.RNGState,
		TapeChecksum:    tp.Footer.CRC32,
		RulesDigest:     sim.RulesDigest,
		ClaimantAddress: tp.ClaimantString(),
	}, nil
}

func annotateFrame(err error, frameIndex int) error {
	return fmt.Errorf("frame %d: %w", frameIndex, err)
}
