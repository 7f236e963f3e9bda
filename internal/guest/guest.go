// Package guest mirrors the zkVM guest program's input framing and
// control flow: read a length-prefixed tape from the host, verify it,
// and commit a journal. Outside an actual zkVM there is no proving
// system to invoke, so Run stands in for guest_main's body — the part
// that is identical whether or not the surrounding binary runs inside a
// prover.
package guest

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kalepail/asteroids-zk-core/internal/verify"
)

// Input is the host-supplied payload, matching the wire framing the
// guest reads: a u32 LE frame budget, a u32 LE tape length, and the
// tape itself padded to a 4-byte boundary with zero bytes.
type Input struct {
	MaxFrames uint32
	Tape      []byte
}

// ReadInput decodes the framed payload a host passes into the guest:
// max_frames (u32 LE), tape_len (u32 LE), then tape_len bytes of tape
// padded with zero bytes out to the next multiple of 4.
func ReadInput(r io.Reader) (*Input, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("guest: reading input header: %w", err)
	}
	maxFrames := binary.LittleEndian.Uint32(header[0:4])
	tapeLen := binary.LittleEndian.Uint32(header[4:8])

	padded := (tapeLen + 3) &^ 3
	buf := make([]byte, padded)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("guest: reading tape body: %w", err)
	}

	return &Input{MaxFrames: maxFrames, Tape: buf[:tapeLen]}, nil
}

// Run executes the guest's entire logic: decode the host's framed
// input, verify the tape under the given frame budget, and return the
// journal that would be committed as the proof's public output. A
// non-nil error here is exactly the condition under which the real
// guest aborts without producing a receipt — no partial journal is ever
// returned alongside an error.
func Run(hostInput io.Reader) (*verify.Journal, error) {
	in, err := ReadInput(hostInput)
	if err != nil {
		return nil, err
	}

	journal, err := verify.Tape(in.Tape, verify.Options{MaxFrames: in.MaxFrames})
	if err != nil {
		return nil, fmt.Errorf("guest: tape rejected: %w", err)
	}
	return journal, nil
}
