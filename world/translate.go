package world

import "github.com/go-mclib/picolimbo/protocolversion"

// WireStateID translates an internal BlockState to the id a given
// protocol version expects on the wire. A full build vendors a
// per-version "blocks report" JSON (see original_source's blocks_report
// crate) mapping every block state to its version-specific global
// palette id, since those ids are renumbered release to release. Without
// that vendored data this repo uses the internal id directly as the wire
// id for every version — self-consistent (a limbo server only ever reads
// back what it wrote) but not a claim of matching real vanilla ids; see
// DESIGN.md.
func WireStateID(version protocolversion.ProtocolVersion, state BlockState) int32 {
	return int32(state)
}
