// Package registry is the packet registry (C3): it maps
// (protocol version, state, direction, packet name) to the per-version u8
// packet ID a vanilla client/server expects, and back.
//
// The real PicoLimbo generates this table at build time from vendored
// per-version JSON "packet reports". Without a code generator in this
// repo, the table in data.go is hand-authored for the protocol versions
// spec.md calls out explicitly (the Handshake/Status/Login state IDs are
// stable across nearly the whole range; Play and Configuration IDs are
// the ones that actually drift release to release and are the reason this
// table is keyed by version at all).
package registry

import (
	"fmt"

	"github.com/go-mclib/picolimbo/protocol"
	"github.com/go-mclib/picolimbo/protocolversion"
)

// entry is one (name, id) binding valid from Since (inclusive) onward,
// until the next entry for the same name takes over. Entries must be
// supplied in ascending Since order per name; IDOf picks the last entry
// whose Since is <= the reports-version being queried.
type entry struct {
	Since protocolversion.ProtocolVersion
	Name  string
	ID    byte
}

type table struct {
	byState [5][2][]entry // [State][Bound] -> entries across all versions
}

var tables = newTable()

func newTable() *table {
	t := &table{}
	for _, reg := range registrations {
		t.byState[reg.state][reg.bound] = append(t.byState[reg.state][reg.bound], entry{
			Since: reg.since,
			Name:  reg.name,
			ID:    reg.id,
		})
	}
	return t
}

type registration struct {
	state protocol.State
	bound protocol.Bound
	since protocolversion.ProtocolVersion
	name  string
	id    byte
}

// IDOf returns the wire packet ID for name under the given version, state
// and direction. It resolves version to its `reports` alias first (child
// point releases use their parent's table unless explicitly overridden).
//
// version.Any is accepted for the Status state, whose packet ids have never
// drifted across the whole supported range (a Handshake claiming protocol
// -1 is serviced by Status before any real version is known); an unbounded
// version matches every era's entry instead of none, and the most recent
// one wins, same as a concrete version would pick.
func IDOf(version protocolversion.ProtocolVersion, state protocol.State, bound protocol.Bound, name string) (byte, error) {
	reports := version.Reports()
	entries := tables.byState[state][bound]

	var best *entry
	for i := range entries {
		e := &entries[i]
		if e.Name != name || (reports != protocolversion.Any && e.Since > reports) {
			continue
		}
		if best == nil || e.Since > best.Since {
			best = e
		}
	}
	if best == nil {
		return 0, fmt.Errorf("%w: %s %s/%s has no id for version %s", protocol.ErrUnknownPacket, name, state, bound, version)
	}
	return best.ID, nil
}

// NameOf is the inverse of IDOf: given a wire id received in state/bound
// under version, returns the packet name the registry maps it to. See IDOf
// for how version.Any is handled.
func NameOf(version protocolversion.ProtocolVersion, state protocol.State, bound protocol.Bound, id byte) (string, error) {
	reports := version.Reports()
	entries := tables.byState[state][bound]

	var bestName string
	var bestSince protocolversion.ProtocolVersion = -1
	found := false
	for _, e := range entries {
		if e.ID != id || (reports != protocolversion.Any && e.Since > reports) {
			continue
		}
		if current, err := IDOf(version, state, bound, e.Name); err != nil || current != id {
			continue
		}
		if !found || e.Since > bestSince {
			bestName, bestSince, found = e.Name, e.Since, true
		}
	}
	if !found {
		return "", fmt.Errorf("%w: id 0x%02X in %s/%s for version %s", protocol.ErrUnknownPacket, id, state, bound, version)
	}
	return bestName, nil
}
