// Package protocolversion implements the ProtocolVersion data model: the
// integer a client announces in its Handshake packet, its total order, its
// clamping behavior for numbers outside the supported range, and the two
// aliasing tables (`reports`, `data`) that collapse point releases onto the
// canonical version whose packet-ID table or registry payloads apply.
package protocolversion

import "math"

// ProtocolVersion is the protocol number exchanged in the Handshake packet.
// Any is used before a Handshake has been read, and also doubles as the
// BungeeGuard/legacy forwarding wildcard (-1).
type ProtocolVersion int32

const Any ProtocolVersion = -1

// known, in ascending order, mirrors the releases this server explicitly
// recognizes. Every version not listed here clamps to the nearest bound:
// numbers below Oldest clamp up to Oldest, numbers above Newest clamp down
// to Newest (the inverse of the usual "unknown future version" handling,
// deliberately: we don't know the wire shape for versions we've never
// seen, so we behave as the newest version we do know).
var known = []ProtocolVersion{
	4,   // 1.7.2-1.7.5
	5,   // 1.7.6-1.7.10
	47,  // 1.8-1.8.9
	107, // 1.9
	108, // 1.9.1-1.9.2
	109, // 1.9.3-1.9.4
	110, // 1.9.4 (pre)
	210, // 1.10-1.10.2
	315, // 1.11
	316, // 1.11.1-1.11.2
	335, // 1.12
	338, // 1.12.1
	340, // 1.12.2
	393, // 1.13
	401, // 1.13.1
	404, // 1.13.2
	477, // 1.14
	480, // 1.14.1
	485, // 1.14.2
	490, // 1.14.3
	498, // 1.14.4
	573, // 1.15
	575, // 1.15.1
	578, // 1.15.2
	735, // 1.16
	736, // 1.16.1
	751, // 1.16.2
	753, // 1.16.3
	754, // 1.16.4-1.16.5
	755, // 1.17
	756, // 1.17.1
	757, // 1.18-1.18.1
	758, // 1.18.2
	759, // 1.19
	760, // 1.19.1-1.19.2
	761, // 1.19.3
	762, // 1.19.4
	763, // 1.20-1.20.1
	764, // 1.20.2
	765, // 1.20.3-1.20.4
	766, // 1.20.5-1.20.6
	767, // 1.21-1.21.1
	768, // 1.21.2-1.21.3
	769, // 1.21.4
	770, // 1.21.5
	771, // 1.21.6
	772, // 1.21.7-1.21.8
}

// Oldest and Newest bound the clamping range described above.
var (
	Oldest = known[0]
	Newest = known[len(known)-1]
)

// reportsAlias maps a point release onto the version whose packet-ID table
// it shares. Versions not present in this table alias to themselves.
var reportsAlias = map[ProtocolVersion]ProtocolVersion{
	5:   4,
	108: 107,
	109: 107,
	110: 107,
	316: 315,
	338: 335,
	401: 393,
	404: 393,
	480: 477,
	485: 477,
	490: 477,
	575: 573,
	578: 573,
	736: 735,
	753: 751,
	756: 755,
	758: 757,
	760: 759,
	765: 764,
	768: 767,
	770: 769,
	771: 769,
	772: 769,
}

// dataAlias maps a point release onto the version whose registry/dimension
// NBT payloads it shares. Defaults to the same table as reportsAlias since
// in practice the two rarely diverge; versions where they do are listed.
var dataAlias = map[ProtocolVersion]ProtocolVersion{
	5:   4,
	108: 107,
	109: 107,
	110: 107,
	316: 315,
	338: 335,
	401: 393,
	404: 393,
	480: 477,
	485: 477,
	490: 477,
	575: 573,
	578: 573,
	736: 735,
	753: 751,
	756: 755,
	758: 757,
	760: 759,
	765: 764,
	768: 767,
}

// From clamps an arbitrary protocol number into the supported range.
func From(raw int32) ProtocolVersion {
	v := ProtocolVersion(raw)
	switch {
	case raw == int32(Any):
		return Any
	case v < Oldest:
		return Oldest
	case v > Newest:
		return Newest
	default:
		return v
	}
}

// FromMax clamps math.MaxInt32/math.MinInt32 exactly as From would, kept as
// a named helper because it is the literal scenario from the testable
// properties (`ProtocolVersion::from(i32::MAX)` / `from(i32::MIN)`).
func FromMax() ProtocolVersion { return From(math.MaxInt32) }
func FromMin() ProtocolVersion { return From(math.MinInt32) }

// Reports returns the canonical version whose packet-ID table this version
// uses. Any aliases to itself: there is no concrete table to collapse onto
// before a Handshake has been read, and the registry special-cases Any to
// mean "match every era" rather than "match none".
func (v ProtocolVersion) Reports() ProtocolVersion {
	if v == Any {
		return Any
	}
	if alias, ok := reportsAlias[v]; ok {
		return alias
	}
	return v
}

// Data returns the canonical version whose registry/dimension/biome NBT
// payloads this version uses. Any aliases to itself, for the same reason as
// Reports.
func (v ProtocolVersion) Data() ProtocolVersion {
	if v == Any {
		return Any
	}
	if alias, ok := dataAlias[v]; ok {
		return alias
	}
	return v
}

// AtLeast and Below express the range checks field predicates are built
// from; ProtocolVersion's underlying integer already totally orders, but
// these read better at call sites and correctly treat Any as "unknown,
// never satisfies a concrete bound".
func (v ProtocolVersion) AtLeast(min ProtocolVersion) bool {
	if v == Any {
		return false
	}
	return v >= min
}

func (v ProtocolVersion) Below(max ProtocolVersion) bool {
	if v == Any {
		return false
	}
	return v < max
}

func (v ProtocolVersion) String() string {
	return versionName(v)
}

var names = map[ProtocolVersion]string{
	4: "1.7.2", 5: "1.7.6", 47: "1.8", 107: "1.9", 108: "1.9.1", 109: "1.9.3",
	110: "1.9.4", 210: "1.10", 315: "1.11", 316: "1.11.1", 335: "1.12",
	338: "1.12.1", 340: "1.12.2", 393: "1.13", 401: "1.13.1", 404: "1.13.2",
	477: "1.14", 480: "1.14.1", 485: "1.14.2", 490: "1.14.3", 498: "1.14.4",
	573: "1.15", 575: "1.15.1", 578: "1.15.2", 735: "1.16", 736: "1.16.1",
	751: "1.16.2", 753: "1.16.3", 754: "1.16.4", 755: "1.17", 756: "1.17.1",
	757: "1.18", 758: "1.18.2", 759: "1.19", 760: "1.19.1", 761: "1.19.3",
	762: "1.19.4", 763: "1.20", 764: "1.20.2", 765: "1.20.3", 766: "1.20.5",
	767: "1.21", 768: "1.21.2", 769: "1.21.4", 770: "1.21.5", 771: "1.21.6",
	772: "1.21.7",
}

func versionName(v ProtocolVersion) string {
	if v == Any {
		return "any"
	}
	if name, ok := names[v]; ok {
		return name
	}
	return "unknown"
}

// Range describes the closed-open interval [Min, Max) a packet field is
// present for. Max of 0 means "no upper bound". Both ends default to the
// "always present" interval when left zero.
type Range struct {
	Min ProtocolVersion
	Max ProtocolVersion // 0 means unbounded
}

// Contains reports whether v falls within the range. Any never satisfies a
// bounded range (it means "not yet known").
func (r Range) Contains(v ProtocolVersion) bool {
	if v == Any {
		return r.Min == 0 && r.Max == 0
	}
	if v < r.Min {
		return false
	}
	if r.Max != 0 && v >= r.Max {
		return false
	}
	return true
}

// Always is the range every version satisfies.
var Always = Range{}
