package registrydata

import (
	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol/packets"
	"github.com/go-mclib/picolimbo/protocolversion"
)

// Registries is the per-version-era shape described in §4.7. Exactly one
// field set is populated per instance; which one mirrors the Rust
// original's `Registries` enum (see get_all_registries.rs in
// original_source), translated to a Go tagged struct since Go has no sum
// types.
type Registries struct {
	// Era describes which of the other fields is meaningful.
	Era Era

	// Era766Plus: one RegistryData packet per registry.
	PerRegistryPackets []packets.RegistryData

	// Era764To765: a single combined registry-codec packet.
	CombinedPacket packets.RegistryCodec

	// Era735To763: the compound NBT to embed directly in LoginPlay's
	// RegistryCodec field (759-763 sends just the registry codec;
	// 751-758 and 735-736 send the same field, the dimension element
	// folded into the same compound under "minecraft:dimension_type").
	EmbeddedCodec ns.NBT

	// EraLegacy (<735): no registries at all; LoginPlay.Dimension carries
	// a bare integer (-1 Nether, 0 Overworld, 1 End in vanilla's scheme).
	LegacyDimensionID int32
}

type Era int

const (
	EraLegacy Era = iota
	Era735To763
	Era764To765
	Era766Plus
)

// For builds the Registries value appropriate for version and the
// server's configured spawn dimension.
func For(version protocolversion.ProtocolVersion, dimension Dimension) Registries {
	data := version.Data()

	switch {
	case data.AtLeast(766):
		return Registries{Era: Era766Plus, PerRegistryPackets: perRegistryPackets()}
	case data.AtLeast(764):
		return Registries{Era: Era764To765, CombinedPacket: packets.RegistryCodec{Codec: combinedCodecNBT(true)}}
	case data.AtLeast(735):
		// <764 packets still use the named-root NBT form (Invariant 5);
		// only >=1.20.2 switched to the nameless "network format" root.
		return Registries{Era: Era735To763, EmbeddedCodec: combinedCodecNBT(false)}
	default:
		return Registries{Era: EraLegacy, LegacyDimensionID: legacyDimensionID(dimension)}
	}
}

func legacyDimensionID(d Dimension) int32 {
	switch d {
	case DimensionNether:
		return -1
	case DimensionEnd:
		return 1
	default:
		return 0
	}
}

func perRegistryPackets() []packets.RegistryData {
	out := make([]packets.RegistryData, 0, len(registries))
	for _, reg := range registries {
		entries := entriesFor(reg)
		arr := make(ns.PrefixedArray[packets.RegistryDataEntry], 0, len(entries))
		for _, e := range entries {
			arr = append(arr, packets.RegistryDataEntry{
				ID:   e.ID,
				Data: ns.Some(ns.NewNamelessNBT(e.NBT)), // >=1.20.5 packets are always in network (nameless-root) format
			})
		}
		out = append(out, packets.RegistryData{RegistryID: reg, Entries: arr})
	}
	return out
}

// combinedCodecNBT builds the single compound NBT the 735-765 eras embed
// either in LoginPlay directly (735-763) or in their own RegistryData-like
// packet (764-765): one list per registry, named by registry id, each
// holding {name, id, element} compounds.
func combinedCodecNBT(nameless bool) ns.NBT {
	root := map[string]any{}
	for _, reg := range registries {
		entries := entriesFor(reg)
		list := make([]any, 0, len(entries))
		for i, e := range entries {
			list = append(list, map[string]any{
				"name":    string(e.ID),
				"id":      int32(i),
				"element": e.NBT,
			})
		}
		root[string(reg)] = map[string]any{
			"type":  string(reg),
			"value": list,
		}
	}
	if nameless {
		return ns.NewNamelessNBT(root)
	}
	return ns.NewNamedNBT(root)
}
