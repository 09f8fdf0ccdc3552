package world

import (
	"sort"

	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol/packets"
	"github.com/go-mclib/picolimbo/protocolversion"
	"github.com/go-mclib/picolimbo/registrydata"
)

// ChunkPos is a chunk column coordinate.
type ChunkPos struct{ X, Z int32 }

// SpiralChunks returns every chunk column within viewDistance of
// (centerX, centerZ), ordered nearest-first so the client's view loads
// from the inside out. The ordering is produced the same way a live
// server prioritizes its chunk-send queue: sort candidates by squared
// distance to the player's chunk rather than compute an explicit spiral
// walk.
func SpiralChunks(centerX, centerZ, viewDistance int32) []ChunkPos {
	var out []ChunkPos
	for dx := -viewDistance; dx <= viewDistance; dx++ {
		for dz := -viewDistance; dz <= viewDistance; dz++ {
			out = append(out, ChunkPos{centerX + dx, centerZ + dz})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		dxi, dzi := out[i].X-centerX, out[i].Z-centerZ
		dxj, dzj := out[j].X-centerX, out[j].Z-centerZ
		return dxi*dxi+dzi*dzi < dxj*dxj+dzj*dzj
	})
	return out
}

// World is either a schematic-backed snapshot or, if Snapshot is nil, the
// hard-coded void generator. The schematic is placed with its origin
// (palette index 0,0,0) at world (0, BaseY, 0).
type World struct {
	Snapshot *Snapshot
	BaseY    int
	// SectionCount and MinSectionY describe the version's vertical chunk
	// extent; picolimbo uses the modern 1.18+ convention (-4..19, 384
	// blocks tall) for every version, padding older clients' shorter
	// build-height expectation with empty sections above/below, which
	// vanilla clients tolerate.
	SectionCount int
	MinSectionY  int
}

// NewVoidWorld builds the no-snapshot-configured default.
func NewVoidWorld() *World {
	return &World{SectionCount: 24, MinSectionY: -4}
}

// sectionAt returns the 16x16x16 section at (chunkX, chunkZ, sectionIndex)
// where sectionIndex counts up from MinSectionY.
func (w *World) sectionAt(chunkX, chunkZ int32, sectionIndex int) *Section {
	sec := &Section{}
	if w.Snapshot == nil {
		return sec // all-air: the void
	}

	sectionY := w.MinSectionY + sectionIndex
	baseX := int(chunkX) * 16
	baseZ := int(chunkZ) * 16
	baseY := sectionY*16 - w.BaseY

	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			for z := 0; z < 16; z++ {
				sec.Set(x, y, z, w.Snapshot.At(baseX+x, baseY+y, baseZ+z))
			}
		}
	}
	return sec
}

// BuildChunkPacket renders one chunk column for version, per §4.8 step 4
// (palette selection) and the ChunkDataAndUpdateLight wire shape.
func (w *World) BuildChunkPacket(version protocolversion.ProtocolVersion, chunkX, chunkZ int32) (*packets.ChunkDataAndUpdateLight, error) {
	var data ns.ByteArray
	for i := 0; i < w.SectionCount; i++ {
		sec := w.sectionAt(chunkX, chunkZ, i)
		encoded, err := encodeSection(version, sec)
		if err != nil {
			return nil, err
		}
		data = append(data, encoded...)
	}

	heightmaps := ns.NewNamelessNBT(map[string]any{})

	pkt := &packets.ChunkDataAndUpdateLight{
		ChunkX:        ns.Int(chunkX),
		ChunkZ:        ns.Int(chunkZ),
		Heightmaps:    heightmaps,
		Data:          ns.PrefixedByteArray(data),
		BlockEntities: ns.PrefixedArray[ns.ByteArray]{},
	}
	return pkt, nil
}

// encodeSection writes one section's block_count + block-state palette +
// a single-valued void biome palette, matching the post-1.18 section
// format every supported version is treated as using (see World's
// SectionCount note).
func encodeSection(version protocolversion.ProtocolVersion, sec *Section) (ns.ByteArray, error) {
	count, err := ns.Short(sec.NonAirCount()).ToBytes()
	if err != nil {
		return nil, err
	}

	packed := BuildSection(sec, func(b BlockState) int32 { return WireStateID(version, b) }, 15)
	blockPalette, err := encodePalette(packed)
	if err != nil {
		return nil, err
	}

	// Biomes: always single-valued (void biome) since limbo never varies
	// biome per block.
	biomePalette, err := encodePalette(PackedSection{Kind: PaletteSingleValued, Palette: []int32{int32(registrydata.VoidBiomeIndex(version))}})
	if err != nil {
		return nil, err
	}

	out := append(ns.ByteArray{}, count...)
	out = append(out, blockPalette...)
	out = append(out, biomePalette...)
	return out, nil
}

func encodePalette(p PackedSection) (ns.ByteArray, error) {
	bits, err := ns.UnsignedByte(p.BitsPerEntry).ToBytes()
	if err != nil {
		return nil, err
	}
	out := append(ns.ByteArray{}, bits...)

	switch p.Kind {
	case PaletteSingleValued:
		v, err := ns.VarInt(p.Palette[0]).ToBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, v...)
		length, _ := ns.VarInt(0).ToBytes()
		return append(out, length...), nil

	case PalettePaletted:
		length, err := ns.VarInt(len(p.Palette)).ToBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, length...)
		for _, id := range p.Palette {
			v, err := ns.VarInt(id).ToBytes()
			if err != nil {
				return nil, err
			}
			out = append(out, v...)
		}
	}

	dataLen, err := ns.VarInt(len(p.Data)).ToBytes()
	if err != nil {
		return nil, err
	}
	out = append(out, dataLen...)
	for _, w := range p.Data {
		b, err := ns.Long(w).ToBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}
