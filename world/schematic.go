package world

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"

	ns "github.com/go-mclib/picolimbo/net_structures"
)

// Snapshot is a world built once from a Sponge Schematic v2 file (or left
// nil, in which case the server falls back to the void generator).
type Snapshot struct {
	Width, Height, Length int16
	// Blocks is flattened Y*Length*Width + Z*Width + X, matching the
	// schematic's own BlockData indexing.
	Blocks []BlockState
}

type spongeSchematic struct {
	Version   int32                     `nbt:"Version"`
	Width     int16                     `nbt:"Width"`
	Height    int16                     `nbt:"Height"`
	Length    int16                     `nbt:"Length"`
	Palette   map[string]int32          `nbt:"Palette"`
	BlockData []byte                    `nbt:"BlockData"`
}

// LoadSchematic decompresses and parses a Sponge Schematic v2 file per
// §4.8 step 1-3: gzip -> NBT -> Palette/BlockData -> internal ids.
func LoadSchematic(r io.Reader) (*Snapshot, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decompress schematic: %w", err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("read schematic: %w", err)
	}

	var schem spongeSchematic
	if _, err := nbt.NewDecoder(bytes.NewReader(raw)).Decode(&schem); err != nil {
		return nil, fmt.Errorf("decode schematic NBT: %w", err)
	}
	if schem.Version != 2 {
		return nil, fmt.Errorf("unsupported schematic version %d, want 2", schem.Version)
	}

	idToName := make(map[int32]string, len(schem.Palette))
	for name, id := range schem.Palette {
		idToName[id] = name
	}

	volume := int(schem.Width) * int(schem.Height) * int(schem.Length)
	blocks := make([]BlockState, 0, volume)

	reader := bytes.NewReader(schem.BlockData)
	for reader.Len() > 0 && len(blocks) < volume {
		id, err := readSchematicVarInt(reader)
		if err != nil {
			return nil, fmt.Errorf("read BlockData: %w", err)
		}
		name, ok := idToName[id]
		if !ok {
			blocks = append(blocks, Air)
			continue
		}
		blocks = append(blocks, StateForName(name))
	}
	for len(blocks) < volume {
		blocks = append(blocks, Air)
	}

	return &Snapshot{Width: schem.Width, Height: schem.Height, Length: schem.Length, Blocks: blocks}, nil
}

// readSchematicVarInt reads one schematic-format VarInt (identical wire
// shape to the protocol VarInt, reused here rather than duplicated).
func readSchematicVarInt(r *bytes.Reader) (int32, error) {
	var buf ns.ByteArray
	for i := 0; i < 5; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		buf = append(buf, b)
		if b&0x80 == 0 {
			break
		}
	}
	var v ns.VarInt
	if _, err := v.FromBytes(buf); err != nil {
		return 0, err
	}
	return int32(v), nil
}

// At returns the block state at a world-relative (x, y, z), or Air if out
// of bounds.
func (s *Snapshot) At(x, y, z int) BlockState {
	if x < 0 || y < 0 || z < 0 || x >= int(s.Width) || y >= int(s.Height) || z >= int(s.Length) {
		return Air
	}
	idx := y*int(s.Length)*int(s.Width) + z*int(s.Width) + x
	if idx < 0 || idx >= len(s.Blocks) {
		return Air
	}
	return s.Blocks[idx]
}
