package world_test

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/Tnze/go-mc/nbt"

	"github.com/go-mclib/picolimbo/world"
)

// schematicFixture mirrors the handful of fields world.LoadSchematic reads
// off a Sponge Schematic v2 file; BlockData is one VarInt palette index per
// cell, flattened Y*Length*Width + Z*Width + X.
type schematicFixture struct {
	Version   int32            `nbt:"Version"`
	Width     int16            `nbt:"Width"`
	Height    int16            `nbt:"Height"`
	Length    int16            `nbt:"Length"`
	Palette   map[string]int32 `nbt:"Palette"`
	BlockData []byte           `nbt:"BlockData"`
}

func encodeVarInt(v int32) []byte {
	var out []byte
	u := uint32(v)
	for {
		b := byte(u & 0x7F)
		u >>= 7
		if u != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if u == 0 {
			break
		}
	}
	return out
}

func gzippedSchematic(t *testing.T, fixture schematicFixture) *bytes.Buffer {
	t.Helper()
	var raw bytes.Buffer
	if err := nbt.NewEncoder(&raw).Encode(fixture, ""); err != nil {
		t.Fatalf("encode schematic NBT: %v", err)
	}
	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	if _, err := w.Write(raw.Bytes()); err != nil {
		t.Fatalf("gzip schematic: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
	return &gz
}

func TestLoadSchematicParsesPaletteAndBlockData(t *testing.T) {
	// A 2x1x1 schematic: stone at (0,0,0), air at (1,0,0).
	fixture := schematicFixture{
		Version: 2,
		Width:   2,
		Height:  1,
		Length:  1,
		Palette: map[string]int32{
			"minecraft:air":   0,
			"minecraft:stone": 1,
		},
		BlockData: append(encodeVarInt(1), encodeVarInt(0)...),
	}

	snapshot, err := world.LoadSchematic(gzippedSchematic(t, fixture))
	if err != nil {
		t.Fatalf("LoadSchematic() error = %v", err)
	}

	stone := world.StateForName("minecraft:stone")
	if got := snapshot.At(0, 0, 0); got != stone {
		t.Fatalf("At(0,0,0) = %v, want %v (stone)", got, stone)
	}
	if got := snapshot.At(1, 0, 0); got != world.Air {
		t.Fatalf("At(1,0,0) = %v, want air", got)
	}
}

func TestLoadSchematicRejectsUnsupportedVersion(t *testing.T) {
	fixture := schematicFixture{
		Version: 1,
		Width:   1, Height: 1, Length: 1,
		Palette:   map[string]int32{"minecraft:air": 0},
		BlockData: encodeVarInt(0),
	}

	if _, err := world.LoadSchematic(gzippedSchematic(t, fixture)); err == nil {
		t.Fatal("expected an error for schematic version != 2")
	}
}

func TestSnapshotAtOutOfBoundsIsAir(t *testing.T) {
	fixture := schematicFixture{
		Version: 2,
		Width:   1, Height: 1, Length: 1,
		Palette:   map[string]int32{"minecraft:stone": 0},
		BlockData: encodeVarInt(0),
	}

	snapshot, err := world.LoadSchematic(gzippedSchematic(t, fixture))
	if err != nil {
		t.Fatalf("LoadSchematic() error = %v", err)
	}
	if got := snapshot.At(-1, 0, 0); got != world.Air {
		t.Fatalf("At(-1,0,0) = %v, want air", got)
	}
	if got := snapshot.At(5, 5, 5); got != world.Air {
		t.Fatalf("At(5,5,5) = %v, want air", got)
	}
}
