package world_test

import (
	"testing"

	"github.com/go-mclib/picolimbo/world"
)

func TestBuildSectionSingleValued(t *testing.T) {
	sec := &world.Section{}
	packed := world.BuildSection(sec, func(b world.BlockState) int32 { return int32(b) }, 15)
	if packed.Kind != world.PaletteSingleValued {
		t.Fatalf("Kind = %v, want PaletteSingleValued", packed.Kind)
	}
	if len(packed.Palette) != 1 || packed.Palette[0] != 0 {
		t.Fatalf("Palette = %v, want [0] (air)", packed.Palette)
	}
}

func TestBuildSectionPalettedWhenMixed(t *testing.T) {
	sec := &world.Section{}
	sec.Set(0, 0, 0, world.StateForName("minecraft:stone"))
	sec.Set(1, 0, 0, world.StateForName("minecraft:dirt"))

	packed := world.BuildSection(sec, func(b world.BlockState) int32 { return int32(b) }, 15)
	if packed.Kind != world.PalettePaletted {
		t.Fatalf("Kind = %v, want PalettePaletted", packed.Kind)
	}
	if packed.BitsPerEntry < 4 {
		t.Fatalf("BitsPerEntry = %d, want >= 4", packed.BitsPerEntry)
	}
	if len(packed.Palette) != 3 { // air, stone, dirt
		t.Fatalf("len(Palette) = %d, want 3", len(packed.Palette))
	}
}

func TestBlockStateRoundTripsThroughName(t *testing.T) {
	s := world.StateForName("minecraft:stone[variant=default]")
	if world.NameForState(s) != "minecraft:stone" {
		t.Fatalf("NameForState() = %q, want minecraft:stone (property suffix stripped)", world.NameForState(s))
	}
}
