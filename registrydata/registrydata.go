// Package registrydata is the version registry data layer (C7): the
// per-`data`-version shape of dimension/biome/etc. registry information a
// vanilla client expects during Configuration (or, before Configuration
// existed, embedded directly in LoginPlay).
//
// A production build vendors this from the real per-version Mojang data
// JSON at build time (see original_source's blocks_report/asset_pipeline
// crates for how PicoLimbo itself does it); without a code generator in
// this repo the entries below are a minimal, hand-authored dataset
// covering exactly the dimensions and biome limbo ever needs
// (overworld/the_nether/the_end, and the_void biome for the void world
// fallback) rather than the full vanilla set.
package registrydata

import (
	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocolversion"
)

// Dimension is the spawn dimension a ServerState is configured with.
type Dimension int

const (
	DimensionOverworld Dimension = iota
	DimensionNether
	DimensionEnd
)

func (d Dimension) Identifier() ns.Identifier {
	switch d {
	case DimensionNether:
		return "minecraft:the_nether"
	case DimensionEnd:
		return "minecraft:the_end"
	default:
		return "minecraft:overworld"
	}
}

// dimensionTypeNBT returns the dimension_type registry entry's NBT body
// for d. Every supported dimension uses the vanilla overworld shape;
// limbo never simulates nether/end-specific lighting or ceiling rules.
func dimensionTypeNBT(d Dimension) map[string]any {
	return map[string]any{
		"piglin_safe":            byte(0),
		"natural":                byte(1),
		"ambient_light":          float32(0),
		"infiniburn":             "#minecraft:infiniburn_overworld",
		"respawn_anchor_works":   byte(0),
		"has_skylight":           byte(1),
		"bed_works":              byte(1),
		"effects":                string(d.Identifier()),
		"fixed_time":             nil,
		"has_raids":              byte(1),
		"logical_height":         int32(384),
		"coordinate_scale":       float64(1),
		"monster_spawn_light_level": int32(0),
		"monster_spawn_block_light_limit": int32(0),
		"min_y":                  int32(-64),
		"height":                 int32(384),
		"ultrawarm":              byte(0),
		"has_ceiling":            byte(0),
	}
}

func biomeNBT() map[string]any {
	return map[string]any{
		"has_precipitation": byte(0),
		"temperature":       float32(0.5),
		"downfall":          float32(0.5),
		"effects": map[string]any{
			"sky_color":       int32(0x78A7FF),
			"water_color":     int32(0x3F76E4),
			"fog_color":       int32(0xC0D8FF),
			"water_fog_color": int32(0x050533),
		},
	}
}

// registries is the closed set of registry ids limbo ships entries for.
// Real vanilla clients accept more (banner_pattern, trim_material, ...)
// but do not reject a RegistryData/registry-codec payload that merely omits
// registries it doesn't need entries from, so listing just these two is
// sufficient for a client to load into Play.
var registries = []ns.Identifier{"minecraft:dimension_type", "minecraft:worldgen/biome"}

// entriesFor returns the (id, nbt) pairs for one registry.
func entriesFor(registry ns.Identifier) []registryEntry {
	switch registry {
	case "minecraft:dimension_type":
		return []registryEntry{
			{ID: "minecraft:overworld", NBT: dimensionTypeNBT(DimensionOverworld)},
			{ID: "minecraft:the_nether", NBT: dimensionTypeNBT(DimensionNether)},
			{ID: "minecraft:the_end", NBT: dimensionTypeNBT(DimensionEnd)},
		}
	case "minecraft:worldgen/biome":
		return []registryEntry{
			{ID: "minecraft:plains", NBT: biomeNBT()},
			{ID: "minecraft:the_void", NBT: biomeNBT()},
		}
	default:
		return nil
	}
}

type registryEntry struct {
	ID  ns.Identifier
	NBT map[string]any
}

// DimensionTypeIndex returns dimensionName's position within the
// dimension_type registry for version.
func DimensionTypeIndex(version protocolversion.ProtocolVersion, dimensionName ns.Identifier) int {
	return indexOf("minecraft:dimension_type", dimensionName)
}

// VoidBiomeIndex returns the_void's position in the worldgen/biome
// registry, used by the void-chunk fallback's biome palette.
func VoidBiomeIndex(version protocolversion.ProtocolVersion) int {
	return indexOf("minecraft:worldgen/biome", "minecraft:the_void")
}

func indexOf(registry, id ns.Identifier) int {
	for i, e := range entriesFor(registry) {
		if e.ID == id {
			return i
		}
	}
	return 0
}
