package packets

import ns "github.com/go-mclib/picolimbo/net_structures"

// LoginPlay (the "join game" packet) is the single most version-divergent
// packet in the protocol. Three eras matter to limbo:
//
//   - <735 (pre-1.16): dimension is a signed int (-1/0/1), level type is a
//     free string, there is no registry codec.
//   - 735-763 (1.16-1.20.1): a registry/dimension codec NBT travels inside
//     this packet, alongside a dimension-type identifier and a list of
//     known dimension names.
//   - >=764 (1.20.2+): the codec moved out to RegistryData/RegistryCodec in
//     Configuration; this packet only carries the already-resolved
//     dimension type and name plus newer gameplay toggles.
//
// The NBT/identifier fields here are populated by the limbo package from
// whatever registrydata.For(version) returns; packets itself only knows
// the wire shape, not the registry contents.
type LoginPlay struct {
	EntityID           ns.Int
	IsHardcore         ns.Boolean                         `ver:"735,"`
	GameModeLegacy     ns.UnsignedByte                    `ver:",735"` // top bit doubled as hardcore pre-1.16; limbo folds IsHardcore in at encode time rather than modelling that here.
	Dimension          ns.Int                             `ver:",735"`
	Difficulty         ns.UnsignedByte                    `ver:",477"` // removed from this packet in 1.14
	MaxPlayers         ns.UnsignedByte                    `ver:",735"`
	LevelType          ns.String                          `ver:",477"` // removed 1.14, replaced by gamemode-driven client behavior
	GameMode           ns.UnsignedByte                    `ver:"735,"`
	PreviousGameMode   ns.Byte                            `ver:"735,"`
	DimensionNames     ns.PrefixedArray[ns.Identifier]    `ver:"735,"`
	RegistryCodec      ns.NBT                             `ver:"735,764"`
	DimensionType      ns.Identifier                      `ver:"735,"`
	DimensionName      ns.Identifier                      `ver:"735,"`
	HashedSeed         ns.Long                            `ver:"735,"`
	MaxPlayersVarInt   ns.VarInt                          `ver:"735,"`
	ViewDistance       ns.VarInt                          `ver:"477,"`
	SimulationDistance ns.VarInt                          `ver:"757,"`
	ReducedDebugInfo   ns.Boolean
	EnableRespawnScreen ns.Boolean                        `ver:"735,"`
	DoLimitedCrafting  ns.Boolean                         `ver:"764,"`
	IsDebug            ns.Boolean                         `ver:"735,"`
	IsFlat             ns.Boolean                         `ver:"735,"`
	HasDeathLocation   ns.PrefixedOptional[DeathLocation] `ver:"759,"`
	PortalCooldown     ns.VarInt                          `ver:"761,"`
	SeaLevel           ns.VarInt                          `ver:"771,"`
	EnforcesSecureChat ns.Boolean                         `ver:"766,"`
}

func (LoginPlay) Name() string { return "login_play" }

// DeathLocation is the optional "you died here" hint in LoginPlay/Respawn,
// added with the 1.19 death-message rework.
type DeathLocation struct {
	Dimension ns.Identifier
	Location  ns.Position
}

func (d DeathLocation) ToBytes() (ns.ByteArray, error) {
	dim, err := d.Dimension.ToBytes()
	if err != nil {
		return nil, err
	}
	loc, err := d.Location.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(dim, loc...), nil
}

func (d *DeathLocation) FromBytes(data ns.ByteArray) (int, error) {
	n, err := d.Dimension.FromBytes(data)
	if err != nil {
		return 0, err
	}
	m, err := d.Location.FromBytes(data[n:])
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// SynchronizePlayerPosition teleports the client to spawn. Vanilla clients
// acknowledge it with TeleportConfirm, which limbo's registry does not
// register.
type SynchronizePlayerPosition struct {
	X, Y, Z         ns.Double
	Yaw, Pitch      ns.Float
	Flags           ns.Byte
	TeleportID      ns.VarInt
	DismountVehicle ns.Boolean `ver:"755,762"` // present only 755..762; see DESIGN.md open question (c).
}

func (SynchronizePlayerPosition) Name() string { return "synchronize_player_position" }

// SetDefaultSpawnPosition, added 1.19 (protocol 759), sets the compass
// target and respawn point.
type SetDefaultSpawnPosition struct {
	Location ns.Position
	Angle    ns.Float
}

func (SetDefaultSpawnPosition) Name() string { return "set_default_spawn_position" }

// GameEvent's payload is an event-type byte plus a float value whose
// meaning depends on the type; limbo only ever sends type 13,
// "start waiting for chunks", to unfreeze the client's chunk loading
// screen once it has a definite chunk to render.
type GameEvent struct {
	EventType ns.UnsignedByte
	Value     ns.Float
}

func (GameEvent) Name() string { return "game_event" }

const GameEventStartWaitingForChunks = 13

// ChunkDataAndUpdateLight is the packet that actually paints terrain. The
// section bytes (built by the world package) are an opaque length-prefixed
// blob here; packets doesn't interpret block-state/light internals.
// BlockEntities is always an empty array: limbo's void and schematic
// worlds never populate block-entity NBT.
type ChunkDataAndUpdateLight struct {
	ChunkX              ns.Int
	ChunkZ              ns.Int
	Heightmaps          ns.NBT
	Data                ns.PrefixedByteArray
	BlockEntities       ns.PrefixedArray[ns.ByteArray]
	TrustEdges          ns.Boolean `ver:",765"`
	SkyLightMask        ns.BitSet
	BlockLightMask      ns.BitSet
	EmptySkyLightMask   ns.BitSet
	EmptyBlockLightMask ns.BitSet
	SkyLight            ns.PrefixedArray[ns.PrefixedByteArray]
	BlockLight          ns.PrefixedArray[ns.PrefixedByteArray]
}

func (ChunkDataAndUpdateLight) Name() string { return "chunk_data_and_update_light" }

// ClientBoundKeepAlive's id width changed twice: a signed i32 before 1.8,
// a VarInt from 1.8 through 1.12.1, and an i64 from 1.12.2 onward. Limbo
// always generates the id as an i64 internally and narrows it per field.
type ClientBoundKeepAlive struct {
	IDLegacy ns.Int    `ver:",47"`
	IDVarInt ns.VarInt `ver:"47,340"`
	IDModern ns.Long   `ver:"340,"`
}

func (ClientBoundKeepAlive) Name() string { return "client_bound_keep_alive" }

type ServerBoundKeepAlive struct {
	IDLegacy ns.Int    `ver:",47"`
	IDVarInt ns.VarInt `ver:"47,340"`
	IDModern ns.Long   `ver:"340,"`
}

func (ServerBoundKeepAlive) Name() string { return "server_bound_keep_alive" }

// Disconnect is the Play-state kick packet (Configuration has its own type
// with the same shape, registered separately since its packet name and
// registry id differ).
type Disconnect struct {
	Reason ns.TextComponent
}

func (Disconnect) Name() string { return "disconnect" }

// ConfigurationDisconnect is the Configuration-state kick packet.
type ConfigurationDisconnect struct {
	Reason ns.TextComponent
}

func (ConfigurationDisconnect) Name() string { return "configuration_disconnect" }

// PlayPluginMessage is the "brand" channel message (minecraft:brand),
// sent in Play for 1.13<=v<=1.20.1 and in Configuration for >=1.20.2.
type PlayPluginMessage struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (PlayPluginMessage) Name() string { return "play_plugin_message" }
