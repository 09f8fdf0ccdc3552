package limbo

import (
	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol"
	"github.com/go-mclib/picolimbo/protocol/packets"
	"github.com/go-mclib/picolimbo/registrydata"
	"github.com/go-mclib/picolimbo/world"
)

// enterPlay sends the Play-entry bundle (§4.5's closing paragraph),
// incrementing the online-player counter exactly once as soon as LoginPlay
// has been sent, then starts the keep-alive timer and hands off to the Play
// read loop.
func (c *clientState) enterPlay() {
	c.state = protocol.StatePlay

	if err := c.writePacket(c.buildLoginPlay()); err != nil {
		return
	}
	c.server.incrementOnline()
	c.enteredPlay = true

	sync := packets.SynchronizePlayerPosition{
		X: ns.Double(c.server.SpawnX), Y: ns.Double(c.server.SpawnY), Z: ns.Double(c.server.SpawnZ),
		Yaw: ns.Float(c.server.SpawnYaw), Pitch: ns.Float(c.server.SpawnPitch),
	}
	if err := c.writePacket(sync); err != nil {
		return
	}

	if c.version.AtLeast(759) {
		spawn := packets.SetDefaultSpawnPosition{
			Location: ns.Position{X: int32(c.server.SpawnX), Y: int16(c.server.SpawnY), Z: int32(c.server.SpawnZ)},
			Angle:    ns.Float(c.server.SpawnYaw),
		}
		if err := c.writePacket(spawn); err != nil {
			return
		}
	}

	if c.version.AtLeast(765) {
		event := packets.GameEvent{EventType: packets.GameEventStartWaitingForChunks, Value: 0}
		if err := c.writePacket(event); err != nil {
			return
		}
		chunk, err := c.server.World.BuildChunkPacket(c.version, 0, 0)
		if err != nil {
			c.log.WithError(err).Warn("build spawn chunk")
			return
		}
		if err := c.writePacket(*chunk); err != nil {
			return
		}
	}

	// The brand plugin message travels in Play for 1.13<=v<764; older
	// clients never had plugin channels, and >=764 already received it in
	// Configuration.
	if c.version.AtLeast(393) && !c.version.AtLeast(764) {
		brand := packets.PlayPluginMessage{Channel: brandChannel, Data: ns.ByteArray(brandValue)}
		if err := c.writePacket(brand); err != nil {
			return
		}
	}

	c.startKeepAlive()
	c.streamChunks()
	c.runPlay()
}

// streamChunks sends the remaining chunks within view distance, nearest
// first, following the spawn chunk already sent in the entry bundle.
func (c *clientState) streamChunks() {
	if !c.version.AtLeast(765) {
		return
	}
	for _, pos := range world.SpiralChunks(0, 0, c.server.ViewDistance) {
		if pos.X == 0 && pos.Z == 0 {
			continue // already sent as part of the entry bundle
		}
		chunk, err := c.server.World.BuildChunkPacket(c.version, pos.X, pos.Z)
		if err != nil {
			c.log.WithError(err).Warn("build chunk")
			return
		}
		if err := c.writePacket(*chunk); err != nil {
			return
		}
	}
}

func (c *clientState) buildLoginPlay() packets.LoginPlay {
	registries := registrydata.For(c.version, c.server.SpawnDimension)
	dimension := c.server.SpawnDimension.Identifier()
	gameMode := byte(c.server.DefaultGameMode)

	pkt := packets.LoginPlay{
		EntityID:            1,
		IsHardcore:          ns.Boolean(c.server.Hardcore),
		Difficulty:          0,
		MaxPlayers:          ns.UnsignedByte(clampByte(c.server.MaxPlayers)),
		LevelType:           "flat",
		GameMode:            ns.UnsignedByte(gameMode),
		PreviousGameMode:    -1,
		DimensionNames:      ns.PrefixedArray[ns.Identifier]{dimension},
		DimensionType:       dimension,
		DimensionName:       dimension,
		HashedSeed:          0,
		MaxPlayersVarInt:    ns.VarInt(c.server.MaxPlayers),
		ViewDistance:        ns.VarInt(c.server.ViewDistance),
		SimulationDistance:  ns.VarInt(c.server.ViewDistance),
		ReducedDebugInfo:    false,
		EnableRespawnScreen: true,
		DoLimitedCrafting:   false,
		IsDebug:             false,
		IsFlat:              true,
		PortalCooldown:      0,
		SeaLevel:            63,
		EnforcesSecureChat:  false,
	}

	switch registries.Era {
	case registrydata.EraLegacy:
		legacyGameMode := gameMode
		if c.server.Hardcore {
			legacyGameMode |= 0x8
		}
		pkt.GameModeLegacy = ns.UnsignedByte(legacyGameMode)
		pkt.Dimension = ns.Int(registries.LegacyDimensionID)
	case registrydata.Era735To763:
		pkt.RegistryCodec = registries.EmbeddedCodec
	}

	return pkt
}

func clampByte(n int) int {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// runPlay reads serverbound Play packets until the connection ends. The
// registry knows only server_bound_keep_alive in Play; keep-alives are read
// and discarded, and any other packet id makes readNamed fail, which ends
// the loop and closes the connection.
func (c *clientState) runPlay() {
	for {
		_, _, err := c.readNamed()
		if err != nil {
			return
		}
	}
}
