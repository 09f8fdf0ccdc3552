package limbo

import (
	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol"
	"github.com/go-mclib/picolimbo/protocol/packets"
	"github.com/go-mclib/picolimbo/registrydata"
)

const brandChannel = "minecraft:brand"
const brandValue = "picolimbo"

// runConfiguration implements the Configuration branch of §4.5, reachable
// only for protocol_version >= 764 (Invariant 3). It sends the brand
// plugin message, the registry data for the server's spawn dimension
// (Era764To765 or Era766Plus: Configuration didn't exist before either),
// and FinishConfiguration, then waits for the client's acknowledgement
// while tolerating whatever ClientInformation/ServerboundKnownPacks replies
// arrive in between.
func (c *clientState) runConfiguration() {
	if err := c.writePacket(packets.ClientBoundPluginMessage{
		Channel: brandChannel,
		Data:    ns.ByteArray(brandValue),
	}); err != nil {
		return
	}

	if c.version.AtLeast(766) {
		if err := c.writePacket(packets.ClientBoundKnownPacks{}); err != nil {
			return
		}
	}

	registries := registrydata.For(c.version, c.server.SpawnDimension)
	switch registries.Era {
	case registrydata.Era766Plus:
		for _, reg := range registries.PerRegistryPackets {
			if err := c.writePacket(reg); err != nil {
				return
			}
		}
	case registrydata.Era764To765:
		if err := c.writePacket(registries.CombinedPacket); err != nil {
			return
		}
	}

	if err := c.writePacket(packets.FinishConfiguration{}); err != nil {
		return
	}

	for {
		name, payload, err := c.readNamed()
		if err != nil {
			return
		}
		switch name {
		case "acknowledge_finish_configuration":
			var ack packets.AcknowledgeFinishConfiguration
			if err := protocol.Unmarshal(ns.ByteArray(payload), &ack, c.version); err != nil {
				return
			}
			c.state = protocol.StatePlay
			c.enterPlay()
			return
		case "client_information", "serverbound_known_packs":
			// Not needed by limbo's static configuration; read and discard.
		default:
			return
		}
	}
}
