package packets_test

import (
	"testing"

	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol"
	"github.com/go-mclib/picolimbo/protocol/packets"
	"github.com/go-mclib/picolimbo/protocolversion"
)

func TestClientBoundKeepAliveIDWidthPerEra(t *testing.T) {
	cases := []protocolVersionCase{
		{version: 4, field: "legacy"},
		{version: 47, field: "varint"},
		{version: 340, field: "modern"},
		{version: 767, field: "modern"},
	}

	for _, c := range cases {
		p := packets.ClientBoundKeepAlive{}
		switch c.field {
		case "legacy":
			p.IDLegacy = 42
		case "varint":
			p.IDVarInt = 42
		case "modern":
			p.IDModern = 42
		}

		data, err := protocol.Marshal(&p, c.version)
		if err != nil {
			t.Fatalf("version %d: Marshal() error = %v", c.version, err)
		}

		var decoded packets.ClientBoundKeepAlive
		if err := protocol.Unmarshal(data, &decoded, c.version); err != nil {
			t.Fatalf("version %d: Unmarshal() error = %v", c.version, err)
		}

		switch c.field {
		case "legacy":
			if decoded.IDLegacy != 42 || len(data) != 4 {
				t.Fatalf("version %d: IDLegacy = %d, len = %d, want 42 and 4 bytes", c.version, decoded.IDLegacy, len(data))
			}
		case "varint":
			if decoded.IDVarInt != 42 {
				t.Fatalf("version %d: IDVarInt = %d, want 42", c.version, decoded.IDVarInt)
			}
		case "modern":
			if decoded.IDModern != 42 || len(data) != 8 {
				t.Fatalf("version %d: IDModern = %d, len = %d, want 42 and 8 bytes", c.version, decoded.IDModern, len(data))
			}
		}
	}
}

type protocolVersionCase struct {
	version protocolversion.ProtocolVersion
	field   string
}

func TestGameEventStartWaitingForChunks(t *testing.T) {
	p := packets.GameEvent{EventType: packets.GameEventStartWaitingForChunks, Value: 0}
	data, err := protocol.Marshal(&p, 767)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded packets.GameEvent
	if err := protocol.Unmarshal(data, &decoded, 767); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.EventType != packets.GameEventStartWaitingForChunks {
		t.Fatalf("EventType = %d, want %d", decoded.EventType, packets.GameEventStartWaitingForChunks)
	}
}

func TestSynchronizePlayerPositionDismountVehicleWindow(t *testing.T) {
	p := packets.SynchronizePlayerPosition{X: 1, Y: 2, Z: 3, Yaw: 4, Pitch: 5, TeleportID: 9, DismountVehicle: true}

	withinWindow, err := protocol.Marshal(&p, 759)
	if err != nil {
		t.Fatalf("Marshal(759) error = %v", err)
	}
	outsideWindow, err := protocol.Marshal(&p, 763)
	if err != nil {
		t.Fatalf("Marshal(763) error = %v", err)
	}
	if len(withinWindow) != len(outsideWindow)+1 {
		t.Fatalf("withinWindow len %d, outsideWindow len %d, want a 1-byte difference", len(withinWindow), len(outsideWindow))
	}
}

func TestLoginPlayDimensionEraSwitch(t *testing.T) {
	legacy := packets.LoginPlay{EntityID: 1, Dimension: 0, LevelType: "default", Difficulty: 0, MaxPlayers: 20, ReducedDebugInfo: false}
	data, err := protocol.Marshal(&legacy, 47)
	if err != nil {
		t.Fatalf("Marshal(47) error = %v", err)
	}
	var decoded packets.LoginPlay
	if err := protocol.Unmarshal(data, &decoded, 47); err != nil {
		t.Fatalf("Unmarshal(47) error = %v", err)
	}
	if decoded.Dimension != 0 || decoded.LevelType != "default" {
		t.Fatalf("decoded(47) = %+v", decoded)
	}
	if len(decoded.DimensionNames) != 0 {
		t.Fatalf("DimensionNames should be absent pre-735, got %v", decoded.DimensionNames)
	}

	modern := packets.LoginPlay{
		EntityID:           1,
		DimensionNames:     ns.PrefixedArray[ns.Identifier]{"minecraft:overworld"},
		DimensionType:      "minecraft:overworld",
		DimensionName:      "minecraft:overworld",
		MaxPlayersVarInt:   20,
		ViewDistance:       10,
		SimulationDistance: 10,
	}
	data, err = protocol.Marshal(&modern, 767)
	if err != nil {
		t.Fatalf("Marshal(767) error = %v", err)
	}
	var decodedModern packets.LoginPlay
	if err := protocol.Unmarshal(data, &decodedModern, 767); err != nil {
		t.Fatalf("Unmarshal(767) error = %v", err)
	}
	if decodedModern.DimensionName != "minecraft:overworld" {
		t.Fatalf("decoded(767) DimensionName = %q", decodedModern.DimensionName)
	}
}
