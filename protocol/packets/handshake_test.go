package packets_test

import (
	"bytes"
	"testing"

	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol"
	"github.com/go-mclib/picolimbo/protocol/packets"
)

func TestHandshakeDecodeExactBytes(t *testing.T) {
	raw := ns.ByteArray{
		0x81, 0x06, // VarInt 769
		0x09, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't',
		0x63, 0xDD, // port 25565
		0x01, // next_state = 1
	}

	var h packets.Handshake
	if err := protocol.Unmarshal(raw, &h, 769); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if h.ProtocolVersion != 769 || h.Hostname != "localhost" || h.Port != 25565 || h.NextState != 1 {
		t.Fatalf("decoded = %+v, want protocol=769 hostname=localhost port=25565 next_state=1", h)
	}

	out, err := protocol.Marshal(&h, 769)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Equal(out, raw) {
		t.Fatalf("Marshal() = % x, want % x", out, raw)
	}
}

func TestHandshakeAnyProtocolPreserved(t *testing.T) {
	h := packets.Handshake{ProtocolVersion: -1, Hostname: "h", Port: 25565, NextState: packets.IntentStatus}
	data, err := protocol.Marshal(&h, -1)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded packets.Handshake
	if err := protocol.Unmarshal(data, &decoded, -1); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.ProtocolVersion != -1 {
		t.Fatalf("ProtocolVersion = %d, want -1", decoded.ProtocolVersion)
	}
}
