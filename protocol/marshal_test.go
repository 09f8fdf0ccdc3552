package protocol_test

import (
	"bytes"
	"testing"

	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol"
	"github.com/go-mclib/picolimbo/protocolversion"
)

type versionedTestPacket struct {
	Name      ns.String
	SigData   ns.PrefixedOptional[ns.FixedByteArray] `ver:"759,761"`
	PlayerID  ns.PrefixedOptional[ns.UUIDField]      `ver:"761,"`
	Dismount  ns.Boolean                             `ver:"755,763"`
	Intention ns.VarInt
}

func TestMarshalSkipsFieldsOutsideRange(t *testing.T) {
	p := versionedTestPacket{
		Name:      "Notch",
		Intention: 2,
	}

	old, err := protocol.Marshal(&p, 340) // 1.12.2: none of the ranged fields present
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	wantOld, _ := p.Name.ToBytes()
	intentBytes, _ := p.Intention.ToBytes()
	wantOld = append(wantOld, intentBytes...)
	if !bytes.Equal(old, wantOld) {
		t.Fatalf("Marshal(1.12.2) = % x, want % x", old, wantOld)
	}

	new, err := protocol.Marshal(&p, 767) // 1.21: PlayerID present, Dismount and SigData absent
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	wantNew, _ := p.Name.ToBytes()
	idBytes, _ := p.PlayerID.ToBytes()
	wantNew = append(wantNew, idBytes...)
	wantNew = append(wantNew, intentBytes...)
	if !bytes.Equal(new, wantNew) {
		t.Fatalf("Marshal(1.21) = % x, want % x", new, wantNew)
	}
}

func TestUnmarshalRoundTripPerVersion(t *testing.T) {
	versions := []protocolversion.ProtocolVersion{340, 759, 761, 767}

	for _, v := range versions {
		p := versionedTestPacket{Name: "Steve", Intention: 1}
		if v == 759 {
			p.SigData = ns.Some(ns.FixedByteArray{Length: 4, Data: []byte{1, 2, 3, 4}})
		}
		if v.AtLeast(761) {
			p.PlayerID = ns.Some(ns.UUIDField{})
		}
		if v.AtLeast(755) && v.Below(763) {
			p.Dismount = true
		}

		data, err := protocol.Marshal(&p, v)
		if err != nil {
			t.Fatalf("version %d: Marshal() error = %v", v, err)
		}

		var decoded versionedTestPacket
		decoded.SigData.Value.Length = 4 // FixedByteArray decodes exactly Length bytes
		if err := protocol.Unmarshal(data, &decoded, v); err != nil {
			t.Fatalf("version %d: Unmarshal() error = %v", v, err)
		}

		if decoded.Name != p.Name || decoded.Intention != p.Intention {
			t.Fatalf("version %d: round trip mismatch: %+v != %+v", v, decoded, p)
		}
	}
}
