package net_structures_test

import (
	"bytes"
	"errors"
	"testing"

	ns "github.com/go-mclib/picolimbo/net_structures"
)

func TestVarIntRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		val  ns.VarInt
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one", 1, []byte{0x01}},
		{"127", 127, []byte{0x7f}},
		{"128", 128, []byte{0x80, 0x01}},
		{"255", 255, []byte{0xff, 0x01}},
		{"25565", 25565, []byte{0xdd, 0xc7, 0x01}},
		{"2097151", 2097151, []byte{0xff, 0xff, 0x7f}},
		{"max", 2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{"minus one", -1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{"min", -2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.val.ToBytes()
			if err != nil {
				t.Fatalf("ToBytes() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("ToBytes() = % x, want % x", got, tt.want)
			}

			var decoded ns.VarInt
			n, err := decoded.FromBytes(got)
			if err != nil {
				t.Fatalf("FromBytes() error = %v", err)
			}
			if n != len(tt.want) {
				t.Fatalf("FromBytes() consumed %d bytes, want %d", n, len(tt.want))
			}
			if decoded != tt.val {
				t.Fatalf("FromBytes() = %d, want %d", decoded, tt.val)
			}
		})
	}
}

func TestVarIntTooBig(t *testing.T) {
	stream := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	var v ns.VarInt
	_, err := v.FromBytes(stream)
	if !errors.Is(err, ns.ErrVarIntTooBig) {
		t.Fatalf("FromBytes() error = %v, want ErrVarIntTooBig", err)
	}
}

func TestVarIntIncomplete(t *testing.T) {
	stream := []byte{0x80, 0x80}
	var v ns.VarInt
	_, err := v.FromBytes(stream)
	if !errors.Is(err, ns.ErrInsufficientData) {
		t.Fatalf("FromBytes() error = %v, want ErrInsufficientData", err)
	}
}
