package net_structures

import (
	"bytes"
	"fmt"

	"github.com/Tnze/go-mc/nbt"
)

// NBT is a Named Binary Tag payload. Two wire shapes are in play across
// protocol history (Invariant 5 of the spec):
//
//   - Nameless == true (>=1.20.2 "network NBT"): the root compound's name
//     tag is omitted entirely.
//   - Nameless == false (everything older): the root compound carries a
//     (usually empty) name string, like NBT written to disk.
//
// Tnze/go-mc/nbt's Encoder.NetworkFormat/Decoder.NetworkFormat flags select
// exactly this behavior, so NBT is a thin wrapper rather than a
// reimplementation.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Type:NBT
type NBT struct {
	Data     any
	Nameless bool
}

// NewNamelessNBT wraps data for the >=1.20.2 nameless-root wire form.
func NewNamelessNBT(data any) NBT {
	return NBT{Data: data, Nameless: true}
}

// NewNamedNBT wraps data for the pre-1.20.2 named-root wire form.
func NewNamedNBT(data any) NBT {
	return NBT{Data: data, Nameless: false}
}

func (n NBT) ToBytes() (ByteArray, error) {
	if n.Data == nil {
		return ByteArray{0x00}, nil
	}

	var buf bytes.Buffer
	encoder := nbt.NewEncoder(&buf)
	encoder.NetworkFormat(n.Nameless)

	if err := encoder.Encode(n.Data, ""); err != nil {
		return nil, fmt.Errorf("encode NBT: %w", err)
	}

	return buf.Bytes(), nil
}

func (n *NBT) FromBytes(data ByteArray) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("nbt: %w", ErrInsufficientData)
	}

	if data[0] == 0x00 {
		n.Data = nil
		return 1, nil
	}

	reader := bytes.NewReader(data)
	decoder := nbt.NewDecoder(reader)
	decoder.NetworkFormat(n.Nameless)

	var decoded any
	if _, err := decoder.Decode(&decoded); err != nil {
		return 0, fmt.Errorf("decode NBT: %w", err)
	}

	n.Data = decoded
	return len(data) - reader.Len(), nil
}

// IsEmpty reports whether the NBT payload is the zero-length TAG_End root.
func (n NBT) IsEmpty() bool {
	return n.Data == nil
}
