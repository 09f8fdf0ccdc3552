// Package net_structures implements the Minecraft Java Edition wire data
// types: fixed-width big-endian primitives, VarInt/VarLong, length-prefixed
// strings and byte arrays, UUIDs in their three historical wire formats,
// BitSet, packed block Position, and NBT.
//
// Every type implements the same small codec contract:
//
//	ToBytes() (ByteArray, error)
//	FromBytes(data ByteArray) (int, error)
//
// except UUID, which has one method pair per wire form; UUIDField,
// UUIDDashedField and UUIDUndashedField wrap those in the contract above.
//
// FromBytes returns the number of bytes consumed from the front of data so
// callers can chain reads without tracking offsets by hand.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Data_types
package net_structures

import "errors"

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrVarIntTooBig     = errors.New("VarInt is too big")
	ErrVarLongTooBig    = errors.New("VarLong is too big")
)

// ByteArray is a bare sequence of bytes whose length is known from context
// (a preceding VarInt, a fixed packet-field length, or "rest of packet").
type ByteArray []byte

func (b ByteArray) ToBytes() (ByteArray, error) {
	return b, nil
}

func (b *ByteArray) FromBytes(data ByteArray) (int, error) {
	dst := make(ByteArray, len(data))
	copy(dst, data)
	*b = dst
	return len(data), nil
}

// PrefixedByteArray is a ByteArray preceded by a VarInt length.
type PrefixedByteArray []byte

func (p PrefixedByteArray) ToBytes() (ByteArray, error) {
	lengthBytes, err := VarInt(len(p)).ToBytes()
	if err != nil {
		return nil, err
	}
	out := make(ByteArray, 0, len(lengthBytes)+len(p))
	out = append(out, lengthBytes...)
	out = append(out, p...)
	return out, nil
}

func (p *PrefixedByteArray) FromBytes(data ByteArray) (int, error) {
	var length VarInt
	off, err := length.FromBytes(data)
	if err != nil {
		return 0, err
	}
	if length < 0 || len(data) < off+int(length) {
		return 0, errors.New("insufficient data for PrefixedByteArray")
	}
	dst := make([]byte, int(length))
	copy(dst, data[off:off+int(length)])
	*p = dst
	return off + int(length), nil
}

// FixedByteArray is a ByteArray whose length is carried in Length rather
// than in a prefix or by the rest of the buffer. FromBytes reads exactly
// Length bytes, so Length must be set on the destination before decoding.
type FixedByteArray struct {
	Length int
	Data   []byte
}

func (f FixedByteArray) ToBytes() (ByteArray, error) {
	if len(f.Data) != f.Length {
		return nil, errors.New("fixed byte array length mismatch")
	}
	return ByteArray(f.Data), nil
}

func (f *FixedByteArray) FromBytes(data ByteArray) (int, error) {
	if len(data) < f.Length {
		return 0, errors.New("insufficient data for FixedByteArray")
	}
	dst := make([]byte, f.Length)
	copy(dst, data[:f.Length])
	f.Data = dst
	return f.Length, nil
}
