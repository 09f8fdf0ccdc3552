package net_structures

import (
	"encoding/binary"
	"math"
)

// Boolean is either true or false: 0x01 on the wire for true, 0x00 for
// false. Any non-zero byte read back is treated as true.
type Boolean bool

func (b Boolean) ToBytes() (ByteArray, error) {
	if b {
		return ByteArray{0x01}, nil
	}
	return ByteArray{0x00}, nil
}

func (b *Boolean) FromBytes(data ByteArray) (int, error) {
	if len(data) < 1 {
		return 0, ErrInsufficientData
	}
	*b = data[0] != 0
	return 1, nil
}

// Byte is a signed 8-bit integer.
type Byte int8

func (v Byte) ToBytes() (ByteArray, error) { return ByteArray{byte(v)}, nil }
func (v *Byte) FromBytes(data ByteArray) (int, error) {
	if len(data) < 1 {
		return 0, ErrInsufficientData
	}
	*v = Byte(int8(data[0]))
	return 1, nil
}

// UnsignedByte is an unsigned 8-bit integer.
type UnsignedByte uint8

func (v UnsignedByte) ToBytes() (ByteArray, error) { return ByteArray{byte(v)}, nil }
func (v *UnsignedByte) FromBytes(data ByteArray) (int, error) {
	if len(data) < 1 {
		return 0, ErrInsufficientData
	}
	*v = UnsignedByte(data[0])
	return 1, nil
}

// Short is a big-endian signed 16-bit integer.
type Short int16

func (v Short) ToBytes() (ByteArray, error) {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, uint16(v))
	return data, nil
}

func (v *Short) FromBytes(data ByteArray) (int, error) {
	if len(data) < 2 {
		return 0, ErrInsufficientData
	}
	*v = Short(int16(binary.BigEndian.Uint16(data)))
	return 2, nil
}

// UnsignedShort is a big-endian unsigned 16-bit integer, used for ports.
type UnsignedShort uint16

func (v UnsignedShort) ToBytes() (ByteArray, error) {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, uint16(v))
	return data, nil
}

func (v *UnsignedShort) FromBytes(data ByteArray) (int, error) {
	if len(data) < 2 {
		return 0, ErrInsufficientData
	}
	*v = UnsignedShort(binary.BigEndian.Uint16(data))
	return 2, nil
}

// Int is a big-endian signed 32-bit integer.
type Int int32

func (v Int) ToBytes() (ByteArray, error) {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, uint32(v))
	return data, nil
}

func (v *Int) FromBytes(data ByteArray) (int, error) {
	if len(data) < 4 {
		return 0, ErrInsufficientData
	}
	*v = Int(int32(binary.BigEndian.Uint32(data)))
	return 4, nil
}

// Long is a big-endian signed 64-bit integer.
type Long int64

func (v Long) ToBytes() (ByteArray, error) {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, uint64(v))
	return data, nil
}

func (v *Long) FromBytes(data ByteArray) (int, error) {
	if len(data) < 8 {
		return 0, ErrInsufficientData
	}
	*v = Long(int64(binary.BigEndian.Uint64(data)))
	return 8, nil
}

// Float is a big-endian IEEE 754 single-precision float.
type Float float32

func (v Float) ToBytes() (ByteArray, error) {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, math.Float32bits(float32(v)))
	return data, nil
}

func (v *Float) FromBytes(data ByteArray) (int, error) {
	if len(data) < 4 {
		return 0, ErrInsufficientData
	}
	*v = Float(math.Float32frombits(binary.BigEndian.Uint32(data)))
	return 4, nil
}

// Double is a big-endian IEEE 754 double-precision float.
type Double float64

func (v Double) ToBytes() (ByteArray, error) {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, math.Float64bits(float64(v)))
	return data, nil
}

func (v *Double) FromBytes(data ByteArray) (int, error) {
	if len(data) < 8 {
		return 0, ErrInsufficientData
	}
	*v = Double(math.Float64frombits(binary.BigEndian.Uint64(data)))
	return 8, nil
}
