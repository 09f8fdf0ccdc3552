package net_structures

import (
	"errors"
	"unicode/utf8"
)

// String is a UTF-8 string prefixed with its length in bytes as a VarInt.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Type:String
type String string

func (s String) ToBytes() (ByteArray, error) {
	raw := []byte(s)
	lengthBytes, err := VarInt(len(raw)).ToBytes()
	if err != nil {
		return nil, err
	}
	out := make(ByteArray, 0, len(lengthBytes)+len(raw))
	out = append(out, lengthBytes...)
	out = append(out, raw...)
	return out, nil
}

func (s *String) FromBytes(data ByteArray) (int, error) {
	var length VarInt
	off, err := length.FromBytes(data)
	if err != nil {
		return 0, err
	}
	if length < 0 || len(data) < off+int(length) {
		return 0, errors.New("insufficient data for String")
	}
	raw := data[off : off+int(length)]
	if !utf8.Valid(raw) {
		return 0, errors.New("string is not valid UTF-8")
	}
	*s = String(raw)
	return off + int(length), nil
}

// Identifier is a namespaced string of the form "namespace:path"; it is
// encoded exactly like String but carries the shape as documentation.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Type:Identifier
type Identifier string

func (i Identifier) ToBytes() (ByteArray, error) {
	return String(i).ToBytes()
}

func (i *Identifier) FromBytes(data ByteArray) (int, error) {
	var s String
	n, err := s.FromBytes(data)
	if err != nil {
		return 0, err
	}
	*i = Identifier(s)
	return n, nil
}
