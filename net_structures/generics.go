package net_structures

import "fmt"

type codec interface {
	ToBytes() (ByteArray, error)
}

type decodec interface {
	FromBytes(ByteArray) (int, error)
}

// PrefixedOptional is a value preceded by a Boolean presence flag: when
// false, nothing follows on the wire.
type PrefixedOptional[T any] struct {
	Present bool
	Value   T
}

func Some[T any](v T) PrefixedOptional[T] { return PrefixedOptional[T]{Present: true, Value: v} }
func None[T any]() PrefixedOptional[T]    { return PrefixedOptional[T]{} }

func (p PrefixedOptional[T]) ToBytes() (ByteArray, error) {
	result, err := Boolean(p.Present).ToBytes()
	if err != nil {
		return nil, err
	}
	if !p.Present {
		return result, nil
	}
	enc, ok := any(p.Value).(codec)
	if !ok {
		return nil, fmt.Errorf("type %T does not implement ToBytes", p.Value)
	}
	valueBytes, err := enc.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(result, valueBytes...), nil
}

func (p *PrefixedOptional[T]) FromBytes(data ByteArray) (int, error) {
	var present Boolean
	n, err := present.FromBytes(data)
	if err != nil {
		return 0, err
	}
	p.Present = bool(present)
	if !p.Present {
		return n, nil
	}
	dec, ok := any(&p.Value).(decodec)
	if !ok {
		return 0, fmt.Errorf("type %T does not implement FromBytes", p.Value)
	}
	read, err := dec.FromBytes(data[n:])
	if err != nil {
		return 0, err
	}
	return n + read, nil
}

// PrefixedArray is a VarInt-length-prefixed, densely packed sequence of T.
type PrefixedArray[T any] []T

func (p PrefixedArray[T]) ToBytes() (ByteArray, error) {
	result, err := VarInt(len(p)).ToBytes()
	if err != nil {
		return nil, err
	}
	for i, item := range p {
		enc, ok := any(item).(codec)
		if !ok {
			return nil, fmt.Errorf("array item %d: type %T does not implement ToBytes", i, item)
		}
		itemBytes, err := enc.ToBytes()
		if err != nil {
			return nil, fmt.Errorf("array item %d: %w", i, err)
		}
		result = append(result, itemBytes...)
	}
	return result, nil
}

func (p *PrefixedArray[T]) FromBytes(data ByteArray) (int, error) {
	var length VarInt
	offset, err := length.FromBytes(data)
	if err != nil {
		return 0, err
	}
	if length < 0 {
		return 0, fmt.Errorf("negative array length")
	}

	items := make(PrefixedArray[T], length)
	for i := range items {
		dec, ok := any(&items[i]).(decodec)
		if !ok {
			return 0, fmt.Errorf("array item %d: type %T does not implement FromBytes", i, items[i])
		}
		read, err := dec.FromBytes(data[offset:])
		if err != nil {
			return 0, fmt.Errorf("array item %d: %w", i, err)
		}
		offset += read
	}
	*p = items
	return offset, nil
}
