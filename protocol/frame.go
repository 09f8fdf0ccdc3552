package protocol

import (
	"fmt"
	"io"

	ns "github.com/go-mclib/picolimbo/net_structures"
)

// Frame is one decoded `VarInt(length) || u8(id) || payload` unit, with the
// packet ID already split from the rest of the payload for the registry to
// look up.
type Frame struct {
	ID      byte
	Payload []byte
}

// ReadFrame reads one frame from r. It reads the length VarInt one byte at
// a time (never peeking past it), then reads exactly that many more bytes.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Packet_format
func ReadFrame(r io.Reader) (*Frame, error) {
	length, err := readLengthVarInt(r)
	if err != nil {
		return nil, err
	}

	switch {
	case length < 0:
		return nil, ErrNegativeLength
	case length == 0:
		return nil, ErrEmptyPacket
	case length > MaxFrameLength:
		return nil, ErrPacketTooLarge
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("read frame body: %w", err)
	}

	return &Frame{ID: body[0], Payload: body[1:]}, nil
}

func readLengthVarInt(r io.Reader) (int32, error) {
	var value uint32
	var position uint
	var b [1]byte

	for i := 0; i < 5; i++ {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, fmt.Errorf("read length byte %d: %w", i, err)
		}
		value |= uint32(b[0]&0x7F) << position
		if b[0]&0x80 == 0 {
			return int32(value), nil
		}
		position += 7
	}
	return 0, ErrIncompleteLength
}

// WriteFrame encodes id and payload as one frame and writes it atomically.
func WriteFrame(w io.Writer, id byte, payload []byte) error {
	body := make([]byte, 0, 1+len(payload))
	body = append(body, id)
	body = append(body, payload...)

	lengthBytes, err := ns.VarInt(len(body)).ToBytes()
	if err != nil {
		return err
	}

	frame := make([]byte, 0, len(lengthBytes)+len(body))
	frame = append(frame, lengthBytes...)
	frame = append(frame, body...)

	_, err = w.Write(frame)
	return err
}
