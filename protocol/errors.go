package protocol

import "errors"

// Framing errors (C2 / §7.2).
var (
	ErrIncompleteLength = errors.New("packet length VarInt did not terminate within 5 bytes")
	ErrPacketTooLarge   = errors.New("packet length exceeds 2097151 bytes")
	ErrNegativeLength   = errors.New("packet length is negative")
	ErrEmptyPacket      = errors.New("packet length is zero")
)

// Protocol errors (§7.3-7.5).
var (
	ErrUnknownPacket    = errors.New("packet id is not registered for this state/version")
	ErrStateViolation   = errors.New("packet is not legal in the connection's current state")
	ErrVersionImmutable = errors.New("protocol version cannot change after handshake")
)

// MaxFrameLength is the largest legal value of the length prefix: the
// biggest number a 3-byte VarInt can hold, (2^21)-1.
const MaxFrameLength = 2_097_151
