// Package packets is the catalogue of concrete packet types (C4): one
// Go struct per logical packet, fields tagged with the `ver:"min,max"`
// protocol-version range in which they are present on the wire. The
// struct's declaration order is its wire order; protocol.Marshal and
// protocol.Unmarshal do the rest.
package packets

import (
	ns "github.com/go-mclib/picolimbo/net_structures"
)

// Next-state values carried in Handshake.NextState.
const (
	IntentStatus   = 1
	IntentLogin    = 2
	IntentTransfer = 3 // introduced 1.20.5 (protocol 766); limbo treats it like Login.
)

// Handshake is the only packet ever read in StateHandshake; it selects
// which state the connection moves to next and is the sole place a
// client's claimed protocol version is read from the wire.
type Handshake struct {
	ProtocolVersion ns.VarInt
	Hostname        ns.String
	Port            ns.UnsignedShort
	NextState       ns.VarInt
}

func (Handshake) Name() string { return "handshake" }
