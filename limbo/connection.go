package limbo

import (
	"net"
	"sync"

	"github.com/sirupsen/logrus"

	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol"
	"github.com/go-mclib/picolimbo/protocol/packets"
	"github.com/go-mclib/picolimbo/protocolversion"
	"github.com/go-mclib/picolimbo/registry"
)

// GameProfile is the identity a connection settles on once Login completes:
// either derived offline from the username, or handed down by a forwarding
// proxy (forwarding.Identity).
type GameProfile struct {
	UUID       ns.UUID
	Username   string
	Properties []packets.ProfileProperty
}

// clientState is the per-connection mutable state (ConnectionContext in
// spec terms, §3). It is owned exclusively by its connection goroutine,
// except for the write half of conn, which the keep-alive goroutine also
// touches, serialized through writeMu.
type clientState struct {
	server *ServerState
	conn   net.Conn
	log    *logrus.Entry

	state   protocol.State
	version protocolversion.ProtocolVersion

	hostname string // raw Handshake hostname field, needed by legacy/BungeeGuard forwarding

	profile           GameProfile
	velocityMessageID int32 // -1 until a Velocity challenge has been issued

	enteredPlay   bool
	keepAliveStop chan struct{}
	writeMu       sync.Mutex
}

func newConnection(s *ServerState, conn net.Conn) *clientState {
	return &clientState{
		server:            s,
		conn:              conn,
		log:               s.Log.WithField("remote", conn.RemoteAddr()),
		state:             protocol.StateHandshake,
		version:           protocolversion.Any,
		velocityMessageID: -1,
	}
}

// writePacket marshals p for the connection's version, looks up its wire id
// for the current state, and writes one frame.
func (c *clientState) writePacket(p protocol.Packet) error {
	payload, err := protocol.Marshal(p, c.version)
	if err != nil {
		return err
	}
	id, err := registry.IDOf(c.version, c.state, protocol.ClientBound, p.Name())
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return protocol.WriteFrame(c.conn, id, payload)
}

// readNamed reads one frame and resolves its registered name for the
// connection's current state/version, without decoding it yet: callers
// dispatch on name before choosing a destination type.
func (c *clientState) readNamed() (string, []byte, error) {
	frame, err := protocol.ReadFrame(c.conn)
	if err != nil {
		return "", nil, err
	}
	name, err := registry.NameOf(c.version, c.state, protocol.ServerBound, frame.ID)
	if err != nil {
		return "", nil, err
	}
	return name, frame.Payload, nil
}

// kick sends the state-appropriate Disconnect packet (nothing in
// Handshake/Status, where the connection is simply closed) and tears the
// connection down.
func (c *clientState) kick(reason string) {
	switch c.state {
	case protocol.StateLogin:
		_ = c.writePacket(packets.LoginDisconnect{Reason: ns.NewTextComponent(reason)})
	case protocol.StateConfiguration:
		_ = c.writePacket(packets.ConfigurationDisconnect{Reason: ns.NewTextComponent(reason)})
	case protocol.StatePlay:
		_ = c.writePacket(packets.Disconnect{Reason: ns.NewTextComponent(reason)})
	}
	c.log.WithField("reason", reason).Info("kicked")
	c.close()
}

func (c *clientState) close() {
	if c.keepAliveStop != nil {
		close(c.keepAliveStop)
		c.keepAliveStop = nil
	}
	if c.enteredPlay {
		c.server.decrementOnline()
		c.enteredPlay = false
	}
	_ = c.conn.Close()
}

// run drives the whole state machine (§4.5) for one connection, from
// Handshake through to disconnect.
func (c *clientState) run() {
	defer c.close()

	nextState, err := c.readHandshake()
	if err != nil {
		c.log.WithError(err).Debug("handshake failed")
		return
	}

	switch nextState {
	case packets.IntentStatus:
		c.state = protocol.StateStatus
		c.runStatus()
	case packets.IntentLogin, packets.IntentTransfer:
		// Open Question (a): Transfer is serviced identically to Login.
		c.state = protocol.StateLogin
		c.runLogin()
	default:
		c.log.WithField("next_state", nextState).Debug("unrecognized next_state, closing")
	}
}

// readHandshake reads the single packet ever legal in StateHandshake. Its
// wire id is 0x00 for every supported version (registry.go's package doc
// notes Handshake ids never drift), so this decodes the frame directly
// without a registry lookup.
func (c *clientState) readHandshake() (int32, error) {
	frame, err := protocol.ReadFrame(c.conn)
	if err != nil {
		return 0, err
	}

	var hs packets.Handshake
	if err := protocol.Unmarshal(ns.ByteArray(frame.Payload), &hs, protocolversion.Any); err != nil {
		return 0, err
	}

	if int32(hs.ProtocolVersion) == int32(protocolversion.Any) {
		c.version = protocolversion.Any
	} else {
		c.version = protocolversion.From(int32(hs.ProtocolVersion))
	}
	c.hostname = string(hs.Hostname)
	c.log = c.log.WithField("version", c.version)
	return int32(hs.NextState), nil
}
