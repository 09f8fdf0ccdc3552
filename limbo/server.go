// Package limbo wires the protocol, registry, forwarding, registrydata and
// world packages together into the connection state machine (C5): the
// accept loop, per-connection goroutine, and the process-wide state every
// connection reads.
package limbo

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/go-mclib/picolimbo/forwarding"
	"github.com/go-mclib/picolimbo/protocol/packets"
	"github.com/go-mclib/picolimbo/protocolversion"
	"github.com/go-mclib/picolimbo/registrydata"
	"github.com/go-mclib/picolimbo/world"
)

// GameMode mirrors the four values `default_game_mode` accepts.
type GameMode byte

const (
	GameModeSurvival GameMode = iota
	GameModeCreative
	GameModeAdventure
	GameModeSpectator
)

// ServerState is the process-wide, read-mostly configuration and counters
// every connection shares. Only OnlinePlayers mutates after startup; it is
// always touched through atomic.Int64.
type ServerState struct {
	Bind string

	ForwardingMode    forwarding.Mode
	VelocitySecret    []byte
	BungeeGuardTokens map[string]struct{}

	SpawnDimension registrydata.Dimension
	World          *world.World

	MessageOfTheDay       string
	MaxPlayers            int
	ShowOnlinePlayerCount bool
	WelcomeMessage        string
	DefaultGameMode       GameMode
	Hardcore              bool
	ViewDistance          int32

	SpawnX, SpawnY, SpawnZ float64
	SpawnYaw, SpawnPitch   float32

	Log *logrus.Logger

	onlinePlayers atomic.Int64
}

// NewServerState builds a ServerState with everything that isn't set by
// config given a sane limbo default.
func NewServerState() *ServerState {
	return &ServerState{
		Bind:                  "0.0.0.0:25565",
		MessageOfTheDay:       "A PicoLimbo Server",
		MaxPlayers:            20,
		ShowOnlinePlayerCount: true,
		DefaultGameMode:       GameModeSurvival,
		ViewDistance:          10,
		SpawnY:                64,
		World:                 world.NewVoidWorld(),
		Log:                   logrus.StandardLogger(),
	}
}

// OnlinePlayers is the atomic counter §4.5/§5 describe: incremented exactly
// once per connection on first entry to Play, decremented exactly once on
// disconnect.
func (s *ServerState) OnlinePlayers() int64 { return s.onlinePlayers.Load() }

func (s *ServerState) incrementOnline() { s.onlinePlayers.Add(1) }
func (s *ServerState) decrementOnline() { s.onlinePlayers.Add(-1) }

// StatusJSON builds the Status-state response payload for the given
// handshake protocol version (which may be protocolversion.Any).
func (s *ServerState) StatusJSON(version protocolversion.ProtocolVersion) (string, error) {
	var payload packets.StatusResponsePayload
	if version == protocolversion.Any {
		payload.Version.Name = fmt.Sprintf("%s-%s", protocolversion.Oldest, protocolversion.Newest)
		payload.Version.Protocol = int32(protocolversion.Any)
	} else {
		payload.Version.Name = version.String()
		payload.Version.Protocol = int32(version)
	}
	payload.Players.Max = s.MaxPlayers
	if s.ShowOnlinePlayerCount {
		payload.Players.Online = int(s.OnlinePlayers())
	}
	payload.Description = map[string]string{"text": s.MessageOfTheDay}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal status response: %w", err)
	}
	return string(raw), nil
}

// Serve runs the accept loop until ctx is cancelled or listening fails.
// Each accepted connection is handled in its own goroutine; a panic inside
// one is recovered so it cannot take the process down (§7, last paragraph).
func (s *ServerState) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.Bind)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.Bind, err)
	}

	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	s.Log.WithField("bind", s.Bind).Info("listening")

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				s.Log.WithError(err).Warn("accept failed")
				continue
			}
		}
		go s.handleConnection(conn)
	}
}

func (s *ServerState) handleConnection(conn net.Conn) {
	defer func() {
		if r := recover(); r != nil {
			s.Log.WithField("panic", r).WithField("remote", conn.RemoteAddr()).Error("connection handler panicked")
			_ = conn.Close()
		}
	}()

	c := newConnection(s, conn)
	c.run()
}

// randomInt63 is used for keep-alive payloads; crypto/rand rather than
// math/rand so the server never depends on a process-global PRNG.
func randomInt63() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<62))
	if err != nil {
		return 0
	}
	return n.Int64()
}
