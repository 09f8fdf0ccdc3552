package limbo

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol"
	"github.com/go-mclib/picolimbo/protocol/packets"
	"github.com/go-mclib/picolimbo/protocolversion"
	"github.com/go-mclib/picolimbo/registry"
)

func testServerState() *ServerState {
	s := NewServerState()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	s.Log = log
	return s
}

// serve starts s.handleConnection on the server half of a net.Pipe and
// returns the client half for the test to drive.
func serve(s *ServerState) net.Conn {
	client, server := net.Pipe()
	go s.handleConnection(server)
	return client
}

func sendPacket(t *testing.T, conn net.Conn, version protocolversion.ProtocolVersion, state protocol.State, p protocol.Packet) {
	t.Helper()
	payload, err := protocol.Marshal(p, version)
	if err != nil {
		t.Fatalf("marshal %s: %v", p.Name(), err)
	}
	id, err := registry.IDOf(version, state, protocol.ServerBound, p.Name())
	if err != nil {
		t.Fatalf("id of %s: %v", p.Name(), err)
	}
	if err := protocol.WriteFrame(conn, id, payload); err != nil {
		t.Fatalf("write frame %s: %v", p.Name(), err)
	}
}

// sendHandshake bypasses the registry exactly like clientState.readHandshake
// does: Handshake's wire id is 0x00 for every version, before any version is
// known to look anything else up by.
func sendHandshake(t *testing.T, conn net.Conn, protocolVersion int32, nextState int32) {
	t.Helper()
	hs := packets.Handshake{
		ProtocolVersion: ns.VarInt(protocolVersion),
		Hostname:        "localhost",
		Port:            25565,
		NextState:       ns.VarInt(nextState),
	}
	payload, err := protocol.Marshal(hs, protocolversion.Any)
	if err != nil {
		t.Fatalf("marshal handshake: %v", err)
	}
	if err := protocol.WriteFrame(conn, 0x00, payload); err != nil {
		t.Fatalf("write handshake frame: %v", err)
	}
}

// expectPacket reads one frame, asserts its registered clientbound name
// matches want, and (if dst is non-nil) decodes the payload into it.
func expectPacket(t *testing.T, conn net.Conn, version protocolversion.ProtocolVersion, state protocol.State, want string, dst protocol.Packet) {
	t.Helper()
	frame, err := protocol.ReadFrame(conn)
	if err != nil {
		t.Fatalf("read frame (want %s): %v", want, err)
	}
	name, err := registry.NameOf(version, state, protocol.ClientBound, frame.ID)
	if err != nil {
		t.Fatalf("name of id 0x%02X (want %s): %v", frame.ID, want, err)
	}
	if name != want {
		t.Fatalf("got packet %q, want %q", name, want)
	}
	if dst != nil {
		if err := protocol.Unmarshal(ns.ByteArray(frame.Payload), dst, version); err != nil {
			t.Fatalf("unmarshal %s: %v", want, err)
		}
	}
}

func TestRunStatus(t *testing.T) {
	s := testServerState()
	s.MessageOfTheDay = "Test MOTD"
	conn := serve(s)
	defer conn.Close()

	version := protocolversion.ProtocolVersion(767)
	sendHandshake(t, conn, int32(version), packets.IntentStatus)
	sendPacket(t, conn, version, protocol.StateStatus, packets.StatusRequest{})

	var resp packets.StatusResponse
	expectPacket(t, conn, version, protocol.StateStatus, "status_response", &resp)
	if len(resp.JSON) == 0 {
		t.Fatalf("expected non-empty status JSON")
	}

	sendPacket(t, conn, version, protocol.StateStatus, packets.PingRequest{Timestamp: 42})
	var pong packets.PongResponse
	expectPacket(t, conn, version, protocol.StateStatus, "pong_response", &pong)
	if pong.Timestamp != 42 {
		t.Fatalf("pong timestamp = %d, want 42", pong.Timestamp)
	}
}

// TestRunStatusWildcardVersion drives scenario 2: a Handshake claiming
// protocol -1 never resolves to a concrete version, so the whole Status
// exchange (including the registry lookups readNamed/writePacket make
// under the hood) has to work with protocolversion.Any instead of falling
// through to ErrUnknownPacket.
func TestRunStatusWildcardVersion(t *testing.T) {
	s := testServerState()
	s.MessageOfTheDay = "Test MOTD"
	conn := serve(s)
	defer conn.Close()

	version := protocolversion.Any
	sendHandshake(t, conn, int32(version), packets.IntentStatus)
	sendPacket(t, conn, version, protocol.StateStatus, packets.StatusRequest{})

	var resp packets.StatusResponse
	expectPacket(t, conn, version, protocol.StateStatus, "status_response", &resp)

	var payload packets.StatusResponsePayload
	if err := json.Unmarshal([]byte(resp.JSON), &payload); err != nil {
		t.Fatalf("unmarshal status response JSON: %v", err)
	}
	if payload.Version.Protocol != int32(protocolversion.Any) {
		t.Fatalf("status version.protocol = %d, want %d", payload.Version.Protocol, protocolversion.Any)
	}
	wantName := protocolversion.Oldest.String() + "-" + protocolversion.Newest.String()
	if payload.Version.Name != wantName {
		t.Fatalf("status version.name = %q, want %q", payload.Version.Name, wantName)
	}

	sendPacket(t, conn, version, protocol.StateStatus, packets.PingRequest{Timestamp: 42})
	var pong packets.PongResponse
	expectPacket(t, conn, version, protocol.StateStatus, "pong_response", &pong)
	if pong.Timestamp != 42 {
		t.Fatalf("pong timestamp = %d, want 42", pong.Timestamp)
	}
}

// TestLegacyJoin drives scenario 4 from the scenario catalogue: a 1.8
// client (protocol 47) has no Configuration state, a dashed-string UUID,
// and an entry bundle of exactly LoginPlay + SynchronizePlayerPosition
// (every later-added packet in the bundle is version-gated out).
func TestLegacyJoin(t *testing.T) {
	s := testServerState()
	conn := serve(s)
	defer conn.Close()

	version := protocolversion.ProtocolVersion(47)
	sendHandshake(t, conn, int32(version), packets.IntentLogin)
	sendPacket(t, conn, version, protocol.StateLogin, packets.LoginStart{Name: "Notch"})

	var success packets.LoginSuccess
	expectPacket(t, conn, version, protocol.StateLogin, "login_success", &success)
	if success.Username != "Notch" {
		t.Fatalf("login_success username = %q, want Notch", success.Username)
	}
	wantUUID := ns.OfflineUUID("Notch")
	if success.UUIDString.UUID != wantUUID {
		t.Fatalf("login_success uuid = %v, want %v", success.UUIDString.UUID, wantUUID)
	}

	var loginPlay packets.LoginPlay
	expectPacket(t, conn, version, protocol.StatePlay, "login_play", &loginPlay)
	if loginPlay.LevelType != "flat" {
		t.Fatalf("login_play level type = %q, want flat", loginPlay.LevelType)
	}
	if loginPlay.Dimension != 0 {
		t.Fatalf("login_play dimension = %d, want 0 (overworld)", loginPlay.Dimension)
	}

	var sync packets.SynchronizePlayerPosition
	expectPacket(t, conn, version, protocol.StatePlay, "synchronize_player_position", &sync)

	if s.OnlinePlayers() != 1 {
		t.Fatalf("online players = %d, want 1", s.OnlinePlayers())
	}

	conn.Close()
	waitForOnlineCount(t, s, 0)
}

// TestModernJoin drives scenario 5: a 1.21 client (protocol 767) goes
// through Configuration, receives registry data per-registry (Era766Plus),
// and the entry bundle gains SetDefaultSpawnPosition, GameEvent and the
// spawn chunk that didn't exist for the legacy client above.
func TestModernJoin(t *testing.T) {
	s := testServerState()
	conn := serve(s)
	defer conn.Close()

	version := protocolversion.ProtocolVersion(767)
	sendHandshake(t, conn, int32(version), packets.IntentLogin)
	sendPacket(t, conn, version, protocol.StateLogin, packets.LoginStart{Name: "Steve"})

	var success packets.LoginSuccess
	expectPacket(t, conn, version, protocol.StateLogin, "login_success", &success)
	if success.Username != "Steve" {
		t.Fatalf("login_success username = %q, want Steve", success.Username)
	}

	sendPacket(t, conn, version, protocol.StateLogin, packets.LoginAcknowledged{})

	var brand packets.ClientBoundPluginMessage
	expectPacket(t, conn, version, protocol.StateConfiguration, "client_bound_plugin_message", &brand)
	if brand.Channel != "minecraft:brand" {
		t.Fatalf("brand channel = %q, want minecraft:brand", brand.Channel)
	}

	var knownPacks packets.ClientBoundKnownPacks
	expectPacket(t, conn, version, protocol.StateConfiguration, "client_bound_known_packs", &knownPacks)

	// Era766Plus: one registry_data packet per registry (dimension_type,
	// worldgen/biome), in the order registrydata.For emits them.
	var dimReg, biomeReg packets.RegistryData
	expectPacket(t, conn, version, protocol.StateConfiguration, "registry_data", &dimReg)
	if dimReg.RegistryID != "minecraft:dimension_type" {
		t.Fatalf("first registry_data id = %q, want minecraft:dimension_type", dimReg.RegistryID)
	}
	expectPacket(t, conn, version, protocol.StateConfiguration, "registry_data", &biomeReg)
	if biomeReg.RegistryID != "minecraft:worldgen/biome" {
		t.Fatalf("second registry_data id = %q, want minecraft:worldgen/biome", biomeReg.RegistryID)
	}

	expectPacket(t, conn, version, protocol.StateConfiguration, "finish_configuration", nil)

	sendPacket(t, conn, version, protocol.StateConfiguration, packets.AcknowledgeFinishConfiguration{})

	var loginPlay packets.LoginPlay
	expectPacket(t, conn, version, protocol.StatePlay, "login_play", &loginPlay)
	if loginPlay.DimensionName != "minecraft:overworld" {
		t.Fatalf("login_play dimension name = %q, want minecraft:overworld", loginPlay.DimensionName)
	}

	expectPacket(t, conn, version, protocol.StatePlay, "synchronize_player_position", nil)
	expectPacket(t, conn, version, protocol.StatePlay, "set_default_spawn_position", nil)
	expectPacket(t, conn, version, protocol.StatePlay, "game_event", nil)
	expectPacket(t, conn, version, protocol.StatePlay, "chunk_data_and_update_light", nil)

	if s.OnlinePlayers() != 1 {
		t.Fatalf("online players = %d, want 1", s.OnlinePlayers())
	}

	conn.Close()
	waitForOnlineCount(t, s, 0)
}

// TestOnlinePlayerCounterReturnsToZero is the general invariant from the
// scenario catalogue: for any number of connections that enter Play and
// disconnect, the online count lands back at zero and never goes negative.
func TestOnlinePlayerCounterReturnsToZero(t *testing.T) {
	s := testServerState()
	const n = 8

	conns := make([]net.Conn, n)
	for i := range conns {
		conns[i] = serve(s)
	}

	version := protocolversion.ProtocolVersion(47)
	for _, conn := range conns {
		sendHandshake(t, conn, int32(version), packets.IntentLogin)
		sendPacket(t, conn, version, protocol.StateLogin, packets.LoginStart{Name: "Player"})
		var success packets.LoginSuccess
		expectPacket(t, conn, version, protocol.StateLogin, "login_success", &success)
		expectPacket(t, conn, version, protocol.StatePlay, "login_play", nil)
		expectPacket(t, conn, version, protocol.StatePlay, "synchronize_player_position", nil)
	}

	if got := s.OnlinePlayers(); got != n {
		t.Fatalf("online players = %d, want %d", got, n)
	}

	for _, conn := range conns {
		conn.Close()
	}
	waitForOnlineCount(t, s, 0)

	if got := s.OnlinePlayers(); got < 0 {
		t.Fatalf("online players went negative: %d", got)
	}
}

func waitForOnlineCount(t *testing.T, s *ServerState, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.OnlinePlayers() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("online players = %d, want %d", s.OnlinePlayers(), want)
}
