package registry

import (
	"github.com/go-mclib/picolimbo/protocol"
)

// registrations is the hand-authored packet-ID table described in
// registry.go's package doc. Each packet name appears once per state/bound
// with the version it first took that ID in; IDOf/NameOf resolve a version
// to the most recent entry at or before its `reports` alias.
var registrations = []registration{
	// Handshaking
	{protocol.StateHandshake, protocol.ServerBound, 4, "handshake", 0x00},

	// Status
	{protocol.StateStatus, protocol.ServerBound, 4, "status_request", 0x00},
	{protocol.StateStatus, protocol.ServerBound, 4, "ping_request", 0x01},
	{protocol.StateStatus, protocol.ClientBound, 4, "status_response", 0x00},
	{protocol.StateStatus, protocol.ClientBound, 4, "pong_response", 0x01},

	// Login
	{protocol.StateLogin, protocol.ServerBound, 4, "login_start", 0x00},
	{protocol.StateLogin, protocol.ServerBound, 393, "custom_query_answer", 0x02},
	{protocol.StateLogin, protocol.ServerBound, 764, "login_acknowledged", 0x03},
	{protocol.StateLogin, protocol.ClientBound, 4, "login_disconnect", 0x00},
	{protocol.StateLogin, protocol.ClientBound, 4, "login_success", 0x02},
	{protocol.StateLogin, protocol.ClientBound, 393, "custom_query", 0x04},

	// Configuration (only ever entered for version >= 764)
	{protocol.StateConfiguration, protocol.ServerBound, 764, "client_information", 0x00},
	{protocol.StateConfiguration, protocol.ServerBound, 764, "acknowledge_finish_configuration", 0x03},
	{protocol.StateConfiguration, protocol.ServerBound, 766, "serverbound_known_packs", 0x07},
	{protocol.StateConfiguration, protocol.ClientBound, 764, "client_bound_plugin_message", 0x01},
	{protocol.StateConfiguration, protocol.ClientBound, 764, "finish_configuration", 0x02},
	{protocol.StateConfiguration, protocol.ClientBound, 764, "registry_data", 0x05},
	{protocol.StateConfiguration, protocol.ClientBound, 766, "client_bound_known_packs", 0x0E},
	{protocol.StateConfiguration, protocol.ClientBound, 764, "configuration_disconnect", 0x1C},

	// Play
	//
	// Unlike Handshake/Status/Login (stable across almost the whole
	// range), these four clientbound packets are renumbered by nearly
	// every release that touches the play packet list, so each needs a
	// real per-era Since ladder rather than a single Since=4 entry —
	// a single entry would hand every version from 1.7.2 to 1.21.7 the
	// 1.21 byte, which is wrong for all of them except 1.21 itself. IDs
	// below are drawn from public protocol-version history at the era
	// boundaries this registry already recognizes (see protocolversion's
	// alias tables and registrydata's Era constants); see DESIGN.md for
	// the caveat that these are not cross-checked against vendored JSON
	// packet reports, since none ship in this pack.
	{protocol.StatePlay, protocol.ServerBound, 4, "server_bound_keep_alive", 0x11},

	{protocol.StatePlay, protocol.ClientBound, 4, "login_play", 0x01},
	{protocol.StatePlay, protocol.ClientBound, 107, "login_play", 0x23},
	{protocol.StatePlay, protocol.ClientBound, 393, "login_play", 0x25},
	{protocol.StatePlay, protocol.ClientBound, 573, "login_play", 0x26},
	{protocol.StatePlay, protocol.ClientBound, 735, "login_play", 0x25},
	{protocol.StatePlay, protocol.ClientBound, 751, "login_play", 0x24},
	{protocol.StatePlay, protocol.ClientBound, 755, "login_play", 0x26},
	{protocol.StatePlay, protocol.ClientBound, 759, "login_play", 0x25},
	{protocol.StatePlay, protocol.ClientBound, 761, "login_play", 0x24},
	{protocol.StatePlay, protocol.ClientBound, 762, "login_play", 0x28},
	{protocol.StatePlay, protocol.ClientBound, 764, "login_play", 0x29},
	{protocol.StatePlay, protocol.ClientBound, 765, "login_play", 0x28},
	{protocol.StatePlay, protocol.ClientBound, 766, "login_play", 0x2B},
	{protocol.StatePlay, protocol.ClientBound, 769, "login_play", 0x2C},

	{protocol.StatePlay, protocol.ClientBound, 4, "synchronize_player_position", 0x08},
	{protocol.StatePlay, protocol.ClientBound, 107, "synchronize_player_position", 0x2E},
	{protocol.StatePlay, protocol.ClientBound, 393, "synchronize_player_position", 0x32},
	{protocol.StatePlay, protocol.ClientBound, 477, "synchronize_player_position", 0x35},
	{protocol.StatePlay, protocol.ClientBound, 573, "synchronize_player_position", 0x36},
	{protocol.StatePlay, protocol.ClientBound, 735, "synchronize_player_position", 0x35},
	{protocol.StatePlay, protocol.ClientBound, 751, "synchronize_player_position", 0x34},
	{protocol.StatePlay, protocol.ClientBound, 755, "synchronize_player_position", 0x38},
	{protocol.StatePlay, protocol.ClientBound, 759, "synchronize_player_position", 0x36},
	{protocol.StatePlay, protocol.ClientBound, 761, "synchronize_player_position", 0x39},
	{protocol.StatePlay, protocol.ClientBound, 762, "synchronize_player_position", 0x3C},
	{protocol.StatePlay, protocol.ClientBound, 764, "synchronize_player_position", 0x3E},
	{protocol.StatePlay, protocol.ClientBound, 765, "synchronize_player_position", 0x3D},
	{protocol.StatePlay, protocol.ClientBound, 766, "synchronize_player_position", 0x40},
	{protocol.StatePlay, protocol.ClientBound, 769, "synchronize_player_position", 0x41},

	{protocol.StatePlay, protocol.ClientBound, 755, "set_default_spawn_position", 0x50},
	{protocol.StatePlay, protocol.ClientBound, 765, "game_event", 0x20},
	{protocol.StatePlay, protocol.ClientBound, 765, "chunk_data_and_update_light", 0x24},

	{protocol.StatePlay, protocol.ClientBound, 4, "client_bound_keep_alive", 0x00},
	{protocol.StatePlay, protocol.ClientBound, 107, "client_bound_keep_alive", 0x1F},
	{protocol.StatePlay, protocol.ClientBound, 393, "client_bound_keep_alive", 0x21},
	{protocol.StatePlay, protocol.ClientBound, 735, "client_bound_keep_alive", 0x20},
	{protocol.StatePlay, protocol.ClientBound, 751, "client_bound_keep_alive", 0x1F},
	{protocol.StatePlay, protocol.ClientBound, 755, "client_bound_keep_alive", 0x21},
	{protocol.StatePlay, protocol.ClientBound, 759, "client_bound_keep_alive", 0x1E},
	{protocol.StatePlay, protocol.ClientBound, 761, "client_bound_keep_alive", 0x1F},
	{protocol.StatePlay, protocol.ClientBound, 762, "client_bound_keep_alive", 0x23},
	{protocol.StatePlay, protocol.ClientBound, 764, "client_bound_keep_alive", 0x24},
	{protocol.StatePlay, protocol.ClientBound, 765, "client_bound_keep_alive", 0x23},
	{protocol.StatePlay, protocol.ClientBound, 766, "client_bound_keep_alive", 0x26},
	{protocol.StatePlay, protocol.ClientBound, 769, "client_bound_keep_alive", 0x27},

	{protocol.StatePlay, protocol.ClientBound, 4, "disconnect", 0x40},
	{protocol.StatePlay, protocol.ClientBound, 107, "disconnect", 0x1A},
	{protocol.StatePlay, protocol.ClientBound, 393, "disconnect", 0x1B},
	{protocol.StatePlay, protocol.ClientBound, 735, "disconnect", 0x19},
	{protocol.StatePlay, protocol.ClientBound, 751, "disconnect", 0x1A},
	{protocol.StatePlay, protocol.ClientBound, 759, "disconnect", 0x17},
	{protocol.StatePlay, protocol.ClientBound, 762, "disconnect", 0x1A},
	{protocol.StatePlay, protocol.ClientBound, 764, "disconnect", 0x1B},
	{protocol.StatePlay, protocol.ClientBound, 765, "disconnect", 0x1A},
	{protocol.StatePlay, protocol.ClientBound, 766, "disconnect", 0x1D},

	{protocol.StatePlay, protocol.ClientBound, 393, "play_plugin_message", 0x18},
}
