package limbo

import (
	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol"
	"github.com/go-mclib/picolimbo/protocol/packets"
)

// runStatus answers the Server List Ping exchange (§4.5): a StatusRequest
// gets a StatusResponse, a PingRequest gets its timestamp echoed back in a
// PongResponse. A client closes the socket itself after the pong, so
// returning after the echo is enough.
func (c *clientState) runStatus() {
	for {
		name, payload, err := c.readNamed()
		if err != nil {
			return
		}

		switch name {
		case "status_request":
			var req packets.StatusRequest
			if err := protocol.Unmarshal(ns.ByteArray(payload), &req, c.version); err != nil {
				return
			}
			json, err := c.server.StatusJSON(c.version)
			if err != nil {
				c.log.WithError(err).Warn("build status response")
				return
			}
			if err := c.writePacket(packets.StatusResponse{JSON: ns.String(json)}); err != nil {
				return
			}

		case "ping_request":
			var ping packets.PingRequest
			if err := protocol.Unmarshal(ns.ByteArray(payload), &ping, c.version); err != nil {
				return
			}
			_ = c.writePacket(packets.PongResponse{Timestamp: ping.Timestamp})
			return

		default:
			return
		}
	}
}
