package limbo

import (
	"time"

	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol/packets"
)

// startKeepAlive enables the timer exactly once, on first entry to Play
// (§5). It is cleared by clientState.close via keepAliveStop.
func (c *clientState) startKeepAlive() {
	c.keepAliveStop = make(chan struct{})
	go c.keepAliveLoop(c.keepAliveStop)
}

// keepAliveLoop runs in its own goroutine and only ever touches the
// connection through writePacket, which serializes with the connection
// goroutine's own writes via writeMu. Period is 20s for >=1.8 (protocol
// 47); 1.7.x clients disconnect without the more frequent ping, so they get
// a 2s period starting 2s after entering Play.
func (c *clientState) keepAliveLoop(stop chan struct{}) {
	period := 20 * time.Second
	if !c.version.AtLeast(47) {
		period = 2 * time.Second
		select {
		case <-time.After(2 * time.Second):
		case <-stop:
			return
		}
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := c.sendKeepAlive(); err != nil {
				return
			}
		}
	}
}

func (c *clientState) sendKeepAlive() error {
	id := randomInt63()
	return c.writePacket(packets.ClientBoundKeepAlive{
		IDLegacy: ns.Int(int32(id)),
		IDVarInt: ns.VarInt(int32(id)),
		IDModern: ns.Long(id),
	})
}
