package limbo

import (
	"crypto/rand"
	"math/big"

	"github.com/go-mclib/picolimbo/forwarding"
	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocol"
	"github.com/go-mclib/picolimbo/protocol/packets"
)

const velocityChannel = "velocity:player_info"

// runLogin implements the Login branch of §4.5: read LoginStart, run
// whichever forwarding check (if any) is configured, then send
// LoginSuccess and either wait for LoginAcknowledged (>=764) or enter Play
// directly.
func (c *clientState) runLogin() {
	name, payload, err := c.readNamed()
	if err != nil {
		return
	}
	if name != "login_start" {
		return
	}
	var start packets.LoginStart
	if err := protocol.Unmarshal(ns.ByteArray(payload), &start, c.version); err != nil {
		return
	}
	username := string(start.Name)

	switch c.server.ForwardingMode {
	case forwarding.ModeVelocityModern:
		c.runVelocityLogin()

	case forwarding.ModeLegacyBungeeCord:
		identity, err := forwarding.VerifyLegacyBungeeCord(c.hostname)
		if err != nil {
			c.kickRejection(err)
			return
		}
		c.finishLogin(username, identity.UUID, nil)

	case forwarding.ModeBungeeGuard:
		identity, err := forwarding.VerifyBungeeGuard(c.hostname, c.server.BungeeGuardTokens)
		if err != nil {
			c.kickRejection(err)
			return
		}
		c.finishLogin(username, identity.UUID, nil)

	default:
		c.finishLogin(username, ns.OfflineUUID(username), nil)
	}
}

// runVelocityLogin issues the modern-forwarding challenge and waits for its
// answer. §4.6: a client below protocol 393 (1.13) can't carry the login-plugin
// round trip at all and is kicked immediately.
func (c *clientState) runVelocityLogin() {
	if !c.version.AtLeast(forwarding.MinVelocitySupportedProtocol) {
		c.kick("Your client does not support modern forwarding")
		return
	}

	messageID, err := randomInt32()
	if err != nil {
		c.log.WithError(err).Warn("generate velocity message id")
		c.close()
		return
	}
	c.velocityMessageID = messageID

	query := packets.CustomQuery{
		MessageID: ns.VarInt(messageID),
		Channel:   velocityChannel,
		Data:      nil,
	}
	if err := c.writePacket(query); err != nil {
		return
	}

	name, payload, err := c.readNamed()
	if err != nil {
		return
	}
	if name != "custom_query_answer" {
		c.kick("Your client does not support modern forwarding")
		return
	}

	var answer packets.CustomQueryAnswer
	if err := protocol.Unmarshal(ns.ByteArray(payload), &answer, c.version); err != nil {
		return
	}
	if int32(answer.MessageID) != c.velocityMessageID || !answer.Data.Present {
		c.kick("You must connect through a proxy")
		return
	}

	identity, err := forwarding.VerifyVelocity(c.server.VelocitySecret, answer.Data.Value)
	if err != nil {
		c.kickRejection(err)
		return
	}
	c.finishLogin(identity.Username, identity.UUID, nil)
}

// kickRejection unwraps a forwarding.RejectedError into the user-facing
// kick message it carries; any other error is a bug rather than a rejected
// client, so it just closes the connection.
func (c *clientState) kickRejection(err error) {
	if rejected, ok := err.(*forwarding.RejectedError); ok {
		c.kick(rejected.Message)
		return
	}
	c.log.WithError(err).Warn("forwarding check failed")
	c.close()
}

func (c *clientState) finishLogin(username string, uuid ns.UUID, properties []packets.ProfileProperty) {
	c.profile = GameProfile{UUID: uuid, Username: username, Properties: properties}

	success := packets.LoginSuccess{
		UUIDBinary:   ns.UUIDField{UUID: uuid},
		UUIDString:   ns.UUIDDashedField{UUID: uuid},
		UUIDUndashed: ns.UUIDUndashedField{UUID: uuid},
		Username:     ns.String(username),
		Properties:   ns.PrefixedArray[packets.ProfileProperty](properties),
	}
	if err := c.writePacket(success); err != nil {
		return
	}

	if !c.version.AtLeast(764) {
		c.enterPlay()
		return
	}

	name, _, err := c.readNamed()
	if err != nil || name != "login_acknowledged" {
		return
	}
	c.state = protocol.StateConfiguration
	c.runConfiguration()
}

func randomInt32() (int32, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<31))
	if err != nil {
		return 0, err
	}
	return int32(n.Int64()), nil
}
