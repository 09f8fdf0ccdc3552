// Package forwarding implements the connection validator (C6): the three
// mutually exclusive ways a proxy in front of picolimbo can hand off a
// player's real address/identity. Exactly one mode is active at a time,
// selected by config.
package forwarding

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"

	ns "github.com/go-mclib/picolimbo/net_structures"
	"github.com/go-mclib/picolimbo/protocolversion"
)

// RejectedError is returned by every Verify* function when the presented
// credentials don't check out; the caller kicks with the message it
// carries.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return e.Message }

func rejected(format string, args ...any) error {
	return &RejectedError{Message: fmt.Sprintf(format, args...)}
}

// Mode selects which of the three forwarding schemes, if any, is active.
type Mode int

const (
	ModeNone Mode = iota
	ModeLegacyBungeeCord
	ModeBungeeGuard
	ModeVelocityModern
)

// Identity is what a successful forwarding check hands back: the real
// client IP and the profile (UUID, username) the proxy vouches for.
type Identity struct {
	ClientIP string
	UUID     ns.UUID
	Username string
}

// ParseLegacyHandshake splits a BungeeCord-style hostname field
// ("<realhost>\0<client-ip>\0<uuid-nodashes>[\0<properties-json>]") into
// its parts. VerifyLegacyBungeeCord uses it; VerifyBungeeGuard splits the
// hostname itself and requires exactly 4 parts.
func ParseLegacyHandshake(hostname string) ([]string, error) {
	parts := strings.Split(hostname, "\x00")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, rejected("You must connect through a proxy")
	}
	return parts, nil
}

// VerifyLegacyBungeeCord accepts any 3-or-4-part split; picolimbo trusts
// the proxy's network perimeter to be the actual access control.
func VerifyLegacyBungeeCord(hostname string) (Identity, error) {
	parts, err := ParseLegacyHandshake(hostname)
	if err != nil {
		return Identity{}, err
	}
	id, err := parseUndashedUUID(parts[2])
	if err != nil {
		return Identity{}, rejected("You must connect through a proxy")
	}
	return Identity{ClientIP: parts[1], UUID: id}, nil
}

// bungeeGuardProperty is one element of the JSON array BungeeGuard appends
// as the handshake hostname's 4th NUL-separated part.
type bungeeGuardProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// VerifyBungeeGuard requires exactly 4 parts and a token from tokens
// present among the 4th part's JSON property array.
func VerifyBungeeGuard(hostname string, tokens map[string]struct{}) (Identity, error) {
	parts := strings.Split(hostname, "\x00")
	if len(parts) != 4 {
		return Identity{}, rejected("You must connect through a proxy")
	}

	var props []bungeeGuardProperty
	if err := json.Unmarshal([]byte(parts[3]), &props); err != nil {
		return Identity{}, rejected("You must connect through a proxy")
	}

	ok := false
	for _, p := range props {
		if p.Name != "bungeeguard-token" {
			continue
		}
		if _, known := tokens[p.Value]; known {
			ok = true
			break
		}
	}
	if !ok {
		return Identity{}, rejected("You must connect through a proxy")
	}

	id, err := parseUndashedUUID(parts[2])
	if err != nil {
		return Identity{}, rejected("You must connect through a proxy")
	}
	return Identity{ClientIP: parts[1], UUID: id}, nil
}

// parseUndashedUUID parses the 32-hex-character form BungeeCord/BungeeGuard
// put in the handshake hostname field, reusing String's wire framing so it
// goes through the same FromBytesUndashedString path a packet field would.
func parseUndashedUUID(raw string) (ns.UUID, error) {
	encoded, err := ns.String(raw).ToBytes()
	if err != nil {
		return ns.UUID{}, err
	}
	var u ns.UUID
	if _, err := u.FromBytesUndashedString(encoded); err != nil {
		return ns.UUID{}, err
	}
	return u, nil
}

// ForwardingVersion is the VarInt Velocity's modern-forwarding payload
// leads with; picolimbo only ever accepts version 1.
const ForwardingVersion = 1

// MinVelocitySupportedProtocol is the lowest client protocol version able
// to carry the login-plugin-message round trip modern forwarding needs:
// 393 (1.13), the first version whose registry has custom_query.
const MinVelocitySupportedProtocol protocolversion.ProtocolVersion = 393

// VerifyVelocity recomputes the HMAC-SHA256 over payload using secret and,
// on success, decodes the forwarded identity from it. answerData is the
// CustomQueryAnswer.Data bytes: [hmac(32) || payload].
func VerifyVelocity(secret []byte, answerData []byte) (Identity, error) {
	const hmacLen = sha256.Size
	if len(answerData) <= hmacLen {
		return Identity{}, rejected("You must connect through a proxy")
	}
	receivedMAC := answerData[:hmacLen]
	payload := answerData[hmacLen:]

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expectedMAC := mac.Sum(nil)
	if !hmac.Equal(receivedMAC, expectedMAC) {
		return Identity{}, rejected("You must connect through a proxy")
	}

	return decodeVelocityPayload(payload)
}

func decodeVelocityPayload(payload ns.ByteArray) (Identity, error) {
	offset := 0

	var version ns.VarInt
	n, err := version.FromBytes(payload[offset:])
	if err != nil {
		return Identity{}, rejected("You must connect through a proxy")
	}
	offset += n
	if int32(version) != ForwardingVersion {
		return Identity{}, rejected("You must connect through a proxy")
	}

	var ip ns.String
	n, err = ip.FromBytes(payload[offset:])
	if err != nil {
		return Identity{}, rejected("You must connect through a proxy")
	}
	offset += n

	var id ns.UUID
	n, err = id.FromBytesBinary(payload[offset:])
	if err != nil {
		return Identity{}, rejected("You must connect through a proxy")
	}
	offset += n

	var name ns.String
	if _, err := name.FromBytes(payload[offset:]); err != nil {
		return Identity{}, rejected("You must connect through a proxy")
	}

	return Identity{ClientIP: string(ip), UUID: id, Username: string(name)}, nil
}
