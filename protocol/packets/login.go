package packets

import ns "github.com/go-mclib/picolimbo/net_structures"

// LoginStart is the first serverbound Login packet. SigData and PlayerID
// are the two historically bolted-on optional fields: message-signing key
// material only existed for protocol 759..761 (1.19-1.19.2, before chat
// signing was reworked), and the client-supplied UUID only since 761.
// Before 761 the server derives the player's UUID itself (OfflineUUID or,
// with Velocity forwarding, the value the proxy hands back).
type LoginStart struct {
	Name     ns.String
	SigData  ns.PrefixedOptional[LoginSignatureData] `ver:"759,761"`
	PlayerID ns.PrefixedOptional[ns.UUIDField]        `ver:"761,"`
}

func (LoginStart) Name() string { return "login_start" }

type LoginSignatureData struct {
	Timestamp ns.Long
	PublicKey ns.PrefixedByteArray
	Signature ns.PrefixedByteArray
}

func (s LoginSignatureData) ToBytes() (ns.ByteArray, error) {
	timestamp, err := s.Timestamp.ToBytes()
	if err != nil {
		return nil, err
	}
	publicKey, err := s.PublicKey.ToBytes()
	if err != nil {
		return nil, err
	}
	signature, err := s.Signature.ToBytes()
	if err != nil {
		return nil, err
	}

	var out ns.ByteArray
	out = append(out, timestamp...)
	out = append(out, publicKey...)
	out = append(out, signature...)
	return out, nil
}

func (s *LoginSignatureData) FromBytes(data ns.ByteArray) (int, error) {
	offset := 0
	n, err := s.Timestamp.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	n, err = s.PublicKey.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	n, err = s.Signature.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	return offset, nil
}

// CustomQuery is the clientbound login plugin-message query. Limbo only
// ever sends one: the Velocity modern-forwarding challenge on
// channel "velocity:player_info".
type CustomQuery struct {
	MessageID ns.VarInt
	Channel   ns.Identifier
	Data      ns.ByteArray
}

func (CustomQuery) Name() string { return "custom_query" }

// CustomQueryAnswer is the client's reply. Data is absent (Present=false)
// when the client doesn't recognize Channel; limbo's Velocity login
// (runVelocityLogin) treats that as a hard failure and kicks.
type CustomQueryAnswer struct {
	MessageID ns.VarInt
	Data      ns.PrefixedOptional[ns.ByteArray]
}

func (CustomQueryAnswer) Name() string { return "custom_query_answer" }

// ProfileProperty is one GameProfile property (only "textures" matters in
// practice, but limbo forwards whatever Velocity hands back).
type ProfileProperty struct {
	Name      ns.String
	Value     ns.String
	Signature ns.PrefixedOptional[ns.String]
}

func (p ProfileProperty) ToBytes() (ns.ByteArray, error) {
	name, err := p.Name.ToBytes()
	if err != nil {
		return nil, err
	}
	value, err := p.Value.ToBytes()
	if err != nil {
		return nil, err
	}
	signature, err := p.Signature.ToBytes()
	if err != nil {
		return nil, err
	}

	var out ns.ByteArray
	out = append(out, name...)
	out = append(out, value...)
	out = append(out, signature...)
	return out, nil
}

func (p *ProfileProperty) FromBytes(data ns.ByteArray) (int, error) {
	offset := 0
	n, err := p.Name.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	n, err = p.Value.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	n, err = p.Signature.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	return offset, nil
}

// LoginSuccess (GameProfile) is the packet that ends authentication. The
// UUID wire form has taken three shapes (net_structures.UUID's doc comment):
// a 32-character undashed hex string before protocol 5 (1.7.2 only), a
// 36-character dashed string from 5 up to 735 (1.7.6-1.15.2), and 16 raw
// bytes from 735 (1.16) onward. Properties didn't exist before 1.8
// (protocol 47); the "strict error handling" flag was added in 1.20.5
// (protocol 766).
type LoginSuccess struct {
	UUIDBinary          ns.UUIDField                      `ver:"735,"`
	UUIDString          ns.UUIDDashedField                `ver:"5,735"`
	UUIDUndashed        ns.UUIDUndashedField              `ver:",5"`
	Username            ns.String
	Properties          ns.PrefixedArray[ProfileProperty] `ver:"47,"`
	StrictErrorHandling ns.Boolean                        `ver:"766,"`
}

func (LoginSuccess) Name() string { return "login_success" }

// LoginAcknowledged is serverbound-only and only legal for version >= 764
// (1.20.2), where Configuration was introduced as a distinct state.
type LoginAcknowledged struct{}

func (LoginAcknowledged) Name() string { return "login_acknowledged" }

type LoginDisconnect struct {
	Reason ns.TextComponent
}

func (LoginDisconnect) Name() string { return "login_disconnect" }
