package packets

import ns "github.com/go-mclib/picolimbo/net_structures"

// ClientInformation is the first serverbound Configuration (and, on older
// clients before Configuration existed, Play) packet, carrying client
// locale/render settings. Limbo reads and discards it; the chunk stream is
// sized by the server's own view distance.
type ClientInformation struct {
	Locale              ns.String
	ViewDistance        ns.Byte
	ChatMode            ns.VarInt
	ChatColors          ns.Boolean
	DisplayedSkinParts  ns.UnsignedByte
	MainHand            ns.VarInt
	EnableTextFiltering ns.Boolean `ver:"755,"`
	AllowServerListings ns.Boolean `ver:"757,"`
	ParticleStatus      ns.VarInt  `ver:"768,"`
}

func (ClientInformation) Name() string { return "client_information" }

type ClientBoundPluginMessage struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (ClientBoundPluginMessage) Name() string { return "client_bound_plugin_message" }

// KnownPack identifies a resource/data pack the server claims to match the
// vanilla client's built-in copy of, letting RegistryData omit entries the
// client already has (1.20.5+).
type KnownPack struct {
	Namespace ns.String
	ID        ns.String
	Version   ns.String
}

func (k KnownPack) ToBytes() (ns.ByteArray, error) {
	namespace, err := k.Namespace.ToBytes()
	if err != nil {
		return nil, err
	}
	id, err := k.ID.ToBytes()
	if err != nil {
		return nil, err
	}
	version, err := k.Version.ToBytes()
	if err != nil {
		return nil, err
	}
	var out ns.ByteArray
	out = append(out, namespace...)
	out = append(out, id...)
	out = append(out, version...)
	return out, nil
}

func (k *KnownPack) FromBytes(data ns.ByteArray) (int, error) {
	offset := 0
	n, err := k.Namespace.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	n, err = k.ID.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	n, err = k.Version.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	return offset, nil
}

// ClientBoundKnownPacks and ServerboundKnownPacks only exist for
// version >= 766 (1.20.5); limbo always claims zero known packs so the
// client never elides a registry entry it expects.
type ClientBoundKnownPacks struct {
	Packs ns.PrefixedArray[KnownPack]
}

func (ClientBoundKnownPacks) Name() string { return "client_bound_known_packs" }

type ServerboundKnownPacks struct {
	Packs ns.PrefixedArray[KnownPack]
}

func (ServerboundKnownPacks) Name() string { return "serverbound_known_packs" }

// RegistryData is the per-registry-entry shape used for version >= 766:
// one packet per registry id, with one optional NBT payload per entry (no
// payload for an entry the client already has via KnownPack).
type RegistryDataEntry struct {
	ID   ns.Identifier
	Data ns.PrefixedOptional[ns.NBT]
}

func (e RegistryDataEntry) ToBytes() (ns.ByteArray, error) {
	id, err := e.ID.ToBytes()
	if err != nil {
		return nil, err
	}
	data, err := e.Data.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(id, data...), nil
}

func (e *RegistryDataEntry) FromBytes(data ns.ByteArray) (int, error) {
	n, err := e.ID.FromBytes(data)
	if err != nil {
		return 0, err
	}
	e.Data.Value.Nameless = true // this packet only exists in the nameless-NBT era
	m, err := e.Data.FromBytes(data[n:])
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

type RegistryData struct {
	RegistryID ns.Identifier
	Entries    ns.PrefixedArray[RegistryDataEntry]
}

func (RegistryData) Name() string { return "registry_data" }

// RegistryCodec is the version 764-765 shape: every registry bundled into
// one compound NBT and sent as a single packet, rather than one packet per
// registry. It shares the "registry_data" packet name with RegistryData;
// registrydata.For picks whichever Go type matches the connection's
// version, since the two are wire-incompatible rather than one being a
// version-gated subset of the other.
type RegistryCodec struct {
	Codec ns.NBT
}

func (RegistryCodec) Name() string { return "registry_data" }

type FinishConfiguration struct{}

func (FinishConfiguration) Name() string { return "finish_configuration" }

type AcknowledgeFinishConfiguration struct{}

func (AcknowledgeFinishConfiguration) Name() string { return "acknowledge_finish_configuration" }
