package net_structures

import (
	"crypto/md5"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// UUID carries a player or entity identifier. Minecraft has used three wire
// formats across its history:
//
//   - >=1.16 (protocol 735+): 16 raw big-endian bytes.
//   - 1.7.6-1.15.2: a 36-character dashed string ("xxxxxxxx-xxxx-...").
//   - <1.7.6: a 32-character undashed hex string.
//
// Which form applies is a property of the surrounding packet field's
// protocol-version range (its `ver` struct tag, read by protocol.Marshal),
// not of UUID itself;
// callers pick the matching method.
type UUID uuid.UUID

func (u UUID) ToBytesBinary() (ByteArray, error) {
	return ByteArray(u[:]), nil
}

func (u *UUID) FromBytesBinary(data ByteArray) (int, error) {
	if len(data) < 16 {
		return 0, ErrInsufficientData
	}
	copy(u[:], data[:16])
	return 16, nil
}

func (u UUID) ToBytesDashedString() (ByteArray, error) {
	return String(uuid.UUID(u).String()).ToBytes()
}

func (u *UUID) FromBytesDashedString(data ByteArray) (int, error) {
	var s String
	n, err := s.FromBytes(data)
	if err != nil {
		return 0, err
	}
	parsed, err := uuid.Parse(string(s))
	if err != nil {
		return 0, errors.New("invalid dashed UUID: " + err.Error())
	}
	*u = UUID(parsed)
	return n, nil
}

func (u UUID) ToBytesUndashedString() (ByteArray, error) {
	plain := strings.ReplaceAll(uuid.UUID(u).String(), "-", "")
	return String(plain).ToBytes()
}

func (u *UUID) FromBytesUndashedString(data ByteArray) (int, error) {
	var s String
	n, err := s.FromBytes(data)
	if err != nil {
		return 0, err
	}
	raw := string(s)
	if len(raw) != 32 {
		return 0, errors.New("undashed UUID must be 32 hex characters")
	}
	dashed := raw[0:8] + "-" + raw[8:12] + "-" + raw[12:16] + "-" + raw[16:20] + "-" + raw[20:32]
	parsed, err := uuid.Parse(dashed)
	if err != nil {
		return 0, errors.New("invalid undashed UUID: " + err.Error())
	}
	*u = UUID(parsed)
	return n, nil
}

// OfflineUUID derives the deterministic "offline mode" UUID a vanilla
// server assigns a player with no Mojang session, from their username.
func OfflineUUID(username string) UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + username))
	sum[6] = sum[6]&0x0f | 0x30 // version 3 (name-based, MD5)
	sum[8] = sum[8]&0x3f | 0x80 // RFC 4122 variant
	return UUID(sum)
}

// UUIDField is a UUID in its >=1.16 binary wire form; it exists so struct
// fields can use the plain ToBytes/FromBytes codec contract without picking
// a method name, for the (common) case of a field only ever encoded that
// way.
type UUIDField struct{ UUID }

func (u UUIDField) ToBytes() (ByteArray, error) { return u.UUID.ToBytesBinary() }
func (u *UUIDField) FromBytes(data ByteArray) (int, error) {
	return u.UUID.FromBytesBinary(data)
}

// UUIDDashedField and UUIDUndashedField are the same idea for the two
// string-encoded wire forms used before protocol 735 (1.16).
type UUIDDashedField struct{ UUID }

func (u UUIDDashedField) ToBytes() (ByteArray, error) { return u.UUID.ToBytesDashedString() }
func (u *UUIDDashedField) FromBytes(data ByteArray) (int, error) {
	return u.UUID.FromBytesDashedString(data)
}

type UUIDUndashedField struct{ UUID }

func (u UUIDUndashedField) ToBytes() (ByteArray, error) { return u.UUID.ToBytesUndashedString() }
func (u *UUIDUndashedField) FromBytes(data ByteArray) (int, error) {
	return u.UUID.FromBytesUndashedString(data)
}
