package record

import (
	"github.com/tchajed/marshal"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// Field helpers shared by the record layouts. Integers are little-endian and
// fixed width; readers assume the caller already checked the total length.

func PutAddress(b []byte, a address.Address) []byte {
	return marshal.WriteBytes(b, a[:])
}

func PutUint64(b []byte, v uint64) []byte {
	return marshal.WriteInt(b, v)
}

func PutInt64(b []byte, v int64) []byte {
	return marshal.WriteInt(b, uint64(v))
}

func PutUint8(b []byte, v uint8) []byte {
	return marshal.WriteBytes(b, []byte{v})
}

func PutInt16(b []byte, v int16) []byte {
	u := uint16(v)
	return marshal.WriteBytes(b, []byte{byte(u), byte(u >> 8)})
}

func PutBool(b []byte, v bool) []byte {
	return marshal.WriteBool(b, v)
}

func Address(b []byte) (address.Address, []byte) {
	raw, rest := marshal.ReadBytes(b, address.Length)
	var a address.Address
	copy(a[:], raw)
	return a, rest
}

func Uint64(b []byte) (uint64, []byte) {
	return marshal.ReadInt(b)
}

func Int64(b []byte) (int64, []byte) {
	v, rest := marshal.ReadInt(b)
	return int64(v), rest
}

func Uint8(b []byte) (uint8, []byte) {
	raw, rest := marshal.ReadBytes(b, 1)
	return raw[0], rest
}

func Int16(b []byte) (int16, []byte) {
	raw, rest := marshal.ReadBytes(b, 2)
	return int16(uint16(raw[0]) | uint16(raw[1])<<8), rest
}

func Bool(b []byte) (bool, []byte) {
	return marshal.ReadBool(b)
}
