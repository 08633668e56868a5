package types

import (
	collcodec "cosmossdk.io/collections/codec"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/types/record"
)

// WhitelistEntry approves Address to send Asset. Its presence at the derived
// address is the allow-list check.
type WhitelistEntry struct {
	Address address.Address `json:"address"`
	Asset   address.Address `json:"asset"`
	Bump    uint8           `json:"bump"`
}

// WhitelistEntryLayout is address(32) · asset(32) · bump(1).
var WhitelistEntryLayout = record.Layout[WhitelistEntry]{
	Name: "transferhook/WhitelistEntry",
	Size: 32 + 32 + 1,
	Encode: func(b []byte, e WhitelistEntry) []byte {
		b = record.PutAddress(b, e.Address)
		b = record.PutAddress(b, e.Asset)
		return record.PutUint8(b, e.Bump)
	},
	Decode: func(b []byte) WhitelistEntry {
		var e WhitelistEntry
		e.Address, b = record.Address(b)
		e.Asset, b = record.Address(b)
		e.Bump, _ = record.Uint8(b)
		return e
	},
}

// WhitelistEntryCodec encodes entries in their fixed layout.
var WhitelistEntryCodec collcodec.ValueCodec[WhitelistEntry] = record.NewCodec(WhitelistEntryLayout)
