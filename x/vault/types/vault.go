package types

import (
	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/types/record"
)

// Vault pools one authority's reserve of one asset. ReserveAmount mirrors the
// balance of ReserveAccount.
type Vault struct {
	Authority         address.Address `json:"authority"`
	Asset             address.Address `json:"asset"`
	ReserveAccount    address.Address `json:"reserve_account"`
	ReserveAmount     uint64          `json:"reserve_amount"`
	DepositEventCount uint64          `json:"deposit_event_count"`
	Bump              uint8           `json:"bump"`
}

// VaultLayout is authority(32) · asset(32) · reserve_account(32) ·
// reserve_amount(8) · deposit_event_count(8) · bump(1).
var VaultLayout = record.Layout[Vault]{
	Name: "vault/Vault",
	Size: 32 + 32 + 32 + 8 + 8 + 1,
	Encode: func(b []byte, v Vault) []byte {
		b = record.PutAddress(b, v.Authority)
		b = record.PutAddress(b, v.Asset)
		b = record.PutAddress(b, v.ReserveAccount)
		b = record.PutUint64(b, v.ReserveAmount)
		b = record.PutUint64(b, v.DepositEventCount)
		return record.PutUint8(b, v.Bump)
	},
	Decode: func(b []byte) Vault {
		var v Vault
		v.Authority, b = record.Address(b)
		v.Asset, b = record.Address(b)
		v.ReserveAccount, b = record.Address(b)
		v.ReserveAmount, b = record.Uint64(b)
		v.DepositEventCount, b = record.Uint64(b)
		v.Bump, _ = record.Uint8(b)
		return v
	},
}

// RegistryEntry tracks one depositor's contribution to a vault.
type RegistryEntry struct {
	Vault         address.Address `json:"vault"`
	Asset         address.Address `json:"asset"`
	Balance       uint64          `json:"balance"`
	WithdrawCount uint64          `json:"withdraw_count"`
	DepositCount  uint64          `json:"deposit_count"`
	Bump          uint8           `json:"bump"`
}

// RegistryEntryLayout is vault(32) · asset(32) · balance(8) ·
// withdraw_count(8) · deposit_count(8) · bump(1).
var RegistryEntryLayout = record.Layout[RegistryEntry]{
	Name: "vault/RegistryEntry",
	Size: 32 + 32 + 8 + 8 + 8 + 1,
	Encode: func(b []byte, e RegistryEntry) []byte {
		b = record.PutAddress(b, e.Vault)
		b = record.PutAddress(b, e.Asset)
		b = record.PutUint64(b, e.Balance)
		b = record.PutUint64(b, e.WithdrawCount)
		b = record.PutUint64(b, e.DepositCount)
		return record.PutUint8(b, e.Bump)
	},
	Decode: func(b []byte) RegistryEntry {
		var e RegistryEntry
		e.Vault, b = record.Address(b)
		e.Asset, b = record.Address(b)
		e.Balance, b = record.Uint64(b)
		e.WithdrawCount, b = record.Uint64(b)
		e.DepositCount, b = record.Uint64(b)
		e.Bump, _ = record.Uint8(b)
		return e
	},
}
