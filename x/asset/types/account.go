package types

import (
	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/types/record"
)

// Account is a balance of one mint held for one owner. Transferring is set
// by the transfer pathway for the duration of a hook invocation.
type Account struct {
	Address      address.Address `json:"address"`
	Mint         address.Address `json:"mint"`
	Owner        address.Address `json:"owner"`
	Amount       uint64          `json:"amount"`
	Transferring bool            `json:"transferring"`
}

// AccountLayout is the fixed on-disk layout of an Account.
var AccountLayout = record.Layout[Account]{
	Name: "asset/Account",
	Size: 32 + 32 + 32 + 8 + 1,
	Encode: func(b []byte, a Account) []byte {
		b = record.PutAddress(b, a.Address)
		b = record.PutAddress(b, a.Mint)
		b = record.PutAddress(b, a.Owner)
		b = record.PutUint64(b, a.Amount)
		return record.PutBool(b, a.Transferring)
	},
	Decode: func(b []byte) Account {
		var a Account
		a.Address, b = record.Address(b)
		a.Mint, b = record.Address(b)
		a.Owner, b = record.Address(b)
		a.Amount, b = record.Uint64(b)
		a.Transferring, _ = record.Bool(b)
		return a
	},
}
