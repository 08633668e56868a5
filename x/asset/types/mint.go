package types

import (
	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/types/record"
)

// DefaultDecimals is the precision used when a mint is created without an
// explicit value.
const DefaultDecimals uint8 = 9

// TransferHookExtension names the program the transfer pathway invokes on
// every move of the mint's value.
type TransferHookExtension struct {
	Authority address.Address `json:"authority"`
	Program   address.Address `json:"program"`
}

// Enabled reports whether a hook program is attached.
func (e TransferHookExtension) Enabled() bool {
	return !e.Program.IsZero()
}

// InterestBearingConfig is the interest accrual extension of a mint. Rates
// are in basis points per year.
type InterestBearingConfig struct {
	RateAuthority           address.Address `json:"rate_authority"`
	InitializationTimestamp int64           `json:"initialization_timestamp"`
	PreUpdateAverageRate    int16           `json:"pre_update_average_rate"`
	LastUpdateTimestamp     int64           `json:"last_update_timestamp"`
	CurrentRate             int16           `json:"current_rate"`
}

// Mint is a fungible asset together with its extensions.
type Mint struct {
	Address         address.Address       `json:"address"`
	MintAuthority   address.Address       `json:"mint_authority"`
	Decimals        uint8                 `json:"decimals"`
	Supply          uint64                `json:"supply"`
	TransferHook    TransferHookExtension `json:"transfer_hook"`
	InterestBearing InterestBearingConfig `json:"interest_bearing"`
}

// MintLayout is the fixed on-disk layout of a Mint:
// address · mint_authority · decimals · supply · hook authority · hook program ·
// rate authority · init ts · pre-update avg rate · last update ts · current rate.
var MintLayout = record.Layout[Mint]{
	Name: "asset/Mint",
	Size: 32 + 32 + 1 + 8 + 32 + 32 + 32 + 8 + 2 + 8 + 2,
	Encode: func(b []byte, m Mint) []byte {
		b = record.PutAddress(b, m.Address)
		b = record.PutAddress(b, m.MintAuthority)
		b = record.PutUint8(b, m.Decimals)
		b = record.PutUint64(b, m.Supply)
		b = record.PutAddress(b, m.TransferHook.Authority)
		b = record.PutAddress(b, m.TransferHook.Program)
		b = record.PutAddress(b, m.InterestBearing.RateAuthority)
		b = record.PutInt64(b, m.InterestBearing.InitializationTimestamp)
		b = record.PutInt16(b, m.InterestBearing.PreUpdateAverageRate)
		b = record.PutInt64(b, m.InterestBearing.LastUpdateTimestamp)
		return record.PutInt16(b, m.InterestBearing.CurrentRate)
	},
	Decode: func(b []byte) Mint {
		var m Mint
		m.Address, b = record.Address(b)
		m.MintAuthority, b = record.Address(b)
		m.Decimals, b = record.Uint8(b)
		m.Supply, b = record.Uint64(b)
		m.TransferHook.Authority, b = record.Address(b)
		m.TransferHook.Program, b = record.Address(b)
		m.InterestBearing.RateAuthority, b = record.Address(b)
		m.InterestBearing.InitializationTimestamp, b = record.Int64(b)
		m.InterestBearing.PreUpdateAverageRate, b = record.Int16(b)
		m.InterestBearing.LastUpdateTimestamp, b = record.Int64(b)
		m.InterestBearing.CurrentRate, _ = record.Int16(b)
		return m
	},
}
