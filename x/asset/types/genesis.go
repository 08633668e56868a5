package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// GenesisState is the asset module's exported state.
type GenesisState struct {
	Mints    []Mint    `json:"mints"`
	Accounts []Account `json:"accounts"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	mints := make(map[address.Address]Mint, len(gs.Mints))
	for _, m := range gs.Mints {
		if m.Address.IsZero() {
			return errorsmod.Wrap(ErrInvalidGenesis, "mint with empty address")
		}
		if _, ok := mints[m.Address]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate mint %s", m.Address)
		}
		mints[m.Address] = m
	}

	seen := make(map[address.Address]struct{}, len(gs.Accounts))
	supply := make(map[address.Address]uint64, len(gs.Mints))
	for _, a := range gs.Accounts {
		if _, ok := seen[a.Address]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate account %s", a.Address)
		}
		seen[a.Address] = struct{}{}
		if _, ok := mints[a.Mint]; !ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "account %s references unknown mint %s", a.Address, a.Mint)
		}
		if a.Transferring {
			return errorsmod.Wrapf(ErrInvalidGenesis, "account %s is mid-transfer", a.Address)
		}
		total := supply[a.Mint] + a.Amount
		if total < a.Amount {
			return errorsmod.Wrapf(ErrInvalidGenesis, "supply of %s overflows", a.Mint)
		}
		supply[a.Mint] = total
	}

	for addr, m := range mints {
		if supply[addr] != m.Supply {
			return errorsmod.Wrapf(ErrInvalidGenesis, "mint %s supply %d, accounts hold %d", addr, m.Supply, supply[addr])
		}
	}
	return nil
}
