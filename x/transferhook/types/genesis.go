package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/Zanda256/interest-bearing-vault/types/accountmeta"
	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// ExtraAccountMetaList is a mint's declared list in its encoded form.
type ExtraAccountMetaList struct {
	Mint address.Address `json:"mint"`
	Data []byte          `json:"data"`
}

// GenesisState is the transferhook module's exported state.
type GenesisState struct {
	Whitelist             []WhitelistEntry       `json:"whitelist"`
	ExtraAccountMetaLists []ExtraAccountMetaList `json:"extra_account_meta_lists"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[address.Address]struct{}, len(gs.Whitelist))
	for _, e := range gs.Whitelist {
		addr, bump, err := WhitelistAddress(e.Asset, e.Address)
		if err != nil {
			return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
		}
		if bump != e.Bump {
			return errorsmod.Wrapf(ErrInvalidGenesis, "whitelist entry for %s has bump %d, want %d", e.Address, e.Bump, bump)
		}
		if _, ok := seen[addr]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate whitelist entry for %s", e.Address)
		}
		seen[addr] = struct{}{}
	}

	mints := make(map[address.Address]struct{}, len(gs.ExtraAccountMetaLists))
	for _, l := range gs.ExtraAccountMetaLists {
		if _, ok := mints[l.Mint]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate meta list for %s", l.Mint)
		}
		mints[l.Mint] = struct{}{}
		if _, err := accountmeta.Decode(l.Data); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "meta list for %s: %v", l.Mint, err)
		}
	}
	return nil
}
