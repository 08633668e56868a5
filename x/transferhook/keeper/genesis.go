package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
)

// InitGenesis initializes the module's state from a specified GenesisState
func (k Keeper) InitGenesis(ctx context.Context, state *types.GenesisState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	for _, e := range state.Whitelist {
		entryAddr, _, err := types.WhitelistAddress(e.Asset, e.Address)
		if err != nil {
			return err
		}
		raw, err := types.WhitelistEntryCodec.Encode(e)
		if err != nil {
			return err
		}
		if err := k.Whitelist.Set(ctx, entryAddr, raw); err != nil {
			return err
		}
	}
	for _, l := range state.ExtraAccountMetaLists {
		listAddr, _, err := types.MetaListAddress(l.Mint)
		if err != nil {
			return err
		}
		if err := k.ExtraAccountMetas.Set(ctx, listAddr, l.Data); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the module's state. Meta lists are exported by mint,
// so only lists whose mint is known to the asset module are included.
func (k Keeper) ExportGenesis(ctx context.Context, mints []address.Address) (*types.GenesisState, error) {
	state := types.DefaultGenesis()

	err := k.Whitelist.Walk(ctx, nil, func(entryAddr address.Address, raw []byte) (bool, error) {
		entry, err := types.WhitelistEntryCodec.Decode(raw)
		if err != nil {
			return true, types.ErrDeserializeWhitelistData.Wrapf("entry %s: %v", entryAddr, err)
		}
		state.Whitelist = append(state.Whitelist, entry)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	for _, mint := range mints {
		listAddr, _, err := types.MetaListAddress(mint)
		if err != nil {
			return nil, err
		}
		raw, err := k.ExtraAccountMetas.Get(ctx, listAddr)
		if errors.Is(err, collections.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		state.ExtraAccountMetaLists = append(state.ExtraAccountMetaLists, types.ExtraAccountMetaList{Mint: mint, Data: raw})
	}
	return state, nil
}
