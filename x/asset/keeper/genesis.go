package keeper

import (
	"context"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/x/asset/types"
)

// InitGenesis initializes the module's state from a specified GenesisState
func (k Keeper) InitGenesis(ctx context.Context, state *types.GenesisState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	for _, mint := range state.Mints {
		if err := k.Mints.Set(ctx, mint.Address, mint); err != nil {
			return err
		}
	}
	for _, acc := range state.Accounts {
		if err := k.Accounts.Set(ctx, acc.Address, acc); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the module's state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	state := types.DefaultGenesis()

	err := k.Mints.Walk(ctx, nil, func(_ address.Address, mint types.Mint) (bool, error) {
		state.Mints = append(state.Mints, mint)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Accounts.Walk(ctx, nil, func(_ address.Address, acc types.Account) (bool, error) {
		state.Accounts = append(state.Accounts, acc)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}
