package keeper

import (
	"context"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

// InitGenesis initializes the module's state from a specified GenesisState
func (k Keeper) InitGenesis(ctx context.Context, state *types.GenesisState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	for _, r := range state.Vaults {
		if err := k.Vaults.Set(ctx, r.Address, r.Vault); err != nil {
			return err
		}
	}
	for _, r := range state.Registry {
		if err := k.Registry.Set(ctx, r.Address, r.Entry); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the module's state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	state := types.DefaultGenesis()

	err := k.Vaults.Walk(ctx, nil, func(addr address.Address, v types.Vault) (bool, error) {
		state.Vaults = append(state.Vaults, types.VaultRecord{Address: addr, Vault: v})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Registry.Walk(ctx, nil, func(addr address.Address, e types.RegistryEntry) (bool, error) {
		state.Registry = append(state.Registry, types.RegistryRecord{Address: addr, Entry: e})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}
