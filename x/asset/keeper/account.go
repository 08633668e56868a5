package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/x/asset/types"
)

// CreateAssociatedAccount returns the associated balance account of owner
// for mint, creating it when absent. Calling it again for an existing
// account is a no-op.
func (k Keeper) CreateAssociatedAccount(ctx context.Context, owner, mintAddr address.Address) (types.Account, error) {
	if _, err := k.GetMint(ctx, mintAddr); err != nil {
		return types.Account{}, err
	}

	addr, _, err := types.AssociatedAddress(owner, mintAddr)
	if err != nil {
		return types.Account{}, err
	}

	existing, err := k.Accounts.Get(ctx, addr)
	switch {
	case errors.Is(err, collections.ErrNotFound):
	case err != nil:
		return types.Account{}, err
	default:
		if existing.Owner != owner || existing.Mint != mintAddr {
			return types.Account{}, types.ErrOwnerMismatch.Wrapf("account %s already exists for another owner", addr)
		}
		return existing, nil
	}

	acc := types.Account{
		Address: addr,
		Mint:    mintAddr,
		Owner:   owner,
	}
	if err := k.Accounts.Set(ctx, addr, acc); err != nil {
		return types.Account{}, err
	}

	k.logger.Debug("associated account created", "account", addr, "owner", owner, "mint", mintAddr)
	return acc, nil
}

// AssociatedAccount returns the existing associated account of owner for mint.
func (k Keeper) AssociatedAccount(ctx context.Context, owner, mintAddr address.Address) (types.Account, error) {
	addr, _, err := types.AssociatedAddress(owner, mintAddr)
	if err != nil {
		return types.Account{}, err
	}
	return k.GetAccount(ctx, addr)
}
