package keeper

import (
	"context"

	"github.com/Zanda256/interest-bearing-vault/types/accountmeta"
	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
)

// InitializeExtraAccountMetaList writes mint's extra account meta list. The
// list holds one rule deriving the whitelist entry of the transfer's source
// owner. It can be written only once per mint.
func (k Keeper) InitializeExtraAccountMetaList(ctx context.Context, payer, mint address.Address) (address.Address, error) {
	if _, err := k.assetKeeper.GetMint(ctx, mint); err != nil {
		return address.Zero, err
	}

	listAddr, _, err := types.MetaListAddress(mint)
	if err != nil {
		return address.Zero, err
	}
	has, err := k.ExtraAccountMetas.Has(ctx, listAddr)
	if err != nil {
		return address.Zero, err
	}
	if has {
		return address.Zero, types.ErrAccountAlreadyExists.Wrapf("meta list %s", listAddr)
	}

	rule, err := types.WhitelistRule()
	if err != nil {
		return address.Zero, types.ErrInvalidExtraAccountMeta.Wrap(err.Error())
	}
	raw, err := accountmeta.List{rule}.Encode()
	if err != nil {
		return address.Zero, types.ErrInvalidExtraAccountMeta.Wrap(err.Error())
	}
	if err := k.ExtraAccountMetas.Set(ctx, listAddr, raw); err != nil {
		return address.Zero, err
	}

	k.logger.Info("extra account metas initialized", "mint", mint, "meta_list", listAddr, "payer", payer)
	return listAddr, nil
}

// GetExtraAccountMetas returns the decoded list declared for mint.
func (k Keeper) GetExtraAccountMetas(ctx context.Context, mint address.Address) (address.Address, accountmeta.List, error) {
	listAddr, _, err := types.MetaListAddress(mint)
	if err != nil {
		return address.Zero, nil, err
	}
	raw, err := k.ExtraAccountMetaList(ctx, listAddr)
	if err != nil {
		return address.Zero, nil, err
	}
	list, err := accountmeta.Decode(raw)
	if err != nil {
		return address.Zero, nil, types.ErrInvalidExtraAccountMeta.Wrap(err.Error())
	}
	return listAddr, list, nil
}
