package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	"github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
)

// Execute enforces the whitelist on a transfer in progress. The source
// account must be marked transferring and the first extra account must be
// the whitelist entry of the source owner for the transferred mint.
func (k Keeper) Execute(ctx context.Context, req assettypes.ExecuteRequest) error {
	src, err := k.assetKeeper.GetAccount(ctx, req.Source)
	if err != nil || !src.Transferring {
		return types.ErrNotTransferring.Wrapf("source %s", req.Source)
	}

	expected, _, err := types.WhitelistAddress(req.Mint, req.Owner)
	if err != nil {
		return types.ErrAccountDoesNotMatch.Wrap(err.Error())
	}
	if len(req.Extra) == 0 || req.Extra[0] != expected {
		return types.ErrAccountDoesNotMatch.Wrapf("expected whitelist entry %s", expected)
	}

	raw, err := k.Whitelist.Get(ctx, expected)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			k.logger.Debug("transfer from non-whitelisted owner", "owner", req.Owner, "mint", req.Mint)
			return types.ErrAccountNotWhitelisted.Wrapf("owner %s", req.Owner)
		}
		return err
	}
	entry, err := types.WhitelistEntryCodec.Decode(raw)
	if err != nil {
		return types.ErrDeserializeWhitelistData.Wrap(err.Error())
	}
	if entry.Address != req.Owner || entry.Asset != req.Mint {
		return types.ErrAccountDoesNotMatch.Wrapf("entry is for %s on %s", entry.Address, entry.Asset)
	}
	return nil
}
