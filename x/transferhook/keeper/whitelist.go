package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
)

// AddToWhitelist approves addr to send mint. Any payer may add an entry;
// adding an address that is already approved succeeds without change.
func (k Keeper) AddToWhitelist(ctx context.Context, payer, mint, addr address.Address) (address.Address, error) {
	if _, err := k.assetKeeper.GetMint(ctx, mint); err != nil {
		return address.Zero, err
	}

	entryAddr, bump, err := types.WhitelistAddress(mint, addr)
	if err != nil {
		return address.Zero, types.ErrInvalidWhitelistAccount.Wrap(err.Error())
	}
	has, err := k.Whitelist.Has(ctx, entryAddr)
	if err != nil {
		return address.Zero, err
	}
	if has {
		return entryAddr, nil
	}

	raw, err := types.WhitelistEntryCodec.Encode(types.WhitelistEntry{
		Address: addr,
		Asset:   mint,
		Bump:    bump,
	})
	if err != nil {
		return address.Zero, err
	}
	if err := k.Whitelist.Set(ctx, entryAddr, raw); err != nil {
		return address.Zero, err
	}

	k.logger.Info("whitelist initialized", "address", addr, "mint", mint, "payer", payer)
	return entryAddr, nil
}

// RemoveFromWhitelist deletes the entry stored at entryAddr. The closed
// entry is reclaimed to reclaimTo, whoever that is.
func (k Keeper) RemoveFromWhitelist(ctx context.Context, reclaimTo, entryAddr address.Address) (types.WhitelistEntry, error) {
	entry, err := k.GetWhitelistEntry(ctx, entryAddr)
	if err != nil {
		return types.WhitelistEntry{}, err
	}
	if err := k.Whitelist.Remove(ctx, entryAddr); err != nil {
		return types.WhitelistEntry{}, err
	}

	k.logger.Info("whitelist removed", "address", entry.Address, "mint", entry.Asset, "reclaimed_to", reclaimTo)
	return entry, nil
}

// GetWhitelistEntry loads and decodes the entry stored at entryAddr.
func (k Keeper) GetWhitelistEntry(ctx context.Context, entryAddr address.Address) (types.WhitelistEntry, error) {
	raw, err := k.Whitelist.Get(ctx, entryAddr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.WhitelistEntry{}, types.ErrAccountDoesNotExist.Wrapf("whitelist entry %s", entryAddr)
		}
		return types.WhitelistEntry{}, err
	}
	entry, err := types.WhitelistEntryCodec.Decode(raw)
	if err != nil {
		return types.WhitelistEntry{}, types.ErrDeserializeWhitelistData.Wrap(err.Error())
	}
	return entry, nil
}

// IsWhitelisted reports whether addr may send mint.
func (k Keeper) IsWhitelisted(ctx context.Context, mint, addr address.Address) (bool, error) {
	entryAddr, _, err := types.WhitelistAddress(mint, addr)
	if err != nil {
		return false, err
	}
	return k.Whitelist.Has(ctx, entryAddr)
}
