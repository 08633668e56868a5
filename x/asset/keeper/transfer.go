package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Zanda256/interest-bearing-vault/types/accountmeta"
	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/types/checked"
	"github.com/Zanda256/interest-bearing-vault/x/asset/types"
)

// TransferChecked moves value between two accounts of the same mint. When
// the mint carries a transfer hook extension, the source account is marked
// transferring, the extra accounts declared by the hook program are resolved
// and the hook is executed before the flag is cleared. Any failure leaves
// both accounts untouched.
func (k Keeper) TransferChecked(ctx context.Context, req types.TransferRequest) error {
	if req.Amount == 0 {
		return types.ErrInvalidAmount
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	mint, err := k.GetMint(cacheCtx, req.Mint)
	if err != nil {
		return err
	}
	if mint.Decimals != req.Decimals {
		return types.ErrDecimalsMismatch.Wrapf("mint has %d decimals, got %d", mint.Decimals, req.Decimals)
	}

	src, err := k.GetAccount(cacheCtx, req.Source)
	if err != nil {
		return err
	}
	dst, err := k.GetAccount(cacheCtx, req.Destination)
	if err != nil {
		return err
	}
	if src.Mint != req.Mint || dst.Mint != req.Mint {
		return types.ErrMintMismatch.Wrapf("transfer of %s between %s and %s", req.Mint, src.Mint, dst.Mint)
	}
	if err := req.Authorization.Verify(src.Owner); err != nil {
		return err
	}

	if err := k.move(cacheCtx, src, dst, req.Amount); err != nil {
		return err
	}

	if mint.TransferHook.Enabled() {
		if err := k.executeHook(cacheCtx, mint, req.Source, req.Destination, src.Owner, req.Amount); err != nil {
			k.logger.Debug("transfer rejected by hook", "mint", mint.Address, "source", req.Source, "error", err)
			return err
		}
	}

	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyMint, req.Mint.String()),
			sdk.NewAttribute(types.AttributeKeySource, req.Source.String()),
			sdk.NewAttribute(types.AttributeKeyDestination, req.Destination.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(req.Amount, 10)),
		),
	)
	return nil
}

func (k Keeper) move(ctx context.Context, src, dst types.Account, amount uint64) error {
	debited, ok := checked.Sub(src.Amount, amount)
	if !ok {
		return types.ErrInsufficientFunds.Wrapf("account %s holds %d, need %d", src.Address, src.Amount, amount)
	}
	if src.Address == dst.Address {
		return nil
	}
	credited, ok := checked.Add(dst.Amount, amount)
	if !ok {
		return types.ErrOverflow.Wrapf("account %s balance", dst.Address)
	}

	src.Amount = debited
	dst.Amount = credited
	if err := k.Accounts.Set(ctx, src.Address, src); err != nil {
		return err
	}
	return k.Accounts.Set(ctx, dst.Address, dst)
}

func (k Keeper) executeHook(ctx context.Context, mint types.Mint, source, destination, owner address.Address, amount uint64) error {
	program := mint.TransferHook.Program
	hook, ok := k.hooks[program]
	if !ok {
		return types.ErrHookNotRegistered.Wrapf("program %s", program)
	}

	metaAddr, _, err := accountmeta.ListAddress(mint.Address, program)
	if err != nil {
		return err
	}
	raw, err := hook.ExtraAccountMetaList(ctx, metaAddr)
	if err != nil {
		return errorsmod.Wrapf(types.ErrExtraAccountMetasMissing, "mint %s: %v", mint.Address, err)
	}
	list, err := accountmeta.Decode(raw)
	if err != nil {
		return err
	}
	extra, err := accountmeta.Resolve(
		list,
		[]address.Address{source, mint.Address, destination, owner, metaAddr},
		accountmeta.ExecuteData(amount),
		program,
	)
	if err != nil {
		return err
	}

	if err := k.setTransferring(ctx, source, true); err != nil {
		return err
	}
	err = hook.Execute(ctx, types.ExecuteRequest{
		Source:      source,
		Mint:        mint.Address,
		Destination: destination,
		Owner:       owner,
		MetaList:    metaAddr,
		Extra:       extra,
		Amount:      amount,
	})
	if err != nil {
		return err
	}
	return k.setTransferring(ctx, source, false)
}

func (k Keeper) setTransferring(ctx context.Context, addr address.Address, transferring bool) error {
	acc, err := k.GetAccount(ctx, addr)
	if err != nil {
		return err
	}
	acc.Transferring = transferring
	return k.Accounts.Set(ctx, addr, acc)
}
