package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/types/checked"
	"github.com/Zanda256/interest-bearing-vault/x/asset/types"
)

// CreateMint stores a new mint with its transfer hook and interest bearing
// extensions. The interest configuration is initialized at the block time.
func (k Keeper) CreateMint(ctx context.Context, msg *types.MsgCreateMint) (types.Mint, error) {
	has, err := k.Mints.Has(ctx, msg.Mint)
	if err != nil {
		return types.Mint{}, err
	}
	if has {
		return types.Mint{}, types.ErrMintExists.Wrapf("mint %s", msg.Mint)
	}
	if err := types.ValidateRate(msg.InterestRate); err != nil {
		return types.Mint{}, types.ErrInvalidInterestRate.Wrap(err.Error())
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	mint := types.Mint{
		Address:       msg.Mint,
		MintAuthority: msg.MintAuthority,
		Decimals:      msg.Decimals,
		TransferHook: types.TransferHookExtension{
			Authority: msg.Payer,
			Program:   msg.HookProgram,
		},
		InterestBearing: types.InterestBearingConfig{
			RateAuthority:           msg.RateAuthority,
			InitializationTimestamp: now,
			PreUpdateAverageRate:    msg.InterestRate,
			LastUpdateTimestamp:     now,
			CurrentRate:             msg.InterestRate,
		},
	}
	if err := k.Mints.Set(ctx, mint.Address, mint); err != nil {
		return types.Mint{}, err
	}

	k.logger.Info("mint created", "mint", mint.Address, "decimals", mint.Decimals, "hook_program", mint.TransferHook.Program)
	return mint, nil
}

// MintTo issues amount of new supply into the destination account.
func (k Keeper) MintTo(ctx context.Context, authority, mintAddr, destination address.Address, amount uint64) error {
	if amount == 0 {
		return types.ErrInvalidAmount
	}
	mint, err := k.GetMint(ctx, mintAddr)
	if err != nil {
		return err
	}
	if mint.MintAuthority != authority {
		return types.ErrUnauthorized.Wrapf("%s is not the mint authority", authority)
	}
	dst, err := k.GetAccount(ctx, destination)
	if err != nil {
		return err
	}
	if dst.Mint != mintAddr {
		return types.ErrMintMismatch.Wrapf("account %s holds %s", destination, dst.Mint)
	}

	supply, ok := checked.Add(mint.Supply, amount)
	if !ok {
		return types.ErrOverflow.Wrap("mint supply")
	}
	balance, ok := checked.Add(dst.Amount, amount)
	if !ok {
		return types.ErrOverflow.Wrap("account balance")
	}
	mint.Supply = supply
	dst.Amount = balance

	if err := k.Mints.Set(ctx, mint.Address, mint); err != nil {
		return err
	}
	return k.Accounts.Set(ctx, dst.Address, dst)
}

// UpdateInterestRate changes the mint's current rate at the block time.
func (k Keeper) UpdateInterestRate(ctx context.Context, rateAuthority, mintAddr address.Address, rate int16) error {
	if err := types.ValidateRate(rate); err != nil {
		return types.ErrInvalidInterestRate.Wrap(err.Error())
	}
	mint, err := k.GetMint(ctx, mintAddr)
	if err != nil {
		return err
	}
	if mint.InterestBearing.RateAuthority != rateAuthority {
		return types.ErrUnauthorized.Wrapf("%s is not the rate authority", rateAuthority)
	}

	mint.InterestBearing.UpdateRate(rate, sdk.UnwrapSDKContext(ctx).BlockTime().Unix())
	return k.Mints.Set(ctx, mint.Address, mint)
}

// AmountToUIAmount returns the display value of amount at the block time.
func (k Keeper) AmountToUIAmount(ctx context.Context, mintAddr address.Address, amount uint64) (math.LegacyDec, error) {
	mint, err := k.GetMint(ctx, mintAddr)
	if err != nil {
		return math.LegacyDec{}, err
	}
	return mint.AmountToUIAmount(amount, sdk.UnwrapSDKContext(ctx).BlockTime().Unix()), nil
}
