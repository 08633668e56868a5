package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the module MsgServer interface.
// Every handler runs on a cached context that is written only on success.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// InitializeVault implements types.MsgServer.
func (ms msgServer) InitializeVault(ctx context.Context, msg *types.MsgInitializeVault) (*types.MsgInitializeVaultResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	vaultAddr, vault, err := ms.Keeper.InitializeVault(cacheCtx, msg.Authority, msg.Asset)
	if err != nil {
		return nil, err
	}
	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVaultInitialized,
			sdk.NewAttribute(types.AttributeKeyVault, vaultAddr.String()),
			sdk.NewAttribute(types.AttributeKeyAuthority, vault.Authority.String()),
			sdk.NewAttribute(types.AttributeKeyAsset, vault.Asset.String()),
			sdk.NewAttribute(types.AttributeKeyReserve, vault.ReserveAccount.String()),
		),
	)
	return &types.MsgInitializeVaultResponse{Vault: vaultAddr, Reserve: vault.ReserveAccount}, nil
}

// Deposit implements types.MsgServer.
func (ms msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	vault, entry, err := ms.Keeper.Deposit(cacheCtx, msg.Vault, msg.Depositor, msg.Amount)
	if err != nil {
		return nil, err
	}
	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyVault, msg.Vault.String()),
			sdk.NewAttribute(types.AttributeKeyDepositor, msg.Depositor.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(msg.Amount, 10)),
			sdk.NewAttribute(types.AttributeKeyReserveAmount, strconv.FormatUint(vault.ReserveAmount, 10)),
			sdk.NewAttribute(types.AttributeKeyBalance, strconv.FormatUint(entry.Balance, 10)),
		),
	)
	return &types.MsgDepositResponse{ReserveAmount: vault.ReserveAmount, Balance: entry.Balance}, nil
}

// Withdraw implements types.MsgServer.
func (ms msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	vault, entry, err := ms.Keeper.Withdraw(cacheCtx, msg.Vault, msg.Requester, msg.Amount)
	if err != nil {
		return nil, err
	}
	write()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeyVault, msg.Vault.String()),
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Requester.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(msg.Amount, 10)),
			sdk.NewAttribute(types.AttributeKeyReserveAmount, strconv.FormatUint(vault.ReserveAmount, 10)),
			sdk.NewAttribute(types.AttributeKeyBalance, strconv.FormatUint(entry.Balance, 10)),
		),
	)
	return &types.MsgWithdrawResponse{ReserveAmount: vault.ReserveAmount, Balance: entry.Balance}, nil
}
