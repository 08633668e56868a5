package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Zanda256/interest-bearing-vault/x/asset/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the module MsgServer interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// CreateMint implements types.MsgServer.
func (ms msgServer) CreateMint(ctx context.Context, msg *types.MsgCreateMint) (*types.MsgCreateMintResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	mint, err := ms.Keeper.CreateMint(ctx, msg)
	if err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMintCreated,
			sdk.NewAttribute(types.AttributeKeyMint, mint.Address.String()),
			sdk.NewAttribute(types.AttributeKeyHookProgram, mint.TransferHook.Program.String()),
			sdk.NewAttribute(types.AttributeKeyInterestRate, strconv.Itoa(int(mint.InterestBearing.CurrentRate))),
		),
	)
	return &types.MsgCreateMintResponse{Mint: mint}, nil
}

// CreateAccount implements types.MsgServer.
func (ms msgServer) CreateAccount(ctx context.Context, msg *types.MsgCreateAccount) (*types.MsgCreateAccountResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	acc, err := ms.Keeper.CreateAssociatedAccount(ctx, msg.Owner, msg.Mint)
	if err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAccountCreated,
			sdk.NewAttribute(types.AttributeKeyAccount, acc.Address.String()),
			sdk.NewAttribute(types.AttributeKeyOwner, acc.Owner.String()),
			sdk.NewAttribute(types.AttributeKeyMint, acc.Mint.String()),
		),
	)
	return &types.MsgCreateAccountResponse{Account: acc}, nil
}

// MintTo implements types.MsgServer.
func (ms msgServer) MintTo(ctx context.Context, msg *types.MsgMintTo) (*types.MsgMintToResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.MintTo(ctx, msg.Authority, msg.Mint, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMintTo,
			sdk.NewAttribute(types.AttributeKeyMint, msg.Mint.String()),
			sdk.NewAttribute(types.AttributeKeyDestination, msg.Destination.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(msg.Amount, 10)),
		),
	)
	return &types.MsgMintToResponse{}, nil
}

// Transfer implements types.MsgServer.
func (ms msgServer) Transfer(ctx context.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := ms.Keeper.TransferChecked(ctx, types.TransferRequest{
		Source:        msg.Source,
		Mint:          msg.Mint,
		Destination:   msg.Destination,
		Authorization: types.SignedBy(msg.Owner),
		Amount:        msg.Amount,
		Decimals:      msg.Decimals,
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgTransferResponse{}, nil
}

// UpdateInterestRate implements types.MsgServer.
func (ms msgServer) UpdateInterestRate(ctx context.Context, msg *types.MsgUpdateInterestRate) (*types.MsgUpdateInterestRateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.UpdateInterestRate(ctx, msg.RateAuthority, msg.Mint, msg.Rate); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRateUpdated,
			sdk.NewAttribute(types.AttributeKeyMint, msg.Mint.String()),
			sdk.NewAttribute(types.AttributeKeyInterestRate, strconv.Itoa(int(msg.Rate))),
		),
	)
	return &types.MsgUpdateInterestRateResponse{}, nil
}
