package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Zanda256/interest-bearing-vault/types/accountmeta"
	"github.com/Zanda256/interest-bearing-vault/types/address"
	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	"github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the module MsgServer interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// InitializeExtraAccountMetaList implements types.MsgServer.
func (ms msgServer) InitializeExtraAccountMetaList(
	ctx context.Context,
	msg *types.MsgInitializeExtraAccountMetaList,
) (*types.MsgInitializeExtraAccountMetaListResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	listAddr, err := ms.Keeper.InitializeExtraAccountMetaList(ctx, msg.Payer, msg.Mint)
	if err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeExtraMetasDeclared,
			sdk.NewAttribute(types.AttributeKeyMint, msg.Mint.String()),
			sdk.NewAttribute(types.AttributeKeyMetaList, listAddr.String()),
		),
	)
	return &types.MsgInitializeExtraAccountMetaListResponse{MetaList: listAddr}, nil
}

// AddToWhitelist implements types.MsgServer.
func (ms msgServer) AddToWhitelist(ctx context.Context, msg *types.MsgAddToWhitelist) (*types.MsgAddToWhitelistResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	entryAddr, err := ms.Keeper.AddToWhitelist(ctx, msg.Admin, msg.Mint, msg.Address)
	if err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWhitelistAdded,
			sdk.NewAttribute(types.AttributeKeyMint, msg.Mint.String()),
			sdk.NewAttribute(types.AttributeKeyAddress, msg.Address.String()),
			sdk.NewAttribute(types.AttributeKeyEntry, entryAddr.String()),
		),
	)
	return &types.MsgAddToWhitelistResponse{Entry: entryAddr}, nil
}

// RemoveFromWhitelist implements types.MsgServer.
func (ms msgServer) RemoveFromWhitelist(
	ctx context.Context,
	msg *types.MsgRemoveFromWhitelist,
) (*types.MsgRemoveFromWhitelistResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	entry, err := ms.Keeper.RemoveFromWhitelist(ctx, msg.Admin, msg.Entry)
	if err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWhitelistRemoved,
			sdk.NewAttribute(types.AttributeKeyMint, entry.Asset.String()),
			sdk.NewAttribute(types.AttributeKeyAddress, entry.Address.String()),
			sdk.NewAttribute(types.AttributeKeyEntry, msg.Entry.String()),
			sdk.NewAttribute(types.AttributeKeyReclaim, msg.Admin.String()),
		),
	)
	return &types.MsgRemoveFromWhitelistResponse{}, nil
}

// Execute implements types.MsgServer. The extra accounts are resolved from
// the mint's declared list the same way the transfer pathway resolves them.
func (ms msgServer) Execute(ctx context.Context, msg *types.MsgExecute) (*types.MsgExecuteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	req := assettypes.ExecuteRequest{
		Source:      msg.Source,
		Mint:        msg.Mint,
		Destination: msg.Destination,
		Owner:       msg.Owner,
		Amount:      msg.Amount,
	}
	if listAddr, list, err := ms.Keeper.GetExtraAccountMetas(ctx, msg.Mint); err == nil {
		req.MetaList = listAddr
		req.Extra, err = accountmeta.Resolve(
			list,
			[]address.Address{msg.Source, msg.Mint, msg.Destination, msg.Owner, listAddr},
			accountmeta.ExecuteData(msg.Amount),
			types.ProgramID,
		)
		if err != nil {
			return nil, types.ErrInvalidExtraAccountMeta.Wrap(err.Error())
		}
	}

	if err := ms.Keeper.Execute(ctx, req); err != nil {
		return nil, err
	}
	return &types.MsgExecuteResponse{}, nil
}
