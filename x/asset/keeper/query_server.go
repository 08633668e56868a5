package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Zanda256/interest-bearing-vault/x/asset/types"
)

var _ types.QueryServer = queryServer{}

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the module QueryServer.
func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{Keeper: k}
}

// Mint queries a mint by address.
func (qs queryServer) Mint(ctx context.Context, req *types.QueryMintRequest) (*types.QueryMintResponse, error) {
	if req == nil || req.Mint.IsZero() {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	mint, err := qs.Keeper.GetMint(ctx, req.Mint)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryMintResponse{Mint: mint}, nil
}

// Account queries a balance account by address or by (owner, mint).
func (qs queryServer) Account(ctx context.Context, req *types.QueryAccountRequest) (*types.QueryAccountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	addr := req.Address
	if addr.IsZero() {
		if req.Owner.IsZero() || req.Mint.IsZero() {
			return nil, status.Error(codes.InvalidArgument, "address or owner and mint are required")
		}
		derived, _, err := types.AssociatedAddress(req.Owner, req.Mint)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		addr = derived
	}

	acc, err := qs.Keeper.GetAccount(ctx, addr)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryAccountResponse{Account: acc}, nil
}

// UIAmount converts a raw amount to its interest-adjusted display value.
func (qs queryServer) UIAmount(ctx context.Context, req *types.QueryUIAmountRequest) (*types.QueryUIAmountResponse, error) {
	if req == nil || req.Mint.IsZero() {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	amount, err := qs.Keeper.AmountToUIAmount(ctx, req.Mint, req.Amount)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryUIAmountResponse{UIAmount: amount}, nil
}
