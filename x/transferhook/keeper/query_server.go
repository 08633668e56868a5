package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
)

var _ types.QueryServer = queryServer{}

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the module QueryServer.
func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{Keeper: k}
}

// WhitelistEntry queries the entry of an address for a mint.
func (qs queryServer) WhitelistEntry(ctx context.Context, req *types.QueryWhitelistEntryRequest) (*types.QueryWhitelistEntryResponse, error) {
	if req == nil || req.Mint.IsZero() || req.Address.IsZero() {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	entryAddr, _, err := types.WhitelistAddress(req.Mint, req.Address)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	entry, err := qs.Keeper.GetWhitelistEntry(ctx, entryAddr)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryWhitelistEntryResponse{EntryAddress: entryAddr, Entry: entry}, nil
}

// IsWhitelisted reports whether an address may send a mint.
func (qs queryServer) IsWhitelisted(ctx context.Context, req *types.QueryIsWhitelistedRequest) (*types.QueryIsWhitelistedResponse, error) {
	if req == nil || req.Mint.IsZero() || req.Address.IsZero() {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ok, err := qs.Keeper.IsWhitelisted(ctx, req.Mint, req.Address)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryIsWhitelistedResponse{Whitelisted: ok}, nil
}

// ExtraAccountMetas queries the list declared for a mint.
func (qs queryServer) ExtraAccountMetas(ctx context.Context, req *types.QueryExtraAccountMetasRequest) (*types.QueryExtraAccountMetasResponse, error) {
	if req == nil || req.Mint.IsZero() {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	listAddr, list, err := qs.Keeper.GetExtraAccountMetas(ctx, req.Mint)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryExtraAccountMetasResponse{MetaList: listAddr, Metas: list}, nil
}
