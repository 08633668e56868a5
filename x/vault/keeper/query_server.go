package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

var _ types.QueryServer = queryServer{}

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the module QueryServer.
func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{Keeper: k}
}

// Vault queries a vault by address or by authority.
func (qs queryServer) Vault(ctx context.Context, req *types.QueryVaultRequest) (*types.QueryVaultResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	addr := req.Address
	if addr.IsZero() {
		if req.Authority.IsZero() {
			return nil, status.Error(codes.InvalidArgument, "address or authority is required")
		}
		derived, _, err := types.VaultAddress(req.Authority)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		addr = derived
	}

	vault, err := qs.Keeper.GetVault(ctx, addr)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryVaultResponse{Address: addr, Vault: vault}, nil
}

// RegistryEntry queries the entry of a depositor in a vault.
func (qs queryServer) RegistryEntry(ctx context.Context, req *types.QueryRegistryEntryRequest) (*types.QueryRegistryEntryResponse, error) {
	if req == nil || req.Vault.IsZero() || req.Depositor.IsZero() {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	entry, addr, found, err := qs.Keeper.GetRegistryEntry(ctx, req.Vault, req.Depositor)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "no registry entry for %s in %s", req.Depositor, req.Vault)
	}
	return &types.QueryRegistryEntryResponse{Address: addr, Entry: entry}, nil
}

// RegistryEntries queries every registry entry of a vault.
func (qs queryServer) RegistryEntries(ctx context.Context, req *types.QueryRegistryEntriesRequest) (*types.QueryRegistryEntriesResponse, error) {
	if req == nil || req.Vault.IsZero() {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	records, err := qs.Keeper.RegistryEntries(ctx, req.Vault)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryRegistryEntriesResponse{Entries: records}, nil
}
