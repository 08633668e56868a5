package types

import (
	"context"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
)

// AssetKeeper defines the expected asset keeper
type AssetKeeper interface {
	GetMint(ctx context.Context, addr address.Address) (assettypes.Mint, error)
	GetAccount(ctx context.Context, addr address.Address) (assettypes.Account, error)
	CreateAssociatedAccount(ctx context.Context, owner, mint address.Address) (assettypes.Account, error)
	AssociatedAccount(ctx context.Context, owner, mint address.Address) (assettypes.Account, error)
	TransferChecked(ctx context.Context, req assettypes.TransferRequest) error
}
