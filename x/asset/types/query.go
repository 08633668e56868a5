package types

import (
	"context"

	"cosmossdk.io/math"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// QueryServer is the asset module's query service.
type QueryServer interface {
	Mint(context.Context, *QueryMintRequest) (*QueryMintResponse, error)
	Account(context.Context, *QueryAccountRequest) (*QueryAccountResponse, error)
	UIAmount(context.Context, *QueryUIAmountRequest) (*QueryUIAmountResponse, error)
}

type QueryMintRequest struct {
	Mint address.Address `json:"mint"`
}

type QueryMintResponse struct {
	Mint Mint `json:"mint"`
}

// QueryAccountRequest looks an account up by Address, or by the associated
// derivation of (Owner, Mint) when Address is zero.
type QueryAccountRequest struct {
	Address address.Address `json:"address"`
	Owner   address.Address `json:"owner"`
	Mint    address.Address `json:"mint"`
}

type QueryAccountResponse struct {
	Account Account `json:"account"`
}

type QueryUIAmountRequest struct {
	Mint   address.Address `json:"mint"`
	Amount uint64          `json:"amount"`
}

type QueryUIAmountResponse struct {
	UIAmount math.LegacyDec `json:"ui_amount"`
}
