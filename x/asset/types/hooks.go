package types

import (
	"context"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// TransferHook is a program invoked synchronously on every transfer of a
// mint whose transfer hook extension names it. A non-nil error from Execute
// aborts the transfer.
type TransferHook interface {
	// ExtraAccountMetaList returns the encoded extra account meta list stored
	// at addr, or an error if none was declared.
	ExtraAccountMetaList(ctx context.Context, addr address.Address) ([]byte, error)

	// Execute validates a transfer that is in progress.
	Execute(ctx context.Context, req ExecuteRequest) error
}

// ExecuteRequest carries the accounts of a transfer to its hook. Extra holds
// the addresses resolved from the mint's extra account meta list, in list
// order.
type ExecuteRequest struct {
	Source      address.Address
	Mint        address.Address
	Destination address.Address
	Owner       address.Address
	MetaList    address.Address
	Extra       []address.Address
	Amount      uint64
}

// TransferRequest moves Amount of Mint from Source to Destination.
// Authorization must speak for the owner of Source.
type TransferRequest struct {
	Source        address.Address
	Mint          address.Address
	Destination   address.Address
	Authorization Authorization
	Amount        uint64
	Decimals      uint8
}
