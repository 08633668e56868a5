package types

import (
	"cosmossdk.io/collections"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

const (
	// ModuleName defines the name of module.
	ModuleName = "asset"

	// StoreKey is the store key string for the module.
	StoreKey = ModuleName

	// AssociatedSeed prefixes the derivation of associated balance accounts.
	AssociatedSeed = "associated"
)

// ProgramID is the identity under which associated accounts are derived.
var ProgramID = address.FromName(ModuleName)

var (
	MintsKey    = collections.NewPrefix(0)
	AccountsKey = collections.NewPrefix(1)
)

// Event types
const (
	EventTypeMintCreated    = "mint_created"
	EventTypeAccountCreated = "account_created"
	EventTypeMintTo         = "mint_to"
	EventTypeTransfer       = "transfer"
	EventTypeRateUpdated    = "interest_rate_updated"

	AttributeKeyMint         = "mint"
	AttributeKeyAccount      = "account"
	AttributeKeyOwner        = "owner"
	AttributeKeySource       = "source"
	AttributeKeyDestination  = "destination"
	AttributeKeyAmount       = "amount"
	AttributeKeyHookProgram  = "hook_program"
	AttributeKeyInterestRate = "interest_rate"
)

// AssociatedAddress derives the balance account of owner for mint.
func AssociatedAddress(owner, mint address.Address) (address.Address, uint8, error) {
	return address.FindProgramAddress([][]byte{
		[]byte(AssociatedSeed),
		owner.Bytes(),
		mint.Bytes(),
	}, ProgramID)
}
