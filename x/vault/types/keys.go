package types

import (
	"cosmossdk.io/collections"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

const (
	// ModuleName defines the name of module.
	ModuleName = "vault"

	// StoreKey is the store key string for the module.
	StoreKey = ModuleName

	VaultSeed    = "vault"
	RegistrySeed = "vault_registry"
)

// ProgramID is the identity vault and registry addresses are derived under.
// The vault signs for its reserve account as derive(["vault", authority]).
var ProgramID = address.FromName(ModuleName)

var (
	VaultsKey          = collections.NewPrefix(0)
	RegistryKey        = collections.NewPrefix(1)
	RegistryByVaultKey = collections.NewPrefix(2)
)

// Event types
const (
	EventTypeVaultInitialized = "vault_initialized"
	EventTypeDeposit          = "deposit"
	EventTypeWithdraw         = "withdraw"

	AttributeKeyVault         = "vault"
	AttributeKeyAuthority     = "authority"
	AttributeKeyAsset         = "asset"
	AttributeKeyReserve       = "reserve_account"
	AttributeKeyDepositor     = "depositor"
	AttributeKeyAmount        = "amount"
	AttributeKeyReserveAmount = "reserve_amount"
	AttributeKeyBalance       = "balance"
)

// VaultAddress derives the vault of authority.
func VaultAddress(authority address.Address) (address.Address, uint8, error) {
	return address.FindProgramAddress(VaultSeeds(authority), ProgramID)
}

// VaultSeeds are the signer seeds of the vault of authority, without bump.
func VaultSeeds(authority address.Address) [][]byte {
	return [][]byte{[]byte(VaultSeed), authority.Bytes()}
}

// RegistryAddress derives the registry entry of depositor in vault.
func RegistryAddress(vault, depositor address.Address) (address.Address, uint8, error) {
	return address.FindProgramAddress([][]byte{
		[]byte(RegistrySeed),
		vault.Bytes(),
		depositor.Bytes(),
	}, ProgramID)
}
