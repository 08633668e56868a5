package types

import (
	"cosmossdk.io/collections"

	"github.com/Zanda256/interest-bearing-vault/types/accountmeta"
	"github.com/Zanda256/interest-bearing-vault/types/address"
)

const (
	// ModuleName defines the name of module.
	ModuleName = "transferhook"

	// StoreKey is the store key string for the module.
	StoreKey = ModuleName

	// WhitelistSeed prefixes the derivation of whitelist entries.
	WhitelistSeed = "whitelist"
)

// ProgramID is the hook program identity. Mints name it in their transfer
// hook extension and every address this module stores is derived under it.
var ProgramID = address.FromName(ModuleName)

var (
	WhitelistKey         = collections.NewPrefix(0)
	ExtraAccountMetasKey = collections.NewPrefix(1)
)

// Event types
const (
	EventTypeWhitelistAdded     = "whitelist_added"
	EventTypeWhitelistRemoved   = "whitelist_removed"
	EventTypeExtraMetasDeclared = "extra_account_metas_initialized"

	AttributeKeyMint     = "mint"
	AttributeKeyAddress  = "address"
	AttributeKeyEntry    = "entry"
	AttributeKeyAdmin    = "admin"
	AttributeKeyMetaList = "meta_list"
	AttributeKeyReclaim  = "reclaimed_to"
)

// WhitelistAddress derives the whitelist entry address of addr for mint.
func WhitelistAddress(mint, addr address.Address) (address.Address, uint8, error) {
	return address.FindProgramAddress([][]byte{
		[]byte(WhitelistSeed),
		mint.Bytes(),
		addr.Bytes(),
	}, ProgramID)
}

// MetaListAddress derives the address holding mint's extra account meta list.
func MetaListAddress(mint address.Address) (address.Address, uint8, error) {
	return accountmeta.ListAddress(mint, ProgramID)
}

// WhitelistRule is the single extra account this hook requires: the
// whitelist entry of the transfer's source owner for the transferred mint.
func WhitelistRule() (accountmeta.Meta, error) {
	return accountmeta.NewWithSeeds([]accountmeta.Seed{
		accountmeta.Literal([]byte(WhitelistSeed)),
		accountmeta.AccountKey(accountmeta.IndexMint),
		accountmeta.AccountKey(accountmeta.IndexOwner),
	}, false, false)
}
