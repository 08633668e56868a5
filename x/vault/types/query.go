package types

import (
	"context"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// QueryServer is the vault module's query service.
type QueryServer interface {
	Vault(context.Context, *QueryVaultRequest) (*QueryVaultResponse, error)
	RegistryEntry(context.Context, *QueryRegistryEntryRequest) (*QueryRegistryEntryResponse, error)
	RegistryEntries(context.Context, *QueryRegistryEntriesRequest) (*QueryRegistryEntriesResponse, error)
}

// QueryVaultRequest looks a vault up by Address, or by Authority when
// Address is zero.
type QueryVaultRequest struct {
	Address   address.Address `json:"address"`
	Authority address.Address `json:"authority"`
}

type QueryVaultResponse struct {
	Address address.Address `json:"address"`
	Vault   Vault           `json:"vault"`
}

type QueryRegistryEntryRequest struct {
	Vault     address.Address `json:"vault"`
	Depositor address.Address `json:"depositor"`
}

type QueryRegistryEntryResponse struct {
	Address address.Address `json:"address"`
	Entry   RegistryEntry   `json:"entry"`
}

type QueryRegistryEntriesRequest struct {
	Vault address.Address `json:"vault"`
}

type QueryRegistryEntriesResponse struct {
	Entries []RegistryRecord `json:"entries"`
}
