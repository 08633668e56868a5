package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// VaultRecord is a vault together with its derived address.
type VaultRecord struct {
	Address address.Address `json:"address"`
	Vault   Vault           `json:"vault"`
}

// RegistryRecord is a registry entry together with its derived address.
type RegistryRecord struct {
	Address address.Address `json:"address"`
	Entry   RegistryEntry   `json:"entry"`
}

// GenesisState is the vault module's exported state.
type GenesisState struct {
	Vaults   []VaultRecord    `json:"vaults"`
	Registry []RegistryRecord `json:"registry"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	vaults := make(map[address.Address]Vault, len(gs.Vaults))
	for _, r := range gs.Vaults {
		addr, bump, err := VaultAddress(r.Vault.Authority)
		if err != nil {
			return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
		}
		if addr != r.Address || bump != r.Vault.Bump {
			return errorsmod.Wrapf(ErrInvalidGenesis, "vault %s is not derived from authority %s", r.Address, r.Vault.Authority)
		}
		if _, ok := vaults[addr]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate vault %s", addr)
		}
		vaults[addr] = r.Vault
	}

	seen := make(map[address.Address]struct{}, len(gs.Registry))
	for _, r := range gs.Registry {
		v, ok := vaults[r.Entry.Vault]
		if !ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "registry entry %s references unknown vault %s", r.Address, r.Entry.Vault)
		}
		if v.Asset != r.Entry.Asset {
			return errorsmod.Wrapf(ErrInvalidGenesis, "registry entry %s asset does not match its vault", r.Address)
		}
		if _, ok := seen[r.Address]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate registry entry %s", r.Address)
		}
		seen[r.Address] = struct{}{}
	}
	return nil
}
