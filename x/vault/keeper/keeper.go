package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/collections/indexes"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/types/record"
	"github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

// RegistryIndexes indexes registry entries by the vault they belong to.
type RegistryIndexes struct {
	Vault *indexes.Multi[address.Address, address.Address, types.RegistryEntry]
}

func (i RegistryIndexes) IndexesList() []collections.Index[address.Address, types.RegistryEntry] {
	return []collections.Index[address.Address, types.RegistryEntry]{i.Vault}
}

// Keeper defines the vault module keeper
type Keeper struct {
	storeService store.KVStoreService
	logger       log.Logger
	schema       collections.Schema

	assetKeeper types.AssetKeeper
	hookProgram address.Address

	Vaults   collections.Map[address.Address, types.Vault]
	Registry *collections.IndexedMap[address.Address, types.RegistryEntry, RegistryIndexes]
}

// NewKeeper creates a new vault Keeper instance. Vaults may only be opened
// for assets whose transfer hook extension names hookProgram.
func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	assetKeeper types.AssetKeeper,
	hookProgram address.Address,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	registryCodec := record.NewCodec(types.RegistryEntryLayout)

	k := Keeper{
		storeService: storeService,
		logger:       logger,
		assetKeeper:  assetKeeper,
		hookProgram:  hookProgram,

		Vaults: collections.NewMap(
			sb,
			types.VaultsKey,
			"vaults",
			address.KeyCodec,
			record.NewCodec(types.VaultLayout),
		),
		Registry: collections.NewIndexedMap(
			sb,
			types.RegistryKey,
			"registry",
			address.KeyCodec,
			registryCodec,
			RegistryIndexes{
				Vault: indexes.NewMulti(
					sb,
					types.RegistryByVaultKey,
					"registry_by_vault",
					address.KeyCodec,
					address.KeyCodec,
					func(_ address.Address, e types.RegistryEntry) (address.Address, error) {
						return e.Vault, nil
					},
				),
			},
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.schema = schema

	return k
}

// Logger returns the module logger.
func (k Keeper) Logger() log.Logger {
	return k.logger
}

// GetVault returns the vault stored at addr.
func (k Keeper) GetVault(ctx context.Context, addr address.Address) (types.Vault, error) {
	v, err := k.Vaults.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Vault{}, types.ErrVaultNotFound.Wrapf("vault %s", addr)
		}
		return types.Vault{}, err
	}
	return v, nil
}

// GetRegistryEntry returns the entry of depositor in vault. A depositor that
// never deposited has an empty entry and found is false.
func (k Keeper) GetRegistryEntry(ctx context.Context, vault, depositor address.Address) (entry types.RegistryEntry, addr address.Address, found bool, err error) {
	addr, bump, err := types.RegistryAddress(vault, depositor)
	if err != nil {
		return types.RegistryEntry{}, address.Zero, false, err
	}
	entry, err = k.Registry.Get(ctx, addr)
	switch {
	case errors.Is(err, collections.ErrNotFound):
		return types.RegistryEntry{Vault: vault, Bump: bump}, addr, false, nil
	case err != nil:
		return types.RegistryEntry{}, address.Zero, false, err
	}
	return entry, addr, true, nil
}

// RegistryEntries returns every registry entry of vault.
func (k Keeper) RegistryEntries(ctx context.Context, vault address.Address) ([]types.RegistryRecord, error) {
	iter, err := k.Registry.Indexes.Vault.MatchExact(ctx, vault)
	if err != nil {
		return nil, err
	}
	// PrimaryKeys drains and closes the iterator.
	keys, err := iter.PrimaryKeys()
	if err != nil {
		return nil, err
	}
	records := make([]types.RegistryRecord, 0, len(keys))
	for _, key := range keys {
		entry, err := k.Registry.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		records = append(records, types.RegistryRecord{Address: key, Entry: entry})
	}
	return records, nil
}
