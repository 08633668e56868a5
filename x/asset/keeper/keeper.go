package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/types/record"
	"github.com/Zanda256/interest-bearing-vault/x/asset/types"
)

// Keeper defines the asset module keeper
type Keeper struct {
	storeService store.KVStoreService
	logger       log.Logger
	schema       collections.Schema

	// transfer hook programs by program id
	hooks map[address.Address]types.TransferHook

	// Collections for state management
	Mints    collections.Map[address.Address, types.Mint]
	Accounts collections.Map[address.Address, types.Account]
}

// NewKeeper creates a new asset Keeper instance
func NewKeeper(storeService store.KVStoreService, logger log.Logger) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		logger:       logger,
		hooks:        make(map[address.Address]types.TransferHook),

		Mints: collections.NewMap(
			sb,
			types.MintsKey,
			"mints",
			address.KeyCodec,
			record.NewCodec(types.MintLayout),
		),
		Accounts: collections.NewMap(
			sb,
			types.AccountsKey,
			"accounts",
			address.KeyCodec,
			record.NewCodec(types.AccountLayout),
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.schema = schema

	return k
}

// SetTransferHook registers the hook invoked for mints whose transfer hook
// extension names program.
func (k Keeper) SetTransferHook(program address.Address, hook types.TransferHook) {
	k.hooks[program] = hook
}

// Logger returns the module logger.
func (k Keeper) Logger() log.Logger {
	return k.logger
}

// GetMint returns the mint stored at addr.
func (k Keeper) GetMint(ctx context.Context, addr address.Address) (types.Mint, error) {
	mint, err := k.Mints.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Mint{}, types.ErrMintNotFound.Wrapf("mint %s", addr)
		}
		return types.Mint{}, err
	}
	return mint, nil
}

// GetAccount returns the balance account stored at addr.
func (k Keeper) GetAccount(ctx context.Context, addr address.Address) (types.Account, error) {
	acc, err := k.Accounts.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Account{}, types.ErrAccountNotFound.Wrapf("account %s", addr)
		}
		return types.Account{}, err
	}
	return acc, nil
}
