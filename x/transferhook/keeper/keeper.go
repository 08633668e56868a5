package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	"github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
)

var _ assettypes.TransferHook = Keeper{}

// Keeper defines the transferhook module keeper. Whitelist entries and meta
// lists are kept as raw account data keyed by their derived addresses.
type Keeper struct {
	storeService store.KVStoreService
	logger       log.Logger
	schema       collections.Schema

	assetKeeper types.AssetKeeper

	Whitelist         collections.Map[address.Address, []byte]
	ExtraAccountMetas collections.Map[address.Address, []byte]
}

// NewKeeper creates a new transferhook Keeper instance
func NewKeeper(storeService store.KVStoreService, logger log.Logger, assetKeeper types.AssetKeeper) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		logger:       logger,
		assetKeeper:  assetKeeper,

		Whitelist: collections.NewMap(
			sb,
			types.WhitelistKey,
			"whitelist",
			address.KeyCodec,
			collections.BytesValue,
		),
		ExtraAccountMetas: collections.NewMap(
			sb,
			types.ExtraAccountMetasKey,
			"extra_account_metas",
			address.KeyCodec,
			collections.BytesValue,
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

// ExtraAccountMetaList returns the encoded list stored at addr.
func (k Keeper) ExtraAccountMetaList(ctx context.Context, addr address.Address) ([]byte, error) {
	raw, err := k.ExtraAccountMetas.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, types.ErrAccountDoesNotExist.Wrapf("meta list %s", addr)
		}
		return nil, err
	}
	return raw, nil
}
