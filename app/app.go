// Package app wires the asset, transferhook and vault modules over a
// persistent commit multistore and executes messages against it.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	dbm "github.com/cosmos/cosmos-db"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	assetkeeper "github.com/Zanda256/interest-bearing-vault/x/asset/keeper"
	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	hookkeeper "github.com/Zanda256/interest-bearing-vault/x/transferhook/keeper"
	hooktypes "github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
	vaultkeeper "github.com/Zanda256/interest-bearing-vault/x/vault/keeper"
	vaulttypes "github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

const (
	AppName = "vaultd"
	ChainID = "vaultd-local"
)

// storeMarkerKey is written to every module store in the first committed
// version, so that each IAVL tree has a saved root from then on and the
// ledger reloads even when a module has no records. It sorts after every
// collections prefix the modules use.
var storeMarkerKey = []byte{0xff}

// Msg is implemented by every module message.
type Msg interface {
	ValidateBasic() error
}

// Result is the outcome of a successfully executed message.
type Result struct {
	Height   int64      `json:"height"`
	Response any        `json:"response"`
	Events   sdk.Events `json:"events"`
}

// App owns the ledger. Messages are executed one at a time; each one either
// commits all of its writes as a new version or leaves the ledger untouched.
type App struct {
	mu sync.RWMutex

	logger log.Logger
	db     dbm.DB
	cms    storetypes.CommitMultiStore
	keys   map[string]*storetypes.KVStoreKey
	now    func() time.Time

	AssetKeeper        assetkeeper.Keeper
	TransferHookKeeper hookkeeper.Keeper
	VaultKeeper        vaultkeeper.Keeper

	assetMsgs assettypes.MsgServer
	hookMsgs  hooktypes.MsgServer
	vaultMsgs vaulttypes.MsgServer

	AssetQuery        assettypes.QueryServer
	TransferHookQuery hooktypes.QueryServer
	VaultQuery        vaulttypes.QueryServer
}

// Option configures an App.
type Option func(*App)

// WithClock overrides the block time source. Interest accrual reads the
// block time, so tests pin it.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// New mounts the module stores on db, loads the latest committed version and
// builds the keepers. The transferhook keeper is registered as the transfer
// hook of its program.
func New(logger log.Logger, db dbm.DB, opts ...Option) (*App, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	a := &App{
		logger: logger.With(log.ModuleKey, "app"),
		db:     db,
		keys:   storetypes.NewKVStoreKeys(assettypes.StoreKey, hooktypes.StoreKey, vaulttypes.StoreKey),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.cms = store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range a.keys {
		a.cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := a.cms.LoadLatestVersion(); err != nil {
		return nil, errorsmod.Wrap(err, "failed to load ledger")
	}

	a.AssetKeeper = assetkeeper.NewKeeper(
		runtime.NewKVStoreService(a.keys[assettypes.StoreKey]),
		logger,
	)
	a.TransferHookKeeper = hookkeeper.NewKeeper(
		runtime.NewKVStoreService(a.keys[hooktypes.StoreKey]),
		logger,
		a.AssetKeeper,
	)
	a.AssetKeeper.SetTransferHook(hooktypes.ProgramID, a.TransferHookKeeper)
	a.VaultKeeper = vaultkeeper.NewKeeper(
		runtime.NewKVStoreService(a.keys[vaulttypes.StoreKey]),
		logger,
		a.AssetKeeper,
		hooktypes.ProgramID,
	)

	a.assetMsgs = assetkeeper.NewMsgServerImpl(a.AssetKeeper)
	a.hookMsgs = hookkeeper.NewMsgServerImpl(a.TransferHookKeeper)
	a.vaultMsgs = vaultkeeper.NewMsgServerImpl(a.VaultKeeper)

	a.AssetQuery = assetkeeper.NewQueryServerImpl(a.AssetKeeper)
	a.TransferHookQuery = hookkeeper.NewQueryServerImpl(a.TransferHookKeeper)
	a.VaultQuery = vaultkeeper.NewQueryServerImpl(a.VaultKeeper)

	a.logger.Debug("ledger loaded", "height", a.LastHeight())
	return a, nil
}

// LastHeight returns the version of the last committed message.
func (a *App) LastHeight() int64 {
	return a.cms.LastCommitID().Version
}

// Close releases the underlying database.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.db.Close()
}

// Execute runs msg against a branch of the ledger. The branch is written and
// committed only when the handler succeeds.
func (a *App) Execute(msg Msg) (*Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	branch := a.cms.CacheMultiStore()
	ctx := a.newContext(branch)

	res, err := a.route(ctx, msg)
	if err != nil {
		a.logger.Debug("message rejected", "msg", msgName(msg), "err", err)
		return nil, err
	}

	commit := a.commit(branch)
	a.logger.Info("message committed", "msg", msgName(msg), "height", commit.Version)

	return &Result{
		Height:   commit.Version,
		Response: res,
		Events:   ctx.EventManager().Events(),
	}, nil
}

// Query runs fn on a read-only view of the last committed state.
func (a *App) Query(fn func(ctx context.Context) error) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return fn(a.newContext(a.cms.CacheMultiStore()))
}

// commit writes branch and commits it as the next version.
func (a *App) commit(branch storetypes.CacheMultiStore) storetypes.CommitID {
	if a.cms.LastCommitID().Version == 0 {
		for name, key := range a.keys {
			branch.GetKVStore(key).Set(storeMarkerKey, []byte(name))
		}
	}
	branch.Write()
	return a.cms.Commit()
}

func (a *App) newContext(ms storetypes.MultiStore) sdk.Context {
	header := cmtproto.Header{
		ChainID: ChainID,
		Height:  a.cms.LastCommitID().Version + 1,
		Time:    a.now().UTC(),
	}
	return sdk.NewContext(ms, header, false, a.logger)
}

func (a *App) route(ctx context.Context, msg Msg) (any, error) {
	switch msg := msg.(type) {
	case *assettypes.MsgCreateMint:
		return a.assetMsgs.CreateMint(ctx, msg)
	case *assettypes.MsgCreateAccount:
		return a.assetMsgs.CreateAccount(ctx, msg)
	case *assettypes.MsgMintTo:
		return a.assetMsgs.MintTo(ctx, msg)
	case *assettypes.MsgTransfer:
		return a.assetMsgs.Transfer(ctx, msg)
	case *assettypes.MsgUpdateInterestRate:
		return a.assetMsgs.UpdateInterestRate(ctx, msg)
	case *hooktypes.MsgInitializeExtraAccountMetaList:
		return a.hookMsgs.InitializeExtraAccountMetaList(ctx, msg)
	case *hooktypes.MsgAddToWhitelist:
		return a.hookMsgs.AddToWhitelist(ctx, msg)
	case *hooktypes.MsgRemoveFromWhitelist:
		return a.hookMsgs.RemoveFromWhitelist(ctx, msg)
	case *hooktypes.MsgExecute:
		return a.hookMsgs.Execute(ctx, msg)
	case *vaulttypes.MsgInitializeVault:
		return a.vaultMsgs.InitializeVault(ctx, msg)
	case *vaulttypes.MsgDeposit:
		return a.vaultMsgs.Deposit(ctx, msg)
	case *vaulttypes.MsgWithdraw:
		return a.vaultMsgs.Withdraw(ctx, msg)
	default:
		return nil, errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized message type %T", msg)
	}
}

func msgName(msg Msg) string {
	return fmt.Sprintf("%T", msg)
}
