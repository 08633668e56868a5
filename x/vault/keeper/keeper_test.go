package keeper_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil/integration"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	assetkeeper "github.com/Zanda256/interest-bearing-vault/x/asset/keeper"
	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	hookkeeper "github.com/Zanda256/interest-bearing-vault/x/transferhook/keeper"
	hooktypes "github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
	"github.com/Zanda256/interest-bearing-vault/x/vault/keeper"
	"github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

type testFixture struct {
	suite.Suite

	ctx         sdk.Context
	k           keeper.Keeper
	assetKeeper assetkeeper.Keeper
	hookKeeper  hookkeeper.Keeper
	msgServer   types.MsgServer
	queryServer types.QueryServer

	authority address.Address
	alice     address.Address
	bob       address.Address
	mint      address.Address
}

// SetupTest creates a new test fixture with one hooked mint whose meta list
// is declared.
func SetupTest(t *testing.T) *testFixture {
	t.Helper()
	f := new(testFixture)

	logger := log.NewTestLogger(t)
	keys := storetypes.NewKVStoreKeys(types.StoreKey, assettypes.StoreKey, hooktypes.StoreKey)

	f.assetKeeper = assetkeeper.NewKeeper(runtime.NewKVStoreService(keys[assettypes.StoreKey]), logger)
	f.hookKeeper = hookkeeper.NewKeeper(runtime.NewKVStoreService(keys[hooktypes.StoreKey]), logger, f.assetKeeper)
	f.assetKeeper.SetTransferHook(hooktypes.ProgramID, f.hookKeeper)
	f.k = keeper.NewKeeper(runtime.NewKVStoreService(keys[types.StoreKey]), logger, f.assetKeeper, hooktypes.ProgramID)

	f.msgServer = keeper.NewMsgServerImpl(f.k)
	f.queryServer = keeper.NewQueryServerImpl(f.k)

	cms := integration.CreateMultiStore(keys, logger)
	f.ctx = sdk.NewContext(cms, cmtproto.Header{Height: 1, Time: time.Unix(1_700_000_000, 0)}, false, logger)

	f.authority = address.FromName("authority")
	f.alice = address.FromName("alice")
	f.bob = address.FromName("bob")
	f.mint = address.FromName("usdv")

	f.createMint(t, f.mint, hooktypes.ProgramID)
	if _, err := f.hookKeeper.InitializeExtraAccountMetaList(f.ctx, f.authority, f.mint); err != nil {
		t.Fatal(err)
	}
	return f
}

func (f *testFixture) createMint(t *testing.T, mint, hookProgram address.Address) {
	t.Helper()
	_, err := f.assetKeeper.CreateMint(f.ctx, &assettypes.MsgCreateMint{
		Payer:         f.authority,
		Mint:          mint,
		MintAuthority: f.authority,
		Decimals:      assettypes.DefaultDecimals,
		HookProgram:   hookProgram,
		RateAuthority: f.authority,
		InterestRate:  500,
	})
	if err != nil {
		t.Fatal(err)
	}
}

// fund creates owner's account, mints amount into it and whitelists owner.
func (f *testFixture) fund(t *testing.T, owner address.Address, amount uint64) {
	t.Helper()
	acc, err := f.assetKeeper.CreateAssociatedAccount(f.ctx, owner, f.mint)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.assetKeeper.MintTo(f.ctx, f.authority, f.mint, acc.Address, amount); err != nil {
		t.Fatal(err)
	}
	f.whitelist(t, owner)
}

func (f *testFixture) whitelist(t *testing.T, addr address.Address) {
	t.Helper()
	if _, err := f.hookKeeper.AddToWhitelist(f.ctx, f.authority, f.mint, addr); err != nil {
		t.Fatal(err)
	}
}

func (f *testFixture) initVault(t *testing.T) address.Address {
	t.Helper()
	resp, err := f.msgServer.InitializeVault(f.ctx, &types.MsgInitializeVault{Authority: f.authority, Asset: f.mint})
	if err != nil {
		t.Fatal(err)
	}
	return resp.Vault
}

func (f *testFixture) balanceOf(t *testing.T, owner address.Address) uint64 {
	t.Helper()
	acc, err := f.assetKeeper.AssociatedAccount(f.ctx, owner, f.mint)
	if err != nil {
		t.Fatal(err)
	}
	return acc.Amount
}

// KeeperTestSuite runs all keeper tests
type KeeperTestSuite struct {
	suite.Suite
	f *testFixture
}

func TestKeeperSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.f = SetupTest(suite.T())
}

func (suite *KeeperTestSuite) requireState(vaultAddr address.Address, reserve, balance uint64) {
	vault, err := suite.f.k.GetVault(suite.f.ctx, vaultAddr)
	suite.Require().NoError(err)
	suite.Require().Equal(reserve, vault.ReserveAmount)

	reserveAcc, err := suite.f.assetKeeper.GetAccount(suite.f.ctx, vault.ReserveAccount)
	suite.Require().NoError(err)
	suite.Require().Equal(vault.ReserveAmount, reserveAcc.Amount)

	entry, _, _, err := suite.f.k.GetRegistryEntry(suite.f.ctx, vaultAddr, suite.f.authority)
	suite.Require().NoError(err)
	suite.Require().Equal(balance, entry.Balance)
}

func (suite *KeeperTestSuite) TestInitializeVault() {
	vaultAddr := suite.f.initVault(suite.T())

	expected, bump, err := types.VaultAddress(suite.f.authority)
	suite.Require().NoError(err)
	suite.Require().Equal(expected, vaultAddr)

	vault, err := suite.f.k.GetVault(suite.f.ctx, vaultAddr)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.f.authority, vault.Authority)
	suite.Require().Equal(suite.f.mint, vault.Asset)
	suite.Require().Equal(bump, vault.Bump)
	suite.Require().Zero(vault.ReserveAmount)
	suite.Require().Zero(vault.DepositEventCount)

	reserve, err := suite.f.assetKeeper.GetAccount(suite.f.ctx, vault.ReserveAccount)
	suite.Require().NoError(err)
	suite.Require().Equal(vaultAddr, reserve.Owner)

	_, err = suite.f.msgServer.InitializeVault(suite.f.ctx, &types.MsgInitializeVault{Authority: suite.f.authority, Asset: suite.f.mint})
	suite.Require().ErrorIs(err, types.ErrAlreadyInitialized)
}

func (suite *KeeperTestSuite) TestInitializeVaultRejectsUnhookedAsset() {
	plain := address.FromName("plain")
	suite.f.createMint(suite.T(), plain, address.FromName("other-hook"))

	_, err := suite.f.msgServer.InitializeVault(suite.f.ctx, &types.MsgInitializeVault{Authority: suite.f.alice, Asset: plain})
	suite.Require().ErrorIs(err, types.ErrInvalidAsset)

	_, err = suite.f.msgServer.InitializeVault(suite.f.ctx, &types.MsgInitializeVault{Authority: suite.f.alice, Asset: address.FromName("missing")})
	suite.Require().ErrorIs(err, types.ErrInvalidAsset)
}

func (suite *KeeperTestSuite) TestDeposit() {
	vaultAddr := suite.f.initVault(suite.T())
	suite.f.fund(suite.T(), suite.f.alice, 1_000)

	resp, err := suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.alice, Vault: vaultAddr, Amount: 400})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(400), resp.ReserveAmount)
	suite.Require().Equal(uint64(400), resp.Balance)

	_, err = suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.alice, Vault: vaultAddr, Amount: 100})
	suite.Require().NoError(err)

	vault, err := suite.f.k.GetVault(suite.f.ctx, vaultAddr)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(500), vault.ReserveAmount)
	suite.Require().Equal(uint64(2), vault.DepositEventCount)

	entry, entryAddr, found, err := suite.f.k.GetRegistryEntry(suite.f.ctx, vaultAddr, suite.f.alice)
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Require().Equal(uint64(500), entry.Balance)
	suite.Require().Equal(uint64(2), entry.DepositCount)
	suite.Require().Zero(entry.WithdrawCount)
	suite.Require().Equal(vaultAddr, entry.Vault)
	suite.Require().Equal(suite.f.mint, entry.Asset)

	expected, bump, err := types.RegistryAddress(vaultAddr, suite.f.alice)
	suite.Require().NoError(err)
	suite.Require().Equal(expected, entryAddr)
	suite.Require().Equal(bump, entry.Bump)

	suite.Require().Equal(uint64(500), suite.f.balanceOf(suite.T(), suite.f.alice))
}

func (suite *KeeperTestSuite) TestDepositRejections() {
	vaultAddr := suite.f.initVault(suite.T())
	suite.f.fund(suite.T(), suite.f.alice, 100)

	_, err := suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.alice, Vault: vaultAddr, Amount: 0})
	suite.Require().ErrorIs(err, types.ErrInvalidAmount)

	_, _, err = suite.f.k.Deposit(suite.f.ctx, vaultAddr, suite.f.alice, 0)
	suite.Require().ErrorIs(err, types.ErrInvalidAmount)

	_, err = suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.alice, Vault: address.FromName("nowhere"), Amount: 1})
	suite.Require().ErrorIs(err, types.ErrVaultNotFound)

	_, err = suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.alice, Vault: vaultAddr, Amount: 101})
	suite.Require().ErrorIs(err, assettypes.ErrInsufficientFunds)

	suite.requireState(vaultAddr, 0, 0)
	_, _, found, err := suite.f.k.GetRegistryEntry(suite.f.ctx, vaultAddr, suite.f.alice)
	suite.Require().NoError(err)
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestDepositRequiresWhitelist() {
	vaultAddr := suite.f.initVault(suite.T())

	acc, err := suite.f.assetKeeper.CreateAssociatedAccount(suite.f.ctx, suite.f.bob, suite.f.mint)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.f.assetKeeper.MintTo(suite.f.ctx, suite.f.authority, suite.f.mint, acc.Address, 100))

	_, err = suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.bob, Vault: vaultAddr, Amount: 50})
	suite.Require().ErrorIs(err, hooktypes.ErrAccountNotWhitelisted)

	vault, err := suite.f.k.GetVault(suite.f.ctx, vaultAddr)
	suite.Require().NoError(err)
	suite.Require().Zero(vault.ReserveAmount)
	suite.Require().Zero(vault.DepositEventCount)
	suite.Require().Equal(uint64(100), suite.f.balanceOf(suite.T(), suite.f.bob))

	_, _, found, err := suite.f.k.GetRegistryEntry(suite.f.ctx, vaultAddr, suite.f.bob)
	suite.Require().NoError(err)
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestDepositOverflow() {
	vaultAddr := suite.f.initVault(suite.T())
	suite.f.fund(suite.T(), suite.f.alice, 10)

	vault, err := suite.f.k.GetVault(suite.f.ctx, vaultAddr)
	suite.Require().NoError(err)
	vault.ReserveAmount = math.MaxUint64
	suite.Require().NoError(suite.f.k.Vaults.Set(suite.f.ctx, vaultAddr, vault))

	_, err = suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.alice, Vault: vaultAddr, Amount: 1})
	suite.Require().ErrorIs(err, types.ErrOverflow)
	suite.Require().Equal(uint64(10), suite.f.balanceOf(suite.T(), suite.f.alice))
}

func (suite *KeeperTestSuite) TestWithdrawByNonAuthority() {
	vaultAddr := suite.f.initVault(suite.T())
	suite.f.fund(suite.T(), suite.f.authority, 100)
	suite.f.whitelist(suite.T(), vaultAddr)

	_, err := suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.authority, Vault: vaultAddr, Amount: 100})
	suite.Require().NoError(err)

	for _, amount := range []uint64{0, 1, 100, 1_000} {
		_, err = suite.f.msgServer.Withdraw(suite.f.ctx, &types.MsgWithdraw{Requester: suite.f.alice, Vault: vaultAddr, Amount: amount})
		suite.Require().ErrorIs(err, types.ErrUnauthorized)
	}
	suite.requireState(vaultAddr, 100, 100)
}

func (suite *KeeperTestSuite) TestWithdrawRejections() {
	vaultAddr := suite.f.initVault(suite.T())
	suite.f.fund(suite.T(), suite.f.authority, 100)
	suite.f.whitelist(suite.T(), vaultAddr)

	_, err := suite.f.msgServer.Withdraw(suite.f.ctx, &types.MsgWithdraw{Requester: suite.f.authority, Vault: vaultAddr, Amount: 1})
	suite.Require().ErrorIs(err, types.ErrInsufficientFunds)

	_, err = suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.authority, Vault: vaultAddr, Amount: 60})
	suite.Require().NoError(err)

	_, err = suite.f.msgServer.Withdraw(suite.f.ctx, &types.MsgWithdraw{Requester: suite.f.authority, Vault: vaultAddr, Amount: 0})
	suite.Require().ErrorIs(err, types.ErrInvalidAmount)

	_, err = suite.f.msgServer.Withdraw(suite.f.ctx, &types.MsgWithdraw{Requester: suite.f.authority, Vault: vaultAddr, Amount: 61})
	suite.Require().ErrorIs(err, types.ErrInsufficientFunds)

	suite.requireState(vaultAddr, 60, 60)
}

func (suite *KeeperTestSuite) TestWithdrawRequiresWhitelistedVault() {
	vaultAddr := suite.f.initVault(suite.T())
	suite.f.fund(suite.T(), suite.f.authority, 100)

	_, err := suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.authority, Vault: vaultAddr, Amount: 100})
	suite.Require().NoError(err)

	_, err = suite.f.msgServer.Withdraw(suite.f.ctx, &types.MsgWithdraw{Requester: suite.f.authority, Vault: vaultAddr, Amount: 10})
	suite.Require().ErrorIs(err, hooktypes.ErrAccountNotWhitelisted)
	suite.requireState(vaultAddr, 100, 100)

	entry, _, _, err := suite.f.k.GetRegistryEntry(suite.f.ctx, vaultAddr, suite.f.authority)
	suite.Require().NoError(err)
	suite.Require().Zero(entry.WithdrawCount)
}

func (suite *KeeperTestSuite) TestDepositWithdrawScenario() {
	vaultAddr := suite.f.initVault(suite.T())
	suite.requireState(vaultAddr, 0, 0)

	suite.f.fund(suite.T(), suite.f.authority, 1_000)
	suite.f.whitelist(suite.T(), vaultAddr)

	_, err := suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.authority, Vault: vaultAddr, Amount: 500})
	suite.Require().NoError(err)
	suite.requireState(vaultAddr, 500, 500)

	entry, _, _, err := suite.f.k.GetRegistryEntry(suite.f.ctx, vaultAddr, suite.f.authority)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), entry.DepositCount)

	_, err = suite.f.msgServer.Withdraw(suite.f.ctx, &types.MsgWithdraw{Requester: suite.f.authority, Vault: vaultAddr, Amount: 300})
	suite.Require().NoError(err)
	suite.requireState(vaultAddr, 200, 200)

	entry, _, _, err = suite.f.k.GetRegistryEntry(suite.f.ctx, vaultAddr, suite.f.authority)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), entry.WithdrawCount)

	_, err = suite.f.msgServer.Withdraw(suite.f.ctx, &types.MsgWithdraw{Requester: suite.f.authority, Vault: vaultAddr, Amount: 300})
	suite.Require().ErrorIs(err, types.ErrInsufficientFunds)
	suite.requireState(vaultAddr, 200, 200)

	suite.Require().Equal(uint64(800), suite.f.balanceOf(suite.T(), suite.f.authority))
}

func (suite *KeeperTestSuite) TestRegistryEntriesByVault() {
	vaultAddr := suite.f.initVault(suite.T())
	suite.f.fund(suite.T(), suite.f.alice, 100)
	suite.f.fund(suite.T(), suite.f.bob, 100)

	_, err := suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.alice, Vault: vaultAddr, Amount: 30})
	suite.Require().NoError(err)
	_, err = suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.bob, Vault: vaultAddr, Amount: 70})
	suite.Require().NoError(err)

	resp, err := suite.f.queryServer.RegistryEntries(suite.f.ctx, &types.QueryRegistryEntriesRequest{Vault: vaultAddr})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 2)

	var total uint64
	for _, r := range resp.Entries {
		total += r.Entry.Balance
	}
	suite.Require().Equal(uint64(100), total)

	vault, err := suite.f.queryServer.Vault(suite.f.ctx, &types.QueryVaultRequest{Authority: suite.f.authority})
	suite.Require().NoError(err)
	suite.Require().Equal(vaultAddr, vault.Address)
	suite.Require().Equal(total, vault.Vault.ReserveAmount)

	_, err = suite.f.queryServer.RegistryEntry(suite.f.ctx, &types.QueryRegistryEntryRequest{Vault: vaultAddr, Depositor: suite.f.authority})
	suite.Require().Error(err)
}

func (suite *KeeperTestSuite) TestGenesisRoundTrip() {
	vaultAddr := suite.f.initVault(suite.T())
	suite.f.fund(suite.T(), suite.f.alice, 100)
	_, err := suite.f.msgServer.Deposit(suite.f.ctx, &types.MsgDeposit{Depositor: suite.f.alice, Vault: vaultAddr, Amount: 40})
	suite.Require().NoError(err)

	exported, err := suite.f.k.ExportGenesis(suite.f.ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(exported.Validate())
	suite.Require().Len(exported.Vaults, 1)
	suite.Require().Len(exported.Registry, 1)

	other := SetupTest(suite.T())
	suite.Require().NoError(other.k.InitGenesis(other.ctx, exported))

	records, err := other.k.RegistryEntries(other.ctx, vaultAddr)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Require().Equal(uint64(40), records[0].Entry.Balance)
}
