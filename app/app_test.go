package app_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dbm "github.com/cosmos/cosmos-db"

	"cosmossdk.io/log"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/Zanda256/interest-bearing-vault/app"
	"github.com/Zanda256/interest-bearing-vault/types/address"
	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	hooktypes "github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
	vaulttypes "github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

var genesisTime = time.Unix(1_700_000_000, 0)

type AppTestSuite struct {
	suite.Suite

	db  dbm.DB
	app *app.App
	now time.Time

	authority address.Address
	alice     address.Address
	mint      address.Address
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (suite *AppTestSuite) SetupTest() {
	suite.db = dbm.NewMemDB()
	suite.now = genesisTime
	suite.app = suite.open()

	suite.authority = address.FromName("authority")
	suite.alice = address.FromName("alice")
	suite.mint = address.FromName("usdv")
}

func (suite *AppTestSuite) open() *app.App {
	a, err := app.New(log.NewTestLogger(suite.T()), suite.db, app.WithClock(func() time.Time { return suite.now }))
	suite.Require().NoError(err)
	return a
}

func (suite *AppTestSuite) execute(msg app.Msg) *app.Result {
	res, err := suite.app.Execute(msg)
	suite.Require().NoError(err)
	return res
}

// setupMint creates the hooked mint, declares its extra accounts and funds
// the authority with supply.
func (suite *AppTestSuite) setupMint(supply uint64) {
	suite.execute(&assettypes.MsgCreateMint{
		Payer:         suite.authority,
		Mint:          suite.mint,
		MintAuthority: suite.authority,
		Decimals:      assettypes.DefaultDecimals,
		HookProgram:   hooktypes.ProgramID,
		RateAuthority: suite.authority,
		InterestRate:  500,
	})
	suite.execute(&hooktypes.MsgInitializeExtraAccountMetaList{Payer: suite.authority, Mint: suite.mint})

	res := suite.execute(&assettypes.MsgCreateAccount{Payer: suite.authority, Owner: suite.authority, Mint: suite.mint})
	acc := res.Response.(*assettypes.MsgCreateAccountResponse).Account
	suite.execute(&assettypes.MsgMintTo{Authority: suite.authority, Mint: suite.mint, Destination: acc.Address, Amount: supply})
}

func (suite *AppTestSuite) whitelist(addr address.Address) {
	suite.execute(&hooktypes.MsgAddToWhitelist{Admin: suite.authority, Mint: suite.mint, Address: addr})
}

func (suite *AppTestSuite) initVault() address.Address {
	res := suite.execute(&vaulttypes.MsgInitializeVault{Authority: suite.authority, Asset: suite.mint})
	return res.Response.(*vaulttypes.MsgInitializeVaultResponse).Vault
}

func (suite *AppTestSuite) requireState(vaultAddr address.Address, reserve, balance uint64) {
	err := suite.app.Query(func(ctx context.Context) error {
		vault, err := suite.app.VaultQuery.Vault(ctx, &vaulttypes.QueryVaultRequest{Address: vaultAddr})
		suite.Require().NoError(err)
		suite.Require().Equal(reserve, vault.Vault.ReserveAmount)

		acc, err := suite.app.AssetQuery.Account(ctx, &assettypes.QueryAccountRequest{Address: vault.Vault.ReserveAccount})
		suite.Require().NoError(err)
		suite.Require().Equal(reserve, acc.Account.Amount)

		entry, err := suite.app.VaultQuery.RegistryEntry(ctx, &vaulttypes.QueryRegistryEntryRequest{Vault: vaultAddr, Depositor: suite.authority})
		suite.Require().NoError(err)
		suite.Require().Equal(balance, entry.Entry.Balance)
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *AppTestSuite) balanceOf(owner address.Address) uint64 {
	var amount uint64
	err := suite.app.Query(func(ctx context.Context) error {
		res, err := suite.app.AssetQuery.Account(ctx, &assettypes.QueryAccountRequest{Owner: owner, Mint: suite.mint})
		if err != nil {
			return err
		}
		amount = res.Account.Amount
		return nil
	})
	suite.Require().NoError(err)
	return amount
}

func (suite *AppTestSuite) TestDepositWithdrawScenario() {
	suite.setupMint(1_000)
	vaultAddr := suite.initVault()
	suite.whitelist(suite.authority)
	suite.whitelist(vaultAddr)

	res := suite.execute(&vaulttypes.MsgDeposit{Depositor: suite.authority, Vault: vaultAddr, Amount: 500})
	suite.Require().NotEmpty(res.Events)
	suite.requireState(vaultAddr, 500, 500)

	suite.execute(&vaulttypes.MsgWithdraw{Requester: suite.authority, Vault: vaultAddr, Amount: 300})
	suite.requireState(vaultAddr, 200, 200)

	height := suite.app.LastHeight()
	_, err := suite.app.Execute(&vaulttypes.MsgWithdraw{Requester: suite.authority, Vault: vaultAddr, Amount: 300})
	suite.Require().ErrorIs(err, vaulttypes.ErrInsufficientFunds)
	suite.Require().Equal(height, suite.app.LastHeight())
	suite.requireState(vaultAddr, 200, 200)

	suite.Require().Equal(uint64(800), suite.balanceOf(suite.authority))
}

// With only the depositor whitelisted, deposits go through but the reserve
// cannot pay out: the hook checks the owner of the reserve, which is the
// vault itself.
func (suite *AppTestSuite) TestWithdrawNeedsWhitelistedVault() {
	suite.setupMint(1_000)
	vaultAddr := suite.initVault()
	suite.whitelist(suite.authority)

	suite.execute(&vaulttypes.MsgDeposit{Depositor: suite.authority, Vault: vaultAddr, Amount: 500})
	suite.requireState(vaultAddr, 500, 500)

	height := suite.app.LastHeight()
	_, err := suite.app.Execute(&vaulttypes.MsgWithdraw{Requester: suite.authority, Vault: vaultAddr, Amount: 300})
	suite.Require().ErrorIs(err, hooktypes.ErrAccountNotWhitelisted)
	suite.Require().Equal(height, suite.app.LastHeight())
	suite.requireState(vaultAddr, 500, 500)
	suite.Require().Equal(uint64(500), suite.balanceOf(suite.authority))

	suite.whitelist(vaultAddr)
	suite.execute(&vaulttypes.MsgWithdraw{Requester: suite.authority, Vault: vaultAddr, Amount: 300})
	suite.requireState(vaultAddr, 200, 200)
	suite.Require().Equal(uint64(800), suite.balanceOf(suite.authority))
}

func (suite *AppTestSuite) TestRejectedMessageCommitsNothing() {
	suite.setupMint(1_000)
	vaultAddr := suite.initVault()

	res, err := suite.app.Execute(&assettypes.MsgCreateAccount{Payer: suite.alice, Owner: suite.alice, Mint: suite.mint})
	suite.Require().NoError(err)
	aliceAcc := res.Response.(*assettypes.MsgCreateAccountResponse).Account
	suite.execute(&assettypes.MsgMintTo{Authority: suite.authority, Mint: suite.mint, Destination: aliceAcc.Address, Amount: 100})

	// alice is not whitelisted, so the hook rejects the deposit after the
	// asset keeper has already moved value on its branch.
	height := suite.app.LastHeight()
	_, err = suite.app.Execute(&vaulttypes.MsgDeposit{Depositor: suite.alice, Vault: vaultAddr, Amount: 40})
	suite.Require().ErrorIs(err, hooktypes.ErrAccountNotWhitelisted)
	suite.Require().Equal(height, suite.app.LastHeight())
	suite.Require().Equal(uint64(100), suite.balanceOf(suite.alice))

	err = suite.app.Query(func(ctx context.Context) error {
		vault, err := suite.app.VaultQuery.Vault(ctx, &vaulttypes.QueryVaultRequest{Address: vaultAddr})
		suite.Require().NoError(err)
		suite.Require().Zero(vault.Vault.ReserveAmount)
		suite.Require().Zero(vault.Vault.DepositEventCount)
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *AppTestSuite) TestValidateBasicRunsFirst() {
	_, err := suite.app.Execute(&vaulttypes.MsgDeposit{Depositor: suite.alice, Vault: address.FromName("vault"), Amount: 0})
	suite.Require().ErrorIs(err, vaulttypes.ErrInvalidAmount)
	suite.Require().Zero(suite.app.LastHeight())
}

func (suite *AppTestSuite) TestUnknownMessage() {
	_, err := suite.app.Execute(unknownMsg{})
	suite.Require().ErrorIs(err, sdkerrors.ErrUnknownRequest)
}

func (suite *AppTestSuite) TestDirectHookExecuteFails() {
	suite.setupMint(10)
	suite.whitelist(suite.authority)

	var src address.Address
	err := suite.app.Query(func(ctx context.Context) error {
		res, err := suite.app.AssetQuery.Account(ctx, &assettypes.QueryAccountRequest{Owner: suite.authority, Mint: suite.mint})
		if err != nil {
			return err
		}
		src = res.Account.Address
		return nil
	})
	suite.Require().NoError(err)

	_, err = suite.app.Execute(&hooktypes.MsgExecute{
		Source:      src,
		Mint:        suite.mint,
		Destination: src,
		Owner:       suite.authority,
		Amount:      1,
	})
	suite.Require().ErrorIs(err, hooktypes.ErrNotTransferring)
}

func (suite *AppTestSuite) TestInterestAccruesWithBlockTime() {
	suite.setupMint(1_000_000_000)

	uiAmount := func() float64 {
		var f float64
		err := suite.app.Query(func(ctx context.Context) error {
			res, err := suite.app.AssetQuery.UIAmount(ctx, &assettypes.QueryUIAmountRequest{Mint: suite.mint, Amount: 1_000_000_000})
			if err != nil {
				return err
			}
			f, err = res.UIAmount.Float64()
			return err
		})
		suite.Require().NoError(err)
		return f
	}

	suite.Require().InDelta(1.0, uiAmount(), 1e-9)

	suite.now = genesisTime.Add(time.Duration(assettypes.SecondsPerYear) * time.Second)
	suite.Require().InDelta(1.0512710963760241, uiAmount(), 1e-9)
}

func (suite *AppTestSuite) TestGenesisExportImport() {
	suite.setupMint(1_000)
	vaultAddr := suite.initVault()
	suite.whitelist(suite.authority)
	suite.whitelist(vaultAddr)
	suite.execute(&vaulttypes.MsgDeposit{Depositor: suite.authority, Vault: vaultAddr, Amount: 600})

	exported, err := suite.app.ExportGenesis()
	suite.Require().NoError(err)
	suite.Require().Len(exported.TransferHook.ExtraAccountMetaLists, 1)
	suite.Require().Len(exported.TransferHook.Whitelist, 2)

	bz, err := json.Marshal(exported)
	suite.Require().NoError(err)
	parsed, err := app.ParseGenesis(bz)
	suite.Require().NoError(err)

	suite.db = dbm.NewMemDB()
	suite.app = suite.open()
	height, err := suite.app.InitGenesis(parsed)
	suite.Require().NoError(err)
	suite.Require().Equal(int64(1), height)

	_, err = suite.app.InitGenesis(parsed)
	suite.Require().ErrorIs(err, app.ErrLedgerInitialized)

	suite.requireState(vaultAddr, 600, 600)
	suite.execute(&vaulttypes.MsgWithdraw{Requester: suite.authority, Vault: vaultAddr, Amount: 100})
	suite.requireState(vaultAddr, 500, 500)
	suite.Require().Equal(uint64(500), suite.balanceOf(suite.authority))
}

func TestGenesisValidate(t *testing.T) {
	gs := app.GenesisState{}
	require.NoError(t, gs.Validate())
	require.NotNil(t, gs.Asset)
	require.NotNil(t, gs.TransferHook)
	require.NotNil(t, gs.Vault)

	_, err := app.ParseGenesis([]byte("{"))
	require.Error(t, err)

	mint := address.FromName("usdv")
	gs = app.NewDefaultGenesisState()
	gs.Asset.Mints = []assettypes.Mint{{Address: mint}, {Address: mint}}
	require.Error(t, gs.Validate())
}

type unknownMsg struct{}

func (unknownMsg) ValidateBasic() error { return nil }

func TestLedgerReopens(t *testing.T) {
	for _, backend := range []dbm.BackendType{dbm.MemDBBackend, dbm.GoLevelDBBackend} {
		t.Run(string(backend), func(t *testing.T) {
			dir := t.TempDir()
			mem := dbm.NewMemDB()

			open := func() *app.App {
				db := dbm.DB(mem)
				if backend != dbm.MemDBBackend {
					var err error
					db, err = dbm.NewDB("ledger", backend, dir)
					require.NoError(t, err)
				}
				a, err := app.New(log.NewTestLogger(t), db, app.WithClock(func() time.Time { return genesisTime }))
				require.NoError(t, err)
				return a
			}
			reopen := func(a *app.App) *app.App {
				if backend != dbm.MemDBBackend {
					require.NoError(t, a.Close())
				}
				return open()
			}
			execute := func(a *app.App, msg app.Msg) *app.Result {
				res, err := a.Execute(msg)
				require.NoError(t, err)
				return res
			}

			authority := address.FromName("authority")
			mint := address.FromName("usdv")

			ledger := open()
			require.Equal(t, int64(0), ledger.LastHeight())

			// only the asset store holds records at height 1
			execute(ledger, &assettypes.MsgCreateMint{
				Payer:         authority,
				Mint:          mint,
				MintAuthority: authority,
				Decimals:      assettypes.DefaultDecimals,
				HookProgram:   hooktypes.ProgramID,
				RateAuthority: authority,
			})
			ledger = reopen(ledger)
			require.Equal(t, int64(1), ledger.LastHeight())

			execute(ledger, &hooktypes.MsgInitializeExtraAccountMetaList{Payer: authority, Mint: mint})
			res := execute(ledger, &assettypes.MsgCreateAccount{Payer: authority, Owner: authority, Mint: mint})
			acc := res.Response.(*assettypes.MsgCreateAccountResponse).Account
			execute(ledger, &assettypes.MsgMintTo{Authority: authority, Mint: mint, Destination: acc.Address, Amount: 1_000})
			ledger = reopen(ledger)

			res = execute(ledger, &vaulttypes.MsgInitializeVault{Authority: authority, Asset: mint})
			vaultAddr := res.Response.(*vaulttypes.MsgInitializeVaultResponse).Vault
			execute(ledger, &hooktypes.MsgAddToWhitelist{Admin: authority, Mint: mint, Address: authority})
			execute(ledger, &vaulttypes.MsgDeposit{Depositor: authority, Vault: vaultAddr, Amount: 250})
			height := ledger.LastHeight()

			ledger = reopen(ledger)
			defer ledger.Close()
			require.Equal(t, height, ledger.LastHeight())

			err := ledger.Query(func(ctx context.Context) error {
				vault, err := ledger.VaultQuery.Vault(ctx, &vaulttypes.QueryVaultRequest{Address: vaultAddr})
				if err != nil {
					return err
				}
				require.Equal(t, uint64(250), vault.Vault.ReserveAmount)

				whitelisted, err := ledger.TransferHookQuery.IsWhitelisted(ctx, &hooktypes.QueryIsWhitelistedRequest{Mint: mint, Address: authority})
				if err != nil {
					return err
				}
				require.True(t, whitelisted.Whitelisted)
				return nil
			})
			require.NoError(t, err)
		})
	}
}
