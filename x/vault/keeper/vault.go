package keeper

import (
	"context"

	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/types/checked"
	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	"github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

// InitializeVault creates the vault of authority for asset together with its
// reserve account. Each authority has at most one vault.
func (k Keeper) InitializeVault(ctx context.Context, authority, asset address.Address) (address.Address, types.Vault, error) {
	mint, err := k.assetKeeper.GetMint(ctx, asset)
	if err != nil {
		return address.Zero, types.Vault{}, types.ErrInvalidAsset.Wrap(err.Error())
	}
	if mint.TransferHook.Program != k.hookProgram {
		return address.Zero, types.Vault{}, types.ErrInvalidAsset.Wrapf("asset %s hook program is %s", asset, mint.TransferHook.Program)
	}

	vaultAddr, bump, err := types.VaultAddress(authority)
	if err != nil {
		return address.Zero, types.Vault{}, err
	}
	has, err := k.Vaults.Has(ctx, vaultAddr)
	if err != nil {
		return address.Zero, types.Vault{}, err
	}
	if has {
		return address.Zero, types.Vault{}, types.ErrAlreadyInitialized.Wrapf("vault %s", vaultAddr)
	}

	reserve, err := k.assetKeeper.CreateAssociatedAccount(ctx, vaultAddr, asset)
	if err != nil {
		return address.Zero, types.Vault{}, err
	}

	vault := types.Vault{
		Authority:      authority,
		Asset:          asset,
		ReserveAccount: reserve.Address,
		Bump:           bump,
	}
	if err := k.Vaults.Set(ctx, vaultAddr, vault); err != nil {
		return address.Zero, types.Vault{}, err
	}

	k.logger.Info("vault initialized", "vault", vaultAddr, "authority", authority, "asset", asset)
	return vaultAddr, vault, nil
}

// Deposit moves amount from depositor's account into the vault reserve and
// credits the depositor's registry entry, creating it on first deposit.
func (k Keeper) Deposit(ctx context.Context, vaultAddr, depositor address.Address, amount uint64) (types.Vault, types.RegistryEntry, error) {
	if amount == 0 {
		return types.Vault{}, types.RegistryEntry{}, types.ErrInvalidAmount
	}
	vault, err := k.GetVault(ctx, vaultAddr)
	if err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}
	entry, entryAddr, _, err := k.GetRegistryEntry(ctx, vaultAddr, depositor)
	if err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}

	reserveAmount, ok := checked.Add(vault.ReserveAmount, amount)
	if !ok {
		return types.Vault{}, types.RegistryEntry{}, types.ErrOverflow.Wrap("vault reserve amount")
	}
	depositEvents, ok := checked.Add(vault.DepositEventCount, 1)
	if !ok {
		return types.Vault{}, types.RegistryEntry{}, types.ErrOverflow.Wrap("vault deposit count")
	}
	balance, ok := checked.Add(entry.Balance, amount)
	if !ok {
		return types.Vault{}, types.RegistryEntry{}, types.ErrOverflow.Wrap("registry balance")
	}
	deposits, ok := checked.Add(entry.DepositCount, 1)
	if !ok {
		return types.Vault{}, types.RegistryEntry{}, types.ErrOverflow.Wrap("registry deposit count")
	}

	mint, err := k.assetKeeper.GetMint(ctx, vault.Asset)
	if err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}
	source, err := k.assetKeeper.AssociatedAccount(ctx, depositor, vault.Asset)
	if err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}

	err = k.assetKeeper.TransferChecked(ctx, assettypes.TransferRequest{
		Source:        source.Address,
		Mint:          vault.Asset,
		Destination:   vault.ReserveAccount,
		Authorization: assettypes.SignedBy(depositor),
		Amount:        amount,
		Decimals:      mint.Decimals,
	})
	if err != nil {
		k.logger.Debug("deposit transfer failed", "vault", vaultAddr, "depositor", depositor, "error", err)
		return types.Vault{}, types.RegistryEntry{}, err
	}

	vault.ReserveAmount = reserveAmount
	vault.DepositEventCount = depositEvents
	entry.Vault = vaultAddr
	entry.Asset = vault.Asset
	entry.Balance = balance
	entry.DepositCount = deposits

	if err := k.Vaults.Set(ctx, vaultAddr, vault); err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}
	if err := k.Registry.Set(ctx, entryAddr, entry); err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}

	k.logger.Info("deposit", "vault", vaultAddr, "depositor", depositor, "amount", amount, "reserve_amount", vault.ReserveAmount)
	return vault, entry, nil
}

// Withdraw moves amount from the vault reserve to the authority's account.
// The vault signs for its reserve with its derivation seeds.
func (k Keeper) Withdraw(ctx context.Context, vaultAddr, requester address.Address, amount uint64) (types.Vault, types.RegistryEntry, error) {
	vault, err := k.GetVault(ctx, vaultAddr)
	if err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}
	if requester != vault.Authority {
		return types.Vault{}, types.RegistryEntry{}, types.ErrUnauthorized.Wrapf("%s is not the authority of %s", requester, vaultAddr)
	}
	if amount == 0 {
		return types.Vault{}, types.RegistryEntry{}, types.ErrInvalidAmount
	}

	entry, entryAddr, found, err := k.GetRegistryEntry(ctx, vaultAddr, requester)
	if err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}
	if !found || amount > entry.Balance || amount > vault.ReserveAmount {
		return types.Vault{}, types.RegistryEntry{}, types.ErrInsufficientFunds.Wrapf(
			"requested %d, balance %d, reserve %d", amount, entry.Balance, vault.ReserveAmount,
		)
	}

	reserveAmount, ok := checked.Sub(vault.ReserveAmount, amount)
	if !ok {
		return types.Vault{}, types.RegistryEntry{}, types.ErrUnderflow.Wrap("vault reserve amount")
	}
	balance, ok := checked.Sub(entry.Balance, amount)
	if !ok {
		return types.Vault{}, types.RegistryEntry{}, types.ErrOverflow.Wrap("registry balance")
	}
	withdrawals, ok := checked.Add(entry.WithdrawCount, 1)
	if !ok {
		return types.Vault{}, types.RegistryEntry{}, types.ErrOverflow.Wrap("registry withdraw count")
	}

	mint, err := k.assetKeeper.GetMint(ctx, vault.Asset)
	if err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}
	destination, err := k.assetKeeper.CreateAssociatedAccount(ctx, requester, vault.Asset)
	if err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}
	signer, err := assettypes.SignedWithSeeds(types.ProgramID, vault.Bump, types.VaultSeeds(vault.Authority)...)
	if err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}

	err = k.assetKeeper.TransferChecked(ctx, assettypes.TransferRequest{
		Source:        vault.ReserveAccount,
		Mint:          vault.Asset,
		Destination:   destination.Address,
		Authorization: signer,
		Amount:        amount,
		Decimals:      mint.Decimals,
	})
	if err != nil {
		k.logger.Debug("withdraw transfer failed", "vault", vaultAddr, "error", err)
		return types.Vault{}, types.RegistryEntry{}, err
	}

	vault.ReserveAmount = reserveAmount
	entry.Balance = balance
	entry.WithdrawCount = withdrawals

	if err := k.Vaults.Set(ctx, vaultAddr, vault); err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}
	if err := k.Registry.Set(ctx, entryAddr, entry); err != nil {
		return types.Vault{}, types.RegistryEntry{}, err
	}

	k.logger.Info("withdraw", "vault", vaultAddr, "amount", amount, "reserve_amount", vault.ReserveAmount)
	return vault, entry, nil
}
