package providers

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/cerebellumbot/walletpay/logger"
	"github.com/cerebellumbot/walletpay/types"
	"github.com/cerebellumbot/walletpay/utils"
	"github.com/cerebellumbot/walletpay/wallet"
)

const evmNativeDecimals = 18

// EVMAdapter drives the connect / send / confirm flow against an
// Ethereum-compatible injected provider. The provider may be nil, which
// models a browser without the extension installed.
type EVMAdapter struct {
	provider EvmProvider
	session  *wallet.Session
	log      logger.Logger

	token        common.Address
	primaryChain *big.Int
}

func NewEVMAdapter(provider EvmProvider, session *wallet.Session, log logger.Logger) *EVMAdapter {
	return &EVMAdapter{
		provider:     provider,
		session:      session,
		log:          log,
		token:        common.HexToAddress(types.USDTContractEVM),
		primaryChain: big.NewInt(types.EVMPrimaryChainID),
	}
}

// Available reports whether an injected provider was detected.
func (a *EVMAdapter) Available() bool {
	return a.provider != nil
}

// Session returns a snapshot of the adapter's session state.
func (a *EVMAdapter) Session() types.WalletSession {
	return a.session.Snapshot()
}

// Connect requests account access, detects the active chain and loads
// balances. A failed USDT balance fetch is non-fatal: the session still
// connects with the token balance defaulted to "0", because a missing
// token balance must not block the native balance display.
//
// On any fatal error the session is left fully disconnected, never
// half-connected, and the pending flag is always cleared.
func (a *EVMAdapter) Connect(ctx context.Context) (types.WalletSession, error) {
	if a.provider == nil {
		return a.session.Snapshot(), &types.WalletError{
			Code:    types.ErrProviderUnavailable,
			Message: msgNoEVMProvider,
		}
	}

	a.session.SetPending(true)
	defer a.session.SetPending(false)

	accounts, err := a.provider.RequestAccounts(ctx)
	if err != nil {
		a.session.Reset()
		return a.session.Snapshot(), connectError(err)
	}
	if len(accounts) == 0 {
		a.session.Reset()
		return a.session.Snapshot(), &types.WalletError{
			Code:    types.ErrNoAccounts,
			Message: msgNoAccounts,
		}
	}
	// Keep the provider's account string verbatim for display; the parsed
	// form is only for RPC calls.
	account := accounts[0]
	address := common.HexToAddress(account)

	chainID, err := a.provider.ChainID(ctx)
	if err != nil {
		a.session.Reset()
		return a.session.Snapshot(), connectError(err)
	}

	onPrimary := chainID.Cmp(a.primaryChain) == 0
	if !onPrimary {
		a.log.Warn("connected to non-primary chain, USDT balance unavailable", map[string]any{
			"chainId": chainID.String(),
		})
	}

	wei, err := a.provider.Balance(ctx, address)
	if err != nil {
		a.session.Reset()
		return a.session.Snapshot(), connectError(err)
	}

	balances := map[types.Asset]string{
		types.AssetETH:  utils.FormatUnits(wei, evmNativeDecimals, 4),
		types.AssetUSDT: "0",
	}

	// The token contract only exists on mainnet; elsewhere the fetch is
	// skipped rather than attempted against a wrong address.
	if onPrimary {
		if usdt, err := a.tokenBalance(ctx, address); err != nil {
			a.log.Warn("could not fetch USDT balance", map[string]any{"error": err.Error()})
		} else {
			balances[types.AssetUSDT] = usdt
		}
	}

	a.session.SetConnected(account, balances)
	a.log.Info("wallet connected", map[string]any{
		"address": account,
		"chainId": chainID.String(),
	})

	return a.session.Snapshot(), nil
}

func (a *EVMAdapter) tokenBalance(ctx context.Context, owner common.Address) (string, error) {
	bal, err := a.provider.TokenBalance(ctx, a.token, owner)
	if err != nil {
		return "", err
	}
	decimals, err := a.provider.TokenDecimals(ctx, a.token)
	if err != nil {
		return "", err
	}
	return utils.FormatUnits(bal, int32(decimals), 2), nil
}

// Disconnect clears the session synchronously. Browser wallet extensions
// have no programmatic disconnect, so there is no network call and no
// error path.
func (a *EVMAdapter) Disconnect() {
	a.session.Reset()
	a.log.Info("wallet disconnected", map[string]any{"network": types.ChainEVM.String()})
}

// SendPayment validates the intent and submits the transfer, returning
// the transaction hash and the sending address as soon as the network
// accepts the submission. It does not wait for confirmation.
func (a *EVMAdapter) SendPayment(ctx context.Context, intent types.PaymentIntent) (hash, from string, err error) {
	if a.provider == nil || !a.session.Connected() {
		return "", "", &types.WalletError{
			Code:    types.ErrNotConnected,
			Message: "Connect a wallet first.",
		}
	}

	if !utils.IsValidAddress(types.ChainEVM, intent.Recipient) {
		return "", "", &types.WalletError{
			Code:    types.ErrInvalidRecipient,
			Message: "Invalid recipient address.",
		}
	}

	amount, err := utils.ValidateAmount(intent.Amount)
	if err != nil {
		return "", "", &types.WalletError{
			Code:    types.ErrInvalidAmount,
			Message: err.Error(),
		}
	}

	to := common.HexToAddress(intent.Recipient)
	from = a.session.Address()

	switch intent.Asset {
	case types.AssetETH:
		hash, err = a.provider.Transfer(ctx, to, utils.ToBaseUnits(amount, evmNativeDecimals))
	case types.AssetUSDT:
		// The token amount is scaled by the contract's own decimals, read
		// on-chain rather than assumed.
		var decimals uint8
		decimals, err = a.provider.TokenDecimals(ctx, a.token)
		if err == nil {
			hash, err = a.provider.TokenTransfer(ctx, a.token, to, utils.ToBaseUnits(amount, int32(decimals)))
		}
	default:
		return "", "", &types.WalletError{
			Code:    types.ErrUnsupportedAsset,
			Message: "asset " + intent.Asset.String() + " is not payable on this chain",
		}
	}
	if err != nil {
		return "", "", sendError(err)
	}

	a.log.Info("payment submitted", map[string]any{
		"hash":   hash,
		"amount": intent.Amount,
		"asset":  intent.Asset.String(),
	})
	return hash, from, nil
}

// AwaitConfirmation suspends until the network reports the transaction
// mined and maps the receipt to a terminal status. A context error is
// returned as-is so the caller can leave the transaction pending instead
// of reporting a false terminal state.
func (a *EVMAdapter) AwaitConfirmation(ctx context.Context, hash string) (types.TxStatus, error) {
	if a.provider == nil {
		return "", &types.WalletError{
			Code:    types.ErrProviderUnavailable,
			Message: msgNoEVMProvider,
		}
	}

	receipt, err := a.provider.WaitMined(ctx, hash)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &types.WalletError{
			Code:    types.ErrConfirmationFailed,
			Message: "confirmation wait failed: " + err.Error(),
		}
	}

	if receipt.Status == ethtypes.ReceiptStatusSuccessful {
		return types.TxConfirmed, nil
	}
	return types.TxFailed, nil
}
