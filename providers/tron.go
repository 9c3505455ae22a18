package providers

import (
	"context"
	"math/big"

	"github.com/cerebellumbot/walletpay/logger"
	"github.com/cerebellumbot/walletpay/types"
	"github.com/cerebellumbot/walletpay/utils"
	"github.com/cerebellumbot/walletpay/wallet"
)

// TRX and TRC-20 USDT both use 6 decimals.
const (
	tronNativeDecimals = 6
	tronUSDTDecimals   = 6
)

// TronAdapter drives the connect / send flow against a Tron-compatible
// injected provider. Unlike the EVM path, account requests answer with a
// numeric code, and the provider exposes no confirmation-wait primitive:
// submitted transactions stay pending.
type TronAdapter struct {
	provider TronProvider
	session  *wallet.Session
	log      logger.Logger

	token string
}

func NewTronAdapter(provider TronProvider, session *wallet.Session, log logger.Logger) *TronAdapter {
	return &TronAdapter{
		provider: provider,
		session:  session,
		log:      log,
		token:    types.USDTContractTron,
	}
}

// Available reports whether an injected provider was detected.
func (a *TronAdapter) Available() bool {
	return a.provider != nil
}

// Session returns a snapshot of the adapter's session state.
func (a *TronAdapter) Session() types.WalletSession {
	return a.session.Snapshot()
}

// Connect requests account access and loads balances. The outcome of the
// account request is carried in the response code: 200 is success, 4001
// a user rejection, 4000 a request already queued in the extension, and
// anything else an opaque provider error with the provider's message.
// A failed USDT balance fetch is non-fatal and defaults to "0".
func (a *TronAdapter) Connect(ctx context.Context) (types.WalletSession, error) {
	if a.provider == nil {
		return a.session.Snapshot(), &types.WalletError{
			Code:    types.ErrProviderUnavailable,
			Message: msgNoTronProvider,
		}
	}

	a.session.SetPending(true)
	defer a.session.SetPending(false)

	resp, err := a.provider.RequestAccounts(ctx)
	if err != nil {
		a.session.Reset()
		return a.session.Snapshot(), connectError(err)
	}

	switch resp.Code {
	case TronCodeOK:
	case TronCodeRejected:
		a.session.Reset()
		return a.session.Snapshot(), &types.WalletError{
			Code:    types.ErrUserRejected,
			Message: msgUserRejected,
		}
	case TronCodeRequestPending:
		a.session.Reset()
		return a.session.Snapshot(), &types.WalletError{
			Code:    types.ErrRequestPending,
			Message: msgRequestPending,
		}
	default:
		a.session.Reset()
		msg := resp.Message
		if msg == "" {
			msg = "unknown provider error"
		}
		return a.session.Snapshot(), &types.WalletError{
			Code:    types.ErrProviderError,
			Message: msg,
			Data:    resp.Code,
		}
	}

	address := a.provider.DefaultAddress()
	if address == "" {
		a.session.Reset()
		return a.session.Snapshot(), &types.WalletError{
			Code:    types.ErrNoAccounts,
			Message: msgTronNotReady,
		}
	}

	sun, err := a.provider.Balance(ctx, address)
	if err != nil {
		a.session.Reset()
		return a.session.Snapshot(), connectError(err)
	}

	balances := map[types.Asset]string{
		types.AssetTRX:  utils.FormatUnits(big.NewInt(sun), tronNativeDecimals, 4),
		types.AssetUSDT: "0",
	}

	if usdt, err := a.tokenBalance(ctx, address); err != nil {
		a.log.Warn("could not fetch USDT TRC20 balance", map[string]any{"error": err.Error()})
	} else {
		balances[types.AssetUSDT] = usdt
	}

	a.session.SetConnected(address, balances)
	a.log.Info("wallet connected", map[string]any{
		"address": address,
		"network": types.ChainTron.String(),
	})

	return a.session.Snapshot(), nil
}

func (a *TronAdapter) tokenBalance(ctx context.Context, owner string) (string, error) {
	contract, err := a.provider.TokenContract(ctx, a.token)
	if err != nil {
		return "", err
	}
	bal, err := contract.BalanceOf(ctx, owner)
	if err != nil {
		return "", err
	}
	return utils.FormatUnits(bal, tronUSDTDecimals, 2), nil
}

// Disconnect clears the session synchronously; no network call.
func (a *TronAdapter) Disconnect() {
	a.session.Reset()
	a.log.Info("wallet disconnected", map[string]any{"network": types.ChainTron.String()})
}

// SendPayment validates the intent and submits the transfer, returning
// the transaction id synchronously. The provider offers no confirmation
// wait, so the transaction's status stays pending after submission.
func (a *TronAdapter) SendPayment(ctx context.Context, intent types.PaymentIntent) (hash, from string, err error) {
	if a.provider == nil || !a.session.Connected() {
		return "", "", &types.WalletError{
			Code:    types.ErrNotConnected,
			Message: "Connect a TronLink wallet first.",
		}
	}

	if !utils.IsValidAddress(types.ChainTron, intent.Recipient) {
		return "", "", &types.WalletError{
			Code:    types.ErrInvalidRecipient,
			Message: "Invalid TRON recipient address.",
		}
	}

	amount, err := utils.ValidateAmount(intent.Amount)
	if err != nil {
		return "", "", &types.WalletError{
			Code:    types.ErrInvalidAmount,
			Message: err.Error(),
		}
	}

	from = a.session.Address()

	switch intent.Asset {
	case types.AssetTRX:
		// The provider API takes sun as int64; reject amounts that do not
		// fit instead of letting the conversion wrap.
		sun := utils.ToBaseUnits(amount, tronNativeDecimals)
		if !sun.IsInt64() {
			return "", "", &types.WalletError{
				Code:    types.ErrInvalidAmount,
				Message: "amount too large",
			}
		}
		hash, err = a.provider.Transfer(ctx, intent.Recipient, sun.Int64())
	case types.AssetUSDT:
		var contract TronToken
		contract, err = a.provider.TokenContract(ctx, a.token)
		if err == nil {
			hash, err = contract.Transfer(ctx, intent.Recipient, utils.ToBaseUnits(amount, tronUSDTDecimals))
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
		"hash":    hash,
		"amount":  intent.Amount,
		"asset":   intent.Asset.String(),
		"network": types.ChainTron.String(),
	})
	return hash, from, nil
}
