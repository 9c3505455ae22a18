package providers

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// fakeEvm is a scriptable EvmProvider standing in for window.ethereum.
type fakeEvm struct {
	accounts   []string
	requestErr error

	chainID  *big.Int
	chainErr error

	balance    *big.Int
	balanceErr error

	tokenBal    *big.Int
	tokenBalErr error
	decimals    uint8
	decimalsErr error

	hash        string
	transferErr error

	receipt *ethtypes.Receipt
	waitErr error

	transferCalls int
	lastTo        common.Address
	lastToken     common.Address
	lastValue     *big.Int
}

var _ EvmProvider = (*fakeEvm)(nil)

func (f *fakeEvm) RequestAccounts(context.Context) ([]string, error) {
	return f.accounts, f.requestErr
}

func (f *fakeEvm) ChainID(context.Context) (*big.Int, error) {
	if f.chainErr != nil {
		return nil, f.chainErr
	}
	if f.chainID == nil {
		return big.NewInt(1), nil
	}
	return f.chainID, nil
}

func (f *fakeEvm) Balance(context.Context, common.Address) (*big.Int, error) {
	return f.balance, f.balanceErr
}

func (f *fakeEvm) TokenBalance(_ context.Context, token, _ common.Address) (*big.Int, error) {
	f.lastToken = token
	return f.tokenBal, f.tokenBalErr
}

func (f *fakeEvm) TokenDecimals(context.Context, common.Address) (uint8, error) {
	return f.decimals, f.decimalsErr
}

func (f *fakeEvm) Transfer(_ context.Context, to common.Address, value *big.Int) (string, error) {
	f.transferCalls++
	f.lastTo = to
	f.lastValue = value
	return f.hash, f.transferErr
}

func (f *fakeEvm) TokenTransfer(_ context.Context, token, to common.Address, value *big.Int) (string, error) {
	f.transferCalls++
	f.lastToken = token
	f.lastTo = to
	f.lastValue = value
	return f.hash, f.transferErr
}

func (f *fakeEvm) WaitMined(ctx context.Context, _ string) (*ethtypes.Receipt, error) {
	if f.waitErr != nil {
		return nil, f.waitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.receipt, nil
}

// fakeTronToken is a scriptable TRC-20 contract handle.
type fakeTronToken struct {
	bal    *big.Int
	balErr error

	hash        string
	transferErr error

	lastTo     string
	lastAmount *big.Int
}

var _ TronToken = (*fakeTronToken)(nil)

func (f *fakeTronToken) BalanceOf(context.Context, string) (*big.Int, error) {
	return f.bal, f.balErr
}

func (f *fakeTronToken) Transfer(_ context.Context, to string, amount *big.Int) (string, error) {
	f.lastTo = to
	f.lastAmount = amount
	return f.hash, f.transferErr
}

// fakeTron is a scriptable TronProvider standing in for the
// tronLink/tronWeb pair.
type fakeTron struct {
	resp   AccountResponse
	reqErr error

	address string

	sun    int64
	balErr error

	token    *fakeTronToken
	tokenErr error

	hash        string
	transferErr error

	lastTo  string
	lastSun int64
}

var _ TronProvider = (*fakeTron)(nil)

func (f *fakeTron) RequestAccounts(context.Context) (AccountResponse, error) {
	return f.resp, f.reqErr
}

func (f *fakeTron) DefaultAddress() string {
	return f.address
}

func (f *fakeTron) Balance(context.Context, string) (int64, error) {
	return f.sun, f.balErr
}

func (f *fakeTron) Transfer(_ context.Context, to string, amountSun int64) (string, error) {
	f.lastTo = to
	f.lastSun = amountSun
	return f.hash, f.transferErr
}

func (f *fakeTron) TokenContract(context.Context, string) (TronToken, error) {
	if f.tokenErr != nil {
		return nil, f.tokenErr
	}
	return f.token, nil
}
