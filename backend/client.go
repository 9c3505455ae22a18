// Package backend is the REST client for the external collaborator
// backend. The backend is bookkeeping and content only; nothing in the
// payment flow depends on it succeeding.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"

	"github.com/cerebellumbot/walletpay/logger"
	"github.com/cerebellumbot/walletpay/types"
)

var validate = validator.New()

// Client talks to the backend REST API. Base URL includes the /api
// prefix.
type Client struct {
	http *resty.Client
	log  logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: http, log: log}
}

// SubmitDemoRequest posts a demo access request. The payload is
// validated before any network call.
func (c *Client) SubmitDemoRequest(ctx context.Context, req types.DemoRequest) (*types.APIResponse, error) {
	if err := validate.StructCtx(ctx, req); err != nil {
		return nil, &types.WalletError{Code: types.ErrInvalidRequest, Message: err.Error()}
	}

	var out types.APIResponse
	if err := c.post(ctx, "/requests/demo", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitInvestorRequest posts an investor contact request.
func (c *Client) SubmitInvestorRequest(ctx context.Context, req types.InvestorRequest) (*types.APIResponse, error) {
	if err := validate.StructCtx(ctx, req); err != nil {
		return nil, &types.WalletError{Code: types.ErrInvalidRequest, Message: err.Error()}
	}

	var out types.APIResponse
	if err := c.post(ctx, "/requests/investor", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signals fetches the published trading signals. An empty list is a
// normal result, not an error.
func (c *Client) Signals(ctx context.Context) ([]types.Signal, error) {
	var out types.SignalsResponse
	var apiErr types.APIError

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		Get("/signals/")
	if err != nil {
		return nil, &types.WalletError{Code: types.ErrNetworkError, Message: "failed to fetch signals: " + err.Error()}
	}
	if resp.IsError() {
		return nil, backendError(resp, apiErr, "failed to fetch signals")
	}

	if out.Signals == nil {
		return []types.Signal{}, nil
	}
	return out.Signals, nil
}

// WhiteLabelConfig fetches the white-label site configuration.
func (c *Client) WhiteLabelConfig(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.get(ctx, "/config/white-label", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarketData fetches market data for an exchange/symbol pair.
func (c *Client) MarketData(ctx context.Context, exchange, symbol string) (map[string]any, error) {
	var out map[string]any
	path := fmt.Sprintf("/trade/market-data/%s/%s", exchange, symbol)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlaceOrder posts a trading order to the backend.
func (c *Client) PlaceOrder(ctx context.Context, req types.OrderRequest) (map[string]any, error) {
	if err := validate.StructCtx(ctx, req); err != nil {
		return nil, &types.WalletError{Code: types.ErrInvalidRequest, Message: err.Error()}
	}

	var out map[string]any
	if err := c.post(ctx, "/trade/order", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveWalletTx posts a transaction record for bookkeeping. Callers in
// the payment flow must treat failures as ignorable; only the mirror
// calls this.
func (c *Client) SaveWalletTx(ctx context.Context, rec types.WalletTxRecord) error {
	return c.post(ctx, "/wallet/tx", rec, nil)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	var apiErr types.APIError

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(&apiErr).
		Get(path)
	if err != nil {
		return &types.WalletError{Code: types.ErrNetworkError, Message: "request failed: " + err.Error()}
	}
	if resp.IsError() {
		return backendError(resp, apiErr, "request failed")
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var apiErr types.APIError

	req := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetError(&apiErr)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Post(path)
	if err != nil {
		return &types.WalletError{Code: types.ErrNetworkError, Message: "request failed: " + err.Error()}
	}
	if resp.IsError() {
		return backendError(resp, apiErr, "request failed")
	}
	return nil
}

func backendError(resp *resty.Response, apiErr types.APIError, fallback string) error {
	msg := apiErr.Detail
	if msg == "" {
		msg = fmt.Sprintf("%s: backend returned %d", fallback, resp.StatusCode())
	}
	return &types.WalletError{Code: types.ErrNetworkError, Message: msg}
}
