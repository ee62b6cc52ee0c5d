package backpack

import (
	"context"
	"net/url"
	"strconv"
)

func (o *Client) GetAccount(ctx context.Context) (*AccountSettings, error) {
	var settings AccountSettings

	if err := o.Get(ctx, APIAccount, nil, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

//
// UpdateAccount changes account settings. Unset fields are left untouched by the exchange.
//
func (o *Client) UpdateAccount(ctx context.Context, payload UpdateAccountPayload) error {
	return o.Patch(ctx, APIAccount, payload, nil)
}

func (o *Client) GetAccountMaxBorrow(ctx context.Context, symbol string) (*AccountMaxBorrow, error) {
	var limit AccountMaxBorrow

	if err := o.Get(ctx, APIAccountMaxBorrow, url.Values{"symbol": {symbol}}, &limit); err != nil {
		return nil, err
	}

	return &limit, nil
}

func (o *Client) GetAccountMaxOrder(ctx context.Context, params MaxOrderQuery) (*AccountMaxOrder, error) {
	query := url.Values{
		"symbol": {params.Symbol},
		"side":   {string(params.Side)},
	}

	if params.Price != nil {
		query.Set("price", params.Price.String())
	}

	setBool(query, "reduceOnly", params.ReduceOnly)
	setBool(query, "autoBorrow", params.AutoBorrow)
	setBool(query, "autoBorrowRepay", params.AutoBorrowRepay)
	setBool(query, "autoLendRedeem", params.AutoLendRedeem)

	var limit AccountMaxOrder

	if err := o.Get(ctx, APIAccountMaxOrder, query, &limit); err != nil {
		return nil, err
	}

	return &limit, nil
}

func (o *Client) GetAccountMaxWithdrawal(ctx context.Context, symbol string, autoBorrow *bool, autoLendRedeem *bool) (*AccountMaxWithdrawal, error) {
	query := url.Values{"symbol": {symbol}}

	setBool(query, "autoBorrow", autoBorrow)
	setBool(query, "autoLendRedeem", autoLendRedeem)

	var limit AccountMaxWithdrawal

	if err := o.Get(ctx, APIAccountMaxWithdrawal, query, &limit); err != nil {
		return nil, err
	}

	return &limit, nil
}

//
// ConvertDust converts small balances into USDC. An empty symbol converts every eligible balance.
//
func (o *Client) ConvertDust(ctx context.Context, payload ConvertDustPayload) error {
	return o.Post(ctx, APIAccountConvertDust, payload, nil)
}

func setBool(query url.Values, key string, v *bool) {
	if v != nil {
		query.Set(key, strconv.FormatBool(*v))
	}
}
