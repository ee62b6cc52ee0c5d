package backpack

import (
	"context"
	"net/url"
	"strconv"
)

//
// GetBalances returns the account balances keyed by asset symbol.
//
func (o *Client) GetBalances(ctx context.Context) (map[string]Balance, error) {
	balances := make(map[string]Balance)

	if err := o.Get(ctx, APICapital, nil, &balances); err != nil {
		return nil, err
	}

	return balances, nil
}

func (o *Client) GetCollateral(ctx context.Context) (*Collateral, error) {
	var collateral Collateral

	if err := o.Get(ctx, APICollateral, nil, &collateral); err != nil {
		return nil, err
	}

	return &collateral, nil
}

//
// GetDeposits pages through the deposit history. Zero values use the exchange defaults.
//
func (o *Client) GetDeposits(ctx context.Context, limit int, offset int) ([]Deposit, error) {
	var deposits []Deposit

	if err := o.Get(ctx, APIDeposits, pageQuery(limit, offset), &deposits); err != nil {
		return nil, err
	}

	return deposits, nil
}

func (o *Client) GetDepositAddress(ctx context.Context, blockchain Blockchain) (*DepositAddress, error) {
	var address DepositAddress

	if err := o.Get(ctx, APIDepositAddress, url.Values{"blockchain": {string(blockchain)}}, &address); err != nil {
		return nil, err
	}

	return &address, nil
}

//
// GetWithdrawals pages through the withdrawal history. Zero values use the exchange defaults.
//
func (o *Client) GetWithdrawals(ctx context.Context, limit int, offset int) ([]Withdrawal, error) {
	var withdrawals []Withdrawal

	if err := o.Get(ctx, APIWithdrawals, pageQuery(limit, offset), &withdrawals); err != nil {
		return nil, err
	}

	return withdrawals, nil
}

func (o *Client) RequestWithdrawal(ctx context.Context, payload RequestWithdrawalPayload) (*Withdrawal, error) {
	var withdrawal Withdrawal

	if err := o.Post(ctx, APIWithdrawals, payload, &withdrawal); err != nil {
		return nil, err
	}

	return &withdrawal, nil
}

func pageQuery(limit int, offset int) url.Values {
	query := url.Values{}

	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	return query
}
