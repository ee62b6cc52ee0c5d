package backpack

import (
	"context"
	"net/url"
	"strconv"
)

func (o *Client) GetOpenFuturePositions(ctx context.Context) ([]FuturePosition, error) {
	var positions []FuturePosition

	if err := o.Get(ctx, APIFuturesPosition, nil, &positions); err != nil {
		return nil, err
	}

	return positions, nil
}

func (o *Client) GetBorrowLendPositions(ctx context.Context) ([]BorrowLendPosition, error) {
	var positions []BorrowLendPosition

	if err := o.Get(ctx, APIBorrowLendPositions, nil, &positions); err != nil {
		return nil, err
	}

	return positions, nil
}

func (o *Client) GetVaultPendingRedeems(ctx context.Context, vaultID uint32) ([]VaultRedeem, error) {
	query := url.Values{"vaultId": {strconv.FormatUint(uint64(vaultID), 10)}}

	var redeems []VaultRedeem

	if err := o.Get(ctx, APIVaultPendingRedeems, query, &redeems); err != nil {
		return nil, err
	}

	return redeems, nil
}
