package backpack

import (
	"context"
	"strconv"
)

func (o *Client) GetFillHistory(ctx context.Context, params FillHistoryParams) ([]Fill, error) {
	query := pageQuery(params.Limit, params.Offset)

	if params.Symbol != "" {
		query.Set("symbol", params.Symbol)
	}

	if params.From > 0 {
		query.Set("from", strconv.FormatInt(params.From, 10))
	}

	if params.To > 0 {
		query.Set("to", strconv.FormatInt(params.To, 10))
	}

	if params.FillType != "" {
		query.Set("fillType", string(params.FillType))
	}

	if params.MarketType != "" {
		query.Set("marketType", string(params.MarketType))
	}

	if params.OrderID != "" {
		query.Set("orderId", params.OrderID)
	}

	if params.StrategyID != "" {
		query.Set("strategyId", params.StrategyID)
	}

	if params.SortDirection != "" {
		query.Set("sortDirection", string(params.SortDirection))
	}

	var fills []Fill

	if err := o.Get(ctx, APIFillHistory, query, &fills); err != nil {
		return nil, err
	}

	return fills, nil
}
