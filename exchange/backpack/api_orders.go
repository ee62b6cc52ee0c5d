package backpack

import (
	"context"
	"net/url"
	"strconv"
)

//
// GetOpenOrder looks up a single open order by its exchange id or by its client id. One of the two
// must be given.
//
func (o *Client) GetOpenOrder(ctx context.Context, symbol string, orderID string, clientID *uint32) (*Order, error) {
	query := url.Values{"symbol": {symbol}}

	switch {
	case orderID != "":
		query.Set("orderId", orderID)
	case clientID != nil:
		query.Set("clientId", strconv.FormatUint(uint64(*clientID), 10))
	default:
		return nil, &InvalidRequestError{Reason: "either an order id or a client id is required"}
	}

	var order Order

	if err := o.Get(ctx, APIOrder, query, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (o *Client) ExecuteOrder(ctx context.Context, payload ExecuteOrderPayload) (*Order, error) {
	var order Order

	if err := o.Post(ctx, APIOrder, payload, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

//
// ExecuteOrders places a batch of orders with a single signed request. The orders are signed and
// executed in the order given.
//
func (o *Client) ExecuteOrders(ctx context.Context, payloads []ExecuteOrderPayload) ([]Order, error) {
	if len(payloads) == 0 {
		return nil, &InvalidRequestError{Reason: "at least one order is required"}
	}

	var orders []Order

	if err := o.Post(ctx, APIOrders, payloads, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

//
// CancelOrder cancels a single open order, identified by its exchange id or its client id.
//
func (o *Client) CancelOrder(ctx context.Context, payload CancelOrderPayload) (*Order, error) {
	if payload.OrderID == "" && payload.ClientID == nil {
		return nil, &InvalidRequestError{Reason: "either an order id or a client id is required"}
	}

	var order Order

	if err := o.Delete(ctx, APIOrder, payload, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

//
// GetOpenOrders lists open orders, restricted to symbol unless it is empty.
//
func (o *Client) GetOpenOrders(ctx context.Context, symbol string) ([]Order, error) {
	query := url.Values{}
	if symbol != "" {
		query.Set("symbol", symbol)
	}

	var orders []Order

	if err := o.Get(ctx, APIOrders, query, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (o *Client) CancelOpenOrders(ctx context.Context, payload CancelOpenOrdersPayload) ([]Order, error) {
	var orders []Order

	if err := o.Delete(ctx, APIOrders, payload, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (o *Client) GetOrderHistory(ctx context.Context, params OrderHistoryQuery) ([]HistoricalOrder, error) {
	query := pageQuery(params.Limit, params.Offset)

	if params.OrderID != "" {
		query.Set("orderId", params.OrderID)
	}

	if params.StrategyID != "" {
		query.Set("strategyId", params.StrategyID)
	}

	if params.Symbol != "" {
		query.Set("symbol", params.Symbol)
	}

	for _, t := range params.MarketTypes {
		query.Add("marketType", string(t))
	}

	if params.SortDirection != "" {
		query.Set("sortDirection", string(params.SortDirection))
	}

	var orders []HistoricalOrder

	if err := o.Get(ctx, APIOrderHistory, query, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
