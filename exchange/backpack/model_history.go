package backpack

import "github.com/shopspring/decimal"

type Fill struct {
	TradeID         *int64          `json:"tradeId,omitempty"`
	ClientID        *string         `json:"clientId,omitempty"`
	OrderID         string          `json:"orderId"`
	Symbol          string          `json:"symbol"`
	FeeSymbol       string          `json:"feeSymbol"`
	Price           decimal.Decimal `json:"price"`
	Quantity        decimal.Decimal `json:"quantity"`
	Fee             decimal.Decimal `json:"fee"`
	Side            Side            `json:"side"`
	Timestamp       Timestamp       `json:"timestamp"`
	IsMaker         bool            `json:"isMaker"`
	SystemOrderType *string         `json:"systemOrderType,omitempty"`
}

//
// FillHistoryParams filters the fill history. Zero values are left out of the query string; From
// and To are in milliseconds.
//
type FillHistoryParams struct {
	Symbol        string
	From          int64
	To            int64
	FillType      FillType
	MarketType    MarketType
	OrderID       string
	StrategyID    string
	Limit         int
	Offset        int
	SortDirection SortDirection
}
