package backpack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

//
// TriggerQuantity is either a percentage of the position ("12.5%") or an absolute amount. The
// exchange sends it as a string or as a bare number.
//
type TriggerQuantity struct {
	Percent bool
	Value   decimal.Decimal
}

func PercentTrigger(pct decimal.Decimal) TriggerQuantity {
	return TriggerQuantity{Percent: true, Value: pct}
}

func AmountTrigger(amount decimal.Decimal) TriggerQuantity {
	return TriggerQuantity{Value: amount}
}

func (o TriggerQuantity) String() string {
	if o.Percent {
		return o.Value.String() + "%"
	}

	return o.Value.String()
}

func (o TriggerQuantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *TriggerQuantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}

	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")

	value, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(s, "%")))
	if err != nil {
		return fmt.Errorf("invalid trigger quantity %s: %w", b, err)
	}

	*o = TriggerQuantity{Percent: percent, Value: value}

	return nil
}

//
// orderFields are shared by both order variants.
//
type orderFields struct {
	ID                     string              `json:"id"`
	ClientID               *uint32             `json:"clientId,omitempty"`
	Symbol                 string              `json:"symbol"`
	Side                   Side                `json:"side"`
	ExecutedQuantity       decimal.Decimal     `json:"executedQuantity"`
	ExecutedQuoteQuantity  decimal.Decimal     `json:"executedQuoteQuantity"`
	StopLossTriggerPrice   *decimal.Decimal    `json:"stopLossTriggerPrice,omitempty"`
	StopLossLimitPrice     *decimal.Decimal    `json:"stopLossLimitPrice,omitempty"`
	StopLossTriggerBy      *TriggerBy          `json:"stopLossTriggerBy,omitempty"`
	TakeProfitTriggerPrice *decimal.Decimal    `json:"takeProfitTriggerPrice,omitempty"`
	TakeProfitLimitPrice   *decimal.Decimal    `json:"takeProfitLimitPrice,omitempty"`
	TakeProfitTriggerBy    *TriggerBy          `json:"takeProfitTriggerBy,omitempty"`
	TriggerBy              *TriggerBy          `json:"triggerBy,omitempty"`
	TriggerPrice           *decimal.Decimal    `json:"triggerPrice,omitempty"`
	TriggerQuantity        *TriggerQuantity    `json:"triggerQuantity,omitempty"`
	TriggeredAt            *Timestamp          `json:"triggeredAt,omitempty"`
	TimeInForce            TimeInForce         `json:"timeInForce"`
	RelatedOrderID         *string             `json:"relatedOrderId,omitempty"`
	SelfTradePrevention    SelfTradePrevention `json:"selfTradePrevention"`
	ReduceOnly             *bool               `json:"reduceOnly,omitempty"`
	Status                 OrderStatus         `json:"status"`
	CreatedAt              Timestamp           `json:"createdAt"`
}

type MarketOrder struct {
	orderFields
	Quantity      *decimal.Decimal `json:"quantity,omitempty"`
	QuoteQuantity *decimal.Decimal `json:"quoteQuantity,omitempty"`
}

type LimitOrder struct {
	orderFields
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	PostOnly bool            `json:"postOnly"`
}

//
// Order is a resting or executed order. Exactly one of Market and Limit is set, chosen by the
// "orderType" field of the JSON object.
//
type Order struct {
	Market *MarketOrder
	Limit  *LimitOrder
}

func (o Order) Type() OrderType {
	if o.Market != nil {
		return OrderTypeMarket
	}

	return OrderTypeLimit
}

func (o Order) fields() *orderFields {
	switch {
	case o.Market != nil:
		return &o.Market.orderFields
	case o.Limit != nil:
		return &o.Limit.orderFields
	}

	return &orderFields{}
}

func (o Order) ID() string {
	return o.fields().ID
}

func (o Order) Symbol() string {
	return o.fields().Symbol
}

func (o Order) Side() Side {
	return o.fields().Side
}

func (o Order) Status() OrderStatus {
	return o.fields().Status
}

func (o *Order) UnmarshalJSON(b []byte) error {
	kind := gjson.GetBytes(b, "orderType")
	if !kind.Exists() {
		return fmt.Errorf("order has no orderType: %s", b)
	}

	switch strings.ToUpper(kind.String()) {
	case "MARKET":
		var m MarketOrder
		if err := json.Unmarshal(b, &m); err != nil {
			return err
		}

		*o = Order{Market: &m}

	case "LIMIT":
		var l LimitOrder
		if err := json.Unmarshal(b, &l); err != nil {
			return err
		}

		*o = Order{Limit: &l}

	default:
		return fmt.Errorf("unknown orderType %q", kind.String())
	}

	return nil
}

func (o Order) MarshalJSON() ([]byte, error) {
	switch {
	case o.Market != nil:
		return json.Marshal(struct {
			OrderType OrderType `json:"orderType"`
			*MarketOrder
		}{OrderTypeMarket, o.Market})

	case o.Limit != nil:
		return json.Marshal(struct {
			OrderType OrderType `json:"orderType"`
			*LimitOrder
		}{OrderTypeLimit, o.Limit})
	}

	return []byte("null"), nil
}

type ExecuteOrderPayload struct {
	AutoLend            *bool                `json:"autoLend,omitempty"`
	AutoLendRedeem      *bool                `json:"autoLendRedeem,omitempty"`
	AutoBorrow          *bool                `json:"autoBorrow,omitempty"`
	AutoBorrowRepay     *bool                `json:"autoBorrowRepay,omitempty"`
	ClientID            *uint32              `json:"clientId,omitempty"`
	OrderType           OrderType            `json:"orderType"`
	PostOnly            *bool                `json:"postOnly,omitempty"`
	Price               *decimal.Decimal     `json:"price,omitempty"`
	Quantity            *decimal.Decimal     `json:"quantity,omitempty"`
	QuoteQuantity       *decimal.Decimal     `json:"quoteQuantity,omitempty"`
	SelfTradePrevention *SelfTradePrevention `json:"selfTradePrevention,omitempty"`
	Side                Side                 `json:"side"`
	Symbol              string               `json:"symbol"`
	TimeInForce         *TimeInForce         `json:"timeInForce,omitempty"`
	TriggerBy           *TriggerBy           `json:"triggerBy,omitempty"`
	TriggerPrice        *decimal.Decimal     `json:"triggerPrice,omitempty"`
	TriggerQuantity     *TriggerQuantity     `json:"triggerQuantity,omitempty"`
	ReduceOnly          *bool                `json:"reduceOnly,omitempty"`
}

type CancelOrderPayload struct {
	Symbol   string  `json:"symbol"`
	OrderID  string  `json:"orderId,omitempty"`
	ClientID *uint32 `json:"clientId,omitempty"`
}

type CancelOpenOrdersPayload struct {
	Symbol string `json:"symbol"`
}

//
// OrderHistoryQuery filters the order history. Zero values are left out of the query string.
//
type OrderHistoryQuery struct {
	OrderID       string
	StrategyID    string
	Symbol        string
	Limit         int
	Offset        int
	MarketTypes   []MarketType
	SortDirection SortDirection
}

//
// HistoricalOrder is an entry of the order history.
//
type HistoricalOrder struct {
	ID                    string              `json:"id"`
	CreatedAt             Timestamp           `json:"createdAt"`
	ExecutedQuantity      *decimal.Decimal    `json:"executedQuantity,omitempty"`
	ExecutedQuoteQuantity *decimal.Decimal    `json:"executedQuoteQuantity,omitempty"`
	ExpiryReason          *string             `json:"expiryReason,omitempty"`
	OrderType             OrderType           `json:"orderType"`
	PostOnly              *bool               `json:"postOnly,omitempty"`
	Price                 *decimal.Decimal    `json:"price,omitempty"`
	Quantity              *decimal.Decimal    `json:"quantity,omitempty"`
	QuoteQuantity         *decimal.Decimal    `json:"quoteQuantity,omitempty"`
	SelfTradePrevention   SelfTradePrevention `json:"selfTradePrevention"`
	Status                OrderStatus         `json:"status"`
	Side                  Side                `json:"side"`
	StopLossTriggerPrice  *decimal.Decimal    `json:"stopLossTriggerPrice,omitempty"`
	StrategyID            *string             `json:"strategyId,omitempty"`
	Symbol                string              `json:"symbol"`
	TimeInForce           TimeInForce         `json:"timeInForce"`
	TriggerBy             *TriggerBy          `json:"triggerBy,omitempty"`
	TriggerPrice          *decimal.Decimal    `json:"triggerPrice,omitempty"`
	TriggerQuantity       *TriggerQuantity    `json:"triggerQuantity,omitempty"`
	ClientID              *uint32             `json:"clientId,omitempty"`
}
