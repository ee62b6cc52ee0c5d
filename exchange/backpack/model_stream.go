package backpack

import "github.com/shopspring/decimal"

//
// Stream payloads use single letter keys. Keys that differ only in case are declared as a pair so
// that decoding never falls back onto a case-insensitive match. Event and engine times are in
// microseconds.
//

type TickerUpdate struct {
	EventType   string          `json:"e"`
	EventTime   int64           `json:"E"`
	Symbol      string          `json:"s"`
	AskPrice    decimal.Decimal `json:"a"`
	AskQuantity decimal.Decimal `json:"A"`
	BidPrice    decimal.Decimal `json:"b"`
	BidQuantity decimal.Decimal `json:"B"`
	UpdateID    FlexInt64       `json:"u"`
	Timestamp   int64           `json:"T"`
}

type DepthUpdate struct {
	EventType     string       `json:"e"`
	EventTime     int64        `json:"E"`
	Symbol        string       `json:"s"`
	Timestamp     int64        `json:"T"`
	FirstUpdateID FlexInt64    `json:"U"`
	LastUpdateID  FlexInt64    `json:"u"`
	Asks          []PriceLevel `json:"a"`
	Bids          []PriceLevel `json:"b"`
}

type TradeUpdate struct {
	EventType     string          `json:"e"`
	EventTime     int64           `json:"E"`
	Symbol        string          `json:"s"`
	Price         decimal.Decimal `json:"p"`
	Quantity      decimal.Decimal `json:"q"`
	BuyerOrderID  string          `json:"b"`
	SellerOrderID string          `json:"a"`
	TradeID       FlexInt64       `json:"t"`
	Timestamp     int64           `json:"T"`
	IsBuyerMaker  bool            `json:"m"`
}

type KlineUpdate struct {
	EventType string          `json:"e"`
	EventTime int64           `json:"E"`
	Symbol    string          `json:"s"`
	Start     Timestamp       `json:"t"`
	End       Timestamp       `json:"T"`
	Open      decimal.Decimal `json:"o"`
	Close     decimal.Decimal `json:"c"`
	High      decimal.Decimal `json:"h"`
	Low       decimal.Decimal `json:"l"`
	Volume    decimal.Decimal `json:"v"`
	Trades    FlexInt64       `json:"n"`
	Closed    bool            `json:"X"`
}

type MarkPriceUpdate struct {
	EventType            string          `json:"e"`
	EventTime            int64           `json:"E"`
	Symbol               string          `json:"s"`
	MarkPrice            decimal.Decimal `json:"p"`
	FundingRate          decimal.Decimal `json:"f"`
	IndexPrice           decimal.Decimal `json:"i"`
	NextFundingTimestamp int64           `json:"n"`
}

type OrderUpdateType string

const (
	EventOrderAccepted  OrderUpdateType = "orderAccepted"
	EventOrderCancelled OrderUpdateType = "orderCancelled"
	EventOrderExpired   OrderUpdateType = "orderExpired"
	EventOrderFill      OrderUpdateType = "orderFill"
	EventOrderModified  OrderUpdateType = "orderModified"
	EventTriggerPlaced  OrderUpdateType = "triggerPlaced"
	EventTriggerFailed  OrderUpdateType = "triggerFailed"
)

type OrderUpdate struct {
	EventType              OrderUpdateType     `json:"e"`
	EventTime              int64               `json:"E"`
	Symbol                 string              `json:"s"`
	ClientOrderID          *uint64             `json:"c,omitempty"`
	Side                   Side                `json:"S"`
	OrderType              OrderType           `json:"o"`
	Origin                 string              `json:"O"`
	TimeInForce            TimeInForce         `json:"f"`
	Quantity               decimal.Decimal     `json:"q"`
	QuantityInQuote        *decimal.Decimal    `json:"Q,omitempty"`
	Price                  *decimal.Decimal    `json:"p,omitempty"`
	TriggerPrice           *decimal.Decimal    `json:"P,omitempty"`
	TriggerBy              *TriggerBy          `json:"B,omitempty"`
	TakeProfitTriggerPrice *decimal.Decimal    `json:"a,omitempty"`
	StopLossTriggerPrice   *decimal.Decimal    `json:"b,omitempty"`
	TakeProfitTriggerBy    *TriggerBy          `json:"d,omitempty"`
	StopLossTriggerBy      *TriggerBy          `json:"g,omitempty"`
	TriggerQuantity        *decimal.Decimal    `json:"Y,omitempty"`
	Status                 OrderStatus         `json:"X"`
	ExpiryReason           *string             `json:"R,omitempty"`
	ReduceOnly             *bool               `json:"r,omitempty"`
	OrderID                string              `json:"i"`
	RelatedOrderID         *FlexInt64          `json:"I,omitempty"`
	TradeID                *uint64             `json:"t,omitempty"`
	Timestamp              int64               `json:"T"`
	FillQuantity           *decimal.Decimal    `json:"l,omitempty"`
	FillPrice              *decimal.Decimal    `json:"L,omitempty"`
	ExecutedQuantity       decimal.Decimal     `json:"z"`
	ExecutedQuoteQuantity  decimal.Decimal     `json:"Z"`
	WasMaker               *bool               `json:"m,omitempty"`
	Fee                    *decimal.Decimal    `json:"n,omitempty"`
	FeeSymbol              *string             `json:"N,omitempty"`
	SelfTradePrevention    SelfTradePrevention `json:"V"`
}
