package backpack

import (
	"encoding/json"
	"strings"
)

type Side string

const (
	Bid Side = "Bid"
	Ask Side = "Ask"
)

//
// OrderType is sent as "Limit"/"Market" but the exchange answers with "LIMIT"/"MARKET". Both are
// accepted when decoding.
//
type OrderType string

const (
	OrderTypeLimit  OrderType = "Limit"
	OrderTypeMarket OrderType = "Market"
)

func (o *OrderType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	switch strings.ToUpper(s) {
	case "LIMIT":
		*o = OrderTypeLimit
	case "MARKET":
		*o = OrderTypeMarket
	default:
		*o = OrderType(s)
	}

	return nil
}

type TimeInForce string

const (
	GTC TimeInForce = "GTC"
	IOC TimeInForce = "IOC"
	FOK TimeInForce = "FOK"
)

type SelfTradePrevention string

const (
	RejectTaker SelfTradePrevention = "RejectTaker"
	RejectMaker SelfTradePrevention = "RejectMaker"
	RejectBoth  SelfTradePrevention = "RejectBoth"
	Allow       SelfTradePrevention = "Allow"
)

type OrderStatus string

const (
	OrderCancelled       OrderStatus = "Cancelled"
	OrderExpired         OrderStatus = "Expired"
	OrderFilled          OrderStatus = "Filled"
	OrderNew             OrderStatus = "New"
	OrderPartiallyFilled OrderStatus = "PartiallyFilled"
	OrderTriggered       OrderStatus = "Triggered"
	OrderTriggerPending  OrderStatus = "TriggerPending"
)

type TriggerBy string

const (
	TriggerByLastPrice  TriggerBy = "LastPrice"
	TriggerByMarkPrice  TriggerBy = "MarkPrice"
	TriggerByIndexPrice TriggerBy = "IndexPrice"
)

type MarketType string

const (
	Spot       MarketType = "SPOT"
	Perp       MarketType = "PERP"
	IPerp      MarketType = "IPERP"
	Dated      MarketType = "DATED"
	Prediction MarketType = "PREDICTION"
	RFQMarket  MarketType = "RFQ"
)

type SortDirection string

const (
	Asc  SortDirection = "Asc"
	Desc SortDirection = "Desc"
)

type FillType string

const (
	FillUser                 FillType = "User"
	FillBookLiquidation      FillType = "BookLiquidation"
	FillAdl                  FillType = "Adl"
	FillBackstop             FillType = "Backstop"
	FillLiquidation          FillType = "Liquidation"
	FillAllLiquidation       FillType = "AllLiquidation"
	FillCollateralConversion FillType = "CollateralConversion"
)

type Blockchain string

const (
	Solana      Blockchain = "Solana"
	Ethereum    Blockchain = "Ethereum"
	Polygon     Blockchain = "Polygon"
	Bitcoin     Blockchain = "Bitcoin"
	Internal    Blockchain = "Internal"
	EqualsMoney Blockchain = "EqualsMoney"
	Cardano     Blockchain = "Cardano"
	Hyperliquid Blockchain = "Hyperliquid"
	Story       Blockchain = "Story"
	Bsc         Blockchain = "Bsc"
	Dogecoin    Blockchain = "Dogecoin"
	Sui         Blockchain = "Sui"
	XRP         Blockchain = "XRP"
	Litecoin    Blockchain = "Litecoin"
	Berachain   Blockchain = "Berachain"
)

//
// DepthLimit is the number of price levels requested per side of an order book.
//
type DepthLimit string

const (
	Depth5    DepthLimit = "5"
	Depth10   DepthLimit = "10"
	Depth20   DepthLimit = "20"
	Depth50   DepthLimit = "50"
	Depth100  DepthLimit = "100"
	Depth500  DepthLimit = "500"
	Depth1000 DepthLimit = "1000"
)
