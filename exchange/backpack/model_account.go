package backpack

import "github.com/shopspring/decimal"

type AccountSettings struct {
	AutoBorrowSettlements bool            `json:"autoBorrowSettlements"`
	AutoLend              bool            `json:"autoLend"`
	AutoRealizePnl        bool            `json:"autoRealizePnl"`
	AutoRepayBorrows      bool            `json:"autoRepayBorrows"`
	BorrowLimit           decimal.Decimal `json:"borrowLimit"`
	FuturesMakerFee       decimal.Decimal `json:"futuresMakerFee"`
	FuturesTakerFee       decimal.Decimal `json:"futuresTakerFee"`
	LeverageLimit         decimal.Decimal `json:"leverageLimit"`
	LimitOrders           int             `json:"limitOrders"`
	Liquidating           bool            `json:"liquidating"`
	PositionLimit         decimal.Decimal `json:"positionLimit"`
	SpotMakerFee          decimal.Decimal `json:"spotMakerFee"`
	SpotTakerFee          decimal.Decimal `json:"spotTakerFee"`
	TriggerOrders         int             `json:"triggerOrders"`
}

type AccountMaxBorrow struct {
	MaxBorrowQuantity decimal.Decimal `json:"maxBorrowQuantity"`
	Symbol            string          `json:"symbol"`
}

type AccountMaxWithdrawal struct {
	AutoBorrow            *bool           `json:"autoBorrow,omitempty"`
	AutoLendRedeem        *bool           `json:"autoLendRedeem,omitempty"`
	MaxWithdrawalQuantity decimal.Decimal `json:"maxWithdrawalQuantity"`
	Symbol                string          `json:"symbol"`
}

type AccountMaxOrder struct {
	AutoBorrow       *bool            `json:"autoBorrow,omitempty"`
	AutoBorrowRepay  *bool            `json:"autoBorrowRepay,omitempty"`
	AutoLendRedeem   *bool            `json:"autoLendRedeem,omitempty"`
	MaxOrderQuantity decimal.Decimal  `json:"maxOrderQuantity"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	Side             Side             `json:"side"`
	Symbol           string           `json:"symbol"`
	ReduceOnly       *bool            `json:"reduceOnly,omitempty"`
}

//
// MaxOrderQuery selects the order shape the maximum quantity is computed for. Unset pointers are
// left out of the query string.
//
type MaxOrderQuery struct {
	Symbol          string
	Side            Side
	Price           *decimal.Decimal
	ReduceOnly      *bool
	AutoBorrow      *bool
	AutoBorrowRepay *bool
	AutoLendRedeem  *bool
}

type UpdateAccountPayload struct {
	AutoBorrowSettlements *bool            `json:"autoBorrowSettlements,omitempty"`
	AutoLend              *bool            `json:"autoLend,omitempty"`
	AutoRepayBorrows      *bool            `json:"autoRepayBorrows,omitempty"`
	LeverageLimit         *decimal.Decimal `json:"leverageLimit,omitempty"`
}

type ConvertDustPayload struct {
	Symbol string `json:"symbol,omitempty"`
}
