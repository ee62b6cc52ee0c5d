package backpack

import "github.com/shopspring/decimal"

type FuturePosition struct {
	BreakEvenPrice           decimal.Decimal `json:"breakEvenPrice"`
	CumulativeFundingPayment decimal.Decimal `json:"cumulativeFundingPayment"`
	CumulativeInterest       decimal.Decimal `json:"cumulativeInterest"`
	EntryPrice               decimal.Decimal `json:"entryPrice"`
	EstLiquidationPrice      decimal.Decimal `json:"estLiquidationPrice"`
	IMF                      decimal.Decimal `json:"imf"`
	MarkPrice                decimal.Decimal `json:"markPrice"`
	MMF                      decimal.Decimal `json:"mmf"`
	NetCost                  decimal.Decimal `json:"netCost"`
	NetExposureNotional      decimal.Decimal `json:"netExposureNotional"`
	NetExposureQuantity      decimal.Decimal `json:"netExposureQuantity"`
	NetQuantity              decimal.Decimal `json:"netQuantity"`
	PnlRealized              decimal.Decimal `json:"pnlRealized"`
	PnlUnrealized            decimal.Decimal `json:"pnlUnrealized"`
	PositionID               string          `json:"positionId"`
	SubaccountID             *int64          `json:"subaccountId,omitempty"`
	Symbol                   string          `json:"symbol"`
	UserID                   int64           `json:"userId"`
}

type MarginFunction struct {
	Base   decimal.Decimal `json:"base"`
	Factor decimal.Decimal `json:"factor"`
	Type   string          `json:"type"`
}

type BorrowLendPosition struct {
	CumulativeInterest  decimal.Decimal `json:"cumulativeInterest"`
	ID                  string          `json:"id"`
	Symbol              string          `json:"symbol"`
	IMF                 decimal.Decimal `json:"imf"`
	IMFFunction         MarginFunction  `json:"imfFunction"`
	MarkPrice           decimal.Decimal `json:"markPrice"`
	MMF                 decimal.Decimal `json:"mmf"`
	MMFFunction         MarginFunction  `json:"mmfFunction"`
	NetExposureNotional decimal.Decimal `json:"netExposureNotional"`
	NetExposureQuantity decimal.Decimal `json:"netExposureQuantity"`
	NetQuantity         decimal.Decimal `json:"netQuantity"`
}

type VaultRedeemStatus string

const (
	VaultRedeemRequested VaultRedeemStatus = "Requested"
	VaultRedeemRedeemed  VaultRedeemStatus = "Redeemed"
	VaultRedeemCancelled VaultRedeemStatus = "Cancelled"
)

type VaultRedeem struct {
	Status             VaultRedeemStatus `json:"status"`
	ID                 string            `json:"id"`
	VaultID            uint32            `json:"vaultId"`
	VaultTokenQuantity decimal.Decimal   `json:"vaultTokenQuantity"`
	VaultToken         *string           `json:"vaultToken,omitempty"`
	Symbol             *string           `json:"symbol,omitempty"`
	Quantity           *decimal.Decimal  `json:"quantity,omitempty"`
	NAV                *decimal.Decimal  `json:"nav,omitempty"`
	Reason             *string           `json:"reason,omitempty"`
	Timestamp          Timestamp         `json:"timestamp"`
}
