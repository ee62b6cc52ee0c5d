package backpack

import "github.com/shopspring/decimal"

type Balance struct {
	Available decimal.Decimal `json:"available"`
	Locked    decimal.Decimal `json:"locked"`
	Staked    decimal.Decimal `json:"staked"`
}

//
// Total returns the sum of the available, locked, and staked quantities.
//
func (o Balance) Total() decimal.Decimal {
	return o.Available.Add(o.Locked).Add(o.Staked)
}

type DepositSource string

type DepositStatus string

type Deposit struct {
	ID                      int64           `json:"id"`
	ToAddress               *string         `json:"toAddress,omitempty"`
	FromAddress             *string         `json:"fromAddress,omitempty"`
	ConfirmationBlockNumber *int64          `json:"confirmationBlockNumber,omitempty"`
	Identifier              *string         `json:"identifier,omitempty"`
	Source                  DepositSource   `json:"source"`
	Status                  DepositStatus   `json:"status"`
	SubaccountID            *int64          `json:"subaccountId,omitempty"`
	Symbol                  string          `json:"symbol"`
	Quantity                decimal.Decimal `json:"quantity"`
	CreatedAt               Timestamp       `json:"createdAt"`
}

type DepositAddress struct {
	Address string `json:"address"`
}

type WithdrawalStatus string

type Withdrawal struct {
	ID              int64            `json:"id"`
	Blockchain      Blockchain       `json:"blockchain"`
	ClientID        *string          `json:"clientId,omitempty"`
	Identifier      *string          `json:"identifier,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	Fee             decimal.Decimal  `json:"fee"`
	Symbol          string           `json:"symbol"`
	Status          WithdrawalStatus `json:"status"`
	SubaccountID    *int64           `json:"subaccountId,omitempty"`
	ToAddress       string           `json:"toAddress"`
	TransactionHash *string          `json:"transactionHash,omitempty"`
	CreatedAt       Timestamp        `json:"createdAt"`
}

type RequestWithdrawalPayload struct {
	Address        string          `json:"address"`
	Blockchain     Blockchain      `json:"blockchain"`
	ClientID       string          `json:"clientId,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Symbol         string          `json:"symbol"`
	TwoFactorToken string          `json:"twoFactorToken,omitempty"`
}

type Collateral struct {
	AssetsValue        decimal.Decimal   `json:"assetsValue"`
	BorrowLiability    decimal.Decimal   `json:"borrowLiability"`
	Collateral         []CollateralAsset `json:"collateral"`
	IMF                decimal.Decimal   `json:"imf"`
	UnsettledEquity    decimal.Decimal   `json:"unsettledEquity"`
	LiabilitiesValue   decimal.Decimal   `json:"liabilitiesValue"`
	MarginFraction     *decimal.Decimal  `json:"marginFraction,omitempty"`
	MMF                decimal.Decimal   `json:"mmf"`
	NetEquity          decimal.Decimal   `json:"netEquity"`
	NetEquityAvailable decimal.Decimal   `json:"netEquityAvailable"`
	NetEquityLocked    decimal.Decimal   `json:"netEquityLocked"`
	NetExposureFutures decimal.Decimal   `json:"netExposureFutures"`
	PnlUnrealized      decimal.Decimal   `json:"pnlUnrealized"`
}

type CollateralAsset struct {
	Symbol            string          `json:"symbol"`
	AssetMarkPrice    decimal.Decimal `json:"assetMarkPrice"`
	TotalQuantity     decimal.Decimal `json:"totalQuantity"`
	BalanceNotional   decimal.Decimal `json:"balanceNotional"`
	CollateralWeight  decimal.Decimal `json:"collateralWeight"`
	CollateralValue   decimal.Decimal `json:"collateralValue"`
	OpenOrderQuantity decimal.Decimal `json:"openOrderQuantity"`
	LendQuantity      decimal.Decimal `json:"lendQuantity"`
	AvailableQuantity decimal.Decimal `json:"availableQuantity"`
}
