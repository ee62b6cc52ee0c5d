package backpack

// REST paths, relative to the client's base URL.
const (
	APIAssets        = "/api/v1/assets"
	APIMarkets       = "/api/v1/markets"
	APITicker        = "/api/v1/ticker"
	APITickers       = "/api/v1/tickers"
	APIDepth         = "/api/v1/depth"
	APIKlines        = "/api/v1/klines"
	APIFundingRates  = "/api/v1/fundingRates"
	APIMarkPrices    = "/api/v1/markPrices"
	APITrades        = "/api/v1/trades"
	APITradesHistory = "/api/v1/trades/history"

	APICapital        = "/api/v1/capital"
	APICollateral     = "/api/v1/capital/collateral"
	APIDeposits       = "/wapi/v1/capital/deposits"
	APIDepositAddress = "/wapi/v1/capital/deposit/address"
	APIWithdrawals    = "/wapi/v1/capital/withdrawals"

	APIOrder  = "/api/v1/order"
	APIOrders = "/api/v1/orders"

	APIAccount              = "/api/v1/account"
	APIAccountMaxBorrow     = "/api/v1/account/limits/borrow"
	APIAccountMaxOrder      = "/api/v1/account/limits/order"
	APIAccountMaxWithdrawal = "/api/v1/account/limits/withdrawal"
	APIAccountConvertDust   = "/api/v1/account/convertDust"

	APIFillHistory  = "/wapi/v1/history/fills"
	APIOrderHistory = "/wapi/v1/history/orders"

	APIFuturesPosition     = "/api/v1/position"
	APIBorrowLendPositions = "/api/v1/borrowLend/positions"
	APIVaultPendingRedeems = "/api/v1/vault/redeems/pending"

	APIRFQ        = "/api/v1/rfq"
	APIRFQQuote   = "/api/v1/rfq/quote"
	APIRFQAccept  = "/api/v1/rfq/accept"
	APIRFQCancel  = "/api/v1/rfq/cancel"
	APIRFQRefresh = "/api/v1/rfq/refresh"

	APIUser    = "/wapi/v1/user"
	APIUser2FA = "/wapi/v1/user/2fa"
)
