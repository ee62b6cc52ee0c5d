package backpack

import "net/http"

type route struct {
	method string
	path   string
}

//
// instructions maps every endpoint the exchange requires to be signed onto the instruction name
// that leads its signee. Anything missing is sent unsigned.
//
var instructions = map[route]string{
	{http.MethodGet, APICapital}:        "balanceQuery",
	{http.MethodGet, APICollateral}:     "collateralQuery",
	{http.MethodGet, APIDeposits}:       "depositQueryAll",
	{http.MethodGet, APIDepositAddress}: "depositAddressQuery",
	{http.MethodGet, APIWithdrawals}:    "withdrawalQueryAll",
	{http.MethodPost, APIWithdrawals}:   "withdraw",
	{http.MethodPost, APIUser2FA}:       "issueTwoFactorToken",

	{http.MethodGet, APIOrder}:     "orderQuery",
	{http.MethodPost, APIOrder}:    "orderExecute",
	{http.MethodDelete, APIOrder}:  "orderCancel",
	{http.MethodGet, APIOrders}:    "orderQueryAll",
	{http.MethodPost, APIOrders}:   "orderExecute",
	{http.MethodDelete, APIOrders}: "orderCancelAll",

	{http.MethodPost, APIRFQ}:        "rfqSubmit",
	{http.MethodPost, APIRFQQuote}:   "quoteSubmit",
	{http.MethodPost, APIRFQAccept}:  "quoteAccept",
	{http.MethodPost, APIRFQCancel}:  "rfqCancel",
	{http.MethodPost, APIRFQRefresh}: "rfqRefresh",

	{http.MethodGet, APIFuturesPosition}:     "positionQuery",
	{http.MethodGet, APIBorrowLendPositions}: "borrowLendPositionQuery",

	{http.MethodGet, APIAccount}:              "accountQuery",
	{http.MethodPatch, APIAccount}:            "accountUpdate",
	{http.MethodGet, APIAccountMaxBorrow}:     "maxBorrowQuantity",
	{http.MethodGet, APIAccountMaxOrder}:      "maxOrderQuantity",
	{http.MethodGet, APIAccountMaxWithdrawal}: "maxWithdrawalQuantity",
	{http.MethodPost, APIAccountConvertDust}:  "convertDust",

	{http.MethodGet, APIFillHistory}:  "fillHistoryQueryAll",
	{http.MethodGet, APIOrderHistory}: "orderHistoryQueryAll",

	{http.MethodGet, APIVaultPendingRedeems}: "vaultPendingRedeemsQuery",
}

//
// ResolveInstruction returns the instruction name for a signed endpoint, or false if the endpoint
// is not signed.
//
func ResolveInstruction(method string, path string) (string, bool) {
	instruction, ok := instructions[route{method, path}]

	return instruction, ok
}
