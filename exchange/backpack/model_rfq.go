package backpack

import "github.com/shopspring/decimal"

type RFQExecutionMode string

const (
	AwaitAccept RFQExecutionMode = "AwaitAccept"
	Immediate   RFQExecutionMode = "Immediate"
)

type RequestForQuotePayload struct {
	ClientID      *uint32          `json:"clientId,omitempty"`
	Quantity      *decimal.Decimal `json:"quantity,omitempty"`
	QuoteQuantity *decimal.Decimal `json:"quoteQuantity,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Symbol        string           `json:"symbol"`
	Side          Side             `json:"side"`
	ExecutionMode RFQExecutionMode `json:"executionMode,omitempty"`
}

type RequestForQuoteCancelPayload struct {
	RFQID    string  `json:"rfqId,omitempty"`
	ClientID *uint32 `json:"clientId,omitempty"`
}

type RequestForQuoteRefreshPayload struct {
	RFQID string `json:"rfqId"`
}

type QuoteAcceptPayload struct {
	RFQID    string  `json:"rfqId,omitempty"`
	ClientID *uint32 `json:"clientId,omitempty"`
	QuoteID  string  `json:"quoteId"`
}

type QuotePayload struct {
	RFQID           string          `json:"rfqId"`
	BidPrice        decimal.Decimal `json:"bidPrice"`
	AskPrice        decimal.Decimal `json:"askPrice"`
	ClientID        *uint32         `json:"clientId,omitempty"`
	AutoLend        *bool           `json:"autoLend,omitempty"`
	AutoLendRedeem  *bool           `json:"autoLendRedeem,omitempty"`
	AutoBorrow      *bool           `json:"autoBorrow,omitempty"`
	AutoBorrowRepay *bool           `json:"autoBorrowRepay,omitempty"`
}

type RequestForQuote struct {
	RFQID          string           `json:"rfqId"`
	ClientID       *uint32          `json:"clientId,omitempty"`
	Symbol         string           `json:"symbol"`
	Side           Side             `json:"side"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Quantity       *decimal.Decimal `json:"quantity,omitempty"`
	QuoteQuantity  *decimal.Decimal `json:"quoteQuantity,omitempty"`
	SubmissionTime Timestamp        `json:"submissionTime"`
	ExpiryTime     Timestamp        `json:"expiryTime"`
	Status         OrderStatus      `json:"status"`
	ExecutionMode  RFQExecutionMode `json:"executionMode,omitempty"`
	CreatedAt      Timestamp        `json:"createdAt"`
}

type Quote struct {
	RFQID    string      `json:"rfqId"`
	QuoteID  string      `json:"quoteId"`
	ClientID *uint32     `json:"clientId,omitempty"`
	Status   OrderStatus `json:"status"`
}

//
// RFQEvent discriminates an RFQUpdate.
//
type RFQEvent string

const (
	RFQActive      RFQEvent = "rfqActive"
	RFQRefreshed   RFQEvent = "rfqRefreshed"
	RFQAccepted    RFQEvent = "rfqAccepted"
	RFQCancelled   RFQEvent = "rfqCancelled"
	QuoteAccepted  RFQEvent = "quoteAccepted"
	QuoteCancelled RFQEvent = "quoteCancelled"
	RFQCandidate   RFQEvent = "rfqCandidate"
	RFQFilled      RFQEvent = "rfqFilled"
)

//
// IsQuoteEvent reports whether the event concerns a quote rather than the RFQ itself. Only quote
// events carry a QuoteID.
//
func (o RFQEvent) IsQuoteEvent() bool {
	switch o {
	case QuoteAccepted, QuoteCancelled, RFQCandidate, RFQFilled:
		return true
	}

	return false
}

//
// RFQUpdate is an event of the account.rfqUpdate stream. Event decides which of the optional
// fields are populated.
//
type RFQUpdate struct {
	Event          RFQEvent         `json:"e"`
	EventTime      int64            `json:"E"`
	RFQID          FlexInt64        `json:"R"`
	QuoteID        *FlexInt64       `json:"u,omitempty"`
	ClientID       *uint32          `json:"C,omitempty"`
	Symbol         string           `json:"s"`
	Side           *Side            `json:"S,omitempty"`
	Quantity       *decimal.Decimal `json:"q,omitempty"`
	QuoteQuantity  *decimal.Decimal `json:"Q,omitempty"`
	Price          *decimal.Decimal `json:"p,omitempty"`
	SubmissionTime *int64           `json:"w,omitempty"`
	ExpiryTime     *int64           `json:"W,omitempty"`
	Status         OrderStatus      `json:"X"`
	Timestamp      int64            `json:"T"`
}
