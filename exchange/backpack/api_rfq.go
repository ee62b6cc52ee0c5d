package backpack

import "context"

func (o *Client) SubmitRFQ(ctx context.Context, payload RequestForQuotePayload) (*RequestForQuote, error) {
	return o.postRFQ(ctx, APIRFQ, payload)
}

func (o *Client) CancelRFQ(ctx context.Context, payload RequestForQuoteCancelPayload) (*RequestForQuote, error) {
	if payload.RFQID == "" && payload.ClientID == nil {
		return nil, &InvalidRequestError{Reason: "either an rfq id or a client id is required"}
	}

	return o.postRFQ(ctx, APIRFQCancel, payload)
}

func (o *Client) RefreshRFQ(ctx context.Context, payload RequestForQuoteRefreshPayload) (*RequestForQuote, error) {
	return o.postRFQ(ctx, APIRFQRefresh, payload)
}

func (o *Client) AcceptQuote(ctx context.Context, payload QuoteAcceptPayload) (*RequestForQuote, error) {
	return o.postRFQ(ctx, APIRFQAccept, payload)
}

func (o *Client) SubmitQuote(ctx context.Context, payload QuotePayload) (*Quote, error) {
	var quote Quote

	if err := o.Post(ctx, APIRFQQuote, payload, &quote); err != nil {
		return nil, err
	}

	return &quote, nil
}

func (o *Client) postRFQ(ctx context.Context, path string, payload interface{}) (*RequestForQuote, error) {
	var rfq RequestForQuote

	if err := o.Post(ctx, path, payload, &rfq); err != nil {
		return nil, err
	}

	return &rfq, nil
}
