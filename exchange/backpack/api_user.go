package backpack

import "context"

func (o *Client) GetUser(ctx context.Context) (*User, error) {
	var user User

	if err := o.Get(ctx, APIUser, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

//
// RequestTwoFactor issues a two factor token, e.g. ahead of RequestWithdrawal.
//
func (o *Client) RequestTwoFactor(ctx context.Context, payload RequestTwoFactorPayload) (*RequestTwoFactorResponse, error) {
	var resp RequestTwoFactorResponse

	if err := o.Post(ctx, APIUser2FA, payload, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
