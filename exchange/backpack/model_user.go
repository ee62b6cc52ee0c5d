package backpack

type User struct {
	ID                int64   `json:"id"`
	OrganizationID    int64   `json:"organizationId"`
	Email             string  `json:"email"`
	FirstName         *string `json:"firstName,omitempty"`
	LastName          *string `json:"lastName,omitempty"`
	CountryCode       *string `json:"countryCode,omitempty"`
	SpotFeeTierID     int64   `json:"spotFeeTierId"`
	FuturesFeeTierID  int64   `json:"futuresFeeTierId"`
	TwoFactorVerified bool    `json:"twoFactorVerified"`
	KYCStatus         string  `json:"kycStatus"`
	UserType          *string `json:"userType,omitempty"`
	Alias             *string `json:"alias,omitempty"`
	ReferrerAlias     *string `json:"referrerAlias,omitempty"`
	ShowInLeaderboard bool    `json:"showInLeaderboard"`
}

type RequestTwoFactorPayload struct {
	App   string `json:"app,omitempty"`
	Email string `json:"email,omitempty"`
}

type RequestTwoFactorResponse struct {
	Signature string `json:"signature"`
}
