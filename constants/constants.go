package constants

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	LogPrefixFmt = "%-19s "
	ComponentKey = "component"

	DefaultBaseURL = "https://api.backpack.exchange"
	DefaultWSURL   = "wss://ws.backpack.exchange"
	DefaultWindow  = 5000
	DefaultTimeout = 30 * time.Second
	UserAgent      = "bpx-go-client"

	HandshakeTimeout = 10 * time.Second
	TwelveHours      = 12 * time.Hour
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

func One() decimal.Decimal {
	return one
}

func Hundred() decimal.Decimal {
	return hundred
}
