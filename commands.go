package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/bpx/constants"
	"github.com/lukehollenback/bpx/exchange"
	"github.com/lukehollenback/bpx/exchange/backpack"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//
// environment is what every command runs against.
//
type environment struct {
	client *backpack.Client
	logger logrus.FieldLogger
	out    io.Writer
}

type command struct {
	name        string
	summary     string
	needsClient bool
	run         func(ctx context.Context, env *environment, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"markets", "List markets and their precision.", true, runMarkets},
		{"ticker", "Show the 24h ticker of a market.", true, runTicker},
		{"depth", "Show the order book of a market.", true, runDepth},
		{"klines", "Show historical candles of a market.", true, runKlines},
		{"balances", "Show account balances. (signed)", true, runBalances},
		{"orders", "List open orders. (signed)", true, runOrders},
		{"place", "Place a post-only and a plain limit order in one batch. (signed)", true, runPlace},
		{"fills", "Show the fill history. (signed)", true, runFills},
		{"stream", "Print the raw payloads of websocket streams.", true, runStream},
		{"candles", "Aggregate the live trades of a market into candles.", true, runCandles},
		{"keygen", "Generate a new Ed25519 key pair.", false, runKeygen},
	}
}

func lookup(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}

	return command{}, false
}

func table(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

//
// signedChange colours a change green when positive and red when negative.
//
func signedChange(d decimal.Decimal, suffix string) aurora.Value {
	s := d.String() + suffix

	switch {
	case d.IsPositive():
		return aurora.Green("+" + s)
	case d.IsNegative():
		return aurora.Red(s)
	}

	return aurora.Reset(s)
}

func sideColour(side backpack.Side) aurora.Value {
	if side == backpack.Bid {
		return aurora.Green(string(side))
	}

	return aurora.Red(string(side))
}

func runMarkets(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("markets", flag.ExitOnError)
	marketType := fs.String("type", "", "Only list markets of this type (SPOT, PERP, ...).")
	_ = fs.Parse(args)

	var types []backpack.MarketType
	if *marketType != "" {
		types = append(types, backpack.MarketType(strings.ToUpper(*marketType)))
	}

	markets, err := env.client.GetMarkets(ctx, types...)
	if err != nil {
		return err
	}

	sort.Slice(markets, func(i, j int) bool { return markets[i].Symbol < markets[j].Symbol })

	w := table(env.out)
	fmt.Fprintln(w, "SYMBOL\tTYPE\tBASE\tQUOTE\tTICK\tSTEP\tPRICE DP\tQTY DP")

	for _, m := range markets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			aurora.Bold(m.Symbol), m.MarketType, m.BaseSymbol, m.QuoteSymbol,
			m.Filters.Price.TickSize, m.Filters.Quantity.StepSize,
			m.PriceDecimalPlaces(), m.QuantityDecimalPlaces(),
		)
	}

	return w.Flush()
}

func runTicker(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("ticker", flag.ExitOnError)
	symbol := fs.String("symbol", "SOL_USDC", "The market to show.")
	_ = fs.Parse(args)

	t, err := env.client.GetTicker(ctx, *symbol)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.out, "%s %s (%s, %s)\n",
		aurora.Bold(t.Symbol), aurora.Bold(t.LastPrice.String()),
		signedChange(t.PriceChange, ""), signedChange(t.PriceChangePercent.Mul(constants.Hundred()).Round(2), "%"),
	)
	fmt.Fprintf(env.out, "High %s  Low %s  Volume %s  Quote volume %s  Trades %d\n",
		t.High, t.Low, t.Volume, t.QuoteVolume, t.Trades,
	)

	return nil
}

func runDepth(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("depth", flag.ExitOnError)
	symbol := fs.String("symbol", "SOL_USDC", "The market to show.")
	levels := fs.Int("levels", 10, "How many price levels to show per side.")
	_ = fs.Parse(args)

	depth, err := env.client.GetOrderBookDepth(ctx, *symbol, "")
	if err != nil {
		return err
	}

	//
	// Print asks highest first so the spread sits in the middle.
	//
	asks := append([]backpack.PriceLevel(nil), depth.Asks...)
	sort.Slice(asks, func(i, j int) bool { return asks[i].Price().LessThan(asks[j].Price()) })
	if len(asks) > *levels {
		asks = asks[:*levels]
	}

	bids := append([]backpack.PriceLevel(nil), depth.Bids...)
	sort.Slice(bids, func(i, j int) bool { return bids[i].Price().GreaterThan(bids[j].Price()) })
	if len(bids) > *levels {
		bids = bids[:*levels]
	}

	w := table(env.out)
	fmt.Fprintf(w, "PRICE\tQUANTITY\t(update %d)\n", depth.LastUpdateID)

	for i := len(asks) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "%s\t%s\t\n", aurora.Red(asks[i].Price().String()), asks[i].Quantity())
	}

	for _, b := range bids {
		fmt.Fprintf(w, "%s\t%s\t\n", aurora.Green(b.Price().String()), b.Quantity())
	}

	return w.Flush()
}

func runKlines(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("klines", flag.ExitOnError)
	symbol := fs.String("symbol", "SOL_USDC", "The market to show.")
	interval := fs.String("interval", "1h", "The candle interval (1m, 5m, 1h, 1d, ...).")
	since := fs.Duration("since", 24*time.Hour, "How far back to start.")
	_ = fs.Parse(args)

	i, err := exchange.ParseInterval(*interval)
	if err != nil {
		return err
	}

	candles, err := env.client.RetrieveCandles(ctx, *symbol, i, time.Now().Add(-*since), time.Time{})
	if err != nil {
		return err
	}

	w := table(env.out)
	fmt.Fprintln(w, "START\tOPEN\tHIGH\tLOW\tCLOSE\tVOLUME\tTRADES")

	for _, c := range candles {
		closeValue := aurora.Green(c.Close().String())
		if c.Close().LessThan(c.Open()) {
			closeValue = aurora.Red(c.Close().String())
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			c.StartTime().Format("2006-01-02 15:04"), c.Open(), c.High(), c.Low(), closeValue, c.Volume(), c.Count(),
		)
	}

	return w.Flush()
}

func runBalances(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("balances", flag.ExitOnError)
	all := fs.Bool("all", false, "Also show assets with a zero balance.")
	_ = fs.Parse(args)

	balances, err := env.client.GetBalances(ctx)
	if err != nil {
		return err
	}

	symbols := make([]string, 0, len(balances))
	for symbol := range balances {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	w := table(env.out)
	fmt.Fprintln(w, "ASSET\tAVAILABLE\tLOCKED\tSTAKED\tTOTAL")

	for _, symbol := range symbols {
		b := balances[symbol]
		if b.Total().IsZero() && !*all {
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", aurora.Bold(symbol), b.Available, b.Locked, b.Staked, aurora.Bold(b.Total().String()))
	}

	return w.Flush()
}

func printOrders(out io.Writer, orders []backpack.Order) error {
	w := table(out)
	fmt.Fprintln(w, "ID\tSYMBOL\tTYPE\tSIDE\tPRICE\tQUANTITY\tEXECUTED\tSTATUS")

	for _, o := range orders {
		price, quantity, executed := "-", "-", decimal.Zero

		switch {
		case o.Limit != nil:
			price, quantity, executed = o.Limit.Price.String(), o.Limit.Quantity.String(), o.Limit.ExecutedQuantity
		case o.Market != nil:
			if o.Market.Quantity != nil {
				quantity = o.Market.Quantity.String()
			}

			executed = o.Market.ExecutedQuantity
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID(), o.Symbol(), o.Type(), sideColour(o.Side()), price, quantity, executed, o.Status(),
		)
	}

	return w.Flush()
}

func runOrders(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	symbol := fs.String("symbol", "", "Only list orders of this market.")
	_ = fs.Parse(args)

	orders, err := env.client.GetOpenOrders(ctx, *symbol)
	if err != nil {
		return err
	}

	return printOrders(env.out, orders)
}

func runPlace(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("place", flag.ExitOnError)
	symbol := fs.String("symbol", "SOL_USDC", "The market to trade.")
	side := fs.String("side", "Bid", "Bid or Ask.")
	quantity := fs.String("quantity", "", "The quantity of each order.")
	price := fs.String("price", "", "The price of the plain limit order.")
	postPrice := fs.String("post-price", "", "The price of the post-only order.")
	_ = fs.Parse(args)

	if *quantity == "" || *price == "" || *postPrice == "" {
		return errors.New("-quantity, -price, and -post-price are required")
	}

	s := backpack.Side(*side)
	if s != backpack.Bid && s != backpack.Ask {
		return fmt.Errorf("unknown side %q", *side)
	}

	//
	// Round to what the market accepts, the exchange rejects anything more precise.
	//
	market, err := findMarket(ctx, env.client, *symbol)
	if err != nil {
		return err
	}

	qty, err := parseRounded(*quantity, market.QuantityDecimalPlaces())
	if err != nil {
		return err
	}

	plain, err := parseRounded(*price, market.PriceDecimalPlaces())
	if err != nil {
		return err
	}

	post, err := parseRounded(*postPrice, market.PriceDecimalPlaces())
	if err != nil {
		return err
	}

	postOnly := true

	orders, err := env.client.ExecuteOrders(ctx, []backpack.ExecuteOrderPayload{
		{OrderType: backpack.OrderTypeLimit, Symbol: *symbol, Side: s, Quantity: &qty, Price: &post, PostOnly: &postOnly},
		{OrderType: backpack.OrderTypeLimit, Symbol: *symbol, Side: s, Quantity: &qty, Price: &plain},
	})
	if err != nil {
		return err
	}

	return printOrders(env.out, orders)
}

func findMarket(ctx context.Context, client *backpack.Client, symbol string) (*backpack.Market, error) {
	markets, err := client.GetMarkets(ctx)
	if err != nil {
		return nil, err
	}

	for i := range markets {
		if markets[i].Symbol == symbol {
			return &markets[i], nil
		}
	}

	return nil, fmt.Errorf("unknown market %q", symbol)
}

func parseRounded(s string, places int32) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q: %w", s, err)
	}

	return d.Truncate(places), nil
}

func runFills(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("fills", flag.ExitOnError)
	symbol := fs.String("symbol", "", "Only list fills of this market.")
	limit := fs.Int("limit", 50, "How many fills to show.")
	since := fs.Duration("since", 0, "Only list fills younger than this.")
	_ = fs.Parse(args)

	params := backpack.FillHistoryParams{
		Symbol:        *symbol,
		Limit:         *limit,
		SortDirection: backpack.Desc,
	}

	if *since > 0 {
		params.From = time.Now().Add(-*since).UnixMilli()
	}

	fills, err := env.client.GetFillHistory(ctx, params)
	if err != nil {
		return err
	}

	w := table(env.out)
	fmt.Fprintln(w, "TIME\tSYMBOL\tSIDE\tPRICE\tQUANTITY\tFEE\tMAKER")

	for _, f := range fills {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s %s\t%t\n",
			f.Timestamp.Time().Format(time.RFC3339), f.Symbol, sideColour(f.Side), f.Price, f.Quantity, f.Fee, f.FeeSymbol, f.IsMaker,
		)
	}

	return w.Flush()
}

func runStream(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("stream", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return errors.New("name at least one stream, e.g. ticker.SOL_USDC or account.orderUpdate")
	}

	payloads := make(chan json.RawMessage, 64)
	done := make(chan error, 1)

	go func() {
		done <- backpack.Subscribe(ctx, env.client, payloads, fs.Args()...)
	}()

	for {
		select {
		case payload := <-payloads:
			fmt.Fprintln(env.out, string(payload))

		case err := <-done:
			return err
		}
	}
}

func runKeygen(_ context.Context, env *environment, _ []string) error {
	keys, secret, err := backpack.GenerateKeyPair()
	if err != nil {
		return err
	}

	fmt.Fprintf(env.out, "%s %s\n", aurora.Bold("BPX_SECRET="), secret)
	fmt.Fprintf(env.out, "%s %s\n", aurora.Bold("Public key:"), aurora.Cyan(keys.VerifyingKeyBase64()))

	return nil
}
