package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/bpx/exchange"
	"github.com/lukehollenback/bpx/feed"
	"github.com/lukehollenback/bpx/feed/candle"
	"github.com/lukehollenback/bpx/feed/indicator"
	"github.com/lukehollenback/bpx/feed/monitor"
	"github.com/lukehollenback/bpx/feed/writer"
	"github.com/sirupsen/logrus"
)

func parseIntervals(s string) ([]exchange.Interval, error) {
	var intervals []exchange.Interval

	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		interval, err := exchange.ParseInterval(name)
		if err != nil {
			return nil, err
		}

		intervals = append(intervals, interval)
	}

	if len(intervals) == 0 {
		return nil, fmt.Errorf("no intervals in %q", s)
	}

	return intervals, nil
}

func runCandles(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("candles", flag.ExitOnError)
	symbol := fs.String("symbol", "SOL_USDC", "The market to follow.")
	intervalList := fs.String("intervals", "1m,5m", "Comma separated candle intervals.")
	depth := fs.Int("depth", 100, "How many closed candles to remember per interval.")
	backfill := fs.Duration("backfill", 0, "How much kline history to load before streaming.")
	outDir := fs.String("out", "", "Append closed candles to <out>/<symbol>.csv.")
	shortLen := fs.Int("ma-short", 5, "Length of the short moving average.")
	longLen := fs.Int("ma-long", 15, "Length of the long moving average.")
	exponential := fs.Bool("ma-exp", false, "Use exponential instead of simple moving averages.")
	_ = fs.Parse(args)

	intervals, err := parseIntervals(*intervalList)
	if err != nil {
		return err
	}

	mon, err := monitor.New(env.client, monitor.Config{
		Symbol:    *symbol,
		Intervals: intervals,
		Depth:     *depth,
		Backfill:  *backfill,
	}, env.logger)
	if err != nil {
		return err
	}

	services := []feed.Service{mon}

	//
	// Optionally persist every closed candle.
	//
	if *outDir != "" {
		w := writer.New(*outDir, *symbol, env.logger)

		mon.RegisterCandleCloseHandler(func(closed candle.Closed) {
			for _, interval := range mon.Candles().Intervals() {
				c, ok := closed[interval]
				if !ok {
					continue
				}

				if err := w.Write(interval, c); err != nil {
					env.logger.WithError(err).Error("Failed to write a closed candle.")
				}
			}
		})

		services = append([]feed.Service{w}, services...)
	}

	//
	// Follow the trend on the finest interval.
	//
	crossover, err := indicator.NewCrossover(*shortLen, *longLen, *exponential)
	if err != nil {
		return err
	}

	finest := mon.Candles().Intervals()[0]
	trendLogger := env.logger.WithField("interval", finest.String())

	mon.RegisterIntervalCloseHandler(finest, func(c *candle.Candle) {
		fmt.Fprintln(env.out, c.String())

		switch crossover.Update(c.Close()) {
		case indicator.UptrendDetected:
			trendLogger.WithFields(logrus.Fields{
				"short": crossover.Short().StringFixed(4),
				"long":  crossover.Long().StringFixed(4),
			}).Infof("%s The short average crossed above the long one.", aurora.Bold(aurora.Green("UPTREND")))

		case indicator.DowntrendDetected:
			trendLogger.WithFields(logrus.Fields{
				"short": crossover.Short().StringFixed(4),
				"long":  crossover.Long().StringFixed(4),
			}).Infof("%s The short average crossed below the long one.", aurora.Bold(aurora.Red("DOWNTREND")))
		}
	})

	//
	// Start up all necessary services.
	//
	for _, svc := range services {
		chStarted, err := svc.Start()
		if err != nil {
			stopAll(env.logger, services)
			return err
		}

		<-chStarted
	}

	//
	// Block until we are shut down by the operating system.
	//
	<-ctx.Done()

	env.logger.Info("Shutting down all services...")

	stopAll(env.logger, services)

	return mon.Err()
}

//
// stopAll stops services in reverse start order and waits for each of them.
//
func stopAll(logger logrus.FieldLogger, services []feed.Service) {
	for i := len(services) - 1; i >= 0; i-- {
		chStopped, err := services[i].Stop()
		if err != nil {
			logger.WithError(err).Debug("Service was not running.")
			continue
		}

		select {
		case <-chStopped:
		case <-time.After(10 * time.Second):
			logger.Warn("Timed out waiting for a service to stop.")
		}
	}
}
