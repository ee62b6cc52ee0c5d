package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lukehollenback/bpx/constants"
	"github.com/lukehollenback/bpx/exchange/backpack"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Name = "≪bpx≫"
)

var (
	cfgEnvFile     *string
	cfgVerbose     *bool
	cfgMetricsAddr *string
)

func init() {
	//
	// Register global configuration flags. Every command registers its own on top of these.
	//
	cfgEnvFile = flag.String(
		"env",
		".env",
		"An optional dotenv file to load BPX_* settings from before reading the environment.",
	)

	cfgVerbose = flag.Bool(
		"v",
		false,
		"Enables debug logging, including the signee of every signed request.",
	)

	cfgMetricsAddr = flag.String(
		"metrics-addr",
		"",
		"If set, serves Prometheus metrics of the client on this address (e.g. :9100).",
	)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	logger := newLogger(*cfgVerbose)
	log := logger.WithField(constants.ComponentKey, Name)

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cmd, ok := lookup(flag.Arg(0))
	if !ok {
		log.Fatalf("Unknown command %q. Run with -h for the list of commands.", flag.Arg(0))
	}

	//
	// Load the configuration. A missing dotenv file is fine, the environment may carry everything.
	//
	if err := godotenv.Load(*cfgEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load %s. (Error: %s)", *cfgEnvFile, err)
	}

	cfg, err := backpack.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to read the configuration. (Error: %s)", err)
	}

	opts := append(cfg.Options(), backpack.WithLogger(logger))

	if *cfgMetricsAddr != "" {
		registry := prometheus.NewRegistry()
		opts = append(opts, backpack.WithMetrics(backpack.NewMetrics(registry)))

		go func() {
			log.Infof("Serving metrics on %s.", *cfgMetricsAddr)

			if err := http.ListenAndServe(*cfgMetricsAddr, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})); err != nil {
				log.Errorf("The metrics server stopped. (Error: %s)", err)
			}
		}()
	}

	//
	// Register a kill signal handler with the operating system so that we can gracefully shutdown if
	// necessary.
	//
	osInterrupt := make(chan os.Signal, 1)

	signal.Notify(osInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-osInterrupt:
			log.Info("An operating system interrupt has been received. Shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	//
	// Run the command.
	//
	env := &environment{
		logger: logger,
		out:    os.Stdout,
	}

	if cmd.needsClient {
		if env.client, err = backpack.NewClient(opts...); err != nil {
			log.Fatalf("Failed to create the client. (Error: %s)", err)
		}
	}

	if err := cmd.run(ctx, env, flag.Args()[1:]); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("The %s command failed. (Error: %s)", cmd.name, err)
	}
}

func usage() {
	out := flag.CommandLine.Output()

	fmt.Fprintf(out, "Usage: %s [flags] <command> [command flags]\n\nCommands:\n", os.Args[0])

	for _, cmd := range commands {
		fmt.Fprintf(out, "  %-10s %s\n", cmd.name, cmd.summary)
	}

	fmt.Fprintf(out, "\nFlags:\n")
	flag.PrintDefaults()
}
