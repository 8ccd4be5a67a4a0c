// Command runops runs catalog operations from the command line and prints each result as JSON.
//
// Usage:
//
//	runops [all|<operation>]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"studentsdemo/internal/catalog"
	"studentsdemo/internal/config"
	"studentsdemo/internal/database"
	"studentsdemo/internal/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [all|<operation>]\n\nOperations:\n  %s\n\n%s\n",
			os.Args[0], strings.Join(catalog.Names(), "\n  "), config.Describe("Environment variables:"))
	}
	flag.Parse()

	os.Exit(run(flag.Arg(0), os.Stdout, os.Stderr))
}

func run(arg string, stdout, stderr io.Writer) int {
	if arg == "" {
		arg = "all"
	}

	var op catalog.Operation
	if arg != "all" {
		var ok bool
		if op, ok = catalog.Parse(arg); !ok {
			fmt.Fprintf(stderr, "Unknown operation %q. Available: %s\n", arg, strings.Join(catalog.Names(), ", "))
			return 1
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := logger.New(stderr, cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("uri", database.RedactURI(cfg.Mongo.URI)).Msg("connecting to MongoDB")
	mgr := database.NewManager(cfg.Mongo.ConnectTimeout())
	db, err := mgr.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to MongoDB")
		database.WriteTroubleshooting(stderr, cfg.Mongo.URI)
		return 1
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mgr.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("closing MongoDB connection")
		}
	}()

	cat := catalog.New(db, cfg.Mongo.Collection, log)

	if arg == "all" {
		rep := cat.RunAll(ctx)
		if rep.SetupError != "" {
			fmt.Fprintln(stderr, "setup failed:", rep.SetupError)
		}
		for _, r := range rep.Results {
			printResult(stdout, stderr, r)
		}
		return 0
	}

	if err := cat.Setup(ctx); err != nil {
		log.Warn().Err(err).Msg("setup failed")
	}
	res, err := cat.Run(ctx, op)
	if err != nil {
		printResult(stdout, stderr, catalog.Result{Operation: op.String(), Error: err.Error()})
		return 0
	}
	printResult(stdout, stderr, catalog.Result{Success: true, Operation: op.String(), Result: res})
	return 0
}

// printResult writes one operation outcome. Failures go to stderr and never abort the run.
func printResult(stdout, stderr io.Writer, r catalog.Result) {
	fmt.Fprintf(stdout, "\n--- Running: %s\n", r.Operation)
	if !r.Success {
		fmt.Fprintf(stderr, "Error running %s: %s\n", r.Operation, r.Error)
		return
	}
	out, err := json.MarshalIndent(r.Result, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "Error encoding %s result: %v\n", r.Operation, err)
		return
	}
	fmt.Fprintf(stdout, "Result for %s: %s\n", r.Operation, out)
}
