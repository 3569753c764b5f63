// Package main is a command-line driver for bitarray.
//
// It builds a bit array, applies -set and -clear writes, prints -get reads
// and can run a full write/read verification pass over every position.
//
//	bitarray -size 1024 -set 3 -set 9 -clear 3 -get 3 -get 9
//	bitarray -size 74845 -shards 8 -verify -log-level debug
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/bitarray/internal/logging"
)

var (
	size      = flag.Int("size", -1, "number of bits to allocate (required)")
	shards    = flag.Int("shards", 1, "number of independently locked shards")
	verify    = flag.Bool("verify", false, "set, check and clear every position")
	logFormat = flag.String("log-format", "text", "log format: text or json")
	logLevel  = flag.String("log-level", "info", "log level: debug, info, warn or error")
	sets      positionFlag
	clears    positionFlag
	gets      positionFlag
)

func init() {
	flag.Var(&sets, "set", "position to set to true (repeatable)")
	flag.Var(&clears, "clear", "position to set to false (repeatable)")
	flag.Var(&gets, "get", "position to read (repeatable)")
}

func main() {
	flag.Parse()

	logger, err := logging.New(os.Stderr, *logFormat, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *size < 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s -size N [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := Config{
		Size:   *size,
		Shards: *shards,
		Verify: *verify,
		Sets:   sets,
		Clears: clears,
		Gets:   gets,
	}

	if err := run(context.Background(), cfg, os.Stdout, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// Config holds one invocation's parameters.
type Config struct {
	Size   int
	Shards int
	Verify bool
	Sets   []int
	Clears []int
	Gets   []int
}

func run(ctx context.Context, cfg Config, out io.Writer, logger *logging.Logger) error {
	logger = logger.WithSize(cfg.Size).WithShards(cfg.Shards)

	v, err := newVector(cfg.Size, cfg.Shards)
	if err != nil {
		return err
	}

	if cfg.Verify {
		checked, err := verifyAll(ctx, v)
		logger.LogVerify(ctx, checked, err)
		if err != nil {
			return err
		}
	}

	for _, p := range cfg.Sets {
		err := v.Set(p, true)
		logger.LogSet(ctx, p, true, err)
		if err != nil {
			return err
		}
	}

	for _, p := range cfg.Clears {
		err := v.Set(p, false)
		logger.LogSet(ctx, p, false, err)
		if err != nil {
			return err
		}
	}

	for _, p := range cfg.Gets {
		got, err := v.Get(p)
		logger.LogGet(ctx, p, got, err)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d=%t\n", p, got)
	}

	return nil
}

// positionFlag collects repeatable integer flags.
type positionFlag []int

func (m *positionFlag) String() string {
	parts := make([]string, len(*m))
	for i, p := range *m {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

func (m *positionFlag) Set(value string) error {
	p, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*m = append(*m, p)
	return nil
}
