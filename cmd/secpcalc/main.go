package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"

	"github.com/mahdiidarabi/secp256k1-ecrecover/internal/batch"
	"github.com/mahdiidarabi/secp256k1-ecrecover/internal/vectors"
	"github.com/mahdiidarabi/secp256k1-ecrecover/pkg/host"
	"github.com/mahdiidarabi/secp256k1-ecrecover/pkg/secpmath"
)

type config struct {
	Workers      int    `short:"w" long:"workers" description:"number of parallel workers for batch (0 = number of CPUs)"`
	Budget       uint64 `short:"b" long:"budget" description:"compute unit budget for host primitives (0 = unlimited)"`
	DebugLevel   string `short:"d" long:"debuglevel" description:"logging level {trace, debug, info, warn, error, critical, off}"`
	Uncompressed bool   `short:"u" long:"uncompressed" description:"print points in 65-byte uncompressed form"`
	Format       string `short:"f" long:"format" description:"batch vector file format (auto, json, csv)"`
	Verbose      bool   `short:"v" long:"verbose" description:"print every batch result, not only failures"`
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	fmt.Fprintln(os.Stderr, "\nOperations:")
	for _, u := range batch.Ops() {
		fmt.Fprintf(os.Stderr, "  %s\n", u)
	}
	fmt.Fprintln(os.Stderr, "  batch <file>")
	os.Exit(2)
}

// setupLogging routes every package logger to stderr at the requested level.
func setupLogging(level string) error {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("invalid debug level %q", level)
	}
	backend := slog.NewBackend(os.Stderr)
	for subsystem, use := range map[string]func(slog.Logger){
		"SECP": secpmath.UseLogger,
		"HOST": host.UseLogger,
		"BTCH": batch.UseLogger,
	} {
		logger := backend.Logger(subsystem)
		logger.SetLevel(lvl)
		use(logger)
	}
	return nil
}

func main() {
	cfg := config{
		DebugLevel: "off",
		Format:     "auto",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] <op> [args...]"
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(args) == 0 {
		usage(parser)
	}

	if err := setupLogging(cfg.DebugLevel); err != nil {
		fatalf("%v\n", err)
	}

	meter := host.NewMetered(host.NewReference())
	if cfg.Budget > 0 {
		meter.WithBudget(cfg.Budget)
	}
	engine := secpmath.NewEngine(meter)

	op := strings.ToLower(args[0])
	if op == "batch" {
		if len(args) != 2 {
			usage(parser)
		}
		failed, err := runBatch(engine, &cfg, args[1])
		if err != nil {
			fatalf("batch: %v\n", err)
		}
		fmt.Printf("host usage: %s\n", meter.Usage())
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	opArgs := make([][]byte, 0, len(args)-1)
	for i, a := range args[1:] {
		b, err := vectors.ParseValue(a)
		if err != nil {
			fatalf("argument %d: %v\n", i+1, err)
		}
		opArgs = append(opArgs, b)
	}

	out, err := batch.Evaluate(engine, op, opArgs)
	if err != nil {
		fatalf("%s: %v\n", op, err)
	}
	fmt.Println(hex.EncodeToString(out.Encode(cfg.Uncompressed)))
	fmt.Fprintf(os.Stderr, "host usage: %s\n", meter.Usage())
}

// runBatch evaluates a vector file and prints failing results along with a
// summary.  It returns the number of failed vectors.
func runBatch(engine *secpmath.Engine, cfg *config, path string) (int, error) {
	var parser vectors.Parser
	format := cfg.Format
	if format == "auto" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch format {
	case "json":
		parser = &vectors.JSONParser{}
	case "csv":
		parser = &vectors.CSVParser{}
	default:
		return 0, fmt.Errorf("unknown vector format %q", format)
	}

	vecs, err := parser.ParseVectors(path)
	if err != nil {
		return 0, fmt.Errorf("failed to parse vectors: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := batch.Run(ctx, engine, vecs, cfg.Workers)
	if err != nil {
		return 0, err
	}

	for _, r := range results {
		if !cfg.Verbose && (!r.Checked || r.Pass) {
			continue
		}
		status := "PASS"
		switch {
		case !r.Checked:
			status = "----"
		case !r.Pass:
			status = "FAIL"
		}
		if r.Err != nil {
			fmt.Printf("[%s] #%d %s: error: %v\n", status, r.Vector.Source, r.Vector.Op, r.Err)
			continue
		}
		fmt.Printf("[%s] #%d %s: %x\n", status, r.Vector.Source, r.Vector.Op,
			r.Output.Encode(cfg.Uncompressed))
	}

	s := batch.Summarize(results)
	fmt.Printf("%d vectors: %d passed, %d failed, %d unchecked\n", s.Total,
		s.Passed, s.Failed, s.Unchecked)
	return s.Failed, nil
}
