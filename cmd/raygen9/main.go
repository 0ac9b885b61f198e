// Command raygen9 builds, verifies, and queries the Omaha hand-rank
// table described in spec.md: an offline generator for the HR lookup
// table, plus a query smoke-test subcommand.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lox/raygen9/internal/automaton"
	"github.com/lox/raygen9/internal/progress"
	"github.com/lox/raygen9/internal/tablefile"
	"github.com/lox/raygen9/internal/verify"
)

var cli struct {
	Debug bool `help:"enable debug logging"`

	Build  BuildCmd  `cmd:"" help:"generate the HR table and write it to a file"`
	Verify VerifyCmd `cmd:"" help:"cross-check a generated table against the independent reference"`
	Query  QueryCmd  `cmd:"" help:"evaluate a single hand against a generated table"`
}

// BuildCmd runs the two-phase table build (spec.md §4.3-§4.5) and
// writes the result, optionally verifying it in the same run — mirroring
// the original's single raygen9(output_path, reference7_path_or_none,
// test) entry point as two composable steps (build, then verify).
type BuildCmd struct {
	Out              string        `help:"path to write the generated table" required:""`
	Test             bool          `help:"run the brute-force verifier against the freshly built table before reporting success"`
	ProgressInterval time.Duration `help:"minimum time between progress log lines per automaton (0 logs every step)" default:"5s"`
}

type VerifyCmd struct {
	Table            string        `help:"path to a generated table" required:""`
	Sizes            string        `help:"comma-separated hand sizes to check (7,8,9)" default:"7,8,9"`
	ProgressInterval time.Duration `help:"minimum time between progress log lines per hand size (0 logs every step)" default:"5s"`
}

type QueryCmd struct {
	Table string `help:"path to a generated table" required:""`
	Cards string `help:"comma-separated raw card values (1-52): 3, 4, or 5 board cards followed by 4 pocket cards"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("raygen9"),
		kong.Description("Omaha hand-rank table generator"),
		kong.UsageOnError(),
	)

	setupLogger(cli.Debug)

	var err error
	switch ctx.Command() {
	case "build":
		err = cli.Build.Run(context.Background())
	case "verify":
		err = cli.Verify.Run(context.Background())
	case "query":
		err = cli.Query.Run(context.Background())
	default:
		log.Fatal().Msgf("unknown command: %s", ctx.Command())
	}
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func setupLogger(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

func (cmd *BuildCmd) Run(ctx context.Context) error {
	reporter := progress.NewLogger(log.Logger, cmd.ProgressInterval)
	gen := &automaton.Generator{Report: reporter}

	log.Info().Msg("generating ids and assembling table")
	table, err := gen.Build(ctx)
	if err != nil {
		return fmt.Errorf("build table: %w", err)
	}
	log.Info().Int("entries", len(table.HR)).Msg("table assembled")

	if err := tablefile.Write(cmd.Out, table.HR, log.Logger); err != nil {
		return err
	}

	if cmd.Test {
		log.Info().Msg("verifying freshly built table")
		if err := verify.RunAll(ctx, table, reporter); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		log.Info().Msg("verification passed")
	}
	return nil
}

func (cmd *VerifyCmd) Run(ctx context.Context) error {
	loaded, err := tablefile.Load(cmd.Table, log.Logger)
	if err != nil {
		return err
	}
	defer loaded.Close()

	table := &automaton.Table{HR: loaded.HR}
	reporter := progress.NewLogger(log.Logger, cmd.ProgressInterval)

	for _, part := range strings.Split(cmd.Sizes, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid hand size %q: %w", part, err)
		}
		log.Info().Int("size", n).Msg("verifying hand size")
		if err := verify.Run(ctx, n, table, reporter); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}
	log.Info().Msg("verification passed")
	return nil
}

func (cmd *QueryCmd) Run(context.Context) error {
	loaded, err := tablefile.Load(cmd.Table, log.Logger)
	if err != nil {
		return err
	}
	defer loaded.Close()
	table := &automaton.Table{HR: loaded.HR}

	cards, err := parseCards(cmd.Cards)
	if err != nil {
		return err
	}

	var result automaton.Result
	switch len(cards) {
	case 7:
		result = table.Eval7Detail([3]int{cards[0], cards[1], cards[2]}, [4]int{cards[3], cards[4], cards[5], cards[6]})
	case 8:
		result = table.Eval8Detail([4]int{cards[0], cards[1], cards[2], cards[3]}, [4]int{cards[4], cards[5], cards[6], cards[7]})
	case 9:
		result = table.Eval9Detail([5]int{cards[0], cards[1], cards[2], cards[3], cards[4]}, [4]int{cards[5], cards[6], cards[7], cards[8]})
	default:
		return fmt.Errorf("query: expected 7, 8, or 9 cards, got %d", len(cards))
	}

	if result.FlushSuit != 0 {
		fmt.Printf("score: %d (flush, suit %d)\n", result.Score, result.FlushSuit)
	} else {
		fmt.Printf("score: %d\n", result.Score)
	}
	return nil
}

func parseCards(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	cards := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid card %q: %w", p, err)
		}
		if v < 1 || v > 52 {
			return nil, fmt.Errorf("card %d out of range 1..52", v)
		}
		cards = append(cards, v)
	}
	return cards, nil
}
