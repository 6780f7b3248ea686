// Command jieba segments Chinese text read from stdin or given on the
// command line, one token per line.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	jieba3 "github.com/yansh97/jieba3"
)

var cli struct {
	Model   string `help:"Dictionary preset: base, small or large." default:"base" enum:"base,small,large"`
	HMM     bool   `help:"Fall back to the HMM for unknown runs." default:"true" negatable:""`
	Query   bool   `help:"Use query-mode cutting (extra n-gram tokens for search indexing)."`
	Workers int    `help:"Tokenize HAN_MIX blocks across this many worker goroutines. 0 runs single-threaded." default:"0"`
	Verbose bool   `help:"Log debug-level detail about model loading." short:"v"`
	Text    string `arg:"" optional:"" help:"Text to segment. Reads stdin if omitted."`
}

func main() {
	kong.Parse(&cli,
		kong.Description("Segment Chinese text using a jieba-style prefix-DAG and HMM tokenizer."),
		kong.UsageOnError(),
	)

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Error().Err(err).Msg("jieba: run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cutter, err := jieba3.NewCutter(cli.Model, cli.HMM)
	if err != nil {
		return err
	}

	text := cli.Text
	if text == "" {
		read, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return err
		}
		text = strings.TrimRight(string(read), "\n")
	}

	var tokens []string
	switch {
	case cli.Query:
		tokens = cutter.CutQuery(text)
	case cli.Workers > 0:
		tokens = cutter.CutParallel(text, cli.Workers, true)
	default:
		tokens = cutter.CutText(text)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, tok := range tokens {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		fmt.Fprintln(w, tok)
	}
	return nil
}
