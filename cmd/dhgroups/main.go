// Command dhgroups inspects the standard Diffie-Hellman groups, searches
// generators for prime-order subgroups and demonstrates key agreement.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-errors/errors"
	"github.com/urfave/cli/v2"
)

type app struct {
	conf   *config
	logger *slog.Logger
	out    io.Writer
}

func main() {
	a := &app{out: os.Stdout}
	if err := a.cli().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "dhgroups:", err)
		var stack *errors.Error
		if a.conf != nil && a.logger.Enabled(context.Background(), slog.LevelDebug) && stderrors.As(err, &stack) {
			fmt.Fprintln(os.Stderr, stack.ErrorStack())
		}
		os.Exit(1)
	}
}

func (a *app) cli() *cli.App {
	return &cli.App{
		Name:  "dhgroups",
		Usage: "finite cyclic groups for Diffie-Hellman",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "ini file with [search] and [log] sections"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log at debug level"},
			&cli.IntFlag{Name: "max-trials", Usage: "generator search trial cap"},
			&cli.DurationFlag{Name: "timeout", Usage: "abort a search after this long"},
		},
		Before: a.initialize,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "print the standard groups",
				Action: a.list,
			},
			{
				Name:   "check",
				Usage:  "validate a standard group",
				Flags:  []cli.Flag{groupFlag(), &cli.BoolFlag{Name: "primes", Usage: "also test p and q for primality"}},
				Action: a.check,
			},
			{
				Name:   "subgroup",
				Usage:  "search a new generator of bounded size for a standard group",
				Flags:  []cli.Flag{groupFlag(), bitsFlag()},
				Action: a.subgroup,
			},
			{
				Name:   "custom",
				Usage:  "build a group from a caller supplied safe prime",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "prime", Required: true, Usage: "decimal, or hex with a 0x prefix"}, bitsFlag()},
				Action: a.custom,
			},
			{
				Name:   "generate",
				Usage:  "generate a fresh safe prime and a generator",
				Flags:  []cli.Flag{&cli.IntFlag{Name: "prime-bits", Value: 512}, bitsFlag()},
				Action: a.generate,
			},
			{
				Name:   "exchange",
				Usage:  "run a key agreement with random secrets",
				Flags:  []cli.Flag{groupFlag(), &cli.StringFlag{Name: "backend", Value: "modp", Usage: "modp, P-256, P-384, ristretto255 or secp256k1"}},
				Action: a.exchange,
			},
		},
	}
}

func groupFlag() cli.Flag {
	return &cli.StringFlag{Name: "group", Aliases: []string{"g"}, Value: "14", Usage: "RFC 3526 id or name, e.g. 14 or MODP2048"}
}

func bitsFlag() cli.Flag {
	return &cli.IntFlag{Name: "bits", Aliases: []string{"b"}, Value: 256, Usage: "generator bit length"}
}

// initialize merges the config file with the global flags. Flags win.
func (a *app) initialize(c *cli.Context) error {
	conf, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("max-trials") {
		conf.Search.MaxTrials = c.Int("max-trials")
	}
	if c.IsSet("timeout") {
		conf.Search.Timeout = c.Duration("timeout")
	}
	if c.Bool("verbose") {
		conf.Log.Level = "debug"
	}
	level, err := parseLevel(conf.Log.Level)
	if err != nil {
		return err
	}
	a.conf = conf
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// searchContext bounds a search by the configured timeout, if any.
func (a *app) searchContext(c *cli.Context) (context.Context, context.CancelFunc) {
	if a.conf.Search.Timeout > 0 {
		return context.WithTimeout(c.Context, a.conf.Search.Timeout)
	}
	return context.WithCancel(c.Context)
}

func elapsed(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
